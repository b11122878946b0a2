// internal/types/types.go
package types

// EntityID identifies a simulated entity. Zero is never issued.
type EntityID uint64
