// internal/component/visual.go
package component

import "time"

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    time.Duration // сколько времени эффект уже активен
	Duration time.Duration
}

// Advance moves the flash timer forward and reports whether it is still active.
func (f *DamageFlash) Advance(dt time.Duration) bool {
	f.Timer += dt
	return f.Timer < f.Duration
}
