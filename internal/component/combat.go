package component

import "time"

// Health — компонент здоровья
type Health struct {
	Current int
	Max     int
}

// NewHealth returns a full health pool of max points.
func NewHealth(max int) *Health {
	return &Health{Current: max, Max: max}
}

// TakeDamage subtracts amount, never going below zero. It reports true only
// on the call that brings health to zero; once depleted every further call
// is a no-op returning false.
func (h *Health) TakeDamage(amount int) bool {
	if h.Current <= 0 {
		return false
	}
	if amount < 0 {
		amount = 0
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current <= 0
}

// Heal restores amount points, capped at Max. A depleted pool stays depleted.
func (h *Health) Heal(amount int) {
	if h.Current <= 0 || amount <= 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Percent returns Current/Max in [0, 1].
func (h *Health) Percent() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

func (h *Health) IsDead() bool {
	return h.Current <= 0
}

func (h *Health) Reset() {
	h.Current = h.Max
}

// Cooldown gates a repeatable action on game time. An unarmed cooldown is
// always ready.
type Cooldown struct {
	last  time.Duration
	armed bool
}

// Ready reports whether interval has elapsed since the last Trigger.
func (c *Cooldown) Ready(now, interval time.Duration) bool {
	return !c.armed || now-c.last >= interval
}

// Trigger records now as the moment of the last use.
func (c *Cooldown) Trigger(now time.Duration) {
	c.last = now
	c.armed = true
}

// Last returns the time of the last Trigger and whether there was one.
func (c *Cooldown) Last() (time.Duration, bool) {
	return c.last, c.armed
}

func (c *Cooldown) Reset() {
	*c = Cooldown{}
}
