package curry

import "time"

// Hazard tracks the heat tier and the consumption cooldown.
type Hazard struct {
	Heat          int       // Current tier, 0..MaxHeat
	MaxHeat       int       // Tier cap
	Gauge         int       // Recycles left before heat drops back to 0
	CooldownUntil time.Time // Zero when no cooldown is active
}

// NewHazard creates a cool hazard state capped at maxHeat.
func NewHazard(maxHeat int) Hazard {
	return Hazard{MaxHeat: maxHeat}
}

// Reset clears heat, gauge and cooldown.
func (h *Hazard) Reset() {
	h.Heat = 0
	h.Gauge = 0
	h.CooldownUntil = time.Time{}
}

// Raise bumps the heat tier and refills the gauge so the heat lasts a full
// pattern cycle.
func (h *Hazard) Raise(patternLen int) {
	h.Gauge = patternLen + 1
	h.Heat = min(h.MaxHeat, h.Heat+1)
}

// Recycle is called once per item leaving the belt.
func (h *Hazard) Recycle() {
	if h.Gauge == 0 {
		return
	}
	h.Gauge--
	if h.Gauge == 0 {
		h.Heat = 0
	}
}

// Cool drops everything back to zero. Used when drinking.
func (h *Hazard) Cool() {
	h.Reset()
}

// Cooling reports whether a cooldown is armed, expired or not.
func (h *Hazard) Cooling() bool {
	return !h.CooldownUntil.IsZero()
}

// Blocked reports whether consumption is refused at now.
func (h *Hazard) Blocked(now time.Time) bool {
	return h.Cooling() && now.Before(h.CooldownUntil)
}

// Penalize arms a cooldown of d starting at now.
func (h *Hazard) Penalize(now time.Time, d time.Duration) {
	h.CooldownUntil = now.Add(d)
}

// ClearCooldown disarms the cooldown.
func (h *Hazard) ClearCooldown() {
	h.CooldownUntil = time.Time{}
}

// Expire disarms a cooldown whose deadline has passed.
func (h *Hazard) Expire(now time.Time) {
	if h.Cooling() && h.CooldownUntil.Before(now) {
		h.ClearCooldown()
	}
}

// Speed returns the belt step per tick at the current tier.
func (h *Hazard) Speed() float64 {
	return 1 + float64(h.Heat)/2
}
