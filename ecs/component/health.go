package component

import "log"

// Health is a float health pool. Current always stays within [0, Max].
type Health struct {
	Max     float64
	Current float64
	Dead    bool
}

// NewHealth creates a Health component at full health.
func NewHealth(max float64) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// Heal adds amount (which may be negative) and clamps the result to
// [0, Max]. Every call is logged with the amount and the resulting health.
func (h *Health) Heal(amount float64) float64 {
	if h == nil {
		return 0
	}
	h.Current = clamp(h.Current+amount, 0, h.Max)
	log.Printf("drain: healed %.2f, current health %.2f/%.2f", amount, h.Current, h.Max)
	return h.Current
}

// TakeDamage subtracts a positive amount and marks the pool dead at zero.
func (h *Health) TakeDamage(amount float64) {
	if h == nil || h.Dead || amount <= 0 {
		return
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		h.Dead = true
	}
}

// IsAlive reports whether the pool has health left.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// Fraction returns Current/Max for health bars.
func (h *Health) Fraction() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var HealthComponent = NewComponent[Health]()
