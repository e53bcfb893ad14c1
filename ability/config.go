package ability

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("ability: invalid config")

// Config holds the designer tunables of the drain.
type Config struct {
	// Duration of one activation in seconds.
	Duration float64
	// Radius around the player in world units.
	Radius          float64
	DamagePerSecond float64
	// HealPercentage is the fraction of damage dealt returned to the player.
	HealPercentage float64
	Filter         Filter
}

// DefaultConfig mirrors the stock tuning: 3s, radius 5, 10 dps, 50% heal.
func DefaultConfig() Config {
	return Config{
		Duration:        3,
		Radius:          5,
		DamagePerSecond: 10,
		HealPercentage:  0.5,
		Filter:          1 << 1,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Duration < 0:
		return fmt.Errorf("%w: negative duration %v", ErrInvalidConfig, c.Duration)
	case c.Radius < 0:
		return fmt.Errorf("%w: negative radius %v", ErrInvalidConfig, c.Radius)
	case c.DamagePerSecond < 0:
		return fmt.Errorf("%w: negative damage per second %v", ErrInvalidConfig, c.DamagePerSecond)
	case c.HealPercentage < 0:
		return fmt.Errorf("%w: negative heal percentage %v", ErrInvalidConfig, c.HealPercentage)
	case c.Filter == 0:
		return fmt.Errorf("%w: empty category filter", ErrInvalidConfig)
	}
	return nil
}
