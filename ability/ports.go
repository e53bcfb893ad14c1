package ability

// TargetID is a stable handle for a target. The drain keys its link
// registry by it, so it must not be reused while a target is still linked.
type TargetID uint64

// Filter is a category bitmask; a target matches when its category shares a bit.
type Filter uint32

// Target is something the drain can damage.
type Target interface {
	ID() TargetID
	// Valid reports false once the target is destroyed or dead.
	Valid() bool
	Position() Vec3
	TakeDamage(amount float64)
}

// Space answers radius queries against the scene.
type Space interface {
	FindInRadius(center Vec3, radius float64, filter Filter) []Target
	InRadius(center Vec3, radius float64, filter Filter, t Target) bool
}

// Link is a visual beam between the player and one target.
type Link interface {
	SetEndpoints(a, b Vec3)
}

// Links allocates and releases beams.
type Links interface {
	Create() Link
	Destroy(l Link)
}

// Effect is the looping effect shown while the drain runs.
type Effect interface {
	Play()
	Stop()
}

// Healer is the player side of the drain.
type Healer interface {
	Position() Vec3
	// Heal adds amount to current health and returns the clamped result.
	Heal(amount float64) float64
}
