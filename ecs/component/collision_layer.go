package component

// CollisionLayer declares an entity's category and mask for spatial queries.
// Drain queries match shapes whose Category shares a bit with the drain
// filter.
type CollisionLayer struct {
	// Category is a bitmask of this entity's collision category. Zero is
	// treated as category 1.
	Category uint32 `yaml:"category,omitempty"`
	// Mask is a bitmask of categories this entity can be found by. Zero is
	// treated as all bits set.
	Mask uint32 `yaml:"mask,omitempty"`
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
