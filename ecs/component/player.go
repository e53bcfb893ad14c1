package component

type Player struct {
	// MoveSpeed in world units per second.
	MoveSpeed float64
}

var PlayerComponent = NewComponent[Player]()
