package component

// Input stores per-frame input state for an entity. The *Pressed fields are
// edges: true only on the frame the key went down.
type Input struct {
	MoveX         float64
	MoveY         float64
	DrainPressed  bool
	CancelPressed bool
}

var InputComponent = NewComponent[Input]()
