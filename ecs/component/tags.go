package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

// LinkTag marks beam entities owned by a drain.
type LinkTag struct{}

var LinkTagComponent = NewComponent[LinkTag]()
