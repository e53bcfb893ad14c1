package component

// Wander drives an enemy with a tengo script. The script reads the enemy
// position and home point and returns a velocity.
type Wander struct {
	Script string
	Speed  float64
	HomeX  float64
	HomeY  float64
	Range  float64
	Seed   int64
}

var WanderComponent = NewComponent[Wander]()
