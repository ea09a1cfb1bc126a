package engine

// System is a fixed-priority step of the simulation tick
// Systems read and write World.Resources; they never source time themselves
type System interface {
	Name() string
	Priority() int // Lower values run first
	Init()         // Resets session state
	Update()
}
