package system

import "github.com/lixenwraith/machine-room/engine"

// RegisterAll adds the simulation systems to world in tick order
func RegisterAll(world *engine.World) {
	world.AddSystem(NewMovementSystem(world))
	world.AddSystem(NewVisibilitySystem(world))
	world.AddSystem(NewSpawnSystem(world))
	world.AddSystem(NewUseSystem(world))
	world.AddSystem(NewEncounterSystem(world))
	world.AddSystem(NewHUDSystem(world))
}
