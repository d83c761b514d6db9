package systems

import (
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// UpdateEvents pumps the queued event publications to their subscribers.
// Runs after collision resolution so the frame's events land the same tick.
func UpdateEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}
