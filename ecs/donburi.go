package ecs

import (
	"github.com/phanxgames/seedling"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// StageEventType is the Donburi event type for seedling stage events.
var StageEventType = events.NewEventType[seedling.StageEvent]()

type donburiObserver struct {
	world donburi.World
}

// NewDonburiObserver creates a StageObserver backed by a Donburi world.
// Stage events are published to StageEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiObserver(world donburi.World) seedling.StageObserver {
	return &donburiObserver{world: world}
}

func (o *donburiObserver) EmitStageEvent(event seedling.StageEvent) {
	StageEventType.Publish(o.world, event)
}
