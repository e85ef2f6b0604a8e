// Package ecs provides ECS adapters for canopy.
package ecs

import (
	"github.com/phanxgames/canopy"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ObjectEventType carries canopy object lifecycle events into a Donburi
// world. Only objects with a non-zero EntityID produce events.
//
// EventDrawn fires once per object, on the draw that assigns its layer;
// redraws are silent. The event's Layer is the assigned layer.
//
// EventDestroyed fires when Destroy removes the object from its scene, after
// the scene's layer counter has been decremented. Layer is the layer the
// object held (0 if it was never drawn). Destroying an object twice emits
// once.
//
// Events are queued by Publish and delivered on events.ProcessEvents or
// ProcessAllEvents, so handlers run on the caller's schedule, not inside the
// draw or destroy call.
var ObjectEventType = events.NewEventType[canopy.ObjectEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore returns an EntityStore that publishes every event it
// receives to ObjectEventType in world. Attach it with Scene.SetEntityStore.
func NewDonburiStore(world donburi.World) canopy.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event canopy.ObjectEvent) {
	ObjectEventType.Publish(s.world, event)
}
