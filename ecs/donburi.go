package ecs

import (
	"github.com/jozemiteapps/buttonnode"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type touch events are published
// under.
var InteractionEventType = events.NewEventType[buttonnode.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world. Events
// are queued; call InteractionEventType.ProcessEvents to deliver them.
func NewDonburiStore(world donburi.World) buttonnode.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event buttonnode.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// OnRelease subscribes fn to touches captured by the entity's node that
// are released inside its hit region. It sees raw touches only: a disabled
// button, or a drag that left the bounds and came back, still reports a
// release. Use the button's Action for presses.
func OnRelease(world donburi.World, entity donburi.Entity, fn func(buttonnode.InteractionEvent)) {
	id := uint32(entity.Id())
	InteractionEventType.Subscribe(world, func(_ donburi.World, e buttonnode.InteractionEvent) {
		if e.EntityID == id && e.Phase == buttonnode.TouchEnded && e.Inside {
			fn(e)
		}
	})
}
