// Package ecs bridges buttonnode touch events into a [Donburi] world.
//
// Give a node an EntityID, set the store on the scene, and every touch the
// node receives is published as a typed [buttonnode.InteractionEvent]:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//	play.Node().EntityID = uint32(entry.Id())
//
// Subscribe to [InteractionEventType] and drain it with ProcessEvents once
// per tick.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
