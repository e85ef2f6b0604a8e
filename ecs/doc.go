// Package ecs provides ECS adapters for canopy's object lifecycle events.
//
// The primary adapter is [NewDonburiStore], which forwards canopy object
// events (first draw, destroy) into a [Donburi] world as typed events.
// Subscribe to [ObjectEventType] in your ECS systems to receive them. Only
// objects with a non-zero EntityID produce events.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
