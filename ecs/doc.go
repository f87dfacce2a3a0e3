// Package ecs provides ECS adapters for carousel's animation events.
//
// The primary adapter is [NewDonburiSink], which bridges carousel animation
// lifecycle events (started, finished, cancelled) into a [Donburi] world as
// typed events. Subscribe to [AnimationEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	processor.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
