// Package ecs publishes carousel animation events into a Donburi world.
package ecs

import (
	"github.com/phanxgames/carousel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// AnimationEventType carries carousel animation events through a Donburi
// world. Events are queued on publish and delivered by ProcessEvents.
var AnimationEventType = events.NewEventType[carousel.AnimationEvent]()

type donburiSink struct {
	world donburi.World
	mask  uint8
}

// NewDonburiSink returns an EventSink that publishes to AnimationEventType
// in world. When types are given only those lifecycle points are published;
// with none, every event is.
func NewDonburiSink(world donburi.World, types ...carousel.AnimationEventType) carousel.EventSink {
	s := &donburiSink{world: world}
	for _, t := range types {
		s.mask |= 1 << t
	}
	return s
}

func (s *donburiSink) EmitEvent(event carousel.AnimationEvent) {
	if s.mask != 0 && s.mask&(1<<event.Type) == 0 {
		return
	}
	AnimationEventType.Publish(s.world, event)
}
