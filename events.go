package carousel

// AnimationEventType identifies a point in an animation's lifecycle.
type AnimationEventType uint8

const (
	AnimationStarted   AnimationEventType = iota // fires when a tween is scheduled
	AnimationFinished                            // fires when a tween reaches its target or its surface is disposed
	AnimationCancelled                           // fires when a newer tween with the same name supersedes it
)

// String implements fmt.Stringer.
func (t AnimationEventType) String() string {
	switch t {
	case AnimationStarted:
		return "started"
	case AnimationFinished:
		return "finished"
	case AnimationCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// AnimationEvent carries animation lifecycle data for an EventSink.
type AnimationEvent struct {
	Type       AnimationEventType
	Name       string
	Surface    Surface
	From       float64
	To         float64
	DurationMs uint
}

// EventSink is the interface for optional event forwarding (for example into
// an ECS world). When set on a Processor, animation lifecycle events are
// emitted to it synchronously on the game loop.
type EventSink interface {
	EmitEvent(event AnimationEvent)
}
