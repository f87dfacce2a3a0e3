// Package carousel computes per-frame transforms for the back card of a
// swipeable card carousel built on [Ebitengine], and animates those cards
// with [gween] tweens.
//
// A [Processor] maps a one-dimensional pan offset to a card's horizontal
// translation, scale, opacity and rotation. It also drives the three timed
// transitions a carousel needs: snapping a card back after an abandoned pan
// ([Processor.PanReset]), completing a swipe ([Processor.PanApply]) and
// programmatic navigation ([Processor.AutoNavigate]).
//
// Gesture capture, the card list and view recycling belong to the host. The
// host calls the lifecycle methods and ticks the processor from its game
// loop:
//
//	cfg := carousel.DefaultConfig()
//	cfg.ScaleFactor = 0.8
//	view := carousel.NewViewport(640)
//	proc := carousel.NewProcessor(view, &cfg)
//
//	card := carousel.NewCard("back", 640, 400)
//	proc.InitView(card, carousel.DirectionNext)
//
//	func (g *Game) Update() error { g.proc.Update(); return nil }
//
// # Offsets
//
// Offsets are pixels along the container width: |offset| == width puts a
// card fully off-screen, and the configured factors are reached there. Offsets
// beyond the width are ignored by [Processor.PanChanged].
//
// # Animations
//
// Every animation is named. Starting an animation on a card cancels the
// running animation with the same name on that card, so the last request
// wins. Cancellation is silent: the returned [Animation] simply completes.
// [Processor.PanApply] and [Processor.PanReset] share one name and so cancel
// each other.
//
// # Measurement
//
// Cards created with a negative width are unmeasured. Transform writes to an
// unmeasured card are queued with [Surface.WhenMeasured] and replayed once
// the card reports its width.
//
// Configuration can be loaded from YAML with [LoadConfig]. Animation events
// can be forwarded to an ECS world through an [EventSink]; see
// the ecs sub-package for a [Donburi] adapter.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package carousel
