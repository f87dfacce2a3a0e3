package carousel

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Animation names. PanApply deliberately reuses the PanReset name so that
// committing a swipe cancels a pending snap-back on the same card, and the
// reverse.
const (
	AnimAutoNavigate = "AutoNavigate"
	AnimPanReset     = "PanReset"
	AnimPanApply     = AnimPanReset
)

// Processor drives the back-card transform of a carousel: it maps pan
// offsets to scale, opacity, rotation and translation, and animates cards
// off-screen or back on release. It keeps no state beyond the surfaces'
// own attributes and the running animations.
//
// All methods must be called from the game loop goroutine.
type Processor struct {
	container Container
	cfg       *Config
	calc      Calculator
	animator  *Animator
	sink      EventSink
	debug     bool
}

// NewProcessor creates a processor for the given container. cfg is kept by
// reference so the host may adjust it before use; nil selects DefaultConfig.
// Panics if container is nil.
func NewProcessor(container Container, cfg *Config) *Processor {
	if container == nil {
		panic("carousel: processor needs a container")
	}
	if cfg == nil {
		def := DefaultConfig()
		cfg = &def
	}
	return &Processor{
		container: container,
		cfg:       cfg,
		calc:      DefaultCalculator{},
		animator:  NewAnimator(),
	}
}

// Config returns the processor configuration.
func (p *Processor) Config() *Config {
	return p.cfg
}

// Animator returns the animation driver.
func (p *Processor) Animator() *Animator {
	return p.animator
}

// SetCalculator replaces the transform curve. nil restores DefaultCalculator.
func (p *Processor) SetCalculator(c Calculator) {
	if c == nil {
		c = DefaultCalculator{}
	}
	p.calc = c
}

// SetEventSink sets the optional animation event sink.
func (p *Processor) SetEventSink(sink EventSink) {
	p.sink = sink
	p.wireSink()
}

// SetDebugMode enables or disables lifecycle tracing on stderr.
func (p *Processor) SetDebugMode(enabled bool) {
	p.debug = enabled
	p.wireSink()
}

func (p *Processor) wireSink() {
	if p.debug {
		p.animator.sink = debugSink{next: p.sink}
		return
	}
	p.animator.sink = p.sink
}

// fallbackTPS is used when Ebitengine reports no usable tick rate.
const fallbackTPS = 60

// Update advances running animations by one tick. Call it from the game's
// Update.
func (p *Processor) Update() {
	p.animator.Update(float32(tickSeconds(ebiten.TPS(), ebiten.ActualTPS())))
}

// tickSeconds returns the length of one tick. Under ebiten.SyncWithFPS the
// configured rate is negative, so the measured rate is used instead.
func tickSeconds(tps int, actual float64) float64 {
	if tps > 0 {
		return 1.0 / float64(tps)
	}
	if actual > 0 {
		return 1.0 / actual
	}
	return 1.0 / fallbackTPS
}

// --- Lifecycle operations ---

// InitView places s fully off-screen on the direction's side.
func (p *Processor) InitView(s Surface, dir Direction) {
	p.setTranslationX(s, dir.Sign()*p.container.Width())
}

// CleanView places s fully off-screen on the positive side.
func (p *Processor) CleanView(s Surface) {
	p.setTranslationX(s, p.container.Width())
}

// PanChanged follows a pan gesture. s becomes visible and inactive hidden;
// with DirectionNone nothing else changes. Otherwise s is moved to
// sign(dir)*width + offset unless that position is past the container edge
// or has crossed center away from dir's side.
func (p *Processor) PanChanged(s, inactive Surface, offset float64, dir Direction) {
	if !absent(s) {
		s.SetVisible(true)
	}
	if !absent(inactive) {
		inactive.SetVisible(false)
	}
	if dir == DirectionNone {
		return
	}

	width := p.container.Width()
	value := dir.Sign()*width + offset
	// A card never crosses center onto the other direction's side.
	if math.Abs(value) > width || (dir == DirectionPrev && value < 0) || (dir == DirectionNext && value > 0) {
		if p.debug {
			debugf("pan %s on %s: %.1f settled, skipped", dir, surfaceName(s), value)
		}
		return
	}
	p.setTranslationX(s, value)
}

// AutoNavigate animates s from its current offset to fully off-screen:
// +width for DirectionPrev, -width otherwise. The returned handle reports
// Succeeded()==false if s is absent.
func (p *Processor) AutoNavigate(s Surface, dir Direction) *Animation {
	if absent(s) {
		return completedAnimation(AnimAutoNavigate, s, false)
	}
	width := p.container.Width()
	dest := -width
	if dir == DirectionPrev {
		dest = width
	}
	return p.animate(s, AnimAutoNavigate, p.translationX(s), dest, p.cfg.AnimationLength)
}

// PanReset snaps s back off-screen on the direction's side after an
// abandoned pan. The duration shrinks with the distance left to travel and
// is stretched by half. The focused card is never reset.
func (p *Processor) PanReset(s Surface, dir Direction) *Animation {
	if absent(s) || s == p.container.CurrentView() {
		return completedAnimation(AnimPanReset, s, true)
	}
	from := p.translationX(s)
	length := uint(float64(p.cfg.AnimationLength)*p.remaining(from)) * 3 / 2
	if length == 0 {
		if p.debug {
			debugf("pan reset on %s: nothing left to travel", surfaceName(s))
		}
		return completedAnimation(AnimPanReset, s, true)
	}
	return p.animate(s, AnimPanReset, from, dir.Sign()*p.container.Width(), length)
}

// PanApply completes a swipe, moving s off-screen opposite the direction's
// side. The duration shrinks with the distance left to travel.
func (p *Processor) PanApply(s Surface, dir Direction) *Animation {
	if absent(s) {
		return completedAnimation(AnimPanApply, s, true)
	}
	from := p.translationX(s)
	length := uint(float64(p.cfg.AnimationLength) * p.remaining(from))
	if length == 0 {
		if p.debug {
			debugf("pan apply on %s: nothing left to travel", surfaceName(s))
		}
		return completedAnimation(AnimPanApply, s, true)
	}
	return p.animate(s, AnimPanApply, from, -dir.Sign()*p.container.Width(), length)
}

// --- Helpers ---

func (p *Processor) animate(s Surface, name string, from, to float64, durationMs uint) *Animation {
	return p.animator.Start(s, name, from, to, durationMs, p.cfg.Easing.Func(), func(v float64) {
		p.setTranslationX(s, v)
	})
}

// remaining returns the fraction of the container width still to travel
// from offset, clamped to [0, 1].
func (p *Processor) remaining(offset float64) float64 {
	width := p.container.Width()
	if width <= 0 {
		return 0
	}
	pct := (width - math.Abs(offset)) / width
	return math.Max(0, math.Min(1, pct))
}

// translationX reads the current pan offset of s, undoing the scale
// compensation applied by setTranslationX.
func (p *Processor) translationX(s Surface) float64 {
	if absent(s) {
		return 0
	}
	return p.calc.UnscaledOffset(s.TranslationX(), s.Width(), s.Scale())
}

// setTranslationX applies the transform for offset to s in one batch. If s
// has not been measured yet the write is deferred until it is.
func (p *Processor) setTranslationX(s Surface, offset float64) {
	if absent(s) {
		return
	}
	width := p.container.Width()
	if width <= 0 {
		if p.debug {
			debugf("set %s: container width %.1f, skipped", surfaceName(s), width)
		}
		return
	}
	if s.Width() < 0 {
		if p.debug {
			debugf("set %s: unmeasured, deferring %.1f", surfaceName(s), offset)
		}
		s.WhenMeasured(func() {
			p.setTranslationX(s, offset)
		})
		return
	}

	t := p.calc.Transform(offset, width, s.Width(), p.cfg)
	s.BatchBegin()
	defer s.BatchCommit()
	s.SetScale(t.Scale)
	s.SetOpacity(t.Opacity)
	s.SetRotation(t.Rotation)
	s.SetTranslationX(t.TranslationX)
}
