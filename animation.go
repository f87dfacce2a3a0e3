package carousel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation is a handle to one named tween on one surface. It completes when
// the tween reaches its end value or when a newer animation with the same
// name on the same surface supersedes it. Cancellation is a silent
// completion: Done is closed either way.
type Animation struct {
	Name    string
	Surface Surface
	From    float64
	To      float64
	// DurationMs is the scheduled length; zero for an already-completed handle.
	DurationMs uint

	tween     *gween.Tween
	apply     func(float64)
	done      chan struct{}
	finished  bool
	cancelled bool
	ok        bool
	onFinish  []func(*Animation)
}

// completedAnimation returns a handle that is already done. ok mirrors the
// result the operation reports to the host.
func completedAnimation(name string, s Surface, ok bool) *Animation {
	a := &Animation{Name: name, Surface: s, done: make(chan struct{}), ok: ok}
	a.finished = true
	close(a.done)
	return a
}

// Done returns a channel closed when the animation finishes or is cancelled.
func (a *Animation) Done() <-chan struct{} {
	return a.done
}

// IsDone reports whether the animation has finished or been cancelled.
func (a *Animation) IsDone() bool {
	return a.finished
}

// Cancelled reports whether a newer animation superseded this one.
func (a *Animation) Cancelled() bool {
	return a.cancelled
}

// Succeeded reports the operation result once done: false only when the
// operation had no surface to act on.
func (a *Animation) Succeeded() bool {
	return a.finished && a.ok
}

// OnFinish registers fn to run when the animation completes for any reason.
// If it already has, fn runs immediately.
func (a *Animation) OnFinish(fn func(*Animation)) {
	if a.finished {
		fn(a)
		return
	}
	a.onFinish = append(a.onFinish, fn)
}

func (a *Animation) complete(cancelled bool) {
	if a.finished {
		return
	}
	a.finished = true
	a.cancelled = cancelled
	close(a.done)
	callbacks := a.onFinish
	a.onFinish = nil
	for _, fn := range callbacks {
		fn(a)
	}
}

type animKey struct {
	surface Surface
	name    string
}

// Animator runs named tweens. At most one animation per (surface, name) is
// active; starting another cancels the previous one first.
//
// There is no global animation manager: the owner calls Update each tick.
type Animator struct {
	active []*Animation
	index  map[animKey]*Animation
	sink   EventSink
	tick   []*Animation // reused snapshot buffer
}

// NewAnimator creates an empty Animator.
func NewAnimator() *Animator {
	return &Animator{index: make(map[animKey]*Animation)}
}

// Start schedules a tween from -> to over durationMs using fn, calling apply
// with each interpolated value. Any running animation with the same name on
// s is cancelled before the new one is registered.
func (m *Animator) Start(s Surface, name string, from, to float64, durationMs uint, fn ease.TweenFunc, apply func(float64)) *Animation {
	key := animKey{surface: s, name: name}
	if prev, ok := m.index[key]; ok {
		m.remove(prev)
		prev.complete(true)
		m.emit(AnimationCancelled, prev)
	}

	if fn == nil {
		fn = DefaultEasing.Func()
	}
	a := &Animation{
		Name:       name,
		Surface:    s,
		From:       from,
		To:         to,
		DurationMs: durationMs,
		tween:      gween.New(float32(from), float32(to), float32(durationMs)/1000, fn),
		apply:      apply,
		done:       make(chan struct{}),
		ok:         true,
	}
	m.active = append(m.active, a)
	m.index[key] = a
	m.emit(AnimationStarted, a)
	return a
}

// Cancel stops the named animation on s, if any. It reports whether one was
// running.
func (m *Animator) Cancel(s Surface, name string) bool {
	a, ok := m.index[animKey{surface: s, name: name}]
	if !ok {
		return false
	}
	m.remove(a)
	a.complete(true)
	m.emit(AnimationCancelled, a)
	return true
}

// CancelAll stops every animation running on s.
func (m *Animator) CancelAll(s Surface) {
	for _, a := range append([]*Animation(nil), m.active...) {
		if a.Surface == s {
			m.Cancel(s, a.Name)
		}
	}
}

// Running returns the active animation with the given name on s, or nil.
func (m *Animator) Running(s Surface, name string) *Animation {
	return m.index[animKey{surface: s, name: name}]
}

// Len returns the number of active animations.
func (m *Animator) Len() int {
	return len(m.active)
}

// Update advances every active animation by dt seconds and applies the new
// values. Animations whose surface has been disposed finish without writing.
func (m *Animator) Update(dt float32) {
	if len(m.active) == 0 {
		return
	}
	// apply callbacks may start or cancel animations; iterate a snapshot.
	m.tick = append(m.tick[:0], m.active...)
	for i, a := range m.tick {
		m.tick[i] = nil
		if a.finished {
			continue
		}
		if absent(a.Surface) {
			m.remove(a)
			a.complete(false)
			m.emit(AnimationFinished, a)
			continue
		}
		val, done := a.tween.Update(dt)
		if done {
			// Land exactly on the target rather than the float32 approximation.
			a.apply(a.To)
			if a.finished {
				// superseded from inside its own apply
				continue
			}
			m.remove(a)
			a.complete(false)
			m.emit(AnimationFinished, a)
			continue
		}
		a.apply(float64(val))
	}
	m.tick = m.tick[:0]
}

func (m *Animator) remove(a *Animation) {
	key := animKey{surface: a.Surface, name: a.Name}
	if m.index[key] == a {
		delete(m.index, key)
	}
	for i, cur := range m.active {
		if cur == a {
			copy(m.active[i:], m.active[i+1:])
			m.active[len(m.active)-1] = nil
			m.active = m.active[:len(m.active)-1]
			return
		}
	}
}

func (m *Animator) emit(t AnimationEventType, a *Animation) {
	if m.sink == nil {
		return
	}
	m.sink.EmitEvent(AnimationEvent{
		Type:       t,
		Name:       a.Name,
		Surface:    a.Surface,
		From:       a.From,
		To:         a.To,
		DurationMs: a.DurationMs,
	})
}
