package carousel

import "github.com/hajimehoshi/ebiten/v2"

// cardIDCounter is a plain counter (no atomic: all card work happens on the
// game loop goroutine).
var cardIDCounter uint32

func nextCardID() uint32 {
	cardIDCounter++
	return cardIDCounter
}

// Card is the shipped Surface implementation: a flat struct holding the
// transform attributes the Processor writes, plus what Draw needs to render
// it with Ebitengine.
type Card struct {
	// Identity
	ID   uint32
	Name string

	// Layout slot (top-left of the container area the card occupies)
	X, Y   float64
	Height float64
	width  float64

	// Transform
	translationX float64
	scale        float64
	opacity      float64
	rotation     float64 // degrees
	visible      bool

	// Rendering
	Image *ebiten.Image
	Color Color

	// Metadata
	UserData any

	// OnTransformChanged fires once per committed update: after each setter
	// outside a batch, or once when the outermost batch commits.
	OnTransformChanged func(*Card)

	batchDepth   int
	batchDirty   bool
	pendingWidth []func()
	disposed     bool
}

// NewCard creates a visible, unscaled, opaque card. A negative width means
// the card has not been measured yet.
func NewCard(name string, width, height float64) *Card {
	return &Card{
		ID:      nextCardID(),
		Name:    name,
		Height:  height,
		width:   width,
		scale:   1,
		opacity: 1,
		visible: true,
		Color:   ColorWhite,
	}
}

// Width returns the measured width, negative while unmeasured.
func (c *Card) Width() float64 { return c.width }

// SetWidth records a new measured width. When the width becomes >= 0 every
// pending WhenMeasured callback runs once and is dropped.
func (c *Card) SetWidth(w float64) {
	c.width = w
	if w < 0 || len(c.pendingWidth) == 0 {
		return
	}
	pending := c.pendingWidth
	c.pendingWidth = nil
	for _, fn := range pending {
		fn()
	}
}

// WhenMeasured implements Surface. If the card is already measured fn runs
// immediately.
func (c *Card) WhenMeasured(fn func()) {
	if c.disposed {
		return
	}
	if c.width >= 0 {
		fn()
		return
	}
	c.pendingWidth = append(c.pendingWidth, fn)
}

// PendingMeasurements returns how many WhenMeasured callbacks are queued.
func (c *Card) PendingMeasurements() int {
	return len(c.pendingWidth)
}

// TranslationX returns the horizontal offset from the card's X, in pixels.
func (c *Card) TranslationX() float64 { return c.translationX }

// Scale returns the uniform scale around the card's center.
func (c *Card) Scale() float64 { return c.scale }

// Opacity returns the alpha multiplier in [0, 1].
func (c *Card) Opacity() float64 { return c.opacity }

// Rotation returns the rotation around the card's center, in degrees.
func (c *Card) Rotation() float64 { return c.rotation }

// Visible reports whether the card is drawn.
func (c *Card) Visible() bool { return c.visible }

// Transform setters notify OnTransformChanged immediately, or once at the
// end of the enclosing batch.

// SetTranslationX sets the horizontal offset in pixels.
func (c *Card) SetTranslationX(x float64) {
	c.translationX = x
	c.changed()
}

// SetScale sets the uniform scale.
func (c *Card) SetScale(s float64) {
	c.scale = s
	c.changed()
}

// SetOpacity sets the alpha multiplier.
func (c *Card) SetOpacity(o float64) {
	c.opacity = o
	c.changed()
}

// SetRotation sets the rotation in degrees.
func (c *Card) SetRotation(deg float64) {
	c.rotation = deg
	c.changed()
}

// SetVisible shows or hides the card.
func (c *Card) SetVisible(v bool) {
	c.visible = v
	c.changed()
}

// BatchBegin opens an update batch. Batches nest.
func (c *Card) BatchBegin() {
	c.batchDepth++
}

// BatchCommit closes the innermost batch. Closing the outermost batch fires
// OnTransformChanged once if anything was written.
func (c *Card) BatchCommit() {
	if c.batchDepth == 0 {
		return
	}
	c.batchDepth--
	if c.batchDepth == 0 && c.batchDirty {
		c.batchDirty = false
		c.notify()
	}
}

// InBatch reports whether an update batch is open.
func (c *Card) InBatch() bool {
	return c.batchDepth > 0
}

func (c *Card) changed() {
	if c.batchDepth > 0 {
		c.batchDirty = true
		return
	}
	c.notify()
}

func (c *Card) notify() {
	if c.OnTransformChanged != nil {
		c.OnTransformChanged(c)
	}
}

// --- Disposal ---

// Dispose marks the card as recycled. Processor operations on a disposed
// card are no-ops and running animations on it stop on their next tick.
func (c *Card) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.ID = 0
	c.pendingWidth = nil
	c.Image = nil
	c.UserData = nil
	c.OnTransformChanged = nil
}

// IsDisposed returns true if this card has been disposed.
func (c *Card) IsDisposed() bool {
	return c.disposed
}

// Color represents an RGBA tint with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}
