package carousel

// Surface is a single displayable card whose transform the Processor drives.
// The host owns the surface; the processor only mutates its transform
// attributes.
//
// Width reports the measured width, or a negative value until layout has
// completed. Rotation is in degrees. Implementations must be comparable
// (typically pointers): surfaces key the running-animation table.
type Surface interface {
	Width() float64

	TranslationX() float64
	Scale() float64
	Opacity() float64
	Rotation() float64
	Visible() bool

	SetTranslationX(x float64)
	SetScale(s float64)
	SetOpacity(o float64)
	SetRotation(deg float64)
	SetVisible(v bool)

	// BatchBegin and BatchCommit group attribute writes so observers see a
	// single update. Calls nest.
	BatchBegin()
	BatchCommit()

	// WhenMeasured registers fn to run once, the first time the surface
	// reports a width >= 0. The registration is dropped after it fires.
	WhenMeasured(fn func())
}

// Container is the host carousel holding the surfaces.
type Container interface {
	Width() float64
	// CurrentView returns the focused surface, or nil.
	CurrentView() Surface
}

// absent reports whether s should be treated as missing: nil, or a card that
// has been disposed (recycled) by the host.
func absent(s Surface) bool {
	if s == nil {
		return true
	}
	if d, ok := s.(interface{ IsDisposed() bool }); ok {
		return d.IsDisposed()
	}
	return false
}

// Viewport is a minimal Container: a width and a focused surface.
type Viewport struct {
	width   float64
	current Surface
}

// NewViewport creates a Viewport of the given width with no focused surface.
func NewViewport(width float64) *Viewport {
	return &Viewport{width: width}
}

// Width returns the viewport width.
func (v *Viewport) Width() float64 {
	return v.width
}

// SetWidth updates the viewport width.
func (v *Viewport) SetWidth(w float64) {
	v.width = w
}

// CurrentView returns the focused surface, or nil.
func (v *Viewport) CurrentView() Surface {
	return v.current
}

// SetCurrentView sets the focused surface. Pass nil to clear focus.
func (v *Viewport) SetCurrentView(s Surface) {
	v.current = s
}
