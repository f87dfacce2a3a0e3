package carousel

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// DrawOptions builds the Ebitengine draw options for the card's current
// transform. Composition order:
//
//	Translate(-w/2, -h/2) -> Scale -> Rotate -> Translate(X + w/2 + TranslationX, Y + h/2)
//
// The source image is stretched to the card's width and height first.
func (c *Card) DrawOptions() *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	w, h := c.width, c.Height
	if w < 0 {
		w = 0
	}
	if c.Image != nil {
		b := c.Image.Bounds()
		if b.Dx() > 0 && b.Dy() > 0 {
			op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
		}
	}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(c.scale, c.scale)
	op.GeoM.Rotate(c.rotation * math.Pi / 180)
	op.GeoM.Translate(c.X+w/2+c.translationX, c.Y+h/2)

	// Color is not premultiplied; ColorScale expects premultiplied values.
	a := c.Color.A
	op.ColorScale.Scale(float32(c.Color.R*a), float32(c.Color.G*a), float32(c.Color.B*a), float32(a))
	op.ColorScale.ScaleAlpha(float32(c.opacity))
	op.Filter = ebiten.FilterLinear
	return op
}

// Draw renders the card onto dst. Hidden, unmeasured, image-less and
// disposed cards draw nothing.
func (c *Card) Draw(dst *ebiten.Image) {
	if c.disposed || !c.visible || c.Image == nil || c.width < 0 {
		return
	}
	dst.DrawImage(c.Image, c.DrawOptions())
}
