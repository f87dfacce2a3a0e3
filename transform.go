package carousel

import "math"

// CardTransform is the set of visual properties derived from a pan offset.
// Rotation is in degrees.
type CardTransform struct {
	Scale        float64
	Opacity      float64
	Rotation     float64
	TranslationX float64
}

// Calculator maps a pan offset to a CardTransform and back. Implement it to
// swap in a different curve; DefaultCalculator is the linear one.
type Calculator interface {
	// Transform computes the properties for offset. containerWidth drives the
	// factor interpolation; surfaceWidth drives the scale compensation.
	Transform(offset, containerWidth, surfaceWidth float64, cfg *Config) CardTransform
	// UnscaledOffset recovers the offset from an applied translation.
	UnscaledOffset(translationX, surfaceWidth, scale float64) float64
}

// DefaultCalculator interpolates every factor linearly from its rest value at
// offset 0 to the configured factor at |offset| == containerWidth.
type DefaultCalculator struct{}

// FactoredProperty interpolates linearly from defaultValue (offset 0) to
// factor (|offset| == width).
func FactoredProperty(offset, factor, width, defaultValue float64) float64 {
	return math.Abs(offset)*(factor-defaultValue)/width + defaultValue
}

// ScaledTranslation shifts offset toward the origin by half the width lost to
// scaling, so the card's outer edge stays anchored instead of its center.
func ScaledTranslation(offset, surfaceWidth, scale float64) float64 {
	return offset - sign(offset)*surfaceWidth*0.5*(1-scale)
}

// UnscaledOffset is the exact inverse of ScaledTranslation.
func UnscaledOffset(translationX, surfaceWidth, scale float64) float64 {
	return translationX + sign(translationX)*surfaceWidth*0.5*(1-scale)
}

// Transform implements Calculator.
func (DefaultCalculator) Transform(offset, containerWidth, surfaceWidth float64, cfg *Config) CardTransform {
	scale := FactoredProperty(offset, cfg.ScaleFactor, containerWidth, 1)
	return CardTransform{
		Scale:        scale,
		Opacity:      FactoredProperty(offset, cfg.OpacityFactor, containerWidth, 1),
		Rotation:     FactoredProperty(offset, cfg.RotationFactor, containerWidth, 0) * Angle360 * sign(-offset),
		TranslationX: ScaledTranslation(offset, surfaceWidth, scale),
	}
}

// UnscaledOffset implements Calculator.
func (DefaultCalculator) UnscaledOffset(translationX, surfaceWidth, scale float64) float64 {
	return UnscaledOffset(translationX, surfaceWidth, scale)
}
