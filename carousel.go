package carousel

// Angle360 is a full turn in degrees. Card rotation is stored in degrees.
const Angle360 = 360.0

// Direction selects which side of the container a card travels to or from.
type Direction int8

const (
	DirectionNone Direction = 0  // no pan in progress
	DirectionPrev Direction = 1  // card enters from (or leaves to) the positive side
	DirectionNext Direction = -1 // card enters from (or leaves to) the negative side
)

// Sign returns the integer sign convention for the direction: +1 for Prev,
// -1 for Next and 0 for None.
func (d Direction) Sign() float64 {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}

// Opposite returns the reverse direction. DirectionNone stays DirectionNone.
func (d Direction) Opposite() Direction {
	return -d
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch {
	case d > 0:
		return "prev"
	case d < 0:
		return "next"
	default:
		return "none"
	}
}

// sign returns -1, 0 or +1 matching the sign of v.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
