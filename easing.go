package carousel

import (
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Easing names an easing curve from the gween ease package. The zero value
// selects EasingInOutSine.
type Easing string

const (
	EasingLinear     Easing = "linear"
	EasingInQuad     Easing = "in-quad"
	EasingOutQuad    Easing = "out-quad"
	EasingInOutQuad  Easing = "in-out-quad"
	EasingInCubic    Easing = "in-cubic"
	EasingOutCubic   Easing = "out-cubic"
	EasingInOutCubic Easing = "in-out-cubic"
	EasingInSine     Easing = "in-sine"
	EasingOutSine    Easing = "out-sine"
	EasingInOutSine  Easing = "in-out-sine"
	EasingInBack     Easing = "in-back"
	EasingOutBack    Easing = "out-back"
	EasingInOutBack  Easing = "in-out-back"
	EasingOutBounce  Easing = "out-bounce"
	EasingOutElastic Easing = "out-elastic"
)

// DefaultEasing is the symmetric ease-in-out curve used when none is set.
const DefaultEasing = EasingInOutSine

var easings = map[Easing]ease.TweenFunc{
	EasingLinear:     ease.Linear,
	EasingInQuad:     ease.InQuad,
	EasingOutQuad:    ease.OutQuad,
	EasingInOutQuad:  ease.InOutQuad,
	EasingInCubic:    ease.InCubic,
	EasingOutCubic:   ease.OutCubic,
	EasingInOutCubic: ease.InOutCubic,
	EasingInSine:     ease.InSine,
	EasingOutSine:    ease.OutSine,
	EasingInOutSine:  ease.InOutSine,
	EasingInBack:     ease.InBack,
	EasingOutBack:    ease.OutBack,
	EasingInOutBack:  ease.InOutBack,
	EasingOutBounce:  ease.OutBounce,
	EasingOutElastic: ease.OutElastic,
}

// Func returns the tween function for e. Unknown names fall back to the
// default curve; use Valid to reject them up front.
func (e Easing) Func() ease.TweenFunc {
	if e == "" {
		e = DefaultEasing
	}
	if fn, ok := easings[e]; ok {
		return fn
	}
	return easings[DefaultEasing]
}

// Valid reports whether e is empty or a known curve name.
func (e Easing) Valid() bool {
	if e == "" {
		return true
	}
	_, ok := easings[e]
	return ok
}

// UnmarshalYAML rejects unknown curve names.
func (e *Easing) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return fmt.Errorf("easing: %w", err)
	}
	candidate := Easing(name)
	if !candidate.Valid() {
		return fmt.Errorf("easing: unknown curve %q (line %d)", name, node.Line)
	}
	*e = candidate
	return nil
}

// EasingNames returns every known curve name, sorted.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}
