package carousel

import (
	"fmt"
	"os"
)

// debugf prints a lifecycle trace line to stderr. Only called when the
// processor is in debug mode; callers check p.debug first so release builds
// skip the formatting entirely.
func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[carousel] "+format+"\n", args...)
}

// surfaceName returns a printable label for s.
func surfaceName(s Surface) string {
	if c, ok := s.(*Card); ok {
		return fmt.Sprintf("%q#%d", c.Name, c.ID)
	}
	return fmt.Sprintf("%T", s)
}

// debugSink wraps another sink and traces every event it forwards.
type debugSink struct {
	next EventSink
}

func (d debugSink) EmitEvent(e AnimationEvent) {
	debugf("anim %s %s on %s: %.1f -> %.1f over %dms",
		e.Name, e.Type, surfaceName(e.Surface), e.From, e.To, e.DurationMs)
	if d.next != nil {
		d.next.EmitEvent(e)
	}
}
