package key

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/kanaflow/internal/input/keysym"
)

// Event represents a single key press event. Values are immutable
// after construction and safe to share between goroutines.
type Event struct {
	// Name is the canonical keysym name, or the synthetic token for
	// dual-role and timing events. Empty when the event carries only
	// a literal character.
	Name string

	// Rune is the literal character for the key, 0 when none.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewEvent creates an event directly from its fields, without
// validation. Callers that already hold canonical values use this;
// everyone else goes through Parse or FromKeysym.
func NewEvent(name string, r rune, mods Modifier) Event {
	return Event{
		Name:      name,
		Rune:      r,
		Modifiers: mods,
	}
}

// FromKeysym builds an event from a low-level keysym identifier,
// resolving its canonical name and literal character through the
// resolver. It fails with ErrUnknownKeysym when the resolver cannot
// name the identifier.
func FromKeysym(id keysym.ID, mods Modifier, syms keysym.Resolver) (Event, error) {
	if id == keysym.Void {
		return Event{}, fmt.Errorf("%w: void keysym", ErrUnknownKeysym)
	}
	name := syms.Name(id)
	if name == "" {
		if !id.IsUnicode() {
			return Event{}, fmt.Errorf("%w: keysym %#x", ErrUnknownKeysym, uint32(id))
		}
		name = string(syms.Char(id))
	}
	return Event{
		Name:      name,
		Rune:      syms.Char(id),
		Modifiers: mods,
	}, nil
}

// Clone returns an independent copy of the event.
func (e Event) Clone() Event {
	return Event{
		Name:      e.Name,
		Rune:      e.Rune,
		Modifiers: e.Modifiers,
	}
}

// Equals returns true if two events have identical name, rune, and
// modifiers.
func (e Event) Equals(other Event) bool {
	return e.Name == other.Name &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers
}

// BaseEquals returns true if two events represent the same key
// regardless of modifier state. Only Name and Rune are compared; this
// is what repeat detection for the dual-role shift keys uses.
func (e Event) BaseEquals(other Event) bool {
	return e.Name == other.Name && e.Rune == other.Rune
}

// IsDualRole reports whether the event is a synthetic dual-role shift
// key press.
func (e Event) IsDualRole() bool {
	return e.Rune == 0 && (e.Name == tokenLShift || e.Name == tokenRShift)
}

// IsTiming reports whether the event is a synthetic inter-key timing
// marker.
func (e Event) IsTiming() bool {
	return e.Rune == 0 && e.Modifiers.Has(ModUsleep)
}

// Duration returns the delay carried by a timing event. The name of a
// timing event holds microseconds. Returns false for non-timing events
// and for timing events whose duration token is not an integer.
func (e Event) Duration() (time.Duration, bool) {
	if !e.IsTiming() {
		return 0, false
	}
	us, err := strconv.Atoi(e.Name)
	if err != nil {
		return 0, false
	}
	return time.Duration(us) * time.Microsecond, true
}

// String returns the canonical notation for the event. The base token
// is the name when present, otherwise the literal character. Events
// without modifiers format as the bare base token; any set modifier
// bit parenthesizes the output, with modifier tokens emitted in the
// fixed order control, meta, hyper, super, alt, lshift, rshift,
// usleep, release. Bits without a notation token (Shift, Lock,
// Mod2-Mod5) are dropped.
func (e Event) String() string {
	base := e.Name
	if base == "" && e.Rune != 0 {
		base = string(e.Rune)
	}

	if e.Modifiers == ModNone {
		return base
	}

	parts := make([]string, 0, len(formatOrder)+1)
	for _, f := range formatOrder {
		if e.Modifiers.Has(f.mod) {
			parts = append(parts, f.token)
		}
	}
	parts = append(parts, base)
	return "(" + strings.Join(parts, " ") + ")"
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Name: %q, Rune: %q, Modifiers: %s}",
		e.Name, e.Rune, e.Modifiers.String())
}
