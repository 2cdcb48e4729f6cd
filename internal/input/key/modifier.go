package key

import "strings"

// Modifier represents keyboard modifier keys as a bitmask. Bits 0-7
// coincide with the X11 modifier masks (Shift, Lock, Control,
// Mod1..Mod5); the higher bits extend them with the dual-role shift
// keys, the inter-key timing marker, and key release.
type Modifier uint16

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << 0

	// ModLock indicates Caps Lock.
	ModLock Modifier = 1 << 1

	// ModControl indicates the Control key.
	ModControl Modifier = 1 << 2

	// ModAlt indicates the Alt key (X11 Mod1).
	ModAlt Modifier = 1 << 3

	// ModMod2 through ModMod5 are the remaining X11 modifier masks.
	ModMod2 Modifier = 1 << 4
	ModMod3 Modifier = 1 << 5
	ModMod4 Modifier = 1 << 6
	ModMod5 Modifier = 1 << 7

	// ModLShift indicates the left dual-role shift key.
	ModLShift Modifier = 1 << 8

	// ModRShift indicates the right dual-role shift key.
	ModRShift Modifier = 1 << 9

	// ModUsleep marks an inter-key timing event.
	ModUsleep Modifier = 1 << 10

	// ModSuper indicates the Super key.
	ModSuper Modifier = 1 << 11

	// ModHyper indicates the Hyper key.
	ModHyper Modifier = 1 << 12

	// ModMeta indicates the Meta key.
	ModMeta Modifier = 1 << 13

	// ModRelease marks a key release rather than a press.
	ModRelease Modifier = 1 << 14
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a debug representation like "control+meta" listing
// every set bit in bit order, including bits that have no notation
// token.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	for _, b := range modifierBits {
		if m.Has(b.mod) {
			parts = append(parts, b.name)
		}
	}
	return strings.Join(parts, "+")
}

// Names returns the name of every set bit in bit order, using the
// same names as the debug String.
func (m Modifier) Names() []string {
	if m == ModNone {
		return nil
	}
	var names []string
	for _, b := range modifierBits {
		if m.Has(b.mod) {
			names = append(names, b.name)
		}
	}
	return names
}

// ModifierFromName returns the flag for a modifier name as produced by
// Names, or false for an unknown name.
func ModifierFromName(name string) (Modifier, bool) {
	for _, b := range modifierBits {
		if b.name == name {
			return b.mod, true
		}
	}
	return ModNone, false
}

// modifierBits lists every flag in bit order for the debug String.
var modifierBits = []struct {
	mod  Modifier
	name string
}{
	{ModShift, "shift"},
	{ModLock, "lock"},
	{ModControl, "control"},
	{ModAlt, "alt"},
	{ModMod2, "mod2"},
	{ModMod3, "mod3"},
	{ModMod4, "mod4"},
	{ModMod5, "mod5"},
	{ModLShift, "lshift"},
	{ModRShift, "rshift"},
	{ModUsleep, "usleep"},
	{ModSuper, "super"},
	{ModHyper, "hyper"},
	{ModMeta, "meta"},
	{ModRelease, "release"},
}

// longModTokens maps long-form modifier tokens, as they appear inside
// a parenthesized notation, to their flags.
var longModTokens = map[string]Modifier{
	"shift":   ModShift,
	"control": ModControl,
	"meta":    ModMeta,
	"hyper":   ModHyper,
	"super":   ModSuper,
	"alt":     ModAlt,
	"lshift":  ModLShift,
	"rshift":  ModRShift,
	"release": ModRelease,
}

// shortModTokens maps Emacs-style modifier tokens to their flags.
var shortModTokens = map[string]Modifier{
	"S": ModShift,
	"C": ModControl,
	"A": ModAlt,
	"M": ModMeta,
	"G": ModMod5,
}

// formatOrder fixes the token sequence used when formatting an event
// that carries modifiers: control, meta, hyper, super, alt, lshift,
// rshift, usleep, release. Shift, Lock, and Mod2-Mod5 have no output
// token and never format.
var formatOrder = []struct {
	mod   Modifier
	token string
}{
	{ModControl, "control"},
	{ModMeta, "meta"},
	{ModHyper, "hyper"},
	{ModSuper, "super"},
	{ModAlt, "alt"},
	{ModLShift, "lshift"},
	{ModRShift, "rshift"},
	{ModUsleep, "usleep"},
	{ModRelease, "release"},
}
