// Package key implements the notation codec for keyboard input events.
//
// This package defines the fundamental types for representing keyboard
// input:
//
//   - Event: a single key press carrying a symbolic name, a literal
//     character, and modifiers
//   - Modifier: a bitmask of modifier keys (Shift, Control, Alt, Meta,
//     Super, Hyper, and the dual-role extensions)
//
// # Key Notation
//
// Key notation can be written in several forms:
//
//   - Bare keysym names: "a", "Return", "Henkan", "semicolon"
//   - Emacs-style: "C-x", "C-M-a", "S-Tab"
//   - Long modifier form: "(control x)", "(meta super Return)"
//   - Timing: "(usleep 100)"
//   - Double key press: "[xj]"
//
// Parsing resolves key tokens through a keysym.Resolver and fails with
// ErrMalformedNotation or ErrUnknownKeysym. Formatting with
// Event.String is the inverse: it emits modifier tokens in a fixed
// order and parenthesizes whenever any modifier bit is set, so a
// formatted event re-parses to an equal one for every form that can
// express it.
package key
