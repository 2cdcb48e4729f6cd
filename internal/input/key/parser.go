package key

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/kanaflow/internal/input/keysym"
)

// Parse errors
var (
	ErrMalformedNotation = errors.New("malformed key notation")
	ErrUnknownKeysym     = errors.New("unknown keysym")
)

// Synthetic tokens recognized as terminal key tokens.
const (
	tokenLShift = "lshift"
	tokenRShift = "rshift"
	tokenUsleep = "usleep"
)

// matcher tries to recognize one notation form. It returns the parsed
// event and true on a match, false when the form does not apply, and
// an error when the form applies but the notation is invalid.
type matcher func(spec string, syms keysym.Resolver) (Event, bool, error)

// matchers lists the notation forms in priority order. The fallback
// Emacs-style form is not listed; it handles whatever the others
// decline.
var matchers = []matcher{
	matchUsleep,
	matchLongForm,
	matchBracket,
}

// Parse parses a key notation string into an Event, resolving key
// tokens through syms.
//
// Supported forms, tried in order:
//
//   - Timing: "(usleep 100)"
//   - Long modifier form: "(control x)", "(meta super Return)",
//     "(control lshift)"
//   - Double key press: "[xj]" (exactly two characters in brackets)
//   - Emacs-style fallback: "C-x", "C-M-a", "Return", "a"
//
// Malformed notation fails with ErrMalformedNotation; a key token the
// resolver does not know fails with ErrUnknownKeysym. Both carry the
// offending token.
func Parse(spec string, syms keysym.Resolver) (Event, error) {
	spec = strings.TrimSpace(spec)

	for _, m := range matchers {
		ev, ok, err := m(spec, syms)
		if err != nil {
			return Event{}, err
		}
		if ok {
			return ev, nil
		}
	}

	return parseFallback(spec, syms)
}

// MustParse parses a key notation string and panics on error. Use only
// for known-valid notation in initialization code.
func MustParse(spec string, syms keysym.Resolver) Event {
	event, err := Parse(spec, syms)
	if err != nil {
		panic("invalid key notation " + spec + ": " + err.Error())
	}
	return event
}

// matchUsleep recognizes the timing form "(usleep <duration>)". The
// parenthesized body must hold exactly the usleep token and one
// duration token, which becomes the event name.
func matchUsleep(spec string, _ keysym.Resolver) (Event, bool, error) {
	body, ok := parenBody(spec)
	if !ok {
		return Event{}, false, nil
	}
	fields := strings.Fields(body)
	if len(fields) == 0 || fields[0] != tokenUsleep {
		return Event{}, false, nil
	}
	if len(fields) != 2 {
		return Event{}, false, fmt.Errorf("%w: usleep requires duration in %q", ErrMalformedNotation, spec)
	}
	return Event{Name: fields[1], Modifiers: ModUsleep}, true, nil
}

// matchLongForm recognizes "(<mod>... <key>)". Every field but the
// last must be a long-form modifier token. A terminal lshift/rshift is
// the synthetic dual-role key: its event carries the token as name and
// discards the modifiers collected before it.
func matchLongForm(spec string, syms keysym.Resolver) (Event, bool, error) {
	body, ok := parenBody(spec)
	if !ok {
		return Event{}, false, nil
	}
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return Event{}, false, fmt.Errorf("%w: empty parentheses in %q", ErrMalformedNotation, spec)
	}

	var mods Modifier
	for _, tok := range fields[:len(fields)-1] {
		mod, known := longModTokens[tok]
		if !known {
			return Event{}, false, fmt.Errorf("%w: unknown modifier %q", ErrMalformedNotation, tok)
		}
		mods = mods.With(mod)
	}

	last := fields[len(fields)-1]
	if last == tokenLShift || last == tokenRShift {
		return Event{Name: last}, true, nil
	}

	ev, err := resolveKey(last, mods, syms)
	if err != nil {
		return Event{}, false, err
	}
	return ev, true, nil
}

// matchBracket recognizes the double-key-press form: a bracketed token
// whose total length, brackets included, is exactly 4. The whole
// string becomes the event name verbatim. Other bracketed lengths fall
// through to the fallback form.
func matchBracket(spec string, _ keysym.Resolver) (Event, bool, error) {
	if len(spec) != 4 || spec[0] != '[' || spec[3] != ']' {
		return Event{}, false, nil
	}
	return Event{Name: spec}, true, nil
}

// parseFallback handles the Emacs-style form. A '-' past the first
// character splits the string at its last occurrence: prefix tokens
// are matched against the short modifier table, with unrecognized
// tokens silently skipped, and the suffix is the key token. Without an
// eligible '-' the whole string is a bare key token.
func parseFallback(spec string, syms keysym.Resolver) (Event, error) {
	keyTok := spec
	var mods Modifier

	if i := strings.LastIndex(spec, "-"); i > 0 {
		keyTok = spec[i+1:]
		for _, tok := range strings.Split(spec[:i], "-") {
			if mod, ok := shortModTokens[tok]; ok {
				mods = mods.With(mod)
			}
		}
	}

	if keyTok == tokenLShift || keyTok == tokenRShift {
		return Event{Name: keyTok}, nil
	}

	return resolveKey(keyTok, mods, syms)
}

// resolveKey resolves a key token through the keysym service and
// builds the event from its canonical name and literal character.
func resolveKey(tok string, mods Modifier, syms keysym.Resolver) (Event, error) {
	id := syms.Resolve(tok)
	if id == keysym.Void {
		return Event{}, fmt.Errorf("%w: %q", ErrUnknownKeysym, tok)
	}
	name := syms.Name(id)
	if name == "" {
		name = tok
	}
	return Event{
		Name:      name,
		Rune:      syms.Char(id),
		Modifiers: mods,
	}, nil
}

// parenBody returns the contents of a fully parenthesized string.
func parenBody(spec string) (string, bool) {
	if len(spec) < 2 || spec[0] != '(' || spec[len(spec)-1] != ')' {
		return "", false
	}
	return spec[1 : len(spec)-1], true
}
