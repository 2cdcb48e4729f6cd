package key

import (
	"errors"
	"testing"
	"time"

	"github.com/dshills/kanaflow/internal/input/keysym"
)

func TestNewEvent(t *testing.T) {
	event := NewEvent("Return", '\r', ModControl)
	if event.Name != "Return" {
		t.Errorf("name = %q, want %q", event.Name, "Return")
	}
	if event.Rune != '\r' {
		t.Errorf("rune = %q, want %q", event.Rune, '\r')
	}
	if event.Modifiers != ModControl {
		t.Errorf("modifiers = %v, want control", event.Modifiers)
	}
}

func TestFromKeysym(t *testing.T) {
	tests := []struct {
		id       keysym.ID
		mods     Modifier
		wantName string
		wantRune rune
	}{
		{0x61, ModNone, "a", 'a'},
		{0xff0d, ModNone, "Return", '\r'},
		{0xff0d, ModControl, "Return", '\r'},
		{0xff23, ModNone, "Henkan", 0},
		{keysym.FromRune('あ'), ModNone, "あ", 'あ'},
	}

	syms := keysym.Default()
	for _, tt := range tests {
		event, err := FromKeysym(tt.id, tt.mods, syms)
		if err != nil {
			t.Errorf("FromKeysym(%#x) error = %v", tt.id, err)
			continue
		}
		if event.Name != tt.wantName {
			t.Errorf("FromKeysym(%#x) name = %q, want %q", tt.id, event.Name, tt.wantName)
		}
		if event.Rune != tt.wantRune {
			t.Errorf("FromKeysym(%#x) rune = %q, want %q", tt.id, event.Rune, tt.wantRune)
		}
		if event.Modifiers != tt.mods {
			t.Errorf("FromKeysym(%#x) modifiers = %v, want %v", tt.id, event.Modifiers, tt.mods)
		}
	}
}

func TestFromKeysymUnknown(t *testing.T) {
	syms := keysym.Default()
	for _, id := range []keysym.ID{keysym.Void, 0xff5f} {
		_, err := FromKeysym(id, ModNone, syms)
		if !errors.Is(err, ErrUnknownKeysym) {
			t.Errorf("FromKeysym(%#x) error = %v, want ErrUnknownKeysym", id, err)
		}
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{Event{}, ""},
		{Event{Name: "a", Rune: 'a'}, "a"},
		{Event{Rune: 'x'}, "x"},
		{Event{Name: "Return", Rune: '\r'}, "Return"},
		{Event{Name: "lshift"}, "lshift"},
		{Event{Name: "[xj]"}, "[xj]"},
		{Event{Name: "x", Rune: 'x', Modifiers: ModControl}, "(control x)"},
		{Event{Name: "x", Rune: 'x', Modifiers: ModControl | ModMeta}, "(control meta x)"},
		{Event{Name: "a", Rune: 'a', Modifiers: ModRelease}, "(release a)"},
		{Event{Name: "a", Rune: 'a', Modifiers: ModLShift}, "(lshift a)"},
		{Event{Name: "100", Modifiers: ModUsleep}, "(usleep 100)"},
		{Event{Name: "a", Rune: 'a', Modifiers: ModShift}, "(a)"},
		{Event{Name: "a", Rune: 'a', Modifiers: ModLock | ModMod3}, "(a)"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.event, got, tt.want)
		}
	}
}

// Modifier tokens always format in the order control, meta, hyper,
// super, alt, lshift, rshift, usleep, release, no matter the order the
// flags were set in.
func TestEventStringModifierOrder(t *testing.T) {
	mods := ModNone.
		With(ModRelease).
		With(ModAlt).
		With(ModSuper).
		With(ModControl).
		With(ModRShift).
		With(ModHyper).
		With(ModLShift).
		With(ModMeta)

	event := NewEvent("a", 'a', mods)
	want := "(control meta hyper super alt lshift rshift release a)"
	if got := event.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if again := event.String(); again != want {
		t.Errorf("second String() = %q, want %q", again, want)
	}
}

func TestEventEquals(t *testing.T) {
	a := NewEvent("x", 'x', ModControl)
	b := NewEvent("x", 'x', ModControl)
	c := NewEvent("x", 'x', ModNone)
	d := NewEvent("y", 'y', ModControl)

	if !a.Equals(b) {
		t.Error("identical events not equal")
	}
	if a.Equals(c) {
		t.Error("events with different modifiers equal")
	}
	if a.Equals(d) {
		t.Error("events with different keys equal")
	}
}

func TestBaseEquals(t *testing.T) {
	syms := keysym.Default()
	modified := MustParse("C-x", syms)
	plain := MustParse("x", syms)

	if !modified.BaseEquals(plain) {
		t.Error("C-x and x not base-equal")
	}
	if modified.Equals(plain) {
		t.Error("C-x and x fully equal")
	}

	other := MustParse("y", syms)
	if plain.BaseEquals(other) {
		t.Error("x and y base-equal")
	}
}

func TestEventClone(t *testing.T) {
	event := NewEvent("Return", '\r', ModMeta)
	clone := event.Clone()

	if !event.Equals(clone) {
		t.Error("clone not equal to original")
	}

	clone.Modifiers = ModNone
	if event.Modifiers != ModMeta {
		t.Error("mutating clone changed original")
	}
}

func TestIsDualRole(t *testing.T) {
	syms := keysym.Default()

	if !MustParse("(lshift)", syms).IsDualRole() {
		t.Error("(lshift) not dual-role")
	}
	if !MustParse("rshift", syms).IsDualRole() {
		t.Error("rshift not dual-role")
	}
	if MustParse("(lshift a)", syms).IsDualRole() {
		t.Error("(lshift a) reported dual-role")
	}
	if MustParse("a", syms).IsDualRole() {
		t.Error("a reported dual-role")
	}
}

func TestDuration(t *testing.T) {
	syms := keysym.Default()

	event := MustParse("(usleep 1500)", syms)
	if !event.IsTiming() {
		t.Fatal("(usleep 1500) not a timing event")
	}
	d, ok := event.Duration()
	if !ok {
		t.Fatal("Duration() not ok for timing event")
	}
	if d != 1500*time.Microsecond {
		t.Errorf("Duration() = %v, want 1.5ms", d)
	}

	if _, ok := MustParse("a", syms).Duration(); ok {
		t.Error("Duration() ok for non-timing event")
	}

	bad := NewEvent("soon", 0, ModUsleep)
	if _, ok := bad.Duration(); ok {
		t.Error("Duration() ok for non-numeric duration")
	}
}
