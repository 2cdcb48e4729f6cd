package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/kanaflow/internal/input/key"
	"github.com/dshills/kanaflow/internal/input/keymap"
	"github.com/dshills/kanaflow/internal/input/keysym"
)

func newTestEngine(t *testing.T) (*Engine, *keymap.Registry, keysym.Resolver) {
	t.Helper()
	syms := keysym.Default()
	registry := keymap.NewRegistry(syms)
	if err := keymap.LoadDefaults(registry); err != nil {
		t.Fatalf("LoadDefaults() error: %v", err)
	}
	return New(registry), registry, syms
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"direct", ModeDirect, false},
		{"", ModeDirect, false},
		{"hiragana", ModeHiragana, false},
		{"katakana", ModeKatakana, false},
		{"dvorak", ModeDirect, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestModeRoundTrip(t *testing.T) {
	for _, m := range []Mode{ModeDirect, ModeHiragana, ModeKatakana} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
}

func TestModeSwitching(t *testing.T) {
	e, _, syms := newTestEngine(t)

	if e.Mode() != ModeDirect {
		t.Fatalf("initial mode = %v, want direct", e.Mode())
	}

	// Henkan is bound to mode.hiragana in the default direct keymap.
	if err := e.Process(key.MustParse("Henkan", syms)); err != nil {
		t.Fatalf("Process(Henkan) error: %v", err)
	}
	if e.Mode() != ModeHiragana {
		t.Errorf("mode = %v, want hiragana", e.Mode())
	}

	// Escape leaves hiragana mode.
	if err := e.Process(key.MustParse("Escape", syms)); err != nil {
		t.Fatalf("Process(Escape) error: %v", err)
	}
	if e.Mode() != ModeDirect {
		t.Errorf("mode = %v, want direct", e.Mode())
	}
}

func TestProcessRunsHandler(t *testing.T) {
	e, _, syms := newTestEngine(t)
	e.SetMode(ModeHiragana)

	var got []string
	e.Handle("thumb.left", func(ev key.Event, b *keymap.Binding) error {
		got = append(got, ev.String())
		return nil
	})

	if err := e.Process(key.MustParse("(lshift)", syms)); err != nil {
		t.Fatalf("Process() error: %v", err)
	}
	if len(got) != 1 || got[0] != "lshift" {
		t.Errorf("handler calls = %v", got)
	}
}

func TestProcessNoBinding(t *testing.T) {
	e, _, syms := newTestEngine(t)

	err := e.Process(key.MustParse("q", syms))
	if !errors.Is(err, ErrNoBinding) {
		t.Errorf("Process(q) error = %v, want ErrNoBinding", err)
	}
}

func TestProcessMissingHandler(t *testing.T) {
	e, _, syms := newTestEngine(t)
	e.SetMode(ModeHiragana)

	// thumb.left is bound by the defaults but no handler was
	// registered for it.
	err := e.Process(key.MustParse("(lshift)", syms))
	if err == nil || !strings.Contains(err.Error(), "thumb.left") {
		t.Errorf("Process() error = %v, want missing-handler error naming the action", err)
	}
}

func TestProcessWrapsHandlerError(t *testing.T) {
	e, _, syms := newTestEngine(t)
	e.SetMode(ModeHiragana)

	boom := errors.New("boom")
	e.Handle("engine.commit", func(key.Event, *keymap.Binding) error {
		return boom
	})

	err := e.Process(key.MustParse("C-j", syms))
	if !errors.Is(err, boom) {
		t.Fatalf("Process() error = %v, want wrapped handler error", err)
	}
	if !strings.Contains(err.Error(), "engine.commit") {
		t.Errorf("error %v does not name the action", err)
	}
}

func TestIsRepeat(t *testing.T) {
	e, _, syms := newTestEngine(t)
	e.SetMode(ModeHiragana)
	e.Handle("thumb.left", func(key.Event, *keymap.Binding) error { return nil })

	plain := key.MustParse("(lshift)", syms)
	if e.IsRepeat(plain) {
		t.Error("IsRepeat() true before any event")
	}

	if err := e.Process(plain); err != nil {
		t.Fatalf("Process() error: %v", err)
	}

	// The same physical key with modifier context accumulated is
	// still a repeat.
	withMods := key.NewEvent("lshift", 0, key.ModControl)
	if !e.IsRepeat(withMods) {
		t.Error("IsRepeat() false for same key with extra modifiers")
	}
	if e.IsRepeat(key.MustParse("(rshift)", syms)) {
		t.Error("IsRepeat() true for a different key")
	}
}

func TestTimingEventOnlyRecorded(t *testing.T) {
	e, _, syms := newTestEngine(t)

	ev := key.MustParse("(usleep 150)", syms)
	if err := e.Process(ev); err != nil {
		t.Fatalf("Process(usleep) error: %v", err)
	}
	last, ok := e.LastEvent()
	if !ok || !last.Equals(ev) {
		t.Errorf("LastEvent() = %#v, %v", last, ok)
	}
}

func TestToggleDisablesModeKeymaps(t *testing.T) {
	e, _, syms := newTestEngine(t)
	e.SetMode(ModeHiragana)
	e.Handle("engine.commit", func(key.Event, *keymap.Binding) error { return nil })

	commit := key.MustParse("C-j", syms)
	if err := e.Process(commit); err != nil {
		t.Fatalf("Process(C-j) error: %v", err)
	}

	// Zenkaku_Hankaku toggles the IME off via the global keymap.
	toggle := key.MustParse("Zenkaku_Hankaku", syms)
	if err := e.Process(toggle); err != nil {
		t.Fatalf("Process(toggle) error: %v", err)
	}
	if e.Enabled() {
		t.Fatal("engine still enabled after toggle")
	}

	// Mode-specific bindings stop matching while disabled.
	if err := e.Process(commit); !errors.Is(err, ErrNoBinding) {
		t.Errorf("Process(C-j) while disabled = %v, want ErrNoBinding", err)
	}

	// The global toggle still works and re-enables.
	if err := e.Process(toggle); err != nil {
		t.Fatalf("Process(toggle) error: %v", err)
	}
	if !e.Enabled() {
		t.Error("engine not re-enabled")
	}
}
