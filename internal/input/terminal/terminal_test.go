package terminal

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/kanaflow/internal/input/key"
	"github.com/dshills/kanaflow/internal/input/keysym"
)

func TestTranslate(t *testing.T) {
	syms := keysym.Default()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want key.Event
	}{
		{
			name: "plain rune",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone),
			want: key.NewEvent("a", 'a', key.ModNone),
		},
		{
			name: "alt rune",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt),
			want: key.NewEvent("x", 'x', key.ModAlt),
		},
		{
			name: "kana rune",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'あ', tcell.ModNone),
			want: key.NewEvent("あ", 'あ', key.ModNone),
		},
		{
			name: "return",
			ev:   tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
			want: key.NewEvent("Return", '\r', key.ModNone),
		},
		{
			name: "escape",
			ev:   tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
			want: key.NewEvent("Escape", 0x1b, key.ModNone),
		},
		{
			name: "backspace",
			ev:   tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone),
			want: key.NewEvent("BackSpace", 0x08, key.ModNone),
		},
		{
			name: "shift tab",
			ev:   tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone),
			want: key.NewEvent("Tab", '\t', key.ModShift),
		},
		{
			name: "ctrl letter",
			ev:   tcell.NewEventKey(tcell.KeyCtrlJ, 0, tcell.ModCtrl),
			want: key.NewEvent("j", 'j', key.ModControl),
		},
		{
			name: "ctrl space",
			ev:   tcell.NewEventKey(tcell.KeyCtrlSpace, 0, tcell.ModCtrl),
			want: key.NewEvent("space", ' ', key.ModControl),
		},
		{
			name: "function key",
			ev:   tcell.NewEventKey(tcell.KeyF7, 0, tcell.ModNone),
			want: key.NewEvent("F7", 0, key.ModNone),
		},
		{
			name: "arrow",
			ev:   tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone),
			want: key.NewEvent("Left", 0, key.ModNone),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Translate(tt.ev, syms)
			if err != nil {
				t.Fatalf("Translate() error: %v", err)
			}
			if !got.Equals(tt.want) {
				t.Errorf("Translate() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestTranslateMatchesParsedNotation(t *testing.T) {
	syms := keysym.Default()

	// A terminal Ctrl-J must equal the parsed "C-j" binding; this is
	// what keymap lookup relies on.
	fromTerm, err := Translate(tcell.NewEventKey(tcell.KeyCtrlJ, 0, tcell.ModCtrl), syms)
	if err != nil {
		t.Fatalf("Translate() error: %v", err)
	}
	fromNotation := key.MustParse("C-j", syms)

	if !fromTerm.Equals(fromNotation) {
		t.Errorf("terminal event %#v != parsed event %#v", fromTerm, fromNotation)
	}
}

func TestTranslateUntranslatable(t *testing.T) {
	syms := keysym.Default()

	_, err := Translate(tcell.NewEventKey(tcell.KeyF63, 0, tcell.ModNone), syms)
	if !errors.Is(err, ErrUntranslatable) {
		t.Errorf("Translate(F63) error = %v, want ErrUntranslatable", err)
	}
}
