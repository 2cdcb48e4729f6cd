package terminal

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/kanaflow/internal/input/key"
	"github.com/dshills/kanaflow/internal/input/keysym"
)

// ErrUntranslatable is returned for terminal keys with no keysym
// equivalent.
var ErrUntranslatable = errors.New("untranslatable terminal key")

// keyNames maps tcell's named keys to keysym names. Function keys are
// handled by range below.
var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "Return",
	tcell.KeyTab:        "Tab",
	tcell.KeyBacktab:    "Tab",
	tcell.KeyEscape:     "Escape",
	tcell.KeyBackspace:  "BackSpace",
	tcell.KeyBackspace2: "BackSpace",
	tcell.KeyDelete:     "Delete",
	tcell.KeyInsert:     "Insert",
	tcell.KeyHome:       "Home",
	tcell.KeyEnd:        "End",
	tcell.KeyPgUp:       "Page_Up",
	tcell.KeyPgDn:       "Page_Down",
	tcell.KeyUp:         "Up",
	tcell.KeyDown:       "Down",
	tcell.KeyLeft:       "Left",
	tcell.KeyRight:      "Right",
	tcell.KeyPrint:      "Print",
	tcell.KeyPause:      "Pause",
	tcell.KeyHelp:       "Help",
}

// Translate converts a tcell key event into a key event, resolving
// named keys through syms. Keys tcell reports that have no keysym
// equivalent fail with ErrUntranslatable.
func Translate(ev *tcell.EventKey, syms keysym.Resolver) (key.Event, error) {
	mods := translateMods(ev.Modifiers())

	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		return key.FromKeysym(keysym.FromRune(ev.Rune()), mods, syms)

	case k == tcell.KeyBacktab:
		mods = mods.With(key.ModShift)
	}

	if name, ok := keyNames[k]; ok {
		return fromName(name, mods, syms)
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return fromName(fmt.Sprintf("F%d", k-tcell.KeyF1+1), mods, syms)
	}

	// Control characters arrive as their own key codes. Ctrl-I,
	// Ctrl-M, and Ctrl-[ were already claimed above as Tab, Return,
	// and Escape.
	if k == tcell.KeyCtrlSpace {
		return fromName("space", mods.With(key.ModControl), syms)
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		letter := rune('a' + k - tcell.KeyCtrlA)
		return key.FromKeysym(keysym.FromRune(letter), mods.With(key.ModControl), syms)
	}

	return key.Event{}, fmt.Errorf("%w: %s", ErrUntranslatable, tcell.KeyNames[k])
}

// fromName builds an event for a named key.
func fromName(name string, mods key.Modifier, syms keysym.Resolver) (key.Event, error) {
	id := syms.Resolve(name)
	if id == keysym.Void {
		return key.Event{}, fmt.Errorf("%w: %s", ErrUntranslatable, name)
	}
	return key.FromKeysym(id, mods, syms)
}

// translateMods converts tcell's modifier mask.
func translateMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModControl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}
