package engine

import "fmt"

// Mode is an input mode.
type Mode int

const (
	// ModeDirect passes keys through without kana interpretation.
	ModeDirect Mode = iota

	// ModeHiragana composes hiragana.
	ModeHiragana

	// ModeKatakana composes katakana.
	ModeKatakana
)

// String returns the mode name used in keymaps and configuration.
func (m Mode) String() string {
	switch m {
	case ModeDirect:
		return "direct"
	case ModeHiragana:
		return "hiragana"
	case ModeKatakana:
		return "katakana"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a mode name. The empty string is ModeDirect.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "", "direct":
		return ModeDirect, nil
	case "hiragana":
		return ModeHiragana, nil
	case "katakana":
		return ModeKatakana, nil
	default:
		return ModeDirect, fmt.Errorf("unknown input mode %q", name)
	}
}
