package keymap

// LoadDefaults loads all default keymaps into the registry.
func LoadDefaults(r *Registry) error {
	keymaps := []*Keymap{
		DefaultDirectKeymap(),
		DefaultHiraganaKeymap(),
		DefaultKatakanaKeymap(),
		DefaultGlobalKeymap(),
	}

	for _, km := range keymaps {
		if err := r.Register(km); err != nil {
			return err
		}
	}

	return nil
}

// DefaultDirectKeymap returns default direct (passthrough) mode
// bindings.
func DefaultDirectKeymap() *Keymap {
	return &Keymap{
		Name:   "default-direct",
		Mode:   "direct",
		Source: "default",
		Bindings: []Binding{
			{Key: "Henkan", Action: "mode.hiragana", Description: "Enter hiragana mode", Category: "Mode"},
			{Key: "Hiragana_Katakana", Action: "mode.hiragana", Description: "Enter hiragana mode", Category: "Mode"},
			{Key: "Kana_Lock", Action: "mode.katakana", Description: "Enter katakana mode", Category: "Mode"},
		},
	}
}

// DefaultHiraganaKeymap returns default hiragana mode bindings.
func DefaultHiraganaKeymap() *Keymap {
	return &Keymap{
		Name:   "default-hiragana",
		Mode:   "hiragana",
		Source: "default",
		Bindings: []Binding{
			// Mode switching
			{Key: "Muhenkan", Action: "mode.direct", Description: "Return to direct input", Category: "Mode"},
			{Key: "Escape", Action: "mode.direct", Description: "Return to direct input", Category: "Mode"},
			{Key: "Katakana", Action: "mode.katakana", Description: "Switch to katakana", Category: "Mode"},

			// Thumb shift
			{Key: "(lshift)", Action: "thumb.left", Description: "Left thumb shift", Category: "Thumb Shift"},
			{Key: "(rshift)", Action: "thumb.right", Description: "Right thumb shift", Category: "Thumb Shift"},

			// Composition
			{Key: "Return", Action: "engine.commit", Description: "Commit composition", Category: "Composition"},
			{Key: "C-j", Action: "engine.commit", Description: "Commit composition", Category: "Composition"},
			{Key: "BackSpace", Action: "engine.backspace", Description: "Delete last kana", Category: "Composition"},
			{Key: "C-g", Action: "engine.cancel", Description: "Cancel composition", Category: "Composition"},
		},
	}
}

// DefaultKatakanaKeymap returns default katakana mode bindings.
func DefaultKatakanaKeymap() *Keymap {
	return &Keymap{
		Name:   "default-katakana",
		Mode:   "katakana",
		Source: "default",
		Bindings: []Binding{
			// Mode switching
			{Key: "Muhenkan", Action: "mode.direct", Description: "Return to direct input", Category: "Mode"},
			{Key: "Escape", Action: "mode.direct", Description: "Return to direct input", Category: "Mode"},
			{Key: "Hiragana", Action: "mode.hiragana", Description: "Switch to hiragana", Category: "Mode"},

			// Thumb shift
			{Key: "(lshift)", Action: "thumb.left", Description: "Left thumb shift", Category: "Thumb Shift"},
			{Key: "(rshift)", Action: "thumb.right", Description: "Right thumb shift", Category: "Thumb Shift"},

			// Composition
			{Key: "Return", Action: "engine.commit", Description: "Commit composition", Category: "Composition"},
			{Key: "C-j", Action: "engine.commit", Description: "Commit composition", Category: "Composition"},
			{Key: "BackSpace", Action: "engine.backspace", Description: "Delete last kana", Category: "Composition"},
			{Key: "C-g", Action: "engine.cancel", Description: "Cancel composition", Category: "Composition"},
		},
	}
}

// DefaultGlobalKeymap returns global bindings (all modes).
func DefaultGlobalKeymap() *Keymap {
	return &Keymap{
		Name:   "default-global",
		Mode:   "", // All modes
		Source: "default",
		Bindings: []Binding{
			{Key: "Zenkaku_Hankaku", Action: "ime.toggle", Description: "Toggle kana input", Category: "Mode"},
			{Key: "(control space)", Action: "ime.toggle", Description: "Toggle kana input", Category: "Mode"},
			{Key: "Eisu_toggle", Action: "mode.direct", Description: "Force direct input", Category: "Mode"},
		},
	}
}
