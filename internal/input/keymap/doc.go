// Package keymap provides key binding management for the input engine.
//
// The keymap system maps single key events to actions. It supports
// multiple input modes and layered precedence (user > mode > default).
//
// # Key Concepts
//
// Keymap: A named collection of bindings for an input mode or for all
// modes.
//
// Binding: Maps one key notation string to an action.
//
// Registry: Central registry that manages all keymaps and resolves an
// incoming key event to the best matching binding.
//
// # Binding Precedence
//
// When multiple bindings match an event, precedence is determined by:
//  1. Priority (keymap priority, then binding priority; higher wins)
//  2. Specificity (mode-specific > global)
//
// # Key Notation
//
// Binding keys use the notation of the key package:
//
//	"a"              - bare keysym
//	"C-j"            - Emacs-style modifiers
//	"(control j)"    - long modifier form
//	"(lshift)"       - dual-role shift key
//	"[xj]"           - double key press
//
// # Usage
//
//	registry := keymap.NewRegistry(keysym.Default())
//	if err := keymap.LoadDefaults(registry); err != nil { ... }
//
//	if b := registry.Lookup(event, "hiragana"); b != nil {
//	    // Execute b.Action
//	}
//
//	// Ignore modifier state, e.g. for dual-role repeat handling
//	if b := registry.LookupBase(event, "hiragana"); b != nil { ... }
package keymap
