package keymap

import (
	"fmt"

	"github.com/dshills/kanaflow/internal/input/key"
	"github.com/dshills/kanaflow/internal/input/keysym"
)

// Keymap holds key bindings for an input mode or context.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Mode is the input mode this keymap applies to.
	// Empty string means global (all modes).
	Mode string

	// Bindings are the key-to-action mappings.
	Bindings []Binding

	// Priority determines precedence when multiple keymaps match.
	// Higher priority wins. Default is 0.
	Priority int

	// Source indicates where this keymap was defined.
	// Examples: "default", "user", "rules:thumbshift.lua"
	Source string
}

// NewKeymap creates a new keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:     name,
		Bindings: make([]Binding, 0),
	}
}

// ForMode sets the mode for this keymap.
func (k *Keymap) ForMode(mode string) *Keymap {
	k.Mode = mode
	return k
}

// WithPriority sets the priority for this keymap.
func (k *Keymap) WithPriority(priority int) *Keymap {
	k.Priority = priority
	return k
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(keyNotation, action string) *Keymap {
	k.Bindings = append(k.Bindings, Binding{
		Key:    keyNotation,
		Action: action,
	})
	return k
}

// AddBinding adds a fully configured binding to this keymap.
func (k *Keymap) AddBinding(binding Binding) *Keymap {
	k.Bindings = append(k.Bindings, binding)
	return k
}

// Validate checks that all bindings in the keymap are valid, parsing
// each key notation through the given resolver.
func (k *Keymap) Validate(syms keysym.Resolver) error {
	for i, b := range k.Bindings {
		if b.Key == "" {
			return fmt.Errorf("binding %d: empty key", i)
		}
		if b.Action == "" {
			return fmt.Errorf("binding %d (%s): empty action", i, b.Key)
		}
		if _, err := key.Parse(b.Key, syms); err != nil {
			return fmt.Errorf("binding %d (%s): %w", i, b.Key, err)
		}
	}
	return nil
}

// ParsedKeymap is a keymap with pre-parsed key events.
type ParsedKeymap struct {
	*Keymap
	ParsedBindings []ParsedBinding
}

// Parse parses all bindings in the keymap through the given resolver.
func (k *Keymap) Parse(syms keysym.Resolver) (*ParsedKeymap, error) {
	parsed := &ParsedKeymap{
		Keymap:         k,
		ParsedBindings: make([]ParsedBinding, 0, len(k.Bindings)),
	}

	for _, b := range k.Bindings {
		ev, err := key.Parse(b.Key, syms)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", b.Key, err)
		}
		parsed.ParsedBindings = append(parsed.ParsedBindings, ParsedBinding{
			Binding: b,
			Event:   ev,
		})
	}

	return parsed, nil
}

// Clone creates a deep copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	clone := &Keymap{
		Name:     k.Name,
		Mode:     k.Mode,
		Priority: k.Priority,
		Source:   k.Source,
		Bindings: make([]Binding, len(k.Bindings)),
	}
	for i, b := range k.Bindings {
		clone.Bindings[i] = Binding{
			Key:         b.Key,
			Action:      b.Action,
			Description: b.Description,
			Priority:    b.Priority,
			Category:    b.Category,
		}
		if b.Args != nil {
			clone.Bindings[i].Args = make(map[string]any, len(b.Args))
			for name, v := range b.Args {
				clone.Bindings[i].Args[name] = v
			}
		}
	}
	return clone
}
