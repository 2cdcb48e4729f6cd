package config

import (
	"fmt"

	"github.com/dshills/kanaflow/internal/input/keymap"
	"github.com/dshills/kanaflow/internal/input/keysym"
)

// Config is the root of a kanaflow configuration file.
type Config struct {
	// InputMode selects the mode the engine starts in.
	// One of "direct", "hiragana", "katakana". Default "direct".
	InputMode string `toml:"input_mode" yaml:"input_mode"`

	// Keymaps declares the keymaps to register, in file order.
	Keymaps []KeymapConfig `toml:"keymap" yaml:"keymaps"`
}

// KeymapConfig mirrors keymap.Keymap in serialized form.
type KeymapConfig struct {
	Name     string          `toml:"name" yaml:"name"`
	Mode     string          `toml:"mode" yaml:"mode"`
	Priority int             `toml:"priority" yaml:"priority"`
	Bindings []BindingConfig `toml:"bind" yaml:"bindings"`
}

// BindingConfig mirrors keymap.Binding in serialized form.
type BindingConfig struct {
	Key         string         `toml:"key" yaml:"key"`
	Action      string         `toml:"action" yaml:"action"`
	Args        map[string]any `toml:"args" yaml:"args"`
	Description string         `toml:"description" yaml:"description"`
	Priority    int            `toml:"priority" yaml:"priority"`
	Category    string         `toml:"category" yaml:"category"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		InputMode: "direct",
	}
}

// Validate checks the configuration, parsing every binding's key
// notation through the given resolver. The first invalid entry is
// reported with its keymap name.
func (c *Config) Validate(syms keysym.Resolver) error {
	switch c.InputMode {
	case "", "direct", "hiragana", "katakana":
	default:
		return fmt.Errorf("unknown input_mode %q", c.InputMode)
	}

	for _, kc := range c.Keymaps {
		if kc.Name == "" {
			return fmt.Errorf("keymap without a name")
		}
		if err := kc.Keymap("").Validate(syms); err != nil {
			return fmt.Errorf("keymap %q: %w", kc.Name, err)
		}
	}
	return nil
}

// Keymap converts the serialized form into a keymap.Keymap tagged with
// the given source.
func (kc KeymapConfig) Keymap(source string) *keymap.Keymap {
	km := &keymap.Keymap{
		Name:     kc.Name,
		Mode:     kc.Mode,
		Priority: kc.Priority,
		Source:   source,
		Bindings: make([]keymap.Binding, 0, len(kc.Bindings)),
	}
	for _, bc := range kc.Bindings {
		km.Bindings = append(km.Bindings, keymap.Binding{
			Key:         bc.Key,
			Action:      bc.Action,
			Args:        bc.Args,
			Description: bc.Description,
			Priority:    bc.Priority,
			Category:    bc.Category,
		})
	}
	return km
}
