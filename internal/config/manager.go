package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/dshills/kanaflow/internal/input/keymap"
	"github.com/dshills/kanaflow/internal/input/keysym"
)

// Manager glues configuration loading to a keymap registry. Loading a
// file registers its keymaps; watching re-registers them whenever the
// file changes on disk.
type Manager struct {
	registry *keymap.Registry
	syms     keysym.Resolver

	mu         sync.Mutex
	config     *Config
	path       string
	loadOpts   []LoadOption
	registered []string
	watcher    *Watcher
	onReload   func(*Config, error)
}

// NewManager creates a manager that registers loaded keymaps into
// registry, validating key notation through syms.
func NewManager(registry *keymap.Registry, syms keysym.Resolver) *Manager {
	return &Manager{
		registry: registry,
		syms:     syms,
		config:   Default(),
	}
}

// Config returns the most recently loaded configuration.
func (m *Manager) Config() *Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.config
}

// Load reads a configuration file and registers its keymaps, replacing
// any keymaps registered by a previous Load. Load is atomic: a file
// that fails to parse or validate leaves the registry untouched.
func (m *Manager) Load(path string, opts ...LoadOption) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.path = path
	m.loadOpts = opts
	return m.loadLocked()
}

// Reload re-reads the last loaded path.
func (m *Manager) Reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.path == "" {
		return fmt.Errorf("no configuration loaded")
	}
	return m.loadLocked()
}

func (m *Manager) loadLocked() error {
	cfg, err := Load(m.path, m.loadOpts...)
	if err != nil {
		return err
	}
	if err := cfg.Validate(m.syms); err != nil {
		return fmt.Errorf("%s: %w", m.path, err)
	}

	source := "config:" + m.path

	for _, name := range m.registered {
		m.registry.Unregister(name)
	}
	m.registered = m.registered[:0]

	for _, kc := range cfg.Keymaps {
		if err := m.registry.Register(kc.Keymap(source)); err != nil {
			return fmt.Errorf("registering keymap %q: %w", kc.Name, err)
		}
		m.registered = append(m.registered, kc.Name)
	}

	m.config = cfg
	return nil
}

// Watch starts watching the loaded configuration file, reloading it on
// change. The callback, when non-nil, receives the new configuration
// or the reload error. Call Close to stop watching.
func (m *Manager) Watch(onReload func(*Config, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.path == "" {
		return fmt.Errorf("no configuration loaded")
	}
	if m.watcher != nil {
		return fmt.Errorf("already watching %s", m.path)
	}

	m.onReload = onReload

	watched := filepath.Base(m.path)
	w, err := NewWatcher(func(changed string) {
		// The watcher covers the whole directory; skip siblings.
		if filepath.Base(changed) != watched {
			return
		}
		err := m.Reload()
		m.mu.Lock()
		cb, cfg := m.onReload, m.config
		m.mu.Unlock()
		if cb != nil {
			cb(cfg, err)
		}
	})
	if err != nil {
		return err
	}
	if err := w.Watch(m.path); err != nil {
		_ = w.Close()
		return err
	}

	m.watcher = w
	return nil
}

// Close stops the watcher, if any.
func (m *Manager) Close() error {
	m.mu.Lock()
	w := m.watcher
	m.watcher = nil
	m.mu.Unlock()

	if w == nil {
		return nil
	}
	return w.Close()
}
