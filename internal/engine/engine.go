package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dshills/kanaflow/internal/input/key"
	"github.com/dshills/kanaflow/internal/input/keymap"
)

// ErrNoBinding is returned by Process when no binding matches the
// event in the current mode.
var ErrNoBinding = errors.New("no binding")

// Handler runs a bound action. The binding supplies the action's fixed
// arguments.
type Handler func(ev key.Event, b *keymap.Binding) error

// Engine dispatches key events through a keymap registry to action
// handlers.
type Engine struct {
	registry *keymap.Registry

	mu       sync.Mutex
	mode     Mode
	enabled  bool
	last     key.Event
	hasLast  bool
	handlers map[string]Handler
}

// New creates an engine over the given registry, starting in direct
// mode with kana input enabled. The mode.* and ime.* actions are
// pre-registered.
func New(registry *keymap.Registry) *Engine {
	e := &Engine{
		registry: registry,
		mode:     ModeDirect,
		enabled:  true,
		handlers: make(map[string]Handler),
	}

	e.Handle("mode.direct", func(key.Event, *keymap.Binding) error {
		e.SetMode(ModeDirect)
		return nil
	})
	e.Handle("mode.hiragana", func(key.Event, *keymap.Binding) error {
		e.SetMode(ModeHiragana)
		return nil
	})
	e.Handle("mode.katakana", func(key.Event, *keymap.Binding) error {
		e.SetMode(ModeKatakana)
		return nil
	})
	e.Handle("ime.toggle", func(key.Event, *keymap.Binding) error {
		e.mu.Lock()
		e.enabled = !e.enabled
		e.mu.Unlock()
		return nil
	})

	return e
}

// Handle registers the handler for an action name, replacing any
// previous handler.
func (e *Engine) Handle(action string, h Handler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers[action] = h
}

// Mode returns the current input mode.
func (e *Engine) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// SetMode switches the input mode.
func (e *Engine) SetMode(m Mode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mode = m
}

// Enabled reports whether kana input is active. When disabled, only
// global bindings still dispatch; everything else passes through.
func (e *Engine) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled
}

// LastEvent returns the previously processed event, when there is one.
func (e *Engine) LastEvent() (key.Event, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last, e.hasLast
}

// IsRepeat reports whether ev presses the same key as the previous
// event, ignoring modifier state. Dual-role shift handling uses this
// to recognize a held thumb key across accumulated modifier context.
func (e *Engine) IsRepeat(ev key.Event) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hasLast && e.last.BaseEquals(ev)
}

// Process dispatches one key event. The best binding for the current
// mode runs its action's handler; ErrNoBinding means the caller should
// pass the key through. Handler failures are wrapped with the action
// name. Timing events only update the last-event record.
func (e *Engine) Process(ev key.Event) error {
	if ev.IsTiming() {
		e.remember(ev)
		return nil
	}

	e.mu.Lock()
	mode := e.mode
	enabled := e.enabled
	e.mu.Unlock()

	lookupMode := mode.String()
	if !enabled {
		// Disabled: only global keymaps (mode "") remain in force,
		// so look up against a mode name nothing mode-specific
		// matches.
		lookupMode = "\x00disabled"
	}

	b := e.registry.Lookup(ev, lookupMode)
	if b == nil {
		e.remember(ev)
		return fmt.Errorf("%w for %s in %s mode", ErrNoBinding, ev, mode)
	}

	h, ok := e.handler(b.Action)
	if !ok {
		e.remember(ev)
		return fmt.Errorf("action %q: no handler registered", b.Action)
	}

	err := h(ev, b)
	e.remember(ev)
	if err != nil {
		return fmt.Errorf("action %q: %w", b.Action, err)
	}
	return nil
}

func (e *Engine) handler(action string) (Handler, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	h, ok := e.handlers[action]
	return h, ok
}

func (e *Engine) remember(ev key.Event) {
	e.mu.Lock()
	e.last = ev
	e.hasLast = true
	e.mu.Unlock()
}
