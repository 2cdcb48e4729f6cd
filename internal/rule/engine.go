package rule

import (
	"fmt"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/kanaflow/internal/input/key"
	"github.com/dshills/kanaflow/internal/input/keymap"
	"github.com/dshills/kanaflow/internal/input/keysym"
)

// Engine loads Lua rule files and turns their bind calls into keymaps.
type Engine struct {
	syms keysym.Resolver
}

// NewEngine creates a rule engine resolving key notation through syms.
func NewEngine(syms keysym.Resolver) *Engine {
	return &Engine{syms: syms}
}

// LoadFile executes a rule file and returns the keymap it declared.
// The keymap is named after the file and records it as the source.
func (e *Engine) LoadFile(path string) (*keymap.Keymap, error) {
	name := filepath.Base(path)
	km := keymap.NewKeymap("rules-" + name).WithSource("rules:" + path)

	if err := e.run(km, func(s *state) error { return s.doFile(path) }); err != nil {
		return nil, fmt.Errorf("rule file %s: %w", path, err)
	}
	return km, nil
}

// LoadString executes Lua source and returns the keymap it declared.
// name labels the source in errors and in the keymap.
func (e *Engine) LoadString(name, code string) (*keymap.Keymap, error) {
	km := keymap.NewKeymap("rules-" + name).WithSource("rules:" + name)

	if err := e.run(km, func(s *state) error { return s.doString(code) }); err != nil {
		return nil, fmt.Errorf("rules %s: %w", name, err)
	}
	return km, nil
}

// Register loads a rule file and registers its keymap into registry.
func (e *Engine) Register(registry *keymap.Registry, path string) (*keymap.Keymap, error) {
	km, err := e.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := registry.Register(km); err != nil {
		return nil, err
	}
	return km, nil
}

// run executes one rule script against a fresh sandboxed state with
// the kanaflow module bound to km.
func (e *Engine) run(km *keymap.Keymap, exec func(*state) error) error {
	s := newState()
	defer s.close()

	e.install(s.L, km)

	if err := exec(s); err != nil {
		return err
	}
	if err := km.Validate(e.syms); err != nil {
		return err
	}
	return nil
}

// install binds the kanaflow global table into L, with bind calls
// appending to km.
func (e *Engine) install(L *lua.LState, km *keymap.Keymap) {
	mod := L.NewTable()

	L.SetField(mod, "mode", L.NewFunction(func(L *lua.LState) int {
		km.Mode = L.CheckString(1)
		return 0
	}))

	L.SetField(mod, "bind", L.NewFunction(func(L *lua.LState) int {
		notation := L.CheckString(1)
		action := L.CheckString(2)
		desc := L.OptString(3, "")

		if _, err := key.Parse(notation, e.syms); err != nil {
			L.RaiseError("bind %s: %s", notation, err.Error())
			return 0
		}
		km.AddBinding(keymap.NewBinding(notation, action).WithDescription(desc))
		return 0
	}))

	L.SetField(mod, "parse", L.NewFunction(func(L *lua.LState) int {
		notation := L.CheckString(1)
		ev, err := key.Parse(notation, e.syms)
		if err != nil {
			L.RaiseError("parse %s: %s", notation, err.Error())
			return 0
		}
		L.Push(eventToTable(L, ev))
		return 1
	}))

	L.SetField(mod, "format", L.NewFunction(func(L *lua.LState) int {
		ev, err := tableToEvent(L.CheckTable(1))
		if err != nil {
			L.RaiseError("format: %s", err.Error())
			return 0
		}
		L.Push(lua.LString(ev.String()))
		return 1
	}))

	L.SetGlobal("kanaflow", mod)
}
