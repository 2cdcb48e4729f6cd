package rule

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// ErrStateClosed is returned when executing on a closed state.
var ErrStateClosed = errors.New("lua state closed")

// state wraps a sandboxed gopher-lua interpreter. LState is not
// goroutine-safe; a state belongs to the goroutine that created it.
type state struct {
	L      *lua.LState
	closed bool
}

// newState creates a Lua state with only the safe standard libraries
// opened. io, os, debug, and package stay closed so rule files cannot
// reach outside the interpreter.
func newState() *state {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	return &state{L: L}
}

// doFile executes a Lua file, recovering interpreter panics into
// errors.
func (s *state) doFile(path string) error {
	if s.closed {
		return ErrStateClosed
	}
	return s.withRecovery(func() error {
		return s.L.DoFile(path)
	})
}

// doString executes Lua source, recovering interpreter panics into
// errors.
func (s *state) doString(code string) error {
	if s.closed {
		return ErrStateClosed
	}
	return s.withRecovery(func() error {
		return s.L.DoString(code)
	})
}

func (s *state) withRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

func (s *state) close() {
	if s.closed {
		return
	}
	s.closed = true
	s.L.Close()
}
