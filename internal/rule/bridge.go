package rule

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/kanaflow/internal/input/key"
)

// eventToTable converts a key event into the Lua table shape exposed
// by kanaflow.parse: name and char strings plus a mods array of
// modifier names.
func eventToTable(L *lua.LState, ev key.Event) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("name", lua.LString(ev.Name))
	if ev.Rune != 0 {
		t.RawSetString("char", lua.LString(string(ev.Rune)))
	} else {
		t.RawSetString("char", lua.LString(""))
	}

	mods := L.NewTable()
	for _, name := range ev.Modifiers.Names() {
		mods.Append(lua.LString(name))
	}
	t.RawSetString("mods", mods)

	return t
}

// tableToEvent converts the table shape back into a key event. Unknown
// modifier names are an error rather than the notation parser's silent
// skip; a rule file naming a modifier wrong is a bug in the rule file.
func tableToEvent(t *lua.LTable) (key.Event, error) {
	name := ""
	if lv := t.RawGetString("name"); lv != lua.LNil {
		s, ok := lv.(lua.LString)
		if !ok {
			return key.Event{}, fmt.Errorf("name must be a string, got %s", lv.Type())
		}
		name = string(s)
	}

	var r rune
	if lv := t.RawGetString("char"); lv != lua.LNil {
		s, ok := lv.(lua.LString)
		if !ok {
			return key.Event{}, fmt.Errorf("char must be a string, got %s", lv.Type())
		}
		if runes := []rune(string(s)); len(runes) == 1 {
			r = runes[0]
		} else if len(runes) > 1 {
			return key.Event{}, fmt.Errorf("char must be a single character, got %q", string(s))
		}
	}

	var mods key.Modifier
	if lv := t.RawGetString("mods"); lv != lua.LNil {
		mt, ok := lv.(*lua.LTable)
		if !ok {
			return key.Event{}, fmt.Errorf("mods must be a table, got %s", lv.Type())
		}
		var convErr error
		mt.ForEach(func(_, v lua.LValue) {
			if convErr != nil {
				return
			}
			mod, ok := key.ModifierFromName(v.String())
			if !ok {
				convErr = fmt.Errorf("unknown modifier %q", v.String())
				return
			}
			mods = mods.With(mod)
		})
		if convErr != nil {
			return key.Event{}, convErr
		}
	}

	return key.NewEvent(name, r, mods), nil
}
