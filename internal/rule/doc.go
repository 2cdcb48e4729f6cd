// Package rule loads keybinding rule files written in Lua.
//
// A rule file runs in a sandboxed interpreter with a global kanaflow
// table:
//
//	kanaflow.mode("hiragana")            -- mode for following binds
//	kanaflow.bind("C-j", "engine.commit", "Commit composition")
//	kanaflow.parse("(control x)")        -- notation -> event table
//	kanaflow.format{name = "x", mods = {"control"}}  -- and back
//
// The sandbox opens only the base, table, string, and math libraries;
// rule files cannot touch the file system or spawn processes. Each
// loaded file produces one keymap whose bindings were declared by its
// bind calls.
package rule
