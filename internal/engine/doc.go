// Package engine dispatches key events to bound actions.
//
// The engine holds the current input mode and a keymap registry. Each
// incoming event is looked up in the registry for that mode and the
// bound action's handler runs. Events are handled one at a time; the
// engine never interprets sequences, only the single event in hand
// plus the remembered previous event for repeat detection.
package engine
