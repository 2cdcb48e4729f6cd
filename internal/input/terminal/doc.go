// Package terminal translates tcell key events into kanaflow key
// events.
//
// The translation goes through the keysym service: named terminal keys
// resolve to their keysym and from there to the canonical event name
// and literal character, so a terminal Return and a parsed "Return"
// notation produce identical events.
package terminal
