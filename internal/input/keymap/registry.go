package keymap

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/kanaflow/internal/input/key"
	"github.com/dshills/kanaflow/internal/input/keysym"
)

// Registry manages all keymaps and provides binding lookup.
type Registry struct {
	mu sync.RWMutex

	// syms resolves key notation when keymaps are registered.
	syms keysym.Resolver

	// keymaps holds all registered keymaps by name.
	keymaps map[string]*ParsedKeymap

	// index buckets bindings by the canonical notation of their event,
	// modifiers included.
	index map[string][]indexEntry

	// baseIndex buckets bindings by the canonical notation of their
	// event with modifiers stripped, for modifier-insensitive lookup.
	baseIndex map[string][]indexEntry
}

type indexEntry struct {
	binding *ParsedBinding
	keymap  *Keymap
}

// NewRegistry creates a new keymap registry. Key notation in
// registered keymaps is resolved through syms.
func NewRegistry(syms keysym.Resolver) *Registry {
	return &Registry{
		syms:      syms,
		keymaps:   make(map[string]*ParsedKeymap),
		index:     make(map[string][]indexEntry),
		baseIndex: make(map[string][]indexEntry),
	}
}

// Register adds a keymap to the registry.
// If a keymap with the same name already exists, it is replaced.
func (r *Registry) Register(km *Keymap) error {
	if km == nil {
		return fmt.Errorf("cannot register nil keymap")
	}

	parsed, err := km.Parse(r.syms)
	if err != nil {
		return fmt.Errorf("parsing keymap %q: %w", km.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.unregisterLocked(km.Name)

	r.keymaps[km.Name] = parsed

	for i := range parsed.ParsedBindings {
		pb := &parsed.ParsedBindings[i]
		entry := indexEntry{binding: pb, keymap: km}
		r.index[pb.Event.String()] = append(r.index[pb.Event.String()], entry)
		base := baseKey(pb.Event)
		r.baseIndex[base] = append(r.baseIndex[base], entry)
	}

	return nil
}

// Unregister removes a keymap from the registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.unregisterLocked(name)
}

// unregisterLocked removes a keymap without acquiring the lock.
// Caller must hold the write lock.
func (r *Registry) unregisterLocked(name string) {
	km, ok := r.keymaps[name]
	if !ok {
		return
	}

	for i := range km.ParsedBindings {
		pb := &km.ParsedBindings[i]
		r.removeEntry(r.index, pb.Event.String(), km.Keymap)
		r.removeEntry(r.baseIndex, baseKey(pb.Event), km.Keymap)
	}

	delete(r.keymaps, name)
}

// removeEntry drops every entry owned by km from one index bucket.
func (r *Registry) removeEntry(index map[string][]indexEntry, bucket string, km *Keymap) {
	entries, ok := index[bucket]
	if !ok {
		return
	}
	filtered := entries[:0]
	for _, e := range entries {
		if e.keymap != km {
			filtered = append(filtered, e)
		}
	}
	if len(filtered) == 0 {
		delete(index, bucket)
		return
	}
	index[bucket] = filtered
}

// Get returns a keymap by name.
func (r *Registry) Get(name string) *ParsedKeymap {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.keymaps[name]
}

// Lookup finds the best matching binding for a key event in the given
// mode. Mode-specific bindings shadow global ones; among equals the
// higher priority wins. Returns nil when nothing matches.
func (r *Registry) Lookup(ev key.Event, mode string) *Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := r.collect(r.index[ev.String()], mode, func(pb *ParsedBinding) bool {
		return pb.Event.Equals(ev)
	})
	if len(matches) == 0 {
		return nil
	}
	return &matches[0].Binding
}

// LookupBase finds the best matching binding for a key event ignoring
// modifier state on both sides. This is the lookup used to recognize
// the same physical key across accumulated modifier context, e.g.
// repeated dual-role shift presses.
func (r *Registry) LookupBase(ev key.Event, mode string) *Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := r.collect(r.baseIndex[baseKey(ev)], mode, func(pb *ParsedBinding) bool {
		return pb.Event.BaseEquals(ev)
	})
	if len(matches) == 0 {
		return nil
	}
	return &matches[0].Binding
}

// LookupAll finds all matching bindings for a key event in the given
// mode, sorted best first.
func (r *Registry) LookupAll(ev key.Event, mode string) []BindingMatch {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(r.index[ev.String()], mode, func(pb *ParsedBinding) bool {
		return pb.Event.Equals(ev)
	})
}

// collect filters one index bucket by mode and an event predicate, and
// sorts the matches by score.
func (r *Registry) collect(entries []indexEntry, mode string, match func(*ParsedBinding) bool) []BindingMatch {
	matches := make([]BindingMatch, 0, len(entries))
	for _, entry := range entries {
		if entry.keymap.Mode != "" && entry.keymap.Mode != mode {
			continue
		}
		if !match(entry.binding) {
			continue
		}
		bm := BindingMatch{
			ParsedBinding: entry.binding,
			Keymap:        entry.keymap,
		}
		bm.CalculateScore()
		matches = append(matches, bm)
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Less(matches[j])
	})

	return matches
}

// Keymaps returns all registered keymaps.
func (r *Registry) Keymaps() []*ParsedKeymap {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*ParsedKeymap, 0, len(r.keymaps))
	for _, km := range r.keymaps {
		result = append(result, km)
	}
	return result
}

// AllBindings returns all bindings applicable in a mode, sorted by
// precedence.
func (r *Registry) AllBindings(mode string) []BindingMatch {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]BindingMatch, 0)
	for _, km := range r.keymaps {
		if km.Mode != "" && km.Mode != mode {
			continue
		}
		for i := range km.ParsedBindings {
			bm := BindingMatch{
				ParsedBinding: &km.ParsedBindings[i],
				Keymap:        km.Keymap,
			}
			bm.CalculateScore()
			matches = append(matches, bm)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Less(matches[j])
	})

	return matches
}

// baseKey returns the index bucket for an event with modifiers
// stripped. Bucketed entries are re-checked with BaseEquals, so a
// collision between a name-only and a rune-only event is harmless.
func baseKey(ev key.Event) string {
	return key.NewEvent(ev.Name, ev.Rune, key.ModNone).String()
}
