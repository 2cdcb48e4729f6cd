package keymap

import (
	"github.com/dshills/kanaflow/internal/input/key"
)

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Key is the notation string that triggers this binding.
	// Formats: "a", "C-j", "(control j)", "(lshift)", "[xj]"
	Key string

	// Action is the command to execute.
	// Examples: "mode.hiragana", "engine.commit", "engine.passthrough"
	Action string

	// Args are fixed arguments for the action.
	Args map[string]any

	// Description provides documentation for the binding.
	Description string

	// Priority determines precedence when multiple bindings match.
	// Higher priority wins. Default is 0.
	Priority int

	// Category groups bindings for display purposes.
	Category string
}

// NewBinding creates a new binding with the given key and action.
func NewBinding(keyNotation, action string) Binding {
	return Binding{
		Key:    keyNotation,
		Action: action,
	}
}

// WithArgs sets arguments for this binding.
func (b Binding) WithArgs(args map[string]any) Binding {
	b.Args = args
	return b
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithPriority sets the priority for this binding.
func (b Binding) WithPriority(priority int) Binding {
	b.Priority = priority
	return b
}

// WithCategory sets the category for this binding.
func (b Binding) WithCategory(category string) Binding {
	b.Category = category
	return b
}

// ParsedBinding is a binding with its pre-parsed key event.
type ParsedBinding struct {
	Binding
	Event key.Event
}

// Match checks if this binding's key matches the given event exactly.
func (pb *ParsedBinding) Match(ev key.Event) bool {
	if pb == nil {
		return false
	}
	return pb.Event.Equals(ev)
}

// MatchBase checks if this binding's key matches the given event
// ignoring modifier state.
func (pb *ParsedBinding) MatchBase(ev key.Event) bool {
	if pb == nil {
		return false
	}
	return pb.Event.BaseEquals(ev)
}

// BindingMatch represents a matched binding with its context.
type BindingMatch struct {
	// Binding is the matched binding.
	*ParsedBinding

	// Keymap is the keymap containing the binding.
	Keymap *Keymap

	// Score is used for sorting matches by priority.
	Score int
}

// Less returns true if this match should come before another.
// Higher scores come first.
func (bm BindingMatch) Less(other BindingMatch) bool {
	if bm.Keymap == nil && other.Keymap == nil {
		return false
	}
	if bm.Keymap == nil {
		return false
	}
	if other.Keymap == nil {
		return true
	}

	if bm.Score != other.Score {
		return bm.Score > other.Score
	}

	// Prefer mode-specific keymaps over global ones.
	thisModeSpecific := bm.Keymap.Mode != ""
	otherModeSpecific := other.Keymap.Mode != ""
	if thisModeSpecific != otherModeSpecific {
		return thisModeSpecific
	}

	return false
}

// CalculateScore calculates the priority score for this match.
func (bm *BindingMatch) CalculateScore() {
	if bm.Keymap == nil || bm.ParsedBinding == nil {
		bm.Score = 0
		return
	}

	bm.Score = bm.Keymap.Priority * 100
	bm.Score += bm.ParsedBinding.Priority

	if bm.Keymap.Mode != "" {
		bm.Score += 50
	}
}

// BindingCategory represents a category of bindings for display.
type BindingCategory struct {
	Name     string
	Bindings []Binding
}

// GroupByCategory groups bindings by their category.
func GroupByCategory(bindings []Binding) []BindingCategory {
	categoryMap := make(map[string][]Binding)
	order := make([]string, 0)

	for _, b := range bindings {
		cat := b.Category
		if cat == "" {
			cat = "Other"
		}
		if _, exists := categoryMap[cat]; !exists {
			order = append(order, cat)
		}
		categoryMap[cat] = append(categoryMap[cat], b)
	}

	result := make([]BindingCategory, 0, len(order))
	for _, name := range order {
		result = append(result, BindingCategory{
			Name:     name,
			Bindings: categoryMap[name],
		})
	}
	return result
}
