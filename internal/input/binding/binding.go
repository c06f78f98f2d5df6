package binding

import (
	"fmt"

	"github.com/dshills/linebind/internal/input/chars"
)

// Binding maps a named key to an action.
type Binding struct {
	// Key is the character name that triggers this binding.
	// Formats: "a", "C-u", "Control-u", "Meta-tab", "Escape"
	Key string

	// Action is the command to execute.
	// Examples: "move-start-of-line", "history-search-backward"
	Action string

	// Description provides documentation for the binding.
	Description string

	// Category groups bindings for display purposes.
	Category string
}

// NewBinding creates a new binding with the given key name and action.
func NewBinding(key, action string) Binding {
	return Binding{
		Key:    key,
		Action: action,
	}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithCategory sets the category for this binding.
func (b Binding) WithCategory(category string) Binding {
	b.Category = category
	return b
}

// Set holds the bindings from one source.
type Set struct {
	// Name is the set identifier.
	Name string

	// Source indicates where this set was defined.
	// Examples: "default", "user", "/home/user/.linebind/bindings.toml"
	Source string

	// Bindings are the key-to-action mappings.
	Bindings []Binding

	// Priority determines precedence when multiple sets bind the same
	// sequence. Higher priority wins. Default is 0.
	Priority int
}

// NewSet creates a new binding set with the given name.
func NewSet(name string) *Set {
	return &Set{
		Name:     name,
		Bindings: make([]Binding, 0),
	}
}

// WithPriority sets the priority for this set.
func (s *Set) WithPriority(priority int) *Set {
	s.Priority = priority
	return s
}

// WithSource sets the source for this set.
func (s *Set) WithSource(source string) *Set {
	s.Source = source
	return s
}

// Add adds a binding to this set.
func (s *Set) Add(key, action string) *Set {
	s.Bindings = append(s.Bindings, Binding{
		Key:    key,
		Action: action,
	})
	return s
}

// AddBinding adds a fully configured binding to this set.
func (s *Set) AddBinding(b Binding) *Set {
	s.Bindings = append(s.Bindings, b)
	return s
}

// Validate checks that every binding in the set has a key name that
// resolves to a sequence and a non-empty action.
func (s *Set) Validate() error {
	for i, b := range s.Bindings {
		if b.Key == "" {
			return fmt.Errorf("binding %d: empty key", i)
		}
		if b.Action == "" {
			return fmt.Errorf("binding %d (%s): empty action", i, b.Key)
		}
		if _, ok := chars.ParseCharName(b.Key); !ok {
			return fmt.Errorf("binding %d: %w: %q", i, ErrUnresolvedKey, b.Key)
		}
	}
	return nil
}

// Clone creates a deep copy of the set.
func (s *Set) Clone() *Set {
	clone := &Set{
		Name:     s.Name,
		Source:   s.Source,
		Priority: s.Priority,
		Bindings: make([]Binding, len(s.Bindings)),
	}
	copy(clone.Bindings, s.Bindings)
	return clone
}

// Resolved is a binding whose key name has been resolved to the raw
// sequence the keystroke emits.
type Resolved struct {
	Binding

	// Set is the set this binding came from.
	Set *Set

	// Sequence is the raw one- or two-character sequence to match
	// against terminal input.
	Sequence string
}

// Resolve resolves every binding in the set. It fails on the first
// binding whose key name cannot be resolved.
func (s *Set) Resolve() ([]Resolved, error) {
	resolved := make([]Resolved, 0, len(s.Bindings))

	for i, b := range s.Bindings {
		seq, ok := chars.ParseCharName(b.Key)
		if !ok {
			return nil, fmt.Errorf("binding %d: %w: %q", i, ErrUnresolvedKey, b.Key)
		}
		resolved = append(resolved, Resolved{
			Binding:  b,
			Set:      s,
			Sequence: seq,
		})
	}

	return resolved, nil
}
