package binding

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/linebind/internal/input/chars"
)

// Errors returned by registry and set operations.
var (
	ErrNilSet        = errors.New("cannot register nil binding set")
	ErrUnresolvedKey = errors.New("key name does not resolve to a sequence")
)

// Registry manages binding sets and provides sequence lookup.
type Registry struct {
	mu sync.RWMutex

	// sets holds all registered sets by name, with registration order
	// for tie-breaking.
	sets map[string]*registeredSet

	// bySeq indexes the winning binding for each raw sequence.
	bySeq map[string]*Resolved

	// nextOrder is the registration counter.
	nextOrder int
}

type registeredSet struct {
	set      *Set
	resolved []Resolved
	order    int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sets:  make(map[string]*registeredSet),
		bySeq: make(map[string]*Resolved),
	}
}

// Register adds a binding set to the registry, resolving every key name
// to its raw sequence. A set with the same name replaces the previous
// registration. Registration fails if any key name cannot be resolved.
func (r *Registry) Register(s *Set) error {
	if s == nil {
		return ErrNilSet
	}

	resolved, err := s.Resolve()
	if err != nil {
		return fmt.Errorf("registering set %q: %w", s.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	order := r.nextOrder
	r.nextOrder++

	r.sets[s.Name] = &registeredSet{
		set:      s,
		resolved: resolved,
		order:    order,
	}
	r.reindexLocked()

	return nil
}

// Unregister removes a set by name. It returns true if the set was
// registered.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sets[name]; !ok {
		return false
	}
	delete(r.sets, name)
	r.reindexLocked()
	return true
}

// reindexLocked rebuilds the sequence index. Sets are applied in
// ascending (priority, registration order), so the last write for a
// sequence is the highest-priority, most recently registered binding.
func (r *Registry) reindexLocked() {
	ordered := make([]*registeredSet, 0, len(r.sets))
	for _, rs := range r.sets {
		ordered = append(ordered, rs)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].set.Priority != ordered[j].set.Priority {
			return ordered[i].set.Priority < ordered[j].set.Priority
		}
		return ordered[i].order < ordered[j].order
	})

	r.bySeq = make(map[string]*Resolved)
	for _, rs := range ordered {
		for i := range rs.resolved {
			res := &rs.resolved[i]
			r.bySeq[res.Sequence] = res
		}
	}
}

// Lookup returns the binding registered for the given raw sequence.
func (r *Registry) Lookup(seq string) (*Resolved, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.bySeq[seq]
	return res, ok
}

// LookupName resolves a character name and looks up its binding.
func (r *Registry) LookupName(name string) (*Resolved, bool) {
	seq, ok := chars.ParseCharName(name)
	if !ok {
		return nil, false
	}
	return r.Lookup(seq)
}

// Sequences returns all bound raw sequences in sorted order.
func (r *Registry) Sequences() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seqs := make([]string, 0, len(r.bySeq))
	for seq := range r.bySeq {
		seqs = append(seqs, seq)
	}
	sort.Strings(seqs)
	return seqs
}

// Resolved returns the winning binding for every bound sequence,
// ordered by sequence.
func (r *Registry) Resolved() []Resolved {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seqs := make([]string, 0, len(r.bySeq))
	for seq := range r.bySeq {
		seqs = append(seqs, seq)
	}
	sort.Strings(seqs)

	out := make([]Resolved, 0, len(seqs))
	for _, seq := range seqs {
		out = append(out, *r.bySeq[seq])
	}
	return out
}

// SetNames returns the names of all registered sets in sorted order.
func (r *Registry) SetNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.sets))
	for name := range r.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bound sequences.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bySeq)
}
