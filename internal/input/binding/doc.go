// Package binding manages the mapping between named keys and editor actions.
//
// A Binding pairs a character name ("C-u", "Meta-tab", "Escape") with an
// action identifier. Registering a binding resolves the name through the
// chars package into the raw sequence the keystroke emits, and the
// registry indexes bindings by that sequence so an input loop can look
// up incoming bytes directly.
//
// # Binding Sets
//
// Bindings are grouped into named Sets, typically one per source file.
// When two sets bind the same sequence, the set with the higher priority
// wins; among equal priorities, the set registered later wins.
//
// # Binding Files
//
// Sets load from TOML files:
//
//	name = "user"
//	priority = 10
//
//	[[bindings]]
//	key = "C-u"
//	action = "kill-line-backward"
//	description = "Delete to start of line"
//	category = "Editing"
//
// # Usage
//
//	reg := binding.NewRegistry()
//	set := binding.NewSet("defaults").Add("C-a", "move-start-of-line")
//	if err := reg.Register(set); err != nil { ... }
//
//	if r, ok := reg.Lookup("\x01"); ok {
//	    // execute r.Action
//	}
package binding
