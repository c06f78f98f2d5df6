package binding

import (
	"errors"
	"testing"
)

func TestRegisterAndLookup(t *testing.T) {
	reg := NewRegistry()

	set := NewSet("defaults").
		Add("C-a", "move-start-of-line").
		Add("C-u", "kill-line-backward").
		Add("Meta-tab", "complete-word").
		Add("Escape", "abort")

	if err := reg.Register(set); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		seq        string
		wantAction string
	}{
		{"\x01", "move-start-of-line"},
		{"\x15", "kill-line-backward"},
		{"\x1b\t", "complete-word"},
		{"\x1b", "abort"},
	}

	for _, tt := range tests {
		res, ok := reg.Lookup(tt.seq)
		if !ok {
			t.Errorf("Lookup(%q) not found", tt.seq)
			continue
		}
		if res.Action != tt.wantAction {
			t.Errorf("Lookup(%q) action = %q, want %q", tt.seq, res.Action, tt.wantAction)
		}
		if res.Set != set {
			t.Errorf("Lookup(%q) set = %v, want defaults", tt.seq, res.Set)
		}
	}

	if reg.Len() != 4 {
		t.Errorf("Len() = %d, want 4", reg.Len())
	}
}

func TestLookupName(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(NewSet("defaults").Add("C-u", "kill-line-backward")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	res, ok := reg.LookupName("Control-u")
	if !ok {
		t.Fatal("LookupName(Control-u) not found")
	}
	if res.Action != "kill-line-backward" {
		t.Errorf("LookupName(Control-u) action = %q, want kill-line-backward", res.Action)
	}

	if _, ok := reg.LookupName("x-"); ok {
		t.Error("LookupName(x-) = found, want not found for unresolvable name")
	}
}

func TestRegisterUnresolvedKey(t *testing.T) {
	reg := NewRegistry()

	set := NewSet("broken").Add("x-", "noop")
	err := reg.Register(set)
	if err == nil {
		t.Fatal("Register() with unresolvable key = nil error")
	}
	if !errors.Is(err, ErrUnresolvedKey) {
		t.Errorf("Register() error = %v, want ErrUnresolvedKey", err)
	}
}

func TestRegisterNil(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(nil); !errors.Is(err, ErrNilSet) {
		t.Errorf("Register(nil) error = %v, want ErrNilSet", err)
	}
}

func TestPriorityPrecedence(t *testing.T) {
	reg := NewRegistry()

	defaults := NewSet("defaults").Add("C-u", "kill-line-backward")
	user := NewSet("user").WithPriority(10).Add("C-u", "undo")

	// Register the higher-priority set first; it must still win.
	if err := reg.Register(user); err != nil {
		t.Fatalf("Register(user) error = %v", err)
	}
	if err := reg.Register(defaults); err != nil {
		t.Fatalf("Register(defaults) error = %v", err)
	}

	res, ok := reg.Lookup("\x15")
	if !ok {
		t.Fatal("Lookup(C-u) not found")
	}
	if res.Action != "undo" {
		t.Errorf("Lookup(C-u) action = %q, want undo (priority 10)", res.Action)
	}
}

func TestEqualPriorityLaterWins(t *testing.T) {
	reg := NewRegistry()

	first := NewSet("first").Add("tab", "indent")
	second := NewSet("second").Add("tab", "complete")

	if err := reg.Register(first); err != nil {
		t.Fatalf("Register(first) error = %v", err)
	}
	if err := reg.Register(second); err != nil {
		t.Fatalf("Register(second) error = %v", err)
	}

	res, ok := reg.Lookup("\t")
	if !ok {
		t.Fatal("Lookup(tab) not found")
	}
	if res.Action != "complete" {
		t.Errorf("Lookup(tab) action = %q, want complete (later registration)", res.Action)
	}
}

func TestUnregister(t *testing.T) {
	reg := NewRegistry()

	defaults := NewSet("defaults").Add("C-u", "kill-line-backward")
	user := NewSet("user").WithPriority(10).Add("C-u", "undo")

	if err := reg.Register(defaults); err != nil {
		t.Fatalf("Register(defaults) error = %v", err)
	}
	if err := reg.Register(user); err != nil {
		t.Fatalf("Register(user) error = %v", err)
	}

	if !reg.Unregister("user") {
		t.Fatal("Unregister(user) = false, want true")
	}

	// The shadowed default binding is visible again.
	res, ok := reg.Lookup("\x15")
	if !ok {
		t.Fatal("Lookup(C-u) not found after unregister")
	}
	if res.Action != "kill-line-backward" {
		t.Errorf("Lookup(C-u) action = %q, want kill-line-backward", res.Action)
	}

	if reg.Unregister("user") {
		t.Error("Unregister(user) twice = true, want false")
	}
}

func TestReplaceSet(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(NewSet("user").Add("C-a", "move-start-of-line")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := reg.Register(NewSet("user").Add("C-e", "move-end-of-line")); err != nil {
		t.Fatalf("Register() replacement error = %v", err)
	}

	if _, ok := reg.Lookup("\x01"); ok {
		t.Error("Lookup(C-a) = found, want binding gone after set replacement")
	}
	if _, ok := reg.Lookup("\x05"); !ok {
		t.Error("Lookup(C-e) not found after set replacement")
	}
}

func TestSequences(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(NewSet("defaults").Add("C-u", "a").Add("C-a", "b")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	seqs := reg.Sequences()
	want := []string{"\x01", "\x15"}
	if len(seqs) != len(want) {
		t.Fatalf("Sequences() len = %d, want %d", len(seqs), len(want))
	}
	for i, seq := range seqs {
		if seq != want[i] {
			t.Errorf("Sequences()[%d] = %q, want %q", i, seq, want[i])
		}
	}
}

func TestSetValidate(t *testing.T) {
	tests := []struct {
		name    string
		set     *Set
		wantErr bool
	}{
		{"valid", NewSet("s").Add("C-u", "undo"), false},
		{"empty key", NewSet("s").Add("", "undo"), true},
		{"empty action", NewSet("s").Add("C-u", ""), true},
		{"unresolvable key", NewSet("s").Add("x-", "undo"), true},
	}

	for _, tt := range tests {
		err := tt.set.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
