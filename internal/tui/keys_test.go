package tui

import "testing"

func TestKeyRegistryLookupByScope(t *testing.T) {
	r := NewKeyRegistry()

	digit := r.Lookup("7", scopeKeypad)
	if digit == nil {
		t.Fatal("expected digit binding in keypad scope")
	}
	if digit.Action != actionDigit {
		t.Fatalf("digit action = %q, want %q", digit.Action, actionDigit)
	}

	if got := r.Lookup("7", scopeCommandLine); got != nil {
		t.Fatalf("did not expect digit binding in command line scope, got %q", got.Action)
	}

	quit := r.Lookup("ctrl+c", scopeCommandLine)
	if quit == nil {
		t.Fatal("expected quit binding to fall back to global scope")
	}
	if quit.Action != actionQuit {
		t.Fatalf("quit action = %q, want %q", quit.Action, actionQuit)
	}
}

func TestKeyRegistryOperatorKeys(t *testing.T) {
	r := NewKeyRegistry()

	cases := map[string]Action{
		"+":         actionAdd,
		"-":         actionSubtract,
		"*":         actionMultiply,
		"x":         actionMultiply,
		"/":         actionDivide,
		"=":         actionEquals,
		"enter":     actionEquals,
		"Return":    actionEquals,
		"backspace": actionBackspace,
		"esc":       actionClearKey,
		"A":         actionAllClear,
		"n":         actionSign,
		",":         actionPoint,
	}
	for k, want := range cases {
		b := r.Lookup(k, scopeKeypad)
		if b == nil {
			t.Errorf("no binding for %q", k)
			continue
		}
		if b.Action != want {
			t.Errorf("%q action = %q, want %q", k, b.Action, want)
		}
	}
	if b := r.Lookup("a", scopeKeypad); b != nil {
		t.Errorf("lowercase a should be unbound, got %q", b.Action)
	}
}

func TestKeyRegistryNoDuplicateInSameScope(t *testing.T) {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	r.Register(Binding{Action: actionAdd, Keys: []string{"p"}, Help: "first", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: actionSubtract, Keys: []string{"p"}, Help: "duplicate", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: actionSubtract, Keys: []string{"p"}, Help: "different scope", Scopes: []string{"scope_b"}})

	a := r.BindingsForScope("scope_a")
	if len(a) != 1 {
		t.Fatalf("scope_a bindings = %d, want 1", len(a))
	}
	if a[0].Action != actionAdd {
		t.Fatalf("scope_a action = %q, want %q", a[0].Action, actionAdd)
	}

	b := r.BindingsForScope("scope_b")
	if len(b) != 1 {
		t.Fatalf("scope_b bindings = %d, want 1", len(b))
	}
	if b[0].Action != actionSubtract {
		t.Fatalf("scope_b action = %q, want %q", b[0].Action, actionSubtract)
	}
}

func TestKeyRegistryHelpBindings(t *testing.T) {
	r := NewKeyRegistry()

	bindings := r.HelpBindings(scopeCommandLine)
	if len(bindings) != 3 {
		t.Fatalf("command line help bindings = %d, want 3", len(bindings))
	}
	if got := bindings[0].Help().Key; got != "enter" {
		t.Fatalf("first help key = %q, want %q", got, "enter")
	}
	if got := bindings[0].Help().Desc; got != "run" {
		t.Fatalf("first help desc = %q, want %q", got, "run")
	}

	keypad := r.HelpBindings(scopeKeypad)
	if got := keypad[0].Help().Key; got != "0-9" {
		t.Fatalf("digit help key = %q, want %q", got, "0-9")
	}
}

func TestNormalizeKeyName(t *testing.T) {
	cases := map[string]string{
		" ":            "space",
		"Ctrl+C":       "ctrl+c",
		"control+x":    "ctrl+x",
		"Return":       "enter",
		"A":            "A",
		"  backspace ": "backspace",
	}
	for in, want := range cases {
		if got := normalizeKeyName(in); got != want {
			t.Errorf("normalizeKeyName(%q) = %q, want %q", in, got, want)
		}
	}
}
