package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal      = "global"
	scopeKeypad      = "keypad"
	scopeCommandLine = "command_line"
)

const (
	actionQuit        Action = "quit"
	actionDigit       Action = "digit"
	actionPoint       Action = "point"
	actionAdd         Action = "add"
	actionSubtract    Action = "subtract"
	actionMultiply    Action = "multiply"
	actionDivide      Action = "divide"
	actionEquals      Action = "equals"
	actionBackspace   Action = "backspace"
	actionClearKey    Action = "clear_key"
	actionClear       Action = "clear"
	actionAllClear    Action = "all_clear"
	actionSign        Action = "sign"
	actionCommandMode Action = "command_mode"
	actionRun         Action = "run"
	actionClose       Action = "close"
	actionErase       Action = "erase"
	actionTheme       Action = "theme"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	reg(scopeGlobal, actionQuit, []string{"ctrl+c"}, "quit")

	reg(scopeKeypad, actionDigit, []string{"0-9", "0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}, "digits")
	reg(scopeKeypad, actionPoint, []string{".", ","}, "point")
	reg(scopeKeypad, actionAdd, []string{"+"}, "add")
	reg(scopeKeypad, actionSubtract, []string{"-"}, "subtract")
	reg(scopeKeypad, actionMultiply, []string{"*", "x"}, "multiply")
	reg(scopeKeypad, actionDivide, []string{"/"}, "divide")
	reg(scopeKeypad, actionEquals, []string{"enter", "="}, "equals")
	reg(scopeKeypad, actionBackspace, []string{"backspace"}, "erase")
	reg(scopeKeypad, actionClearKey, []string{"esc", "c"}, "AC/C")
	reg(scopeKeypad, actionAllClear, []string{"delete", "A"}, "all clear")
	reg(scopeKeypad, actionSign, []string{"n", "_"}, "+/-")
	reg(scopeKeypad, actionCommandMode, []string{":"}, "command")
	reg(scopeKeypad, actionQuit, []string{"q", "ctrl+c"}, "quit")

	reg(scopeCommandLine, actionRun, []string{"enter"}, "run")
	reg(scopeCommandLine, actionErase, []string{"backspace"}, "erase")
	reg(scopeCommandLine, actionClose, []string{"esc"}, "close")

	return r
}

func (r *KeyRegistry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" || len(b.Keys) == 0 {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 {
			continue
		}
		if r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// Lookup finds the binding for keyName in scope, falling back to the global scope.
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != scopeGlobal {
		if b := r.lookupInScope(keyName, scopeGlobal); b != nil {
			return b
		}
	}
	return nil
}

// HelpBindings converts a scope into bubbles key bindings for the help footer.
// The first key of each binding is its help label.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if len(b.Keys) == 0 {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	if scope == "" {
		return nil
	}
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		ch := trimmed[0]
		if ch >= 'A' && ch <= 'Z' {
			// Uppercase keys stay distinct from their lowercase bindings.
			return trimmed
		}
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "ctl+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "spacebar", "space")
	return s
}
