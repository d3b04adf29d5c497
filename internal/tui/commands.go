package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a typed word may be from a command name.
const maxSuggestDistance = 2

type Command struct {
	Name        string
	Aliases     []string
	Description string
	Action      Action
	Arg         string
	// TakesArg consumes the next word of the command line as Arg.
	TakesArg bool
}

type CommandMatch struct {
	Command  Command
	Distance int
}

type CommandRegistry struct {
	commands []Command
	byName   map[string]Command
}

func NewCommandRegistry() *CommandRegistry {
	r := &CommandRegistry{byName: make(map[string]Command)}
	r.commands = []Command{
		{Name: "add", Aliases: []string{"plus", "+"}, Description: "Select addition", Action: actionAdd},
		{Name: "subtract", Aliases: []string{"minus", "sub", "-"}, Description: "Select subtraction", Action: actionSubtract},
		{Name: "multiply", Aliases: []string{"times", "mul", "*", "x"}, Description: "Select multiplication", Action: actionMultiply},
		{Name: "divide", Aliases: []string{"div", "/"}, Description: "Select division", Action: actionDivide},
		{Name: "equals", Aliases: []string{"=", "eq"}, Description: "Complete the pending operation", Action: actionEquals},
		{Name: "point", Aliases: []string{"decimal", "."}, Description: "Enter a decimal point", Action: actionPoint},
		{Name: "sign", Aliases: []string{"negate", "neg", "+/-"}, Description: "Toggle the sign of the entry", Action: actionSign},
		{Name: "backspace", Aliases: []string{"back", "del"}, Description: "Erase the last character", Action: actionBackspace},
		{Name: "clear", Aliases: []string{"c"}, Description: "Clear the entry", Action: actionClear},
		{Name: "allclear", Aliases: []string{"ac", "reset"}, Description: "Reset the calculator", Action: actionAllClear},
		{Name: "quit", Aliases: []string{"q", "exit"}, Description: "Leave the calculator", Action: actionQuit},
		{Name: "theme", Description: "Switch and save the color theme", Action: actionTheme, TakesArg: true},
	}
	for d := 0; d <= 9; d++ {
		digit := fmt.Sprint(d)
		r.commands = append(r.commands, Command{Name: digit, Description: "Enter " + digit, Action: actionDigit, Arg: digit})
	}
	for _, cmd := range r.commands {
		r.byName[cmd.Name] = cmd
		for _, alias := range cmd.Aliases {
			r.byName[alias] = cmd
		}
	}
	return r
}

func (r *CommandRegistry) All() []Command {
	if r == nil {
		return nil
	}
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Resolve maps a typed word to a command: exact names and aliases first,
// then the closest name within maxSuggestDistance edits. Only words with a
// letter are corrected, and only against names of two or more characters,
// so symbols and digits must match exactly.
func (r *CommandRegistry) Resolve(word string) (CommandMatch, error) {
	if r == nil {
		return CommandMatch{}, fmt.Errorf("command registry is not initialized")
	}
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return CommandMatch{}, fmt.Errorf("empty command")
	}
	if cmd, ok := r.byName[w]; ok {
		return CommandMatch{Command: cmd}, nil
	}

	if !strings.ContainsFunc(w, unicode.IsLetter) {
		return CommandMatch{}, fmt.Errorf("unknown command %q", word)
	}
	limit := min(maxSuggestDistance, len([]rune(w))-1)
	best := CommandMatch{Distance: -1}
	for _, cmd := range r.commands {
		for _, name := range append([]string{cmd.Name}, cmd.Aliases...) {
			if len([]rune(name)) < 2 {
				continue
			}
			dist := levenshtein.ComputeDistance(w, name)
			if dist > limit {
				continue
			}
			if best.Distance < 0 || dist < best.Distance {
				best = CommandMatch{Command: cmd, Distance: dist}
			}
		}
	}
	if best.Distance < 0 {
		return CommandMatch{}, fmt.Errorf("unknown command %q", word)
	}
	return best, nil
}

// Parse resolves every whitespace-separated word of a command line. Words
// are independent key presses, and a run of keypad characters such as "12.5"
// or "1+2=" is one press per character; nothing is evaluated here.
func (r *CommandRegistry) Parse(line string) ([]CommandMatch, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	out := make([]CommandMatch, 0, len(fields))
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		words := []string{f}
		if _, exact := r.byName[strings.ToLower(f)]; !exact && isKeypadRun(f) {
			words = strings.Split(f, "")
		}
		for _, w := range words {
			m, err := r.Resolve(w)
			if err != nil {
				return nil, err
			}
			if m.Command.TakesArg {
				if i+1 >= len(fields) {
					return nil, fmt.Errorf("%s needs an argument", m.Command.Name)
				}
				i++
				m.Command.Arg = strings.ToLower(fields[i])
			}
			out = append(out, m)
		}
	}
	return out, nil
}

func isKeypadRun(s string) bool {
	if len(s) < 2 {
		return false
	}
	for _, c := range s {
		if !strings.ContainsRune(keypadChars, c) {
			return false
		}
	}
	return true
}

const keypadChars = "0123456789.+-*/="
