package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/config"
)

// App is the presenter: one engine command per key, then a redraw from the
// returned snapshot.
type App struct {
	engine   *calc.Engine
	cfg      *config.Config
	keys     *KeyRegistry
	commands *CommandRegistry
	theme    Theme
	help     help.Model
	snap     calc.Snapshot
	width    int
	status   string

	commandOpen  bool
	commandQuery string
}

// Options configures the presenter. With a non-nil Config, theme changes
// made from the command line are written back with config.Save.
type Options struct {
	Theme  string
	Config *config.Config
}

func New(engine *calc.Engine, opts Options) *App {
	if engine == nil {
		engine = calc.New(calc.Options{})
	}
	theme := opts.Theme
	if opts.Config != nil && theme == "" {
		theme = opts.Config.UI.Theme
	}
	return &App{
		engine:   engine,
		cfg:      opts.Config,
		keys:     NewKeyRegistry(),
		commands: NewCommandRegistry(),
		theme:    NewTheme(theme),
		help:     help.New(),
		snap:     engine.Snapshot(),
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

// Snapshot is the state last drawn.
func (a *App) Snapshot() calc.Snapshot {
	return a.snap
}

// Status is the message shown under the keypad, if any.
func (a *App) Status() string {
	return a.status
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.help.Width = m.Width
	case tea.KeyMsg:
		if a.commandOpen {
			return a.updateCommandLine(m)
		}
		return a.updateKeypad(m)
	}
	return a, nil
}

func (a *App) updateKeypad(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyName := msg.String()
	b := a.keys.Lookup(keyName, scopeKeypad)
	if b == nil {
		return a, nil
	}
	switch b.Action {
	case actionQuit:
		return a, tea.Quit
	case actionCommandMode:
		a.commandOpen = true
		a.commandQuery = ""
		a.status = ""
		return a, nil
	}
	a.status = ""
	a.run(b.Action, keyName)
	return a, nil
}

func (a *App) updateCommandLine(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := a.keys.Lookup(msg.String(), scopeCommandLine)
	if b != nil {
		switch b.Action {
		case actionQuit:
			return a, tea.Quit
		case actionClose:
			a.closeCommandLine()
			return a, nil
		case actionErase:
			if r := []rune(a.commandQuery); len(r) > 0 {
				a.commandQuery = string(r[:len(r)-1])
			}
			return a, nil
		case actionRun:
			return a.executeCommandLine()
		}
	}
	switch msg.Type {
	case tea.KeyRunes:
		a.commandQuery += string(msg.Runes)
	case tea.KeySpace:
		a.commandQuery += " "
	}
	return a, nil
}

func (a *App) executeCommandLine() (tea.Model, tea.Cmd) {
	line := a.commandQuery
	a.closeCommandLine()
	if strings.TrimSpace(line) == "" {
		return a, nil
	}
	matches, err := a.commands.Parse(line)
	if err != nil {
		a.status = err.Error()
		log.Printf("command line %q: %v", line, err)
		return a, nil
	}
	for _, m := range matches {
		switch m.Command.Action {
		case actionQuit:
			return a, tea.Quit
		case actionTheme:
			a.setTheme(m.Command.Arg)
			continue
		}
		a.run(m.Command.Action, m.Command.Arg)
	}
	if len(matches) == 1 && matches[0].Distance > 0 && a.status == "" {
		a.status = "ran " + matches[0].Command.Name
	}
	return a, nil
}

// setTheme switches the palette and, when a config is attached, saves the
// choice so the next start uses it.
func (a *App) setTheme(name string) {
	switch name {
	case config.ThemeMocha, config.ThemePlain:
	default:
		a.status = fmt.Sprintf("unknown theme %q", name)
		return
	}
	a.theme = NewTheme(name)
	if a.cfg == nil {
		a.status = "theme " + name
		return
	}
	prev := a.cfg.UI.Theme
	a.cfg.UI.Theme = name
	if err := config.Save(*a.cfg); err != nil {
		a.cfg.UI.Theme = prev
		a.status = "save theme: " + err.Error()
		log.Printf("save theme %q: %v", name, err)
		return
	}
	a.status = "theme " + name + " saved"
	log.Printf("theme=%s saved", name)
}

func (a *App) closeCommandLine() {
	a.commandOpen = false
	a.commandQuery = ""
}

// run applies one action to the engine. arg carries the digit for actionDigit.
func (a *App) run(action Action, arg string) {
	e := a.engine
	var snap calc.Snapshot
	switch action {
	case actionDigit:
		if len(arg) != 1 || arg[0] < '0' || arg[0] > '9' {
			return
		}
		snap = e.InputDigit(int(arg[0] - '0'))
	case actionPoint:
		snap = e.InputDecimalPoint()
	case actionAdd:
		snap = e.InputOperator(calc.Add)
	case actionSubtract:
		snap = e.InputOperator(calc.Subtract)
	case actionMultiply:
		snap = e.InputOperator(calc.Multiply)
	case actionDivide:
		snap = e.InputOperator(calc.Divide)
	case actionEquals:
		snap = e.Calculate()
	case actionBackspace:
		snap = e.Backspace()
	case actionClearKey:
		snap = e.ClearKey()
	case actionClear:
		snap = e.Clear()
	case actionAllClear:
		snap = e.AllClear()
	case actionSign:
		snap = e.ToggleSign()
	default:
		return
	}
	a.snap = snap
	log.Printf("action=%s arg=%q mode=%s pending=%s display=%q expression=%q",
		action, arg, snap.Mode, snap.Pending, snap.Display, snap.Expression)
}
