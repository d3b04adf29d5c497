package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/jaskcalc/internal/calc"
)

type keyKind int

const (
	keyDigit keyKind = iota
	keyFunction
	keyOperator
	// keyClear is drawn as a function key labelled with the live clear label.
	keyClear
)

type keypadKey struct {
	Label string
	Kind  keyKind
	Span  int
	Op    calc.Operator
}

// keypadRows mirrors the classic four-column calculator layout.
var keypadRows = [][]keypadKey{
	{
		{Label: "AC", Kind: keyClear},
		{Label: "+/-", Kind: keyFunction},
		{Label: "⌫", Kind: keyFunction},
		{Label: "÷", Kind: keyOperator, Op: calc.Divide},
	},
	{
		{Label: "7"},
		{Label: "8"},
		{Label: "9"},
		{Label: "×", Kind: keyOperator, Op: calc.Multiply},
	},
	{
		{Label: "4"},
		{Label: "5"},
		{Label: "6"},
		{Label: "-", Kind: keyOperator, Op: calc.Subtract},
	},
	{
		{Label: "1"},
		{Label: "2"},
		{Label: "3"},
		{Label: "+", Kind: keyOperator, Op: calc.Add},
	},
	{
		{Label: "0", Span: 2},
		{Label: "."},
		{Label: "=", Kind: keyOperator},
	},
}

const (
	keypadColumns = 4
	keyGap        = 1
	gridWidth     = keypadColumns*keyWidth + (keypadColumns-1)*keyGap
)

func (a *App) View() string {
	lines := []string{
		a.renderExpression(),
		a.renderDisplay(),
		"",
		a.renderKeypad(),
	}
	body := a.theme.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	var footer string
	switch {
	case a.commandOpen:
		footer = a.theme.Prompt.Render(":" + a.commandQuery + "█")
	case a.status != "":
		footer = a.theme.Status.Render(a.status)
	}
	helpScope := scopeKeypad
	if a.commandOpen {
		helpScope = scopeCommandLine
	}
	helpView := a.help.ShortHelpView(a.keys.HelpBindings(helpScope))

	return lipgloss.JoinVertical(lipgloss.Left, body, footer, helpView)
}

func (a *App) renderExpression() string {
	text := ansi.Truncate(a.snap.Expression, gridWidth, "…")
	return a.theme.Expression.Width(gridWidth).Align(lipgloss.Right).Render(text)
}

func (a *App) renderDisplay() string {
	style := a.theme.Display
	if a.snap.Faulted {
		style = a.theme.DisplayError
	}
	text := ansi.Truncate(a.snap.Display, gridWidth, "…")
	return style.Width(gridWidth).Align(lipgloss.Right).Render(text)
}

func (a *App) renderKeypad() string {
	rows := make([]string, 0, len(keypadRows))
	for _, row := range keypadRows {
		cells := make([]string, 0, len(row)*2)
		for i, k := range row {
			if i > 0 {
				cells = append(cells, strings.Repeat(" ", keyGap))
			}
			cells = append(cells, a.renderKey(k))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) renderKey(k keypadKey) string {
	label := k.Label
	style := a.theme.DigitKey
	switch k.Kind {
	case keyClear:
		label = a.snap.ClearLabel
		style = a.theme.FunctionKey
	case keyFunction:
		style = a.theme.FunctionKey
	case keyOperator:
		style = a.theme.OperatorKey
		if k.Op != calc.None && a.snap.Mode == calc.OperatorSelected && a.snap.Pending == k.Op {
			style = a.theme.ActiveOperator
		}
	case keyDigit:
	}
	if k.Span > 1 {
		style = style.Width(k.Span*keyWidth + (k.Span-1)*keyGap)
	}
	return style.Render(label)
}
