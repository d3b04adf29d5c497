package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPeach    lipgloss.Color = "#fab387"
	colorRed      lipgloss.Color = "#f38ba8"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorCrust    lipgloss.Color = "#11111b"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorOperator = colorPeach
	colorFunction = colorSurface2
	colorDigit    = colorSurface0
	colorError    = colorRed
	colorFocus    = colorLavender
)

const keyWidth = 7

type Theme struct {
	Frame          lipgloss.Style
	Expression     lipgloss.Style
	Display        lipgloss.Style
	DisplayError   lipgloss.Style
	DigitKey       lipgloss.Style
	FunctionKey    lipgloss.Style
	OperatorKey    lipgloss.Style
	ActiveOperator lipgloss.Style
	Prompt         lipgloss.Style
	Status         lipgloss.Style
}

// NewTheme returns the named theme; unknown names fall back to mocha.
func NewTheme(name string) Theme {
	if strings.EqualFold(strings.TrimSpace(name), "plain") {
		return plainTheme()
	}
	return mochaTheme()
}

func mochaTheme() Theme {
	key := lipgloss.NewStyle().Width(keyWidth).Align(lipgloss.Center).Bold(true)
	return Theme{
		Frame:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(0, 1),
		Expression:     lipgloss.NewStyle().Foreground(colorOverlay1),
		Display:        lipgloss.NewStyle().Foreground(colorText).Bold(true),
		DisplayError:   lipgloss.NewStyle().Foreground(colorError).Bold(true),
		DigitKey:       key.Foreground(colorText).Background(colorDigit),
		FunctionKey:    key.Foreground(colorCrust).Background(colorSubtext0),
		OperatorKey:    key.Foreground(colorBase).Background(colorOperator),
		ActiveOperator: key.Foreground(colorOperator).Background(colorText),
		Prompt:         lipgloss.NewStyle().Foreground(colorFocus),
		Status:         lipgloss.NewStyle().Foreground(colorFunction),
	}
}

func plainTheme() Theme {
	key := lipgloss.NewStyle().Width(keyWidth).Align(lipgloss.Center)
	return Theme{
		Frame:          lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		Expression:     lipgloss.NewStyle(),
		Display:        lipgloss.NewStyle().Bold(true),
		DisplayError:   lipgloss.NewStyle().Bold(true),
		DigitKey:       key,
		FunctionKey:    key,
		OperatorKey:    key,
		ActiveOperator: key.Reverse(true),
		Prompt:         lipgloss.NewStyle(),
		Status:         lipgloss.NewStyle(),
	}
}
