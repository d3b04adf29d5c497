package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/display"
	"github.com/jask/jaskcalc/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	closeLog, err := openLog(cfg.Log.Path)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closeLog()

	engine, err := newEngine(cfg)
	if err != nil {
		log.Fatalf("engine: %v", err)
	}

	p := tea.NewProgram(tui.New(engine, tui.Options{Config: &cfg}), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func newEngine(cfg config.Config) (*calc.Engine, error) {
	tag, err := cfg.Language()
	if err != nil {
		return nil, err
	}
	f := display.NewFormatter(display.Options{
		Language:           tag,
		Precision:          cfg.Engine.Precision,
		ErrorText:          cfg.UI.ErrorText,
		DivisionByZeroText: cfg.UI.DivisionByZeroText,
	})
	return calc.New(calc.Options{MaxDigits: cfg.Engine.MaxDigits, Formatter: f}), nil
}

// openLog points the standard logger at path, tagging lines with a session
// id. With no path, log output is discarded so it cannot corrupt the screen.
func openLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "jaskcalc "+uuid.NewString()[:8])
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.Printf("session start")
	return func() { _ = f.Close() }, nil
}
