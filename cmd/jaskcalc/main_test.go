package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/config"
)

func TestNewEngineUsesConfig(t *testing.T) {
	cfg := config.Config{
		Engine: config.EngineConfig{MaxDigits: 6, Precision: 2},
		UI: config.UIConfig{
			Language:           "de",
			DivisionByZeroText: "Division durch Null",
		},
	}
	engine, err := newEngine(cfg)
	require.NoError(t, err)

	for _, d := range []int{1, 2, 3, 4, 5, 6, 7} {
		engine.InputDigit(d)
	}
	require.Equal(t, "123.456", engine.Display())

	engine.AllClear()
	engine.InputDigit(2)
	engine.InputOperator(calc.Divide)
	engine.InputDigit(3)
	require.Equal(t, "0,67", engine.Calculate().Display)

	engine.InputOperator(calc.Divide)
	engine.InputDigit(0)
	require.Equal(t, "Division durch Null", engine.Calculate().Display)
}

func TestNewEngineRejectsBadLanguage(t *testing.T) {
	_, err := newEngine(config.Config{UI: config.UIConfig{Language: "??"}})
	require.Error(t, err)
}

func TestOpenLogWritesSessionLine(t *testing.T) {
	prevOut, prevPrefix, prevFlags := log.Writer(), log.Prefix(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetPrefix(prevPrefix)
		log.SetFlags(prevFlags)
	})

	path := filepath.Join(t.TempDir(), "logs", "calc.log")
	closeLog, err := openLog(path)
	require.NoError(t, err)
	log.Printf("hello")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "jaskcalc "), lines[0])
	require.Contains(t, lines[0], "session start")
	require.Contains(t, lines[1], "hello")
}

func TestOpenLogDisabled(t *testing.T) {
	prevOut := log.Writer()
	t.Cleanup(func() { log.SetOutput(prevOut) })

	closeLog, err := openLog("")
	require.NoError(t, err)
	closeLog()
}
