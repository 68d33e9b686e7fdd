package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/block-breaker/internal/core"
)

func TestOutcomeMessage(t *testing.T) {
	tests := []struct {
		outcome core.Outcome
		want    string
	}{
		{core.OutcomeOutOfLives, "no lives left"},
		{core.OutcomeDefeated, "defeated by the enemy"},
		{core.OutcomeQuit, "Quit"},
		{core.OutcomeRunning, "interrupted"},
	}
	for _, tc := range tests {
		if got := outcomeMessage(core.GameState{Outcome: tc.outcome}); !strings.Contains(got, tc.want) {
			t.Errorf("outcomeMessage(%s) = %q, expected to contain %q", tc.outcome, got, tc.want)
		}
	}
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	flagLogLevel = "loud"
	t.Cleanup(func() { flagLogLevel = "info" })

	if _, err := newLogger(&bytes.Buffer{}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLoadConfigAppliesFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	flagDifficulty, flagFPS = "hard", 30
	t.Cleanup(func() { flagDifficulty, flagFPS = "", 0 })

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Gameplay.Lives != 1 || cfg.Loop.TickRate != 30 {
		t.Errorf("flags not applied: lives %d, tick rate %d", cfg.Gameplay.Lives, cfg.Loop.TickRate)
	}

	flagDifficulty = "nightmare"
	if _, err := loadConfig(); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestBackendsCommandListsRegistered(t *testing.T) {
	var buf bytes.Buffer
	backendsCmd.SetOut(&buf)
	runBackends(backendsCmd, nil)

	out := buf.String()
	for _, id := range []string{"tui", "tcell"} {
		if !strings.Contains(out, id) {
			t.Errorf("backend %q missing from:\n%s", id, out)
		}
	}
}
