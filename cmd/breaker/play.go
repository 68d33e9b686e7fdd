package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/block-breaker/internal/audio"
	"github.com/vovakirdan/block-breaker/internal/config"
	"github.com/vovakirdan/block-breaker/internal/core"
	"github.com/vovakirdan/block-breaker/internal/games/breaker"
	"github.com/vovakirdan/block-breaker/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagBackend    string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run of Block Breaker.

Controls:
  Mouse         - Move the paddle
  Click/Space   - Launch the ball
  Left/Right    - Nudge the paddle (also h/l)
  Z / X         - Shrink / grow the ball
  Esc, Q        - Quit

The run ends when you lose your last life or a beam hits the paddle.

Difficulty options:
  easy   - 5 lives, slower ball and enemy, fewer beams
  normal - Configured values
  hard   - 1 life, faster ball and enemy, more beams

Examples:
  breaker play
  breaker play --difficulty easy
  breaker play --config ./my-breaker.yaml
  breaker play --backend tcell --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Display backend (see 'breaker backends')")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

// loadConfig resolves the configuration from --config, --difficulty and --fps.
func loadConfig() (config.BreakerConfig, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.BreakerConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}

	cfg, err := config.LoadBreaker(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyBreakerPreset(&cfg, preset)
	if flagFPS > 0 {
		cfg.Loop.TickRate = flagFPS
	}
	return cfg, cfg.Validate()
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !registry.Exists(flagBackend) {
		return fmt.Errorf("unknown backend %q, run 'breaker backends' to see available backends", flagBackend)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("breaker play needs an interactive terminal")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sinkW, closeSink, err := openLogSink()
	if err != nil {
		return err
	}
	defer closeSink()
	runLog, err := newLogger(sinkW)
	if err != nil {
		return err
	}

	var sink breaker.AudioSink = breaker.NopAudio{}
	if !flagMute {
		player, audioErr := audio.Open()
		if audioErr != nil {
			// Non-fatal, the game runs without sound
			runLog.Warn("audio disabled", "error", audioErr)
		} else {
			defer player.Close()
			sink = player
		}
	}

	game, err := breaker.New(cfg, breaker.Options{
		Seed:   flagSeed,
		Audio:  sink,
		Logger: runLog.WithPrefix("breaker/sim"),
	})
	if err != nil {
		return err
	}

	backend, err := registry.Create(flagBackend)
	if err != nil {
		return err
	}

	width, height := 0, 0
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	runLog.Info("starting run",
		"backend", backend.ID(),
		"terminal", fmt.Sprintf("%dx%d", width, height),
		"tick_rate", cfg.Loop.TickRate,
		"seed", game.Seed(),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := backend.Run(ctx, game, registry.RunOptions{
		TickRate:      cfg.Loop.TickRate,
		ViewportWidth: cfg.Viewport.Width,
		Logger:        runLog,
	}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	st := game.State()
	runLog.Info("run ended", "outcome", st.Outcome, "score", st.Score, "lives", st.Lives)

	out, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	out.Info(outcomeMessage(st), "score", st.Score, "lives", st.Lives)
	return nil
}

// outcomeMessage describes how a run ended.
func outcomeMessage(st core.GameState) string {
	switch st.Outcome {
	case core.OutcomeOutOfLives:
		return "Game over: no lives left"
	case core.OutcomeDefeated:
		return "Game over: defeated by the enemy"
	case core.OutcomeQuit:
		return "Quit"
	default:
		return "Run interrupted"
	}
}
