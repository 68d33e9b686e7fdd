package breaker

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/block-breaker/internal/config"
	"github.com/vovakirdan/block-breaker/internal/core"
)

// Options carries the run's collaborators. Zero values select defaults:
// a time-based seed, the wall clock, silent audio and a discarding logger.
type Options struct {
	Seed   int64
	Clock  Clock
	Audio  AudioSink
	Logger *log.Logger
}

// Game owns the world and drives it one fixed tick at a time.
type Game struct {
	cfg      config.BreakerConfig
	viewport core.Rect
	seed     int64

	world   *World
	score   *Score
	rng     *SimpleRNG
	clock   Clock
	audio   AudioSink
	logger  *log.Logger
	tick    int
	outcome core.Outcome
}

// New validates cfg and builds a game ready for its first tick.
func New(cfg config.BreakerConfig, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("breaker: %w", err)
	}

	g := &Game{
		cfg:      cfg,
		viewport: core.NewRect(0, 0, cfg.Viewport.Width, cfg.Viewport.Height),
		seed:     opts.Seed,
		clock:    opts.Clock,
		audio:    opts.Audio,
		logger:   opts.Logger,
	}
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	if g.clock == nil {
		g.clock = newWallClock()
	}
	if g.audio == nil {
		g.audio = NopAudio{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.reset()
	return g, nil
}

// ID returns the identifier used for the log prefix and CLI.
func (g *Game) ID() string { return "breaker" }

// Title returns the display name.
func (g *Game) Title() string { return "Block Breaker" }

// reset lays out the world: paddle, block grid column by column, ball, enemy.
// Insertion order is draw order and update order.
func (g *Game) reset() {
	g.world = NewWorld()
	g.score = NewScore(g.cfg.Gameplay.Lives)
	g.rng = NewSimpleRNG(g.seed)
	g.tick = 0
	g.outcome = core.OutcomeRunning

	g.world.Spawn(newPaddle(g.cfg.Paddle, g.viewport))

	bc := g.cfg.Blocks
	for col := bc.OriginColumn; col < bc.OriginColumn+bc.Columns; col++ {
		for row := bc.OriginRow; row < bc.OriginRow+bc.Rows; row++ {
			g.world.Spawn(newBlock(col, row, bc, g.viewport))
		}
	}

	ball := newBall(g.cfg.Ball)
	ball.rect.SetCenterX(g.world.paddle.rect.CenterX())
	ball.rect.SetBottom(g.world.paddle.rect.Top())
	g.world.Spawn(ball)

	g.world.Spawn(newEnemy(g.cfg.Enemy))

	g.logger.Debug("world ready", "entities", g.world.Len(), "blocks", g.world.Count(KindBlock), "seed", g.seed)
}

// Step advances the simulation by one tick.
// Once the outcome is terminal further calls leave the world untouched.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.outcome.Terminal() {
		return core.StepResult{State: g.State()}
	}
	if in.WantsExit() {
		g.outcome = core.OutcomeQuit
		g.logger.Info("quit requested", "tick", g.tick)
		return core.StepResult{State: g.State()}
	}

	g.tick++

	// Entities spawned during this pass are first updated next tick.
	for _, e := range g.world.Entities() {
		if !e.Alive() {
			continue
		}
		switch v := e.(type) {
		case *Paddle:
			g.updatePaddle(v, in.PointerX)
		case *Ball:
			g.updateBall(v, in)
		case *Enemy:
			g.updateEnemy(v)
		case *Beam:
			g.updateBeam(v)
		case *Item:
			g.updateItem(v)
		case *Block:
		}
		if g.outcome.Terminal() {
			break
		}
	}

	return core.StepResult{State: g.State()}
}

// finish records a gameplay terminal outcome and plays the game-over cue.
func (g *Game) finish(o core.Outcome) {
	if g.outcome.Terminal() {
		return
	}
	g.outcome = o
	g.audio.Play(CueGameOver)
	g.logger.Info("game over", "reason", o, "score", g.score.Points(), "tick", g.tick)
}

// State returns the current score, lives and outcome.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.score.Points(),
		Lives:   g.score.Lives(),
		Outcome: g.outcome,
	}
}

// World exposes the entity registry.
func (g *Game) World() *World { return g.world }

// Score exposes the score tracker.
func (g *Game) Score() *Score { return g.score }

// Viewport returns the logical canvas bounds.
func (g *Game) Viewport() core.Rect { return g.viewport }

// Tick returns the number of ticks simulated since the last reset.
func (g *Game) Tick() int { return g.tick }

// Seed returns the seed of the current run.
func (g *Game) Seed() int64 { return g.seed }
