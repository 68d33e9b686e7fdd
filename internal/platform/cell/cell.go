// Package cell is a tcell backend. Unlike the Bubble Tea backend it sees the
// real mouse button mask, so "fire held" is exact.
package cell

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/block-breaker/internal/core"
	"github.com/vovakirdan/block-breaker/internal/registry"
)

// helpText is drawn on the last row.
const helpText = "click/space launch • ←/h →/l nudge • z small • x large • q quit"

// nudgeStep is how far one arrow press moves the pointer, in logical units.
const nudgeStep = 20

// session holds the per-run state between events and ticks.
type session struct {
	screen tcell.Screen
	canvas *core.Screen
	game   registry.Game
	opts   registry.RunOptions
	input  core.InputFrame
	held   bool // Button1 is down
}

func newSession(scr tcell.Screen, g registry.Game, opts registry.RunOptions) *session {
	w, h := scr.Size()
	return &session{
		screen: scr,
		canvas: core.NewScreen(w, max(1, h-1)),
		game:   g,
		opts:   opts,
		input:  core.NewInputFrame(opts.ViewportWidth / 2),
	}
}

// handle applies one terminal event to the pending input.
func (s *session) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, _ := ev.Position()
		w, _ := s.screen.Size()
		s.input.PointerX = pointerFromColumn(x, w, s.opts.ViewportWidth)
		s.held = ev.Buttons()&tcell.Button1 != 0
		if s.held {
			s.input.Set(core.ActionFire)
		}

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			s.input.Set(core.ActionQuit)
		case tcell.KeyEscape:
			s.input.Set(core.ActionEscape)
		case tcell.KeyLeft:
			s.nudge(-nudgeStep)
		case tcell.KeyRight:
			s.nudge(nudgeStep)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				s.input.Set(core.ActionQuit)
			case ' ':
				s.input.Set(core.ActionFire)
			case 'z':
				s.input.Set(core.ActionSizeSmall)
			case 'x':
				s.input.Set(core.ActionSizeLarge)
			case 'h':
				s.nudge(-nudgeStep)
			case 'l':
				s.nudge(nudgeStep)
			}
		}

	case *tcell.EventResize:
		w, h := s.screen.Size()
		s.canvas.Resize(w, max(1, h-1))
		s.screen.Sync()
	}
}

func (s *session) nudge(dx float64) {
	s.input.PointerX = core.ClampF(s.input.PointerX+dx, 0, s.opts.ViewportWidth)
}

// tick steps the game, redraws and reports whether the run has ended.
func (s *session) tick() bool {
	result := s.game.Step(s.input)

	s.input.Clear()
	if s.held {
		s.input.Set(core.ActionFire)
	}

	s.draw()
	return result.State.Outcome.Terminal()
}

// draw blits the canvas and help line to the terminal.
func (s *session) draw() {
	s.game.Render(s.canvas)
	s.screen.Clear()
	for y := range s.canvas.Height() {
		for x := range s.canvas.Width() {
			c := s.canvas.GetCell(x, y)
			s.screen.SetContent(x, y, c.Rune, nil, styleFor(c.Color))
		}
	}
	help := tcell.StyleDefault.Foreground(tcell.PaletteColor(241))
	for i, r := range []rune(helpText) {
		s.screen.SetContent(i, s.canvas.Height(), r, nil, help)
	}
	s.screen.Show()
}

func styleFor(c core.Color) tcell.Style {
	if code := c.ANSI(); code >= 0 {
		return tcell.StyleDefault.Foreground(tcell.PaletteColor(code))
	}
	return tcell.StyleDefault
}

// pointerFromColumn maps a terminal column to a logical x coordinate at the
// center of that column.
func pointerFromColumn(col, width int, viewportW float64) float64 {
	if width <= 0 {
		return viewportW / 2
	}
	return core.ClampF((float64(col)+0.5)*viewportW/float64(width), 0, viewportW)
}

// Backend runs the game directly on tcell.
type Backend struct{}

// ID implements registry.Backend.
func (Backend) ID() string { return "tcell" }

// Title implements registry.Backend.
func (Backend) Title() string { return "tcell terminal UI (exact mouse button tracking)" }

// Run drives the game at opts.TickRate until it ends, the user quits or ctx
// is cancelled.
func (Backend) Run(ctx context.Context, g registry.Game, opts registry.RunOptions) error {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	scr, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell: create screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("tcell: init screen: %w", err)
	}
	defer scr.Fini()

	scr.EnableMouse(tcell.MouseMotionEvents)
	scr.HideCursor()

	return run(ctx, scr, g, opts)
}

func run(ctx context.Context, scr tcell.Screen, g registry.Game, opts registry.RunOptions) error {
	s := newSession(scr, g, opts)

	interval := time.Second / 60
	if opts.TickRate > 0 {
		interval = time.Second / time.Duration(opts.TickRate)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := scr.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			opts.Logger.Debug("context cancelled", "err", ctx.Err())
			return nil
		case ev := <-events:
			s.handle(ev)
		case <-ticker.C:
			if s.tick() {
				opts.Logger.Debug("stopping", "outcome", g.State().Outcome)
				return nil
			}
		}
	}
}

func init() {
	registry.Register("tcell", func() registry.Backend { return Backend{} })
}
