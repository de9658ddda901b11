package engine

import (
	"context"
	"io"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/rsnake/constants"
	"github.com/lixenwraith/rsnake/core"
	"github.com/lixenwraith/rsnake/render"
)

// RunState is the loop state
type RunState int

const (
	StateRunning RunState = iota
	StateStopped
)

func (s RunState) String() string {
	if s == StateRunning {
		return "running"
	}
	return "stopped"
}

// Renderer draws one frame and reports the grid size
type Renderer interface {
	Bounds() core.Bounds
	RenderFrame(cells []core.Cell, palette *render.Palette)
}

// EventSource returns one pending terminal event, or nil without blocking
type EventSource interface {
	TryEvent() tcell.Event
}

// InputHandler applies an event to the config and returns false to stop the loop
type InputHandler interface {
	HandleEvent(ev tcell.Event) bool
}

// GrowthListener is notified each frame the snake keeps its tail
type GrowthListener interface {
	OnGrow(length int)
}

// FrameResult reports what the simulation did in one step
type FrameResult struct {
	Turned bool
	Grew   bool
}

// Game owns all simulation state and drives the frame loop
type Game struct {
	Config   *Config
	Snake    *Snake
	Steering *Steering
	Growth   *Growth

	renderer Renderer
	events   EventSource
	input    InputHandler
	pacer    Pacer
	listener GrowthListener
	rng      core.Rand
	logger   *slog.Logger

	state  RunState
	frames uint64
}

// Option configures optional Game collaborators
type Option func(*Game)

// WithEvents sets the non-blocking event source polled once per frame
func WithEvents(src EventSource) Option {
	return func(g *Game) { g.events = src }
}

// WithInput sets the handler receiving polled events
func WithInput(h InputHandler) Option {
	return func(g *Game) { g.input = h }
}

// WithPacer replaces the wall-clock pacer
func WithPacer(p Pacer) Option {
	return func(g *Game) { g.pacer = p }
}

// WithGrowthListener sets the growth notification target
func WithGrowthListener(l GrowthListener) Option {
	return func(g *Game) { g.listener = l }
}

// WithLogger sets the logger; the default discards
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// NewGame places a single-cell snake near the screen center heading down
func NewGame(cfg *Config, renderer Renderer, rng core.Rand, opts ...Option) *Game {
	g := &Game{
		Config:   cfg,
		renderer: renderer,
		pacer:    NewTimePacer(),
		rng:      rng,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		state:    StateRunning,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.Snake = NewSnake(g.spawnCell(renderer.Bounds()))
	g.Steering = NewSteering(core.Down, rng)
	g.Growth = NewGrowth(rng)

	g.logger.Debug("game created",
		"head", g.Snake.Head(),
		"speed", cfg.Speed,
		"body", cfg.Palette.Body.Name,
		"lead", cfg.Palette.Lead.Name,
	)
	return g
}

// spawnCell picks a cell within SpawnJitter of the center, kept on the drawable grid
func (g *Game) spawnCell(b core.Bounds) core.Cell {
	centerRow, centerCol := b.Rows/2, b.Cols/2
	c := core.Cell{
		Row: core.IntRange(g.rng, centerRow-constants.SpawnJitter, centerRow+constants.SpawnJitter),
		Col: core.IntRange(g.rng, centerCol-constants.SpawnJitter, centerCol+constants.SpawnJitter),
	}
	c.Row = clamp(c.Row, 0, b.Rows-2)
	c.Col = clamp(c.Col, 0, b.Cols-1)
	return c
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// State returns the loop state
func (g *Game) State() RunState {
	return g.state
}

// Stop ends the loop after the current frame
func (g *Game) Stop() {
	g.state = StateStopped
}

// Frames returns how many frames have been simulated
func (g *Game) Frames() uint64 {
	return g.frames
}

// Advance inserts the next head along the current heading
func (g *Game) Advance() core.Cell {
	head := core.Wrap(g.Snake.Head(), g.Steering.Dir, g.renderer.Bounds())
	g.Snake.Push(head)
	return head
}

// Step runs the simulation part of a frame: turn, advance, grow or trim
func (g *Game) Step() FrameResult {
	var res FrameResult

	res.Turned = g.Steering.Tick(g.rng)
	if res.Turned {
		g.logger.Debug("turn", "dir", g.Steering.Dir, "next_threshold", g.Steering.Threshold())
	}

	g.Advance()

	res.Grew = g.Growth.Tick(g.Snake.Len(), g.rng)
	if res.Grew {
		g.logger.Debug("grow", "length", g.Snake.Len(), "next_threshold", g.Growth.Threshold())
		if g.listener != nil {
			g.listener.OnGrow(g.Snake.Len())
		}
	} else {
		g.Snake.TrimTail()
	}

	g.frames++
	return res
}

// Frame runs one full iteration: step, render, pace, poll input
func (g *Game) Frame(ctx context.Context) error {
	g.Step()
	g.renderer.RenderFrame(g.Snake.Cells(), g.Config.Palette)

	if err := g.pacer.Sleep(ctx, g.Config.Delay()); err != nil {
		return err
	}

	g.pollInput()
	return nil
}

// pollInput consumes at most one pending event
func (g *Game) pollInput() {
	if g.events == nil || g.input == nil {
		return
	}
	ev := g.events.TryEvent()
	if ev == nil {
		return
	}
	if !g.input.HandleEvent(ev) {
		g.Stop()
	}
}

// Run loops until a quit key is handled or ctx is cancelled.
// Cancellation is a normal stop and returns nil.
func (g *Game) Run(ctx context.Context) error {
	for g.state == StateRunning {
		if err := ctx.Err(); err != nil {
			g.logger.Debug("run cancelled", "err", err)
			g.Stop()
			break
		}
		if err := g.Frame(ctx); err != nil {
			if ctx.Err() != nil {
				g.logger.Debug("run cancelled", "err", err)
				g.Stop()
				break
			}
			return err
		}
	}

	g.logger.Debug("run stopped", "frames", g.frames, "length", g.Snake.Len())
	return nil
}
