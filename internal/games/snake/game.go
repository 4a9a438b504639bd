// Package snake implements the snake game state machine.
//
// A Game owns the snake body, the food cell, the movement direction and the
// running flag. It is driven from outside by Tick and SetDirection and has no
// timers, goroutines or locks of its own: callers must serialize those calls,
// which the Bubble Tea event loop already does.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Rand is the random source used for food placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Game implements the snake game.
type Game struct {
	unit   int
	gridW  int
	gridH  int
	bounds core.Rect // Board area in units, right/bottom exclusive
	rng    Rand

	snake     []core.Cell // Head at index 0
	food      core.Cell
	direction core.Direction
	running   bool
	tick      uint64 // Ticks advanced in this session
}

// New creates a game for the given board and starts a session.
// An invalid board configuration is reported before any state is built.
func New(cfg config.SnakeConfig, rng Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("snake: nil random source")
	}

	g := &Game{
		unit:   cfg.Board.UnitSize,
		gridW:  cfg.GridWidth(),
		gridH:  cfg.GridHeight(),
		bounds: core.NewRect(0, 0, cfg.Board.Width, cfg.Board.Height),
		rng:    rng,
	}
	g.Initialize()
	return g, nil
}

// NewSeeded creates a game whose food placement is driven by a
// math/rand source with the given seed.
func NewSeeded(cfg config.SnakeConfig, seed int64) (*Game, error) {
	return New(cfg, rand.New(rand.NewSource(seed)))
}

// Initialize starts a new session: a one-cell snake at the origin heading
// right, fresh food, running. Safe to call at any time to restart.
func (g *Game) Initialize() {
	g.snake = append(g.snake[:0], core.Cell{X: 0, Y: 0})
	g.direction = core.DirRight
	g.running = true
	g.tick = 0
	g.SpawnFood()
}

// SpawnFood moves the food to a uniformly random grid cell.
// The snake body is not excluded, so food may land underneath it.
func (g *Game) SpawnFood() {
	g.food = core.Cell{
		X: g.rng.Intn(g.gridW) * g.unit,
		Y: g.rng.Intn(g.gridH) * g.unit,
	}
}

// SetDirection changes the heading unless d reverses it.
// It applies whether or not the game is running; a stopped game only
// shows the new heading in its snapshot. Reports whether it was applied.
func (g *Game) SetDirection(d core.Direction) bool {
	if d == g.direction.Opposite() {
		return false
	}
	g.direction = d
	return true
}

// Tick advances the snake one cell. It does nothing once the game has stopped.
//
// The new head is added first and the tail dropped unless the head landed on
// food. Collisions are checked against the moved body, walls before self, and
// the fatal move is kept so the final snapshot shows it.
func (g *Game) Tick() {
	if !g.running {
		return
	}
	g.tick++

	newHead := g.snake[0].Step(g.direction, g.unit)
	g.snake = append(g.snake, core.Cell{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = newHead

	if newHead == g.food {
		g.SpawnFood()
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}

	if !g.bounds.ContainsCell(newHead) {
		g.running = false
		return
	}
	for _, seg := range g.snake[1:] {
		if seg == newHead {
			g.running = false
			return
		}
	}
}

// Running reports whether the session is still advancing.
func (g *Game) Running() bool {
	return g.running
}

// Direction returns the current heading.
func (g *Game) Direction() core.Direction {
	return g.direction
}

// GridSize returns the board size in cells.
func (g *Game) GridSize() (int, int) {
	return g.gridW, g.gridH
}

// UnitSize returns the side of one cell in board units.
func (g *Game) UnitSize() int {
	return g.unit
}
