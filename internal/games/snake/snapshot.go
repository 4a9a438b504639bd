package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot is a read-only copy of the game state for rendering and tests.
type Snapshot struct {
	Cells     []core.Cell // Snake body, head first
	Food      core.Cell
	Running   bool
	Direction core.Direction
	Tick      uint64
}

// Snapshot returns the current state. The cell slice is a copy.
func (g *Game) Snapshot() Snapshot {
	cells := make([]core.Cell, len(g.snake))
	copy(cells, g.snake)

	return Snapshot{
		Cells:     cells,
		Food:      g.food,
		Running:   g.running,
		Direction: g.direction,
		Tick:      g.tick,
	}
}

// Head returns the snake's head cell.
func (s Snapshot) Head() core.Cell {
	if len(s.Cells) == 0 {
		return core.Cell{}
	}
	return s.Cells[0]
}

// Len returns the snake length.
func (s Snapshot) Len() int {
	return len(s.Cells)
}

// String returns a one-line-per-field debug description.
func (s Snapshot) String() string {
	state := "running"
	if !s.Running {
		state = "stopped"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, State: %s\n", s.Tick, state)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", s.Len(), s.Direction)
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", s.Head().X, s.Head().Y, s.Food.X, s.Food.Y)
	return b.String()
}
