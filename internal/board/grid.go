package board

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wordmelee/internal/telemetry"
)

var (
	// ErrInvalidSize is returned by New for a grid smaller than 1x1.
	ErrInvalidSize = errors.New("grid size must be positive")

	// ErrInvalidPlacement is the parent of every placement rejection.
	ErrInvalidPlacement = errors.New("invalid placement")
	ErrEmptyWord        = fmt.Errorf("%w: empty word", ErrInvalidPlacement)
	ErrOutOfBounds      = fmt.Errorf("%w: coordinates out of bounds", ErrInvalidPlacement)
	ErrTooLong          = fmt.Errorf("%w: word longer than available span", ErrInvalidPlacement)
	ErrOccupied         = fmt.Errorf("%w: cell already filled", ErrInvalidPlacement)
)

// Grid is a square matrix of cells together with the running score.
type Grid struct {
	size          int
	cells         [][]Cell
	lastWordScore int
	totalScore    int
	rng           *rand.Rand
}

// New creates a size x size grid and fills it with random weights.
// A nil rng is replaced by a time-seeded one.
func New(size int, rng *rand.Rand) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cells := make([][]Cell, size)
	for row := range cells {
		cells[row] = make([]Cell, size)
	}

	g := &Grid{
		size:  size,
		cells: cells,
		rng:   rng,
	}
	g.Init()
	return g, nil
}

// Init rerolls every cell to a random weight in [0, MaxWeight] and resets
// both scores. It can be called again to restart on the same grid.
func (g *Grid) Init() {
	_, span := telemetry.Tracer("board").Start(context.Background(), "grid.init")
	defer span.End()

	for row := range g.cells {
		for col := range g.cells[row] {
			g.cells[row][col] = Empty(g.rng.Intn(MaxWeight + 1))
		}
	}
	g.lastWordScore = 0
	g.totalScore = 0

	span.SetAttributes(attribute.Int("grid.size", g.size))
}

// Size returns the grid dimension.
func (g *Grid) Size() int {
	return g.size
}

// LastWordScore returns the score of the most recent successful placement.
func (g *Grid) LastWordScore() int {
	return g.lastWordScore
}

// TotalScore returns the sum of all successful placements.
func (g *Grid) TotalScore() int {
	return g.totalScore
}

// At returns the cell at the given position.
func (g *Grid) At(row, col int) (Cell, bool) {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return Cell{}, false
	}
	return g.cells[row][col], true
}

// Cells returns a copy of the matrix, indexed [row][col].
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.size)
	for row := range g.cells {
		out[row] = append([]Cell(nil), g.cells[row]...)
	}
	return out
}

// Check reports why word cannot be placed at (row, col), or nil if it can.
// Checks run in order: negative coordinates, span to the grid edge,
// cross-axis bounds, then occupied cells.
func (g *Grid) Check(word string, row, col int, vertical bool) error {
	n := utf8.RuneCountInString(word)
	if n == 0 {
		return ErrEmptyWord
	}
	if row < 0 || col < 0 {
		return ErrOutOfBounds
	}

	along, across := col, row
	if vertical {
		along, across = row, col
	}
	if n > g.size-along {
		return ErrTooLong
	}
	if across >= g.size {
		return ErrOutOfBounds
	}

	for i := 0; i < n; i++ {
		r, c := g.target(row, col, vertical, i)
		if !g.cells[r][c].IsEmpty() {
			return fmt.Errorf("%w at (%d,%d)", ErrOccupied, r, c)
		}
	}
	return nil
}

// PlaceWord writes word starting at (row, col), left to right or top to
// bottom. Either every check passes and all cells are written, or nothing
// changes and false is returned.
func (g *Grid) PlaceWord(word string, row, col int, vertical bool) bool {
	if g.Check(word, row, col, vertical) != nil {
		return false
	}

	score := 0
	i := 0
	for _, letter := range word {
		r, c := g.target(row, col, vertical, i)
		score += g.cells[r][c].Weight()
		g.cells[r][c] = Filled(letter)
		i++
	}

	g.lastWordScore = score
	g.totalScore += score
	return true
}

// LongestEmptyRun returns the longest run of consecutive empty cells in any
// row or column. Runs are tracked in one pass: a counter for the current row
// and one counter per column.
func (g *Grid) LongestEmptyRun() int {
	longest := 0
	colRuns := make([]int, g.size)

	for row := 0; row < g.size; row++ {
		rowRun := 0
		for col := 0; col < g.size; col++ {
			if g.cells[row][col].IsEmpty() {
				rowRun++
				colRuns[col]++
			} else {
				rowRun = 0
				colRuns[col] = 0
			}
			longest = max(longest, rowRun, colRuns[col])
		}
	}
	return longest
}

// target returns the coordinates of the i-th letter of a placement.
func (g *Grid) target(row, col int, vertical bool, i int) (int, int) {
	if vertical {
		return row + i, col
	}
	return row, col + i
}
