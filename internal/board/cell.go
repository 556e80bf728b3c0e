// Package board provides the weighted letter grid and placement scoring.
package board

// MaxWeight is the largest weight an empty cell can carry.
const MaxWeight = 9

// Cell is a single grid square. An empty cell carries a weight in
// [0, MaxWeight]; a filled cell carries the letter placed on it.
// The zero value is an empty cell of weight 0.
type Cell struct {
	filled bool
	weight uint8
	letter rune
}

// Empty returns an unfilled cell with the given weight.
func Empty(weight int) Cell {
	if weight < 0 {
		weight = 0
	}
	if weight > MaxWeight {
		weight = MaxWeight
	}
	return Cell{weight: uint8(weight)}
}

// Filled returns a cell holding letter.
func Filled(letter rune) Cell {
	return Cell{filled: true, letter: letter}
}

// IsEmpty returns true if no letter has been placed on the cell.
func (c Cell) IsEmpty() bool {
	return !c.filled
}

// Weight returns the score value of an empty cell, or 0 once filled.
func (c Cell) Weight() int {
	if c.filled {
		return 0
	}
	return int(c.weight)
}

// Letter returns the placed letter, or 0 for an empty cell.
func (c Cell) Letter() rune {
	return c.letter
}

// Rune returns the cell's display character: its weight digit when empty,
// its letter when filled.
func (c Cell) Rune() rune {
	if c.filled {
		return c.letter
	}
	return rune('0' + c.weight)
}
