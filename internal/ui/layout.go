package ui

// Screen geometry. The grid starts below the title line; each cell is
// cellWidth columns wide and one row high. The word list sits to the right.
const (
	gridX     = 2
	gridY     = 2
	cellWidth = 3
	listGap   = 4
)

// Layout maps terminal coordinates to grid cells and word list rows.
type Layout struct {
	Size  int // grid dimension
	ListX int // first column of the word list
	ListY int // row of the first word
}

// NewLayout returns the layout for a grid of the given size.
func NewLayout(size int) Layout {
	return Layout{
		Size:  size,
		ListX: gridX + size*cellWidth + listGap,
		ListY: gridY,
	}
}

// CellOrigin returns the screen position of the first column of a cell.
func (l Layout) CellOrigin(row, col int) (x, y int) {
	return gridX + col*cellWidth, gridY + row
}

// CellAt returns the grid cell under the screen position.
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	if x < gridX || y < gridY {
		return 0, 0, false
	}
	col = (x - gridX) / cellWidth
	row = y - gridY
	if row >= l.Size || col >= l.Size {
		return 0, 0, false
	}
	return row, col, true
}

// WordAt returns which of count listed words is under the screen position.
// Any column from ListX rightwards selects the row.
func (l Layout) WordAt(x, y, count int) (int, bool) {
	if x < l.ListX || y < l.ListY {
		return 0, false
	}
	i := y - l.ListY
	if i >= count {
		return 0, false
	}
	return i, true
}

// StatusY returns the row of the status line, below the grid and list.
func (l Layout) StatusY(listLen int) int {
	return gridY + max(l.Size, listLen) + 1
}
