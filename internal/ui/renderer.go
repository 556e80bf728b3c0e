package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wordmelee/internal/board"
	"github.com/samdwyer/wordmelee/internal/game"
	"github.com/samdwyer/wordmelee/internal/words"
)

const title = "Scrabble melee"

// rules is shown by the h key.
var rules = []string{
	"Place every word of the list on the grid to win.",
	"Select a word in the list, then click the cell where it starts.",
	"Left click writes it across, right click writes it down.",
	"Words may not overlap letters already on the grid.",
	"Each word scores the weights of the cells it covers.",
	"The game is lost when the shortest word left fits nowhere.",
}

// Frame is everything the renderer needs for one redraw.
type Frame struct {
	Session  *game.Session
	Selected int           // list position of the selected word, -1 for none
	Status   string        // message shown under the board
	Help     bool          // show the rules
	Ended    *game.Summary // non-nil once the session is over
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette palette
}

// NewRenderer creates a new renderer for the given screen and theme.
func NewRenderer(screen *Screen, theme Theme) (*Renderer, error) {
	p, err := theme.palette()
	if err != nil {
		return nil, err
	}
	return &Renderer{screen: screen, palette: p}, nil
}

// Render draws the grid, the word list and the status lines.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	layout := NewLayout(f.Session.Grid.Size())
	entries := f.Session.Words.Entries()

	r.screen.SetText(gridX, 0, title, r.palette.base.Bold(true))
	r.renderGrid(layout, f.Session.Grid)
	r.renderWords(layout, entries, f.Selected)

	y := layout.StatusY(len(entries))
	score := fmt.Sprintf("Last word: %d  Total: %d", f.Session.Grid.LastWordScore(), f.Session.Grid.TotalScore())
	r.screen.SetText(gridX, y, score, r.palette.base)

	switch {
	case f.Ended != nil:
		msg := fmt.Sprintf("%s! Your score is: %d. Play again? (y/n)", f.Ended.Outcome, f.Ended.Score)
		r.screen.SetText(gridX, y+2, msg, r.palette.alert)
	case f.Status != "":
		r.screen.SetText(gridX, y+2, f.Status, r.palette.base)
	default:
		r.screen.SetText(gridX, y+2, "Click a word, then a cell. h: rules, r: restart, q: quit", r.palette.base)
	}

	if f.Help {
		for i, line := range rules {
			r.screen.SetText(gridX, y+4+i, line, r.palette.base)
		}
	}

	r.screen.Show()
}

func (r *Renderer) renderGrid(layout Layout, grid *board.Grid) {
	for row := 0; row < grid.Size(); row++ {
		for col := 0; col < grid.Size(); col++ {
			cell, _ := grid.At(row, col)
			style := r.cellStyle(cell)
			x, y := layout.CellOrigin(row, col)
			r.screen.SetContent(x, y, ' ', style)
			r.screen.SetContent(x+1, y, cell.Rune(), style)
			r.screen.SetContent(x+2, y, ' ', style)
		}
	}
}

func (r *Renderer) renderWords(layout Layout, entries []words.Entry, selected int) {
	for i, e := range entries {
		style := r.palette.base
		if i == selected {
			style = r.palette.selected
		}
		r.screen.SetText(layout.ListX, layout.ListY+i, e.Word, style)
	}
}

// cellStyle returns the style for a cell: letters stand out, empty cells
// are colored by weight.
func (r *Renderer) cellStyle(cell board.Cell) tcell.Style {
	if !cell.IsEmpty() {
		return r.palette.letter
	}
	return r.palette.weights[cell.Weight()]
}
