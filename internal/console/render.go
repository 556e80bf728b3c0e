package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/samdwyer/wordmelee/internal/board"
	"github.com/samdwyer/wordmelee/internal/words"
)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// renderGrid draws the grid as a bordered table with row and column numbers.
func renderGrid(g *board.Grid) string {
	headers := make([]string, 0, g.Size()+1)
	headers = append(headers, "")
	for col := 0; col < g.Size(); col++ {
		headers = append(headers, strconv.Itoa(col))
	}

	rows := make([][]string, 0, g.Size())
	for row, cells := range g.Cells() {
		line := make([]string, 0, len(cells)+1)
		line = append(line, strconv.Itoa(row))
		for _, cell := range cells {
			line = append(line, string(cell.Rune()))
		}
		rows = append(rows, line)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Headers(headers...).
		Rows(rows...)
	return t.Render()
}

// renderWords lists present words as (index)word.
func renderWords(l *words.List) string {
	var sb strings.Builder
	for _, e := range l.Entries() {
		fmt.Fprintf(&sb, "(%d)%s, ", e.Index, e.Word)
	}
	return sb.String()
}

// render writes the full turn display.
func render(w io.Writer, g *board.Grid, l *words.List) {
	fmt.Fprintln(w, renderGrid(g))
	fmt.Fprintf(w, "Last word: %d  Total: %d\n", g.LastWordScore(), g.TotalScore())
	fmt.Fprintln(w, renderWords(l))
}
