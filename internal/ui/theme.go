package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/wordmelee/internal/board"
)

// Theme holds the colors used by the renderer, as hex strings.
type Theme struct {
	Background string
	Text       string
	LowWeight  string // color of a weight 0 cell
	HighWeight string // color of a weight 9 cell
	Letter     string
	LetterBG   string
	Selected   string
	Alert      string
}

// DefaultTheme is used when no other theme is given.
var DefaultTheme = Theme{
	Background: "#101418",
	Text:       "#d8dee9",
	LowWeight:  "#4c6a92",
	HighWeight: "#f2a541",
	Letter:     "#ffffff",
	LetterBG:   "#2d6a4f",
	Selected:   "#ffd166",
	Alert:      "#ef476f",
}

// palette is a Theme resolved to tcell styles.
type palette struct {
	base     tcell.Style
	weights  [board.MaxWeight + 1]tcell.Style
	letter   tcell.Style
	selected tcell.Style
	alert    tcell.Style
}

// ParseHexColor converts a hex color string (e.g., "#FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return toTCell(c), nil
}

// WeightColor blends between the low and high weight colors.
func (t Theme) WeightColor(weight int) (tcell.Color, error) {
	low, err := colorful.Hex(t.LowWeight)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid low weight color %q: %w", t.LowWeight, err)
	}
	high, err := colorful.Hex(t.HighWeight)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid high weight color %q: %w", t.HighWeight, err)
	}
	weight = min(max(weight, 0), board.MaxWeight)
	return toTCell(low.BlendLab(high, float64(weight)/board.MaxWeight).Clamped()), nil
}

func (t Theme) palette() (palette, error) {
	var p palette

	colors := make(map[string]tcell.Color)
	for _, hex := range []string{t.Background, t.Text, t.Letter, t.LetterBG, t.Selected, t.Alert} {
		c, err := ParseHexColor(hex)
		if err != nil {
			return p, err
		}
		colors[hex] = c
	}

	bg := colors[t.Background]
	p.base = tcell.StyleDefault.Background(bg).Foreground(colors[t.Text])
	p.letter = tcell.StyleDefault.Background(colors[t.LetterBG]).Foreground(colors[t.Letter]).Bold(true)
	p.selected = p.base.Foreground(colors[t.Selected]).Bold(true).Reverse(true)
	p.alert = p.base.Foreground(colors[t.Alert]).Bold(true)

	for w := range p.weights {
		c, err := t.WeightColor(w)
		if err != nil {
			return p, err
		}
		p.weights[w] = tcell.StyleDefault.Background(bg).Foreground(c)
	}
	return p, nil
}

func toTCell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
