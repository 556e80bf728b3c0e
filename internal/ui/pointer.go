package ui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wordmelee/internal/game"
	"github.com/samdwyer/wordmelee/internal/telemetry"
)

// Pointer plays sessions with the mouse: click a word to select it, then
// click a cell with the left button to place it across or the right
// button to place it down.
type Pointer struct {
	screen     *Screen
	renderer   *Renderer
	newSession game.Factory

	session    *game.Session
	layout     Layout
	selected   string // selected word
	selectedAt int    // its position in the word list, -1 for none
	status     string
	help       bool
	ended      *game.Summary
	buttons    tcell.ButtonMask
	running    bool
}

// NewPointer creates a pointer front-end drawing on screen.
// newSession is called for the first session and for every restart.
func NewPointer(screen *Screen, theme Theme, newSession game.Factory) (*Pointer, error) {
	renderer, err := NewRenderer(screen, theme)
	if err != nil {
		return nil, err
	}
	return &Pointer{
		screen:     screen,
		renderer:   renderer,
		newSession: newSession,
	}, nil
}

// Session returns the session being played.
func (p *Pointer) Session() *game.Session {
	return p.session
}

// Run executes the event loop until the player quits.
func (p *Pointer) Run(ctx context.Context) error {
	ctx, span := telemetry.Tracer("ui").Start(ctx, "ui.run")
	defer span.End()

	if err := p.start(ctx); err != nil {
		return err
	}

	p.running = true
	for p.running {
		if err := ctx.Err(); err != nil {
			return err
		}

		p.renderer.Render(p.frame())

		ev := p.screen.PollEvent()
		if ev == nil {
			// Screen was finalized.
			return nil
		}
		if err := p.handleEvent(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}

// Close cleans up screen resources.
func (p *Pointer) Close() {
	if p.screen != nil {
		p.screen.Close()
	}
}

func (p *Pointer) frame() Frame {
	return Frame{
		Session:  p.session,
		Selected: p.selectedAt,
		Status:   p.status,
		Help:     p.help,
		Ended:    p.ended,
	}
}

// start builds a fresh session and checks whether it is already over.
func (p *Pointer) start(ctx context.Context) error {
	s, err := p.newSession(ctx)
	if err != nil {
		return err
	}
	p.session = s
	p.layout = NewLayout(s.Grid.Size())
	p.clearSelection()
	p.status = ""
	p.ended = nil

	s.Engine.SetListener(game.ListenerFuncs{
		OnEnded: func(sum game.Summary) {
			p.ended = &sum
		},
	})
	log.Debug().Str("session", s.ID).Msg("pointer session started")

	s.Engine.Evaluate(ctx)
	return nil
}

// handleEvent processes a single input event.
func (p *Pointer) handleEvent(ctx context.Context, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return p.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		p.handleMouse(ctx, x, y, ev.Buttons())
	case *tcell.EventResize:
		p.screen.Sync()
	}
	return nil
}

// handleKey processes keyboard input. While the end prompt is shown only
// y and n are accepted, besides quitting.
func (p *Pointer) handleKey(ctx context.Context, key tcell.Key, r rune) error {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		p.running = false
		return nil
	case tcell.KeyRune:
	default:
		return nil
	}

	if p.ended != nil {
		switch r {
		case 'y', 'Y':
			return p.start(ctx)
		case 'n', 'N', 'q', 'Q':
			p.running = false
		}
		return nil
	}

	switch r {
	case 'q', 'Q':
		p.running = false
	case 'r', 'R':
		return p.start(ctx)
	case 'h', 'H', '?':
		p.help = !p.help
	}
	return nil
}

// handleMouse acts on button presses only. tcell reports the held buttons
// on every mouse event, so a press is a button not held last time.
func (p *Pointer) handleMouse(ctx context.Context, x, y int, buttons tcell.ButtonMask) {
	pressed := buttons &^ p.buttons
	p.buttons = buttons

	switch {
	case pressed&tcell.Button1 != 0:
		p.click(ctx, x, y, false)
	case pressed&tcell.Button2 != 0:
		p.click(ctx, x, y, true)
	}
}

// click selects a word from the list or places the selected word at a cell.
func (p *Pointer) click(ctx context.Context, x, y int, vertical bool) {
	if p.ended != nil {
		return
	}

	entries := p.session.Words.Entries()
	if i, ok := p.layout.WordAt(x, y, len(entries)); ok {
		if p.selectedAt == i {
			p.clearSelection()
		} else {
			p.selected, p.selectedAt = entries[i].Word, i
		}
		p.status = ""
		return
	}

	row, col, ok := p.layout.CellAt(x, y)
	if !ok {
		return
	}
	if p.selected == "" {
		p.status = "Select a word first"
		return
	}

	ctx, span := telemetry.Tracer("ui").Start(ctx, "ui.click")
	defer span.End()
	span.SetAttributes(
		attribute.String("word", p.selected),
		attribute.Int("row", row),
		attribute.Int("col", col),
		attribute.Bool("vertical", vertical),
	)

	res, err := p.session.Engine.PlaceWord(ctx, p.selected, row, col, vertical)
	if err != nil {
		log.Debug().Err(err).Str("word", p.selected).Int("row", row).Int("col", col).Msg("placement refused")
		p.status = "Wrong placement"
		return
	}
	p.clearSelection()
	p.status = fmt.Sprintf("%s: +%d", res.Word, res.Score)
}

func (p *Pointer) clearSelection() {
	p.selected, p.selectedAt = "", -1
}
