package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/wordmelee/internal/board"
	"github.com/samdwyer/wordmelee/internal/telemetry"
	"github.com/samdwyer/wordmelee/internal/words"
)

var (
	// ErrUnknownWord is returned when the requested word is not in the list.
	ErrUnknownWord = errors.New("word not in list")
	// ErrSessionEnded is returned for placements after the session ended.
	ErrSessionEnded = errors.New("session has ended")
)

// Placement describes a word that was put on the grid.
type Placement struct {
	Word     string
	Index    int // slot index for placements by index, -1 otherwise
	Row, Col int
	Vertical bool
	Score    int // weight covered by this word
	Total    int // cumulative score after this word
}

// Summary is reported once when a session ends.
type Summary struct {
	Outcome Outcome
	Score   int
}

// Result is returned by a successful placement.
type Result struct {
	Placement
	Ended   bool // true if this placement ended the session
	Outcome Outcome
}

// Listener receives session events. Front-ends register one to refresh
// their display and to handle the end of the game.
type Listener interface {
	WordPlaced(p Placement)
	SessionEnded(s Summary)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnPlaced func(Placement)
	OnEnded  func(Summary)
}

// WordPlaced calls OnPlaced.
func (f ListenerFuncs) WordPlaced(p Placement) {
	if f.OnPlaced != nil {
		f.OnPlaced(p)
	}
}

// SessionEnded calls OnEnded.
func (f ListenerFuncs) SessionEnded(s Summary) {
	if f.OnEnded != nil {
		f.OnEnded(s)
	}
}

// Engine applies placements to a grid and word list and decides when the
// session is over.
type Engine struct {
	grid     *board.Grid
	list     *words.List
	state    State
	outcome  Outcome
	listener Listener
}

// NewEngine creates an engine over grid and list. Neither is copied.
func NewEngine(grid *board.Grid, list *words.List) *Engine {
	return &Engine{
		grid:     grid,
		list:     list,
		state:    StateInProgress,
		listener: ListenerFuncs{},
	}
}

// SetListener registers l for session events. Nil removes the listener.
func (e *Engine) SetListener(l Listener) {
	if l == nil {
		l = ListenerFuncs{}
	}
	e.listener = l
}

// Grid returns the session grid.
func (e *Engine) Grid() *board.Grid {
	return e.grid
}

// Words returns the session word list.
func (e *Engine) Words() *words.List {
	return e.list
}

// State returns the current state.
func (e *Engine) State() State {
	return e.state
}

// Outcome returns how the session ended, or OutcomeNone.
func (e *Engine) Outcome() Outcome {
	return e.outcome
}

// Score returns the cumulative score.
func (e *Engine) Score() int {
	return e.grid.TotalScore()
}

// CheckEnd reports whether the session is over. The game is lost when the
// longest empty run cannot hold the shortest remaining word, and won when
// no words remain.
func (e *Engine) CheckEnd() (Outcome, bool) {
	shortest := e.list.ShortestLength()
	if e.grid.LongestEmptyRun() < shortest {
		return OutcomeLost, true
	}
	if shortest == 0 {
		return OutcomeWin, true
	}
	return OutcomeNone, false
}

// Evaluate runs the end check outside of a placement, such as right after
// a session is created. It returns true if the session is ended.
func (e *Engine) Evaluate(ctx context.Context) bool {
	if e.state == StateEnded {
		return true
	}
	if outcome, done := e.CheckEnd(); done {
		e.end(ctx, outcome)
		return true
	}
	return false
}

// PlaceWord places word on the grid and removes it from the list by value,
// which shifts the indices of later words.
func (e *Engine) PlaceWord(ctx context.Context, word string, row, col int, vertical bool) (Result, error) {
	p := Placement{Word: word, Index: -1, Row: row, Col: col, Vertical: vertical}
	return e.place(ctx, p, func() bool {
		return e.list.Remove(word)
	})
}

// PlaceIndex places the word stored at index and removes it from the list
// by index, leaving the other indices untouched.
func (e *Engine) PlaceIndex(ctx context.Context, index, row, col int, vertical bool) (Result, error) {
	word, ok := e.list.At(index)
	if !ok {
		return Result{}, fmt.Errorf("%w: index %d", ErrUnknownWord, index)
	}
	p := Placement{Word: word, Index: index, Row: row, Col: col, Vertical: vertical}
	return e.place(ctx, p, func() bool {
		return e.list.RemoveAt(index)
	})
}

func (e *Engine) place(ctx context.Context, p Placement, remove func() bool) (Result, error) {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.place")
	defer span.End()
	span.SetAttributes(
		attribute.String("word", p.Word),
		attribute.Int("word.index", p.Index),
		attribute.Int("row", p.Row),
		attribute.Int("col", p.Col),
		attribute.Bool("vertical", p.Vertical),
	)

	if e.state == StateEnded {
		return Result{}, ErrSessionEnded
	}
	if p.Index < 0 && !e.hasWord(p.Word) {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownWord, p.Word)
	}

	if err := e.grid.Check(p.Word, p.Row, p.Col, p.Vertical); err != nil {
		span.SetAttributes(attribute.String("rejected", err.Error()))
		log.Debug().Err(err).Str("word", p.Word).Int("row", p.Row).Int("col", p.Col).Msg("placement rejected")
		return Result{}, err
	}
	if !e.grid.PlaceWord(p.Word, p.Row, p.Col, p.Vertical) {
		return Result{}, board.ErrInvalidPlacement
	}
	remove()

	p.Score = e.grid.LastWordScore()
	p.Total = e.grid.TotalScore()
	span.SetAttributes(attribute.Int("score", p.Score), attribute.Int("total", p.Total))
	log.Debug().Str("word", p.Word).Int("score", p.Score).Int("total", p.Total).Msg("word placed")

	e.listener.WordPlaced(p)

	res := Result{Placement: p}
	if outcome, done := e.CheckEnd(); done {
		e.end(ctx, outcome)
		res.Ended = true
		res.Outcome = outcome
	}
	return res, nil
}

func (e *Engine) end(ctx context.Context, outcome Outcome) {
	e.state = StateEnded
	e.outcome = outcome

	trace.SpanFromContext(ctx).AddEvent("session.ended", trace.WithAttributes(
		attribute.String("outcome", outcome.String()),
		attribute.Int("score", e.grid.TotalScore()),
	))
	log.Info().Stringer("outcome", outcome).Int("score", e.grid.TotalScore()).Msg("session ended")

	e.listener.SessionEnded(Summary{Outcome: outcome, Score: e.grid.TotalScore()})
}

func (e *Engine) hasWord(word string) bool {
	for _, entry := range e.list.Entries() {
		if entry.Word == word {
			return true
		}
	}
	return false
}
