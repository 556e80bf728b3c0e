package game

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/samdwyer/wordmelee/internal/board"
	"github.com/samdwyer/wordmelee/internal/words"
)

// recorder is a Listener that keeps every event.
type recorder struct {
	placed []Placement
	ended  []Summary
}

func (r *recorder) WordPlaced(p Placement) { r.placed = append(r.placed, p) }
func (r *recorder) SessionEnded(s Summary) { r.ended = append(r.ended, s) }

func newTestEngine(t *testing.T, size int, list ...string) (*Engine, *recorder) {
	t.Helper()
	grid, err := board.New(size, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("board.New(%d) error: %v", size, err)
	}
	e := NewEngine(grid, words.NewList(list...))
	rec := &recorder{}
	e.SetListener(rec)
	return e, rec
}

func TestPlaceWordRemovesByValue(t *testing.T) {
	ctx := context.Background()
	e, rec := newTestEngine(t, 5, "dog", "cat", "owl", "cat")

	res, err := e.PlaceWord(ctx, "cat", 0, 0, false)
	if err != nil {
		t.Fatalf("PlaceWord error: %v", err)
	}

	if res.Ended {
		t.Error("Result.Ended = true, want false")
	}
	if res.Score != e.Grid().LastWordScore() || res.Total != e.Score() {
		t.Errorf("Result scores = (%d, %d), want (%d, %d)",
			res.Score, res.Total, e.Grid().LastWordScore(), e.Score())
	}

	want := []words.Entry{{Index: 0, Word: "dog"}, {Index: 1, Word: "owl"}, {Index: 2, Word: "cat"}}
	if got := e.Words().Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}
	if len(rec.placed) != 1 || rec.placed[0].Word != "cat" || rec.placed[0].Index != -1 {
		t.Errorf("WordPlaced events = %+v, want one for cat", rec.placed)
	}
}

func TestPlaceIndexTombstones(t *testing.T) {
	ctx := context.Background()
	e, rec := newTestEngine(t, 5, "dog", "cat", "owl")

	if _, err := e.PlaceIndex(ctx, 1, 2, 0, false); err != nil {
		t.Fatalf("PlaceIndex error: %v", err)
	}

	if e.Words().Len() != 3 {
		t.Errorf("Len() = %d, want 3", e.Words().Len())
	}
	if w, ok := e.Words().At(2); !ok || w != "owl" {
		t.Errorf("At(2) = (%q, %v), want (owl, true)", w, ok)
	}
	if len(rec.placed) != 1 || rec.placed[0].Index != 1 || rec.placed[0].Word != "cat" {
		t.Errorf("WordPlaced events = %+v, want cat at index 1", rec.placed)
	}
	if cell, _ := e.Grid().At(2, 0); cell.Letter() != 'c' {
		t.Errorf("Cell (2,0) = %q, want 'c'", cell.Rune())
	}
}

func TestPlaceIndexUnknown(t *testing.T) {
	ctx := context.Background()
	e, rec := newTestEngine(t, 5, "dog", "cat")
	e.Words().RemoveAt(0)
	before := e.Grid().Cells()

	for _, index := range []int{-1, 0, 2, 10} {
		if _, err := e.PlaceIndex(ctx, index, 0, 0, false); !errors.Is(err, ErrUnknownWord) {
			t.Errorf("PlaceIndex(%d) error = %v, want ErrUnknownWord", index, err)
		}
	}
	if !reflect.DeepEqual(before, e.Grid().Cells()) {
		t.Error("Unknown index modified the grid")
	}
	if len(rec.placed) != 0 {
		t.Errorf("WordPlaced called %d times, want 0", len(rec.placed))
	}
}

func TestPlaceWordUnknown(t *testing.T) {
	e, _ := newTestEngine(t, 5, "dog")

	if _, err := e.PlaceWord(context.Background(), "cat", 0, 0, false); !errors.Is(err, ErrUnknownWord) {
		t.Errorf("PlaceWord(cat) error = %v, want ErrUnknownWord", err)
	}
}

func TestPlacementRejected(t *testing.T) {
	ctx := context.Background()
	e, rec := newTestEngine(t, 5, "banana", "cat")
	before := e.Grid().Cells()

	_, err := e.PlaceWord(ctx, "banana", 0, 0, false)
	if !errors.Is(err, board.ErrTooLong) {
		t.Errorf("PlaceWord(banana) error = %v, want ErrTooLong", err)
	}
	if !errors.Is(err, board.ErrInvalidPlacement) {
		t.Errorf("PlaceWord(banana) error = %v, want ErrInvalidPlacement", err)
	}

	if _, err := e.PlaceIndex(ctx, 1, 4, 4, true); !errors.Is(err, board.ErrInvalidPlacement) {
		t.Errorf("PlaceIndex(cat at 4,4) error = %v, want ErrInvalidPlacement", err)
	}

	if !reflect.DeepEqual(before, e.Grid().Cells()) {
		t.Error("Rejected placement modified the grid")
	}
	if e.Words().Remaining() != 2 {
		t.Errorf("Remaining() = %d, want 2", e.Words().Remaining())
	}
	if len(rec.placed) != 0 || len(rec.ended) != 0 {
		t.Errorf("Events after rejection: placed=%d ended=%d, want 0", len(rec.placed), len(rec.ended))
	}
	if e.Score() != 0 {
		t.Errorf("Score() = %d, want 0", e.Score())
	}
}

func TestPlacementWins(t *testing.T) {
	ctx := context.Background()
	e, rec := newTestEngine(t, 3, "ab", "cd")

	res, err := e.PlaceIndex(ctx, 0, 0, 0, false)
	if err != nil || res.Ended {
		t.Fatalf("First placement: ended=%v err=%v, want ended=false", res.Ended, err)
	}

	res, err = e.PlaceWord(ctx, "cd", 1, 0, false)
	if err != nil {
		t.Fatalf("Second placement error: %v", err)
	}
	if !res.Ended || res.Outcome != OutcomeWin {
		t.Errorf("Result = (ended %v, %v), want (true, WIN)", res.Ended, res.Outcome)
	}
	if e.State() != StateEnded || e.Outcome() != OutcomeWin {
		t.Errorf("Engine = (%v, %v), want (ended, WIN)", e.State(), e.Outcome())
	}

	want := []Summary{{Outcome: OutcomeWin, Score: e.Score()}}
	if !reflect.DeepEqual(rec.ended, want) {
		t.Errorf("SessionEnded events = %+v, want %+v", rec.ended, want)
	}
	if len(rec.placed) != 2 {
		t.Errorf("WordPlaced called %d times, want 2", len(rec.placed))
	}
}

func TestPlacementLoses(t *testing.T) {
	ctx := context.Background()
	e, rec := newTestEngine(t, 3, "abc", "d", "e", "xy")

	steps := []struct {
		word     string
		row, col int
		vertical bool
	}{
		{"abc", 0, 1, true},
		{"d", 1, 0, false},
	}
	for _, s := range steps {
		res, err := e.PlaceWord(ctx, s.word, s.row, s.col, s.vertical)
		if err != nil || res.Ended {
			t.Fatalf("PlaceWord(%s): ended=%v err=%v", s.word, res.Ended, err)
		}
	}

	res, err := e.PlaceWord(ctx, "e", 1, 2, false)
	if err != nil {
		t.Fatalf("PlaceWord(e) error: %v", err)
	}
	if !res.Ended || res.Outcome != OutcomeLost {
		t.Errorf("Result = (ended %v, %v), want (true, LOST)", res.Ended, res.Outcome)
	}
	if e.Grid().LongestEmptyRun() != 1 {
		t.Errorf("LongestEmptyRun() = %d, want 1", e.Grid().LongestEmptyRun())
	}
	if len(rec.ended) != 1 || rec.ended[0].Outcome != OutcomeLost {
		t.Errorf("SessionEnded events = %+v, want one LOST", rec.ended)
	}
}

func TestPlacementAfterEnd(t *testing.T) {
	ctx := context.Background()
	e, rec := newTestEngine(t, 3, "tree", "moon")

	if !e.Evaluate(ctx) {
		t.Fatal("Evaluate() = false, want true")
	}

	if _, err := e.PlaceIndex(ctx, 0, 0, 0, false); !errors.Is(err, ErrSessionEnded) {
		t.Errorf("PlaceIndex after end error = %v, want ErrSessionEnded", err)
	}
	if _, err := e.PlaceWord(ctx, "moon", 0, 0, true); !errors.Is(err, ErrSessionEnded) {
		t.Errorf("PlaceWord after end error = %v, want ErrSessionEnded", err)
	}
	if e.Words().Remaining() != 2 {
		t.Errorf("Remaining() = %d, want 2", e.Words().Remaining())
	}
	if len(rec.ended) != 1 {
		t.Errorf("SessionEnded called %d times, want 1", len(rec.ended))
	}
}

func TestCheckEnd(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		list      []string
		wantOut   Outcome
		wantEnded bool
	}{
		{"3x3 with 4 letter minimum", 3, []string{"tree", "castle"}, OutcomeLost, true},
		{"no words left", 3, nil, OutcomeWin, true},
		{"room left", 5, []string{"tree", "castle"}, OutcomeNone, false},
		{"exact fit", 4, []string{"tree"}, OutcomeNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t, tt.size, tt.list...)
			out, ended := e.CheckEnd()
			if out != tt.wantOut || ended != tt.wantEnded {
				t.Errorf("CheckEnd() = (%v, %v), want (%v, %v)", out, ended, tt.wantOut, tt.wantEnded)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	ctx := context.Background()
	e, rec := newTestEngine(t, 3, "tree")

	if !e.Evaluate(ctx) {
		t.Fatal("Evaluate() = false, want true for a 3x3 grid and a 4 letter word")
	}
	if !e.Evaluate(ctx) {
		t.Error("Evaluate() on an ended session = false, want true")
	}
	if e.State() != StateEnded || e.Outcome() != OutcomeLost {
		t.Errorf("Engine = (%v, %v), want (ended, LOST)", e.State(), e.Outcome())
	}
	if len(rec.ended) != 1 {
		t.Errorf("SessionEnded called %d times, want 1", len(rec.ended))
	}
}

func TestEvaluateInProgress(t *testing.T) {
	e, rec := newTestEngine(t, 5, "tree")

	if e.Evaluate(context.Background()) {
		t.Error("Evaluate() = true, want false")
	}
	if e.State() != StateInProgress || len(rec.ended) != 0 {
		t.Errorf("Engine state = %v with %d end events, want in_progress and none", e.State(), len(rec.ended))
	}
}

func TestScoreAccumulates(t *testing.T) {
	ctx := context.Background()
	e, rec := newTestEngine(t, 6, "tea", "cup", "milk", "ox", "sugar")

	moves := []struct {
		word     string
		row, col int
		vertical bool
	}{
		{"tea", 0, 0, false},
		{"cup", 1, 0, true},
		{"milk", 5, 2, false},
		{"ox", 2, 4, true},
	}

	sum := 0
	for _, m := range moves {
		res, err := e.PlaceWord(ctx, m.word, m.row, m.col, m.vertical)
		if err != nil {
			t.Fatalf("PlaceWord(%s) error: %v", m.word, err)
		}
		sum += res.Score
	}

	if e.Score() != sum {
		t.Errorf("Score() = %d, want sum of placements %d", e.Score(), sum)
	}
	if last := rec.placed[len(rec.placed)-1]; last.Total != sum {
		t.Errorf("Last placement total = %d, want %d", last.Total, sum)
	}
}

func TestListenerFuncs(t *testing.T) {
	var placed, ended int
	e, _ := newTestEngine(t, 3, "ab")
	e.SetListener(ListenerFuncs{
		OnPlaced: func(Placement) { placed++ },
		OnEnded:  func(Summary) { ended++ },
	})

	if _, err := e.PlaceWord(context.Background(), "ab", 2, 1, false); err != nil {
		t.Fatalf("PlaceWord error: %v", err)
	}
	if placed != 1 || ended != 1 {
		t.Errorf("Listener calls = (%d, %d), want (1, 1)", placed, ended)
	}

	e.SetListener(nil)
	e.SetListener(ListenerFuncs{})
}
