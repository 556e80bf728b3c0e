package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/wordmelee/internal/board"
	"github.com/samdwyer/wordmelee/internal/telemetry"
	"github.com/samdwyer/wordmelee/internal/words"
)

// Session is one game from a fresh grid to its end. Restarting means
// building a new Session; nothing is shared between them.
type Session struct {
	ID     string
	Config Config
	Grid   *board.Grid
	Words  *words.List
	Engine *Engine
}

// Factory builds sessions, used by front-ends to restart.
type Factory func(ctx context.Context) (*Session, error)

// NewFactory returns a Factory that builds sessions from cfg.
func NewFactory(cfg Config) Factory {
	return func(ctx context.Context) (*Session, error) {
		return NewSession(ctx, cfg)
	}
}

// NewSession loads the word list and builds a grid for it.
func NewSession(ctx context.Context, cfg Config) (*Session, error) {
	ctx, span := telemetry.Tracer("game").Start(ctx, "session.new")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var (
		list *words.List
		err  error
	)
	if cfg.WordsFile != "" {
		list, err = words.LoadFile(ctx, cfg.WordsFile, cfg.Capacity)
	} else {
		list, err = words.LoadDefault(cfg.Capacity)
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return newSession(ctx, cfg, list)
}

// NewSessionFromList builds a session around an already loaded list.
func NewSessionFromList(ctx context.Context, cfg Config, list *words.List) (*Session, error) {
	ctx, span := telemetry.Tracer("game").Start(ctx, "session.new")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return newSession(ctx, cfg, list)
}

func newSession(ctx context.Context, cfg Config, list *words.List) (*Session, error) {
	size := cfg.Size
	if size == 0 {
		size = list.LongestLength()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid, err := board.New(size, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("building grid: %w", err)
	}

	s := &Session{
		ID:     uuid.NewString(),
		Config: cfg,
		Grid:   grid,
		Words:  list,
		Engine: NewEngine(grid, list),
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.Int("grid.size", size),
		attribute.Int("wordlist.count", list.Len()),
	)
	log.Debug().
		Str("session", s.ID).
		Int("size", size).
		Int("words", list.Len()).
		Int64("seed", seed).
		Msg("session created")

	return s, nil
}
