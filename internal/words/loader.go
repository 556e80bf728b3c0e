package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/wordmelee/internal/telemetry"
)

var (
	// ErrSourceNotFound is returned when the word file does not exist.
	ErrSourceNotFound = errors.New("word source not found")
	// ErrSourceIO is returned for any other failure reading the word source.
	ErrSourceIO = errors.New("word source read failure")
)

// Load reads one word per line from r. Surrounding whitespace is trimmed
// and blank lines are skipped. At most capacity words are kept; extra
// words are counted in Dropped instead of failing the load. A capacity
// of zero or less means DefaultCapacity.
func Load(r io.Reader, capacity int) (*List, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	l := &List{slots: make([]slot, 0, capacity)}
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if w := strings.TrimSpace(line); w != "" {
			if len(l.slots) >= capacity {
				l.dropped++
			} else {
				l.slots = append(l.slots, slot{word: w, present: true})
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSourceIO, err)
		}
	}
	return l, nil
}

// LoadFile reads the word list stored at path.
func LoadFile(ctx context.Context, path string, capacity int) (*List, error) {
	_, span := telemetry.Tracer("words").Start(ctx, "wordlist.load")
	defer span.End()
	span.SetAttributes(attribute.String("wordlist.source", path))

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		} else {
			err = fmt.Errorf("%w: %w", ErrSourceIO, err)
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer f.Close()

	l, err := Load(f, capacity)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	span.SetAttributes(
		attribute.Int("wordlist.count", l.Len()),
		attribute.Int("wordlist.dropped", l.Dropped()),
	)
	warnTruncated(path, l)
	return l, nil
}

// LoadDefault returns the word list built into the binary.
func LoadDefault(capacity int) (*List, error) {
	l, err := Load(strings.NewReader(defaultList), capacity)
	if err != nil {
		return nil, err
	}
	warnTruncated("builtin", l)
	return l, nil
}

func warnTruncated(source string, l *List) {
	if !l.Truncated() {
		return
	}
	log.Warn().
		Str("source", source).
		Int("kept", l.Len()).
		Int("dropped", l.Dropped()).
		Msg("word list too long, extra entries ignored")
}
