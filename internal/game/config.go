package game

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds session configuration options.
type Config struct {
	// Size of the square grid. Zero means the length of the longest word.
	Size int

	// WordsFile is the word list to load. Empty means the builtin list.
	WordsFile string

	// Capacity bounds how many words are kept from the list.
	// Zero means words.DefaultCapacity.
	Capacity int

	// Seed for random number generation. Used for reproducible grids.
	// A seed of 0 means a random seed will be generated.
	Seed int64
}

// Validate checks the configuration before a session is built.
func (c Config) Validate() error {
	if c.Size < 0 {
		return fmt.Errorf("%w: negative grid size %d", ErrInvalidConfig, c.Size)
	}
	if c.Capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidConfig, c.Capacity)
	}
	return nil
}
