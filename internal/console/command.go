// Package console is the keyboard front-end: one placement command per
// line of input.
package console

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedCommand is returned for input that is not a placement command.
var ErrMalformedCommand = errors.New("malformed command")

// commandPattern matches <index><h|v>(<row>,<col>), e.g. 3h(0,2).
var commandPattern = regexp.MustCompile(`^([0-9]+)([hv])\(([0-9]+),([0-9]+)\)$`)

// Command is a parsed placement request.
type Command struct {
	Index    int
	Row, Col int
	Vertical bool
}

// String returns the command in input syntax.
func (c Command) String() string {
	dir := "h"
	if c.Vertical {
		dir = "v"
	}
	return fmt.Sprintf("%d%s(%d,%d)", c.Index, dir, c.Row, c.Col)
}

// ParseCommand parses a placement command. Surrounding whitespace is ignored.
func ParseCommand(line string) (Command, error) {
	m := commandPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Command{}, fmt.Errorf("%w: %q", ErrMalformedCommand, line)
	}

	var nums [3]int
	for i, s := range []string{m[1], m[3], m[4]} {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Command{}, fmt.Errorf("%w: %w", ErrMalformedCommand, err)
		}
		nums[i] = n
	}

	return Command{
		Index:    nums[0],
		Row:      nums[1],
		Col:      nums[2],
		Vertical: m[2] == "v",
	}, nil
}
