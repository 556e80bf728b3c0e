package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// mode selects the front-end.
type mode int

const (
	modeMouse mode = iota
	modeKeyboard
)

// String returns the flag spelling of the mode.
func (m mode) String() string {
	switch m {
	case modeMouse:
		return "mouse"
	case modeKeyboard:
		return "keyboard"
	default:
		return "unknown"
	}
}

var errNoMode = errors.New("no front-end chosen")

// chooseMode resolves the front-end from the flags, asking on out when
// neither flag was given.
func chooseMode(interactive bool, flag string, in io.Reader, out io.Writer) (mode, error) {
	if interactive {
		return modeKeyboard, nil
	}
	if flag != "" {
		return parseMode(flag)
	}
	return askMode(in, out)
}

func parseMode(s string) (mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "mouse":
		return modeMouse, nil
	case "k", "keyboard":
		return modeKeyboard, nil
	default:
		return 0, fmt.Errorf("unknown mode %q, want mouse or keyboard", s)
	}
}

// askMode reads a single answer line from in. Only the first line is
// consumed so the keyboard front-end can keep reading from in.
func askMode(in io.Reader, out io.Writer) (mode, error) {
	fmt.Fprint(out, "Do you want to play with the mouse or the keyboard? (m/k) ")

	line, err := readLine(in)
	if err != nil {
		return 0, err
	}
	if line == "" {
		return 0, errNoMode
	}
	return parseMode(line)
}

// readLine reads up to a newline one byte at a time, leaving the rest of
// in unread.
func readLine(in io.Reader) (string, error) {
	var sb strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				return strings.TrimSpace(sb.String()), nil
			}
			sb.WriteByte(buf[0])
		}
		if errors.Is(err, io.EOF) {
			return strings.TrimSpace(sb.String()), nil
		}
		if err != nil {
			return "", err
		}
	}
}
