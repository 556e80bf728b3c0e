package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/samdwyer/wordmelee/internal/game"
)

const prompt = "> "

// Console plays sessions over a line reader and a writer.
type Console struct {
	in         *bufio.Reader
	out        io.Writer
	newSession game.Factory

	session *game.Session
	ended   *game.Summary
}

// New creates a console reading commands from in and writing to out.
// newSession is called for the first session and for every restart.
func New(in io.Reader, out io.Writer, newSession game.Factory) *Console {
	return &Console{
		in:         bufio.NewReader(in),
		out:        out,
		newSession: newSession,
	}
}

// Session returns the session being played.
func (c *Console) Session() *game.Session {
	return c.session
}

// Run plays until the player quits, declines a restart, or input ends.
func (c *Console) Run(ctx context.Context) error {
	if err := c.start(ctx); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if c.ended != nil {
			again, err := c.askRestart()
			if err != nil || !again {
				fmt.Fprintln(c.out, "End")
				return err
			}
			if err := c.start(ctx); err != nil {
				return err
			}
			continue
		}

		render(c.out, c.session.Grid, c.session.Words)
		fmt.Fprint(c.out, prompt)

		line, err := c.readLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if quit := c.handle(ctx, line); quit {
			fmt.Fprintln(c.out, "End")
			return nil
		}
	}
}

// start builds a fresh session and checks whether it is already over.
func (c *Console) start(ctx context.Context) error {
	s, err := c.newSession(ctx)
	if err != nil {
		return err
	}
	c.session = s
	c.ended = nil

	s.Engine.SetListener(game.ListenerFuncs{
		OnEnded: func(sum game.Summary) {
			c.ended = &sum
		},
	})
	log.Debug().Str("session", s.ID).Msg("console session started")

	s.Engine.Evaluate(ctx)
	return nil
}

// handle processes one input line and reports whether the player quit.
func (c *Console) handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	switch line {
	case "q", "quit", "exit":
		return true
	case "":
		return false
	}

	cmd, err := ParseCommand(line)
	if err != nil {
		fmt.Fprintln(c.out, "Error in command line")
		return false
	}

	res, err := c.session.Engine.PlaceIndex(ctx, cmd.Index, cmd.Row, cmd.Col, cmd.Vertical)
	if err != nil {
		log.Debug().Err(err).Stringer("command", cmd).Msg("placement refused")
		fmt.Fprintln(c.out, "Wrong placement")
		return false
	}
	fmt.Fprintf(c.out, "%s: +%d\n", res.Word, res.Score)
	return false
}

// askRestart reports the outcome and asks whether to play again.
func (c *Console) askRestart() (bool, error) {
	fmt.Fprintln(c.out, renderGrid(c.session.Grid))
	fmt.Fprintln(c.out, c.ended.Outcome)
	fmt.Fprintf(c.out, "Your score is: %d.\n", c.ended.Score)
	fmt.Fprint(c.out, "Play again? (y/n) ")

	line, err := c.readLine()
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// readLine returns the next input line without its line ending. Lines of
// any length are accepted. io.EOF is returned only when no text is left.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	if err != nil && !errors.Is(err, io.EOF) {
		log.Error().Err(err).Msg("reading input")
	}
	return strings.TrimRight(line, "\r\n"), err
}
