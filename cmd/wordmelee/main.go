// Package main is the entry point for wordmelee.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/samdwyer/wordmelee/internal/console"
	"github.com/samdwyer/wordmelee/internal/game"
	"github.com/samdwyer/wordmelee/internal/telemetry"
	"github.com/samdwyer/wordmelee/internal/ui"
	"github.com/samdwyer/wordmelee/internal/words"
)

// Exit codes for startup failures.
const (
	exitNotFound = 2
	exitIO       = 3
)

func main() {
	os.Exit(mainCode())
}

// mainCode sets up logging and telemetry, then runs the command. Deferred
// shutdown runs before main exits.
func mainCode() int {
	// Load .env file for local development. Not fatal: env vars might be
	// set directly.
	_ = godotenv.Load()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	telemetry.ConfigureEnv()

	ctx := context.Background()
	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("telemetry setup failed, running without tracing")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("shutting down telemetry")
				}
			}()
		}
	}

	return run(ctx, os.Args, os.Stdin, os.Stdout)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) int {
	cmd := newCommand(stdin, stdout)
	err := cmd.Run(ctx, args)
	if err == nil {
		return 0
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		log.Error().Err(err).Int("code", exitErr.ExitCode()).Msg("wordmelee failed")
		return exitErr.ExitCode()
	}
	log.Error().Err(err).Msg("wordmelee failed")
	return 1
}

func newCommand(stdin io.Reader, stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "wordmelee",
		Usage:     "place words on a weighted grid until none fit",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "play with typed commands such as 0h(1,2)",
				Sources: cli.EnvVars("WORDMELEE_INTERACTIVE"),
			},
			&cli.IntFlag{
				Name:    "size",
				Aliases: []string{"s"},
				Usage:   "grid size, 0 for the longest word length",
				Sources: cli.EnvVars("WORDMELEE_SIZE"),
			},
			&cli.IntFlag{
				Name:    "capacity",
				Value:   words.DefaultCapacity,
				Usage:   "maximum number of words read from the list",
				Sources: cli.EnvVars("WORDMELEE_CAPACITY"),
			},
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "random seed for grid weights, 0 for a random one",
				Sources: cli.EnvVars("WORDMELEE_SEED"),
			},
			&cli.StringFlag{
				Name:    "mode",
				Usage:   "front-end to use: mouse or keyboard",
				Sources: cli.EnvVars("WORDMELEE_MODE"),
			},
		},
		// Errors are turned into exit codes by run.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := game.Config{
				Size:      cmd.Int("size"),
				WordsFile: cmd.Args().First(),
				Capacity:  cmd.Int("capacity"),
				Seed:      cmd.Int64("seed"),
			}
			if cfg.WordsFile == "" {
				cfg.WordsFile = os.Getenv("WORDMELEE_WORDS")
			}
			if err := cfg.Validate(); err != nil {
				return cli.Exit(err.Error(), 1)
			}

			m, err := chooseMode(cmd.Bool("interactive"), cmd.String("mode"), stdin, stdout)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			log.Debug().Stringer("mode", m).Str("words", cfg.WordsFile).Int("size", cfg.Size).Msg("starting")
			return startupError(play(ctx, m, cfg, stdin, stdout))
		},
	}
}

// play runs the chosen front-end until the player leaves.
func play(ctx context.Context, m mode, cfg game.Config, stdin io.Reader, stdout io.Writer) error {
	factory := game.NewFactory(cfg)

	if m == modeKeyboard {
		return console.New(stdin, stdout, factory).Run(ctx)
	}

	// Logs would corrupt the full-screen display.
	restore, err := redirectLogs(os.Getenv("WORDMELEE_LOG_FILE"))
	if err != nil {
		return err
	}
	defer restore()

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("opening screen: %w", err)
	}
	p, err := ui.NewPointer(screen, ui.DefaultTheme, factory)
	if err != nil {
		screen.Close()
		return err
	}
	defer p.Close()
	return p.Run(ctx)
}

// startupError maps word source failures onto exit codes.
func startupError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, words.ErrSourceNotFound):
		return cli.Exit(err.Error(), exitNotFound)
	case errors.Is(err, words.ErrSourceIO):
		return cli.Exit(err.Error(), exitIO)
	default:
		return err
	}
}

// redirectLogs sends the global logger to path, or discards logs when
// path is empty. The returned function restores the previous logger.
func redirectLogs(path string) (func(), error) {
	prev := log.Logger
	if path == "" {
		log.Logger = zerolog.New(io.Discard)
		return func() { log.Logger = prev }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() {
		log.Logger = prev
		f.Close()
	}, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
