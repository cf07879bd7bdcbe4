// Command pipebomb-sweeper runs the terminal grid-reveal puzzle.
//
// Usage:
//
//	pipebomb-sweeper                      # 8x8 field, 16% hazard density
//	pipebomb-sweeper 12 20 25             # rows, cols, density percent
//	pipebomb-sweeper -c game.yaml         # settings from a config file
//	pipebomb-sweeper --log-file game.log  # structured event log
//
// Positional arguments that fail to parse fall back to the defaults.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	sweeper "github.com/Guayota/pipebomb-sweeper"
	sweepcli "github.com/Guayota/pipebomb-sweeper/cli"
	"github.com/Guayota/pipebomb-sweeper/config"
)

func main() {
	app := cli.NewApp()
	app.Name = "pipebomb-sweeper"
	app.Usage = "single-player terminal grid-reveal puzzle"
	app.ArgsUsage = "[rows [cols [density]]]"
	app.HideVersion = true
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "load settings from YAML `FILE`",
		},
		cli.StringFlag{
			Name:  "log-file",
			Usage: "append structured event logs to `FILE`",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Positional arguments override the config; unparsable values keep
	// the configured defaults.
	args := c.Args()
	if v, err := strconv.Atoi(args.Get(0)); err == nil {
		cfg.Game.Rows = v
	}
	if v, err := strconv.Atoi(args.Get(1)); err == nil {
		cfg.Game.Cols = v
	}
	if v, err := strconv.Atoi(args.Get(2)); err == nil {
		cfg.Game.Density = v
	}
	if lf := c.String("log-file"); lf != "" {
		cfg.Log.File = lf
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	sess, err := sweepcli.New(sweepcli.Options{
		Rows:          cfg.Game.Rows,
		Cols:          cfg.Game.Cols,
		Density:       cfg.Game.Density,
		Title:         cfg.UI.Title,
		Glyphs:        cfg.UI.Glyphs.Runes(),
		ShowStatusBar: !cfg.UI.HideStatusBar,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	if err := sess.Start(); err != nil {
		return err
	}

	// Restore the terminal on signals too; Stop is idempotent
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		sess.Stop()
		os.Exit(1)
	}()

	outcome, runErr := sess.Run()
	sess.Stop()
	if runErr != nil {
		return runErr
	}

	// Stop switched back to the normal screen; redraw the final board
	// there so the player sees the revealed field with the end message.
	if err := sess.RenderFinal(); err != nil {
		return err
	}

	switch outcome {
	case sweeper.Defeat:
		fmt.Println("Whoops!")
	case sweeper.Victory:
		fmt.Println("You won!")
	default:
		fmt.Println("Bye-bye!")
	}
	return nil
}

// newLogger builds the event logger. Stdout is the game surface, so
// logs either go to a file or nowhere.
func newLogger(cfg config.LogConfig) (*logrus.Logger, func(), error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.File == "" {
		logger.SetOutput(io.Discard)
		return logger, func() {}, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, func() { f.Close() }, nil
}
