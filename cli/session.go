package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	sweeper "github.com/Guayota/pipebomb-sweeper"
)

// Options configures session creation
type Options struct {
	Rows    int // Grid height (default: 8)
	Cols    int // Grid width (default: 8)
	Density int // Hazard percentage, 0-100 (default: 16)

	Title         string         // Title shown in the field border
	Glyphs        sweeper.Glyphs // Glyph overrides (zero value: defaults)
	ShowStatusBar bool           // Render a status line under the field

	Input  io.Reader      // Key source (default: os.Stdin)
	Output io.Writer      // Render sink (default: os.Stdout)
	Logger *logrus.Logger // Event log (default: discard)
}

// Session drives one game of pipebomb-sweeper in a terminal. It owns
// the raw-mode state of the host terminal and guarantees restoration on
// every exit path; the game state itself lives in a sweeper.Field.
type Session struct {
	field    *sweeper.Field
	opts     Options
	renderer *Renderer
	input    *InputHandler
	log      *logrus.Logger
	out      io.Writer

	// Original terminal state for restoration
	rawFd       int
	oldState    *term.State
	restoreOnce sync.Once
}

// New creates a session and its field. Zero or negative dimensions and
// a zero density fall back to the 8x8, 16% defaults.
func New(opts Options) (*Session, error) {
	if opts.Rows <= 0 {
		opts.Rows = 8
	}
	if opts.Cols <= 0 {
		opts.Cols = 8
	}
	if opts.Density <= 0 {
		opts.Density = 16
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
		opts.Logger.SetOutput(io.Discard)
	}

	field, err := sweeper.New(opts.Rows, opts.Cols, opts.Density)
	if err != nil {
		return nil, fmt.Errorf("failed to create field: %w", err)
	}
	if opts.Glyphs != (sweeper.Glyphs{}) {
		field.SetGlyphs(opts.Glyphs)
	}

	return &Session{
		field:    field,
		opts:     opts,
		renderer: NewRenderer(opts.Output, opts.Title, opts.ShowStatusBar),
		input:    NewInputHandler(opts.Input),
		log:      opts.Logger,
		out:      opts.Output,
		rawFd:    -1,
	}, nil
}

// Field returns the session's game state
func (s *Session) Field() *sweeper.Field {
	return s.field
}

// Start prepares the terminal: raw (non-canonical, no-echo) mode when
// the input is a real terminal, hidden host cursor, alternate screen.
// Every Start must be paired with a Stop.
func (s *Session) Start() error {
	if f, ok := s.opts.Input.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		oldState, err := term.MakeRaw(int(f.Fd()))
		if err != nil {
			return fmt.Errorf("failed to enter raw mode: %w", err)
		}
		s.rawFd = int(f.Fd())
		s.oldState = oldState
	}

	// Hide cursor, enable alternate screen buffer, clear
	fmt.Fprint(s.out, "\033[?25l\033[?1049h\033[2J\033[H")
	return nil
}

// Stop restores the terminal. Safe to call more than once and from a
// signal handler; only the first call takes effect.
func (s *Session) Stop() {
	s.restoreOnce.Do(func() {
		// Leave alternate screen, show cursor, reset attributes
		fmt.Fprint(s.out, "\033[?1049l\033[?25h\033[0m")

		if s.oldState != nil {
			term.Restore(s.rawFd, s.oldState)
		}
	})
}

// RenderFinal redraws the current snapshot. The end-of-round frame
// drawn inside Run lives in the alternate screen buffer, which Stop
// discards; callers invoke this after Stop so the revealed field stays
// visible on the normal screen alongside the end message.
func (s *Session) RenderFinal() error {
	return s.renderer.Render(s.field.Snapshot(), "")
}

// Run randomizes the field and processes player commands until the
// round ends or the player quits. Each command runs to completion,
// cascades included, before the next key is read; the field is redrawn
// after every command.
//
// The returned outcome is Defeat when a hazard was opened, Victory when
// every safe cell ended open, and InProgress on quit or end of input.
func (s *Session) Run() (sweeper.Outcome, error) {
	s.field.Randomize()
	s.log.WithFields(logrus.Fields{
		"rows":    s.field.Rows(),
		"cols":    s.field.Cols(),
		"hazards": s.field.HazardCount(),
	}).Info("round started")

	if err := s.renderer.Render(s.field.Snapshot(), ""); err != nil {
		return s.field.Outcome(), err
	}

	for {
		cmd, err := s.input.ReadCommand()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return s.field.Outcome(), nil
			}
			return s.field.Outcome(), fmt.Errorf("failed to read command: %w", err)
		}

		notice := ""
		defeated := false

		switch cmd {
		case CmdUp:
			s.field.MoveCursor(sweeper.DirUp)
		case CmdDown:
			s.field.MoveCursor(sweeper.DirDown)
		case CmdLeft:
			s.field.MoveCursor(sweeper.DirLeft)
		case CmdRight:
			s.field.MoveCursor(sweeper.DirRight)
		case CmdFlag:
			s.field.FlagAtCursor()
		case CmdOpen:
			res := s.field.OpenAtCursor(false)
			if res == sweeper.ConfirmFlagged {
				ok, err := s.confirm("Are you sure you want to open this flagged cell?")
				if err != nil {
					return s.field.Outcome(), err
				}
				if ok {
					res = s.field.OpenAtCursor(true)
				}
			}
			if res == sweeper.CellExploded {
				row, col := s.field.Cursor()
				s.log.WithFields(logrus.Fields{"row": row, "col": col}).Info("hazard opened")
				defeated = true
			}
		case CmdReset:
			ok, err := s.confirm("Are you sure you want to reset?")
			if err != nil {
				return s.field.Outcome(), err
			}
			if ok {
				s.field.Randomize()
				s.log.WithFields(logrus.Fields{
					"hazards": s.field.HazardCount(),
				}).Info("field reset")
			}
		case CmdQuit:
			ok, err := s.confirm("Are you sure you want to quit?")
			if err != nil {
				return s.field.Outcome(), err
			}
			if ok {
				return s.field.Outcome(), nil
			}
		case CmdUnknown:
			notice = "unrecognised command"
		}

		if defeated {
			s.field.RevealAllHazards()
			if err := s.renderer.Render(s.field.Snapshot(), ""); err != nil {
				return s.field.Outcome(), err
			}
			return s.field.Outcome(), nil
		}
		if s.field.Victory() {
			s.field.RevealAllHazards()
			s.log.Info("all safe cells open")
			if err := s.renderer.Render(s.field.Snapshot(), ""); err != nil {
				return s.field.Outcome(), err
			}
			return s.field.Outcome(), nil
		}

		if err := s.renderer.Render(s.field.Snapshot(), notice); err != nil {
			return s.field.Outcome(), err
		}
	}
}

// confirm shows a Y/N prompt under the field and blocks for the answer
func (s *Session) confirm(question string) (bool, error) {
	if err := s.renderer.Prompt(question); err != nil {
		return false, err
	}
	ok, err := s.input.Confirm()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return ok, err
}
