package scanio

import (
	"bytes"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/hnimtadd/scanio/logger"
	"github.com/hnimtadd/scanio/terminal/scan"
	"github.com/hnimtadd/scanio/terminal/sequences/csi"
	"github.com/hnimtadd/scanio/terminal/sequences/osc"
	"github.com/hnimtadd/scanio/terminal/theme"
)

// Options configures a Console.
type Options struct {
	// Capacity bounds how long a single escape sequence may grow.
	// Zero means scan.DefaultCapacity.
	Capacity int

	Logger logger.Logger
}

// Console drives one scanner over a terminal byte source. It owns no
// terminal handle and performs no mode switching; it consumes bytes from
// whatever source the caller configured and hands back tokens and
// decoded replies.
type Console struct {
	scanner *scan.Scanner
	logger  logger.Logger
}

func NewConsole(src scan.Source, opts Options) *Console {
	if opts.Logger == nil {
		opts.Logger = logger.Nop
	}
	return &Console{
		scanner: scan.NewScanner(src, scan.Options{
			Capacity: opts.Capacity,
			Logger:   opts.Logger,
		}),
		logger: opts.Logger,
	}
}

// Scanner exposes the underlying scanner for callers that need raw
// access or manual recovery.
func (c *Console) Scanner() *scan.Scanner { return c.scanner }

// ReadToken produces the next token from the source. See
// scan.Scanner.ReadToken for the timeout and recovery contract.
func (c *Console) ReadToken() (scan.Token, error) {
	return c.scanner.ReadToken()
}

// ReadColorReply reads one token and decodes it as the OSC reply to a
// color query such as theme.QueryBackground.
func (c *Console) ReadColorReply() (*osc.Reply, error) {
	tok, err := c.scanner.ReadToken()
	if err != nil {
		return nil, err
	}
	return osc.Parse(tok)
}

// ReadCursorPosition reads one token and decodes it as the CSI R reply
// to theme.QueryCursorPosition.
func (c *Console) ReadCursorPosition() (row, col uint16, err error) {
	tok, err := c.scanner.ReadToken()
	if err != nil {
		return 0, 0, err
	}
	return csi.CursorPosition(tok)
}

// ReadTheme reads the two replies to theme.QueryForeground and
// theme.QueryBackground, in that order, and builds the terminal's theme.
// The caller writes the queries itself before calling.
func (c *Console) ReadTheme() (theme.Theme, error) {
	fg, err := c.ReadColorReply()
	if err != nil {
		return theme.Theme{}, err
	}
	bg, err := c.ReadColorReply()
	if err != nil {
		return theme.Theme{}, err
	}
	return theme.FromReplies(fg, bg)
}

// Pump reads tokens and dispatches them to handler until the source runs
// dry. Recoverable classification errors are logged and skipped; a
// timeout with nothing buffered returns nil; an unreadable source
// returns its error.
func (c *Console) Pump(handler any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("panic in Pump", "recovered", r)
			fmt.Println(string(debug.Stack()))
			err = fmt.Errorf("panic in Pump: %v", r)
		}
	}()

	for {
		tok, err := c.scanner.ReadToken()
		if err != nil {
			var scanErr *scan.Error
			switch {
			case errors.Is(err, scan.ErrNoData):
				return nil
			case errors.As(err, &scanErr) && scanErr.Kind.Recoverable():
				c.logger.Warn("skipping unscannable input", "cause", err)
				continue
			default:
				return err
			}
		}
		c.dispatch(tok, handler)
	}
}

// NewBytesSource wraps in-memory bytes as a Source whose exhaustion
// reads as a timeout, for scanning captured streams.
func NewBytesSource(p []byte) scan.Source {
	return bytes.NewReader(p)
}
