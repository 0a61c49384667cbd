/*
 * Copyright (C) 2024 by Jason Figge
 */

// Package conio provides low-level terminal control for console
// applications: single key reads (blocking and non-blocking), cursor
// position queries, and screen management. It assumes an interactive
// terminal on the input stream; behavior on pipes or files is
// unspecified.
package conio

import (
	"fmt"
	"io"
	"os"

	"github.com/jfigge/conio/constants/screen"
)

// EOF is returned by read operations when the input stream ends.
const EOF = -1

var (
	ErrNoTerminal          = fmt.Errorf("terminal error - no terminal available")
	ErrTerminalUnavailable = fmt.Errorf("terminal error - unable to access input mode")
	ErrTerminalRestore     = fmt.Errorf("terminal error - unable to restore input mode")
	ErrStreamClosed        = fmt.Errorf("terminal error - stream closed")
	ErrPushbackFull        = fmt.Errorf("terminal error - pushback slot occupied")
	ErrPushbackInvalid     = fmt.Errorf("terminal error - pushback of invalid character")
	ErrOverflow            = fmt.Errorf("terminal error - cursor coordinate overflow")
)

// EchoMode selects whether raw reads reflect input back to the display.
type EchoMode int

const (
	NoEcho EchoMode = iota
	Echo
)

// CursorPosition is a column/row pair using the terminal's 1-based
// origin convention. Both platform paths produce the same convention.
type CursorPosition struct {
	X int
	Y int
}

type TerminalOption func(t *Terminal) error

// Terminal is a handle on one interactive terminal session. It owns the
// single-character pushback slot, so independent Terminals never
// interfere. Operations are synchronous and not safe for concurrent use
// from multiple goroutines; callers must serialize access.
type Terminal struct {
	raw      rawTerminal
	in       io.Reader
	out      io.Writer
	inFile   *os.File
	outFile  *os.File
	pushback int
	pushed   bool
}

// ****** Construction ********************************************************

// NewTerminal binds a Terminal to the process's standard streams, or to
// the files supplied via options. The platform implementation is chosen
// once, here: escape-sequence driven on POSIX, native console calls on
// Windows.
func NewTerminal(options ...TerminalOption) (*Terminal, error) {
	t := &Terminal{
		inFile:   os.Stdin,
		outFile:  os.Stdout,
		pushback: EOF,
	}
	for _, option := range options {
		err := option(t)
		if err != nil {
			return nil, err
		}
	}
	if t.raw == nil {
		raw, err := newRawTerminal(t.inFile, t.outFile)
		if err != nil {
			return nil, err
		}
		t.raw = raw
		t.in = t.inFile
		t.out = t.outFile
	}
	return t, nil
}

// Close resets any lingering text attributes. It does not close the
// underlying streams.
func (t *Terminal) Close() error {
	_, err := io.WriteString(t.out, screen.ResetAttributes)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStreamClosed, err)
	}
	return nil
}

// ****** Pushback ************************************************************

// PushBack stores c so the next read returns it. At most one character
// may be held; a second push before consumption is rejected with
// ErrPushbackFull. Returns c on success.
func (t *Terminal) PushBack(c int) (int, error) {
	if c < 0 || c > 0xff {
		return EOF, fmt.Errorf("%w: %d", ErrPushbackInvalid, c)
	}
	if t.pushed {
		return EOF, ErrPushbackFull
	}
	t.pushback = c
	t.pushed = true
	return c, nil
}

func (t *Terminal) takePushback() (int, bool) {
	if !t.pushed {
		return EOF, false
	}
	c := t.pushback
	t.pushback = EOF
	t.pushed = false
	return c, true
}

// Read implements io.Reader over the terminal's ordinary input,
// draining the pushback slot before touching the stream.
func (t *Terminal) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if c, ok := t.takePushback(); ok {
		p[0] = byte(c)
		return 1, nil
	}
	return t.in.Read(p)
}

// ****** Options *************************************************************

// TerminalOptionFiles redirects the terminal to an explicit pair of
// files, typically a pty slave.
func TerminalOptionFiles(in, out *os.File) TerminalOption {
	return func(t *Terminal) error {
		t.inFile = in
		t.outFile = out
		return nil
	}
}

// terminalOptionRaw injects a prebuilt implementation. Test use only.
func terminalOptionRaw(raw rawTerminal, in io.Reader, out io.Writer) TerminalOption {
	return func(t *Terminal) error {
		t.raw = raw
		t.in = in
		t.out = out
		return nil
	}
}
