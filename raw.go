/*
 * Copyright (C) 2024 by Jason Figge
 */

package conio

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/jfigge/conio/constants/screen"
)

// rawTerminal is the platform capability surface behind a Terminal.
// POSIX terminals drive it with escape sequences (vtTerminal); Windows
// consoles use native calls (winTerminal). Both report coordinates with
// the same 1-based column/row convention.
type rawTerminal interface {
	readChar(echo EchoMode) (int, error)
	pollChar() (int, bool, error)
	queryCursor() (CursorPosition, bool, error)
	moveCursor(x, y int) error
	clearScreen() error
	resetScreen() error
}

// vtTerminal implements rawTerminal over a VT100-compatible stream
// pair, switching input modes through a modeController.
type vtTerminal struct {
	in   io.Reader
	out  io.Writer
	ctrl modeController
}

// readChar performs exactly one blocking single-character read in raw
// mode, restoring the prior mode before returning.
func (v *vtTerminal) readChar(echo EchoMode) (int, error) {
	c := EOF
	err := withRawMode(v.ctrl, echo, true, func() error {
		var err error
		c, err = v.readByte()
		return err
	})
	return c, err
}

// pollChar attempts a single non-blocking read. The second result
// reports whether a character was available. The input mode is restored
// on every path, including when nothing was read.
func (v *vtTerminal) pollChar() (int, bool, error) {
	c, ready := EOF, false
	err := withRawMode(v.ctrl, NoEcho, false, func() error {
		var buf [1]byte
		n, err := v.in.Read(buf[:])
		if n == 1 {
			c = int(buf[0])
			ready = true
			return nil
		}
		if err == nil || errors.Is(err, io.EOF) || errors.Is(err, syscall.EAGAIN) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrStreamClosed, err)
	})
	return c, ready, err
}

// readByte reads one character from the input stream. End of stream
// maps to the EOF sentinel rather than an error.
func (v *vtTerminal) readByte() (int, error) {
	var buf [1]byte
	n, err := v.in.Read(buf[:])
	if n == 1 {
		return int(buf[0]), nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return EOF, nil
	}
	return EOF, fmt.Errorf("%w: %v", ErrStreamClosed, err)
}

func (v *vtTerminal) moveCursor(x, y int) error {
	return v.command(fmt.Sprintf(screen.SetPositionAlt, y, x))
}

func (v *vtTerminal) clearScreen() error {
	// Attribute reset, erase, then home, emitted as one write.
	return v.command(screen.ResetAttributes + screen.ClearUp + screen.Home)
}

func (v *vtTerminal) resetScreen() error {
	return v.command(screen.Reset)
}

func (v *vtTerminal) command(seq string) error {
	_, err := io.WriteString(v.out, seq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStreamClosed, err)
	}
	return nil
}
