/*
 * Copyright (C) 2024 by Jason Figge
 */

package conio

import (
	"fmt"
	"io"

	"github.com/jfigge/conio/constants/cursor"
	"github.com/jfigge/conio/constants/screen"
)

// ****** Cursor **************************************************************

// CursorXY reports the cursor position. ok is false when the terminal's
// reply did not match the report grammar, in which case the zero
// position is returned; a genuine (0,0) report carries ok=true.
func (t *Terminal) CursorXY() (CursorPosition, bool, error) {
	return t.raw.queryCursor()
}

// CursorX returns the cursor column, or 0 when the query aborts.
func (t *Terminal) CursorX() (int, error) {
	pos, _, err := t.raw.queryCursor()
	return pos.X, err
}

// CursorY returns the cursor row, or 0 when the query aborts.
func (t *Terminal) CursorY() (int, error) {
	pos, _, err := t.raw.queryCursor()
	return pos.Y, err
}

// MoveTo positions the cursor at column x, row y (1-based).
func (t *Terminal) MoveTo(x, y int) error {
	return t.raw.moveCursor(x, y)
}

func (t *Terminal) CursorUp(n int) error {
	return t.commandf(screen.MoveUp, n)
}
func (t *Terminal) CursorDown(n int) error {
	return t.commandf(screen.MoveDown, n)
}
func (t *Terminal) CursorLeft(n int) error {
	return t.commandf(screen.MoveLeft, n)
}
func (t *Terminal) CursorRight(n int) error {
	return t.commandf(screen.MoveRight, n)
}
func (t *Terminal) HideCursor() error {
	return t.command(cursor.Hide)
}
func (t *Terminal) ShowCursor() error {
	return t.command(cursor.Show)
}

// ****** Screen **************************************************************

// ClearScreen resets text attributes, erases the screen, and homes the
// cursor.
func (t *Terminal) ClearScreen() error {
	return t.raw.clearScreen()
}

// ResetScreen performs a full terminal reset, dropping scrollback and
// restoring power-on defaults.
func (t *Terminal) ResetScreen() error {
	return t.raw.resetScreen()
}

// DeleteLine erases the line under the cursor without moving it.
func (t *Terminal) DeleteLine() error {
	return t.command(screen.ClearLine)
}

// ****** Character output ****************************************************

// PutChar writes a single character and returns its code.
func (t *Terminal) PutChar(c int) (int, error) {
	_, err := t.out.Write([]byte{byte(c)})
	if err != nil {
		return EOF, fmt.Errorf("%w: %v", ErrStreamClosed, err)
	}
	return c, nil
}

// Puts writes s followed by a newline.
func (t *Terminal) Puts(s string) error {
	_, err := io.WriteString(t.out, s+"\n")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStreamClosed, err)
	}
	return nil
}

// Printf writes formatted output to the terminal.
func (t *Terminal) Printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(t.out, format, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStreamClosed, err)
	}
	return nil
}

// ****** Helpers *************************************************************

func (t *Terminal) command(seq string) error {
	_, err := io.WriteString(t.out, seq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStreamClosed, err)
	}
	return nil
}

func (t *Terminal) commandf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(t.out, format, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStreamClosed, err)
	}
	return nil
}
