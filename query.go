/*
 * Copyright (C) 2024 by Jason Figge
 */

package conio

import (
	"fmt"
	"io"

	"github.com/jfigge/conio/constants/cursor"
)

const (
	escapeChar     = 0x1b
	bracketChar    = '['
	separatorChar  = ';'
	terminatorChar = 'R'

	// maxCoordinate bounds digit accumulation well below integer
	// overflow. No real terminal reports coordinates anywhere near it.
	maxCoordinate = 1 << 24
)

// queryCursor writes the position request and parses the escape-coded
// reply one character at a time, echo suppressed throughout. A reply
// that does not match the report grammar yields ok=false and the zero
// position; the parser stops at the first mismatched character.
func (v *vtTerminal) queryCursor() (CursorPosition, bool, error) {
	var pos CursorPosition
	var ok bool
	err := withRawMode(v.ctrl, NoEcho, true, func() error {
		_, err := io.WriteString(v.out, cursor.Report)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrStreamClosed, err)
		}
		pos, ok, err = parseCursorReport(v.readByte)
		return err
	})
	return pos, ok, err
}

// parseCursorReport consumes one cursor report, ESC '[' row ';' col 'R',
// from next. On a malformed reply it aborts immediately, consuming at
// most one character beyond the mismatch, and reports ok=false with the
// position left at its zero value. A valid "ESC[0;0R" is therefore
// distinguishable from an abort only by the ok flag.
func parseCursorReport(next func() (int, error)) (CursorPosition, bool, error) {
	var pos CursorPosition

	c, err := next()
	if err != nil {
		return pos, false, err
	}
	if c != escapeChar {
		return pos, false, nil
	}

	c, err = next()
	if err != nil {
		return pos, false, err
	}
	if c != bracketChar {
		return pos, false, nil
	}

	row, ok, err := accumulate(next, separatorChar)
	if !ok || err != nil {
		return pos, false, err
	}
	col, ok, err := accumulate(next, terminatorChar)
	if !ok || err != nil {
		return pos, false, err
	}

	pos.X = col
	pos.Y = row
	return pos, true, nil
}

// accumulate reads decimal digits until stop, building value*10+digit.
// A non-digit before stop aborts; exceeding maxCoordinate is an error.
func accumulate(next func() (int, error), stop int) (int, bool, error) {
	value := 0
	for {
		c, err := next()
		if err != nil {
			return 0, false, err
		}
		if c == stop {
			return value, true, nil
		}
		if c < '0' || c > '9' {
			return 0, false, nil
		}
		if value > maxCoordinate {
			return 0, false, fmt.Errorf("%w: beyond %d", ErrOverflow, maxCoordinate)
		}
		value = value*10 + (c - '0')
	}
}
