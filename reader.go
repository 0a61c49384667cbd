/*
 * Copyright (C) 2024 by Jason Figge
 */

package conio

import (
	"fmt"
	"strings"
)

// ****** Character input *****************************************************

// ReadChar blocks until one character is available and returns its
// code, or EOF at end of stream. The terminal is held in raw mode only
// for the duration of the read; the prior mode is restored before
// returning, on all paths. A pushed-back character is returned first
// without entering raw mode.
func (t *Terminal) ReadChar(echo EchoMode) (int, error) {
	if c, ok := t.takePushback(); ok {
		return c, nil
	}
	return t.raw.readChar(echo)
}

// Pending reports whether at least one character is available without
// consuming it and without blocking. Any character read during the
// probe is parked in the pushback slot for the next read. The input
// mode is restored before returning even when no input was available.
func (t *Terminal) Pending() (bool, error) {
	if t.pushed {
		return true, nil
	}
	c, ready, err := t.raw.pollChar()
	if err != nil || !ready {
		return false, err
	}
	if _, err = t.PushBack(c); err != nil {
		return false, err
	}
	return true, nil
}

// ****** Line input **********************************************************

// ReadLine reads one line of ordinary canonical-mode input, without the
// trailing newline. The terminal's own line editing applies. A line cut
// short by end of stream is returned with a nil error; end of stream
// with nothing read reports ErrStreamClosed.
func (t *Terminal) ReadLine() (string, error) {
	var sb strings.Builder
	var buf [1]byte
	for {
		n, err := t.Read(buf[:])
		if n == 1 {
			if buf[0] == '\n' {
				break
			}
			if buf[0] != '\r' {
				sb.WriteByte(buf[0])
			}
			continue
		}
		if err != nil {
			if sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", fmt.Errorf("%w: %v", ErrStreamClosed, err)
		}
	}
	return sb.String(), nil
}

// Scanf reads formatted ordinary input, honoring the pushback slot.
func (t *Terminal) Scanf(format string, args ...interface{}) (int, error) {
	return fmt.Fscanf(t, format, args...)
}
