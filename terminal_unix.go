/*
 * Copyright (C) 2024 by Jason Figge
 */

//go:build unix

package conio

import (
	"os"

	"golang.org/x/term"
)

// newRawTerminal selects the escape-sequence implementation for POSIX
// terminals. The input must be an interactive terminal; pipes and files
// cannot honor the raw-mode contract.
func newRawTerminal(in, out *os.File) (rawTerminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNoTerminal
	}
	return &vtTerminal{
		in:   in,
		out:  out,
		ctrl: &termiosController{fd: fd},
	}, nil
}
