/*
 * Copyright (C) 2024 by Jason Figge
 */

//go:build unix

package conio

import (
	"golang.org/x/sys/unix"
)

// termiosController switches a descriptor's termios settings. Canonical
// input is cleared for raw reads; echo and the VMIN/VTIME read timing
// are set per call. Output processing is left untouched so escape
// sequences render normally.
type termiosController struct {
	fd int
}

type termiosMode struct {
	attr unix.Termios
}

func (c *termiosController) snapshot() (terminalMode, error) {
	attr, err := unix.IoctlGetTermios(c.fd, ioctlReadTermios)
	if err != nil {
		return nil, err
	}
	return &termiosMode{attr: *attr}, nil
}

func (c *termiosController) rawMode(base terminalMode, echo EchoMode, blocking bool) terminalMode {
	mode := base.(*termiosMode).attr
	mode.Lflag &^= unix.ICANON
	if echo == Echo {
		mode.Lflag |= unix.ECHO
	} else {
		mode.Lflag &^= unix.ECHO
	}
	if blocking {
		mode.Cc[unix.VMIN] = 1
		mode.Cc[unix.VTIME] = 0
	} else {
		// Return immediately whether or not a character is waiting.
		mode.Cc[unix.VMIN] = 0
		mode.Cc[unix.VTIME] = 0
	}
	return &termiosMode{attr: mode}
}

func (c *termiosController) apply(mode terminalMode) error {
	m := mode.(*termiosMode)
	return unix.IoctlSetTermios(c.fd, ioctlWriteTermios, &m.attr)
}
