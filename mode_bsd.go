/*
 * Copyright (C) 2024 by Jason Figge
 */

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package conio

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TIOCGETA
	ioctlWriteTermios = unix.TIOCSETA
)
