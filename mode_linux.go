/*
 * Copyright (C) 2024 by Jason Figge
 */

//go:build linux || aix || solaris

package conio

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETS
)
