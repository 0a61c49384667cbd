/*
 * Copyright (C) 2024 by Jason Figge
 */

package conio

import (
	"fmt"
)

// terminalMode is an opaque capture of a terminal input configuration.
// The concrete type belongs to the modeController that produced it and
// never outlives the operation that took it.
type terminalMode interface{}

// modeController reads and writes the input mode of a single terminal.
type modeController interface {
	// snapshot captures the current input mode.
	snapshot() (terminalMode, error)
	// rawMode derives a raw variant of base: canonical input disabled,
	// echo per the flag, and an immediate-return read when blocking is
	// false.
	rawMode(base terminalMode, echo EchoMode, blocking bool) terminalMode
	// apply writes a previously captured or derived mode.
	apply(mode terminalMode) error
}

// modeGuard holds the mode captured before entering raw input. release
// reapplies it unconditionally and is safe to call more than once.
type modeGuard struct {
	ctrl  modeController
	saved terminalMode
	done  bool
}

func acquireRaw(ctrl modeController, echo EchoMode, blocking bool) (*modeGuard, error) {
	saved, err := ctrl.snapshot()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTerminalUnavailable, err)
	}
	err = ctrl.apply(ctrl.rawMode(saved, echo, blocking))
	if err != nil {
		// Nothing was changed; the terminal keeps its original mode.
		return nil, fmt.Errorf("%w: %v", ErrTerminalUnavailable, err)
	}
	return &modeGuard{ctrl: ctrl, saved: saved}, nil
}

func (g *modeGuard) release() error {
	if g.done {
		return nil
	}
	g.done = true
	err := g.ctrl.apply(g.saved)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTerminalRestore, err)
	}
	return nil
}

// withRawMode runs fn with the terminal in raw input mode and restores
// the captured mode on every path. A restore failure leaves the
// terminal in an unknown state and therefore outranks any error from fn.
func withRawMode(ctrl modeController, echo EchoMode, blocking bool, fn func() error) error {
	guard, err := acquireRaw(ctrl, echo, blocking)
	if err != nil {
		return err
	}
	fnErr := fn()
	if err = guard.release(); err != nil {
		return err
	}
	return fnErr
}
