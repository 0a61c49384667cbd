/*
 * Copyright (C) 2024 by Jason Figge
 */

//go:build windows

package conio

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                          = windows.NewLazySystemDLL("kernel32.dll")
	procFillConsoleOutputCharacterW   = kernel32.NewProc("FillConsoleOutputCharacterW")
	procFillConsoleOutputAttribute    = kernel32.NewProc("FillConsoleOutputAttribute")
	procGetNumberOfConsoleInputEvents = kernel32.NewProc("GetNumberOfConsoleInputEvents")
	procPeekConsoleInputW             = kernel32.NewProc("PeekConsoleInputW")
	procSetConsoleTextAttribute       = kernel32.NewProc("SetConsoleTextAttribute")
	procSetConsoleCursorPosition      = kernel32.NewProc("SetConsoleCursorPosition")
)

const (
	keyEvent         = 0x0001
	defaultAttribute = 0x0007 // light gray on black
)

// inputRecord mirrors the console INPUT_RECORD structure with its
// KEY_EVENT_RECORD union member.
type inputRecord struct {
	eventType uint16
	_         uint16
	keyDown   int32
	repeat    uint16
	vkey      uint16
	scan      uint16
	char      uint16
	state     uint32
}

// winTerminal implements rawTerminal with native console calls instead
// of escape sequences. Cursor coordinates are converted from the
// console's 0-based cells to the 1-based convention shared with the
// escape-sequence path.
type winTerminal struct {
	in   *os.File
	out  *os.File
	hin  windows.Handle
	hout windows.Handle
	ctrl modeController
}

func newRawTerminal(in, out *os.File) (rawTerminal, error) {
	hin := windows.Handle(in.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(hin, &mode); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoTerminal, err)
	}
	return &winTerminal{
		in:   in,
		out:  out,
		hin:  hin,
		hout: windows.Handle(out.Fd()),
		ctrl: &consoleModeController{handle: hin},
	}, nil
}

// ****** Mode controller *****************************************************

type consoleModeController struct {
	handle windows.Handle
}

type consoleMode struct {
	flags uint32
}

func (c *consoleModeController) snapshot() (terminalMode, error) {
	var flags uint32
	if err := windows.GetConsoleMode(c.handle, &flags); err != nil {
		return nil, err
	}
	return &consoleMode{flags: flags}, nil
}

func (c *consoleModeController) rawMode(base terminalMode, echo EchoMode, blocking bool) terminalMode {
	flags := base.(*consoleMode).flags
	flags &^= windows.ENABLE_LINE_INPUT | windows.ENABLE_PROCESSED_INPUT
	if echo == Echo {
		flags |= windows.ENABLE_ECHO_INPUT
	} else {
		flags &^= windows.ENABLE_ECHO_INPUT
	}
	// Read timing is handled by peeking the event queue, not the mode.
	return &consoleMode{flags: flags}
}

func (c *consoleModeController) apply(mode terminalMode) error {
	return windows.SetConsoleMode(c.handle, mode.(*consoleMode).flags)
}

// ****** Character input *****************************************************

func (w *winTerminal) readChar(echo EchoMode) (int, error) {
	c := EOF
	err := withRawMode(w.ctrl, echo, true, func() error {
		var buf [1]byte
		n, err := w.in.Read(buf[:])
		if n == 1 {
			c = int(buf[0])
			// Console echo only applies to line input; reflect manually.
			if echo == Echo {
				_, _ = w.out.Write(buf[:])
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrStreamClosed, err)
		}
		return nil
	})
	return c, err
}

func (w *winTerminal) pollChar() (int, bool, error) {
	c, ready := EOF, false
	err := withRawMode(w.ctrl, NoEcho, false, func() error {
		ok, err := w.keyQueued()
		if err != nil || !ok {
			return err
		}
		var buf [1]byte
		n, err := w.in.Read(buf[:])
		if n == 1 {
			c = int(buf[0])
			ready = true
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrStreamClosed, err)
		}
		return nil
	})
	return c, ready, err
}

// keyQueued reports whether a key-down event with a character is
// waiting in the console input queue.
func (w *winTerminal) keyQueued() (bool, error) {
	var count uint32
	r1, _, err := procGetNumberOfConsoleInputEvents.Call(
		uintptr(w.hin), uintptr(unsafe.Pointer(&count)))
	if r1 == 0 {
		return false, fmt.Errorf("%w: %v", ErrTerminalUnavailable, err)
	}
	if count == 0 {
		return false, nil
	}
	records := make([]inputRecord, count)
	var read uint32
	r1, _, err = procPeekConsoleInputW.Call(
		uintptr(w.hin), uintptr(unsafe.Pointer(&records[0])),
		uintptr(count), uintptr(unsafe.Pointer(&read)))
	if r1 == 0 {
		return false, fmt.Errorf("%w: %v", ErrTerminalUnavailable, err)
	}
	for _, record := range records[:read] {
		if record.eventType == keyEvent && record.keyDown != 0 && record.char != 0 {
			return true, nil
		}
	}
	return false, nil
}

// ****** Cursor and screen ***************************************************

// queryCursor uses the console's direct primitive; no escape exchange
// is needed, and the report cannot abort.
func (w *winTerminal) queryCursor() (CursorPosition, bool, error) {
	info, err := w.bufferInfo()
	if err != nil {
		return CursorPosition{}, false, err
	}
	return CursorPosition{
		X: int(info.CursorPosition.X) + 1,
		Y: int(info.CursorPosition.Y) + 1,
	}, true, nil
}

func (w *winTerminal) moveCursor(x, y int) error {
	pos := windows.Coord{X: int16(x - 1), Y: int16(y - 1)}
	r1, _, callErr := procSetConsoleCursorPosition.Call(
		uintptr(w.hout), coordArg(pos))
	if r1 == 0 {
		return fmt.Errorf("%w: %v", ErrTerminalUnavailable, callErr)
	}
	return nil
}

func (w *winTerminal) clearScreen() error {
	info, err := w.bufferInfo()
	if err != nil {
		return err
	}
	cells := uint32(info.Size.X) * uint32(info.Size.Y)
	origin := windows.Coord{}
	var written uint32
	r1, _, callErr := procFillConsoleOutputCharacterW.Call(
		uintptr(w.hout), uintptr(' '), uintptr(cells),
		coordArg(origin), uintptr(unsafe.Pointer(&written)))
	if r1 == 0 {
		return fmt.Errorf("%w: %v", ErrTerminalUnavailable, callErr)
	}
	r1, _, callErr = procFillConsoleOutputAttribute.Call(
		uintptr(w.hout), uintptr(info.Attributes), uintptr(cells),
		coordArg(origin), uintptr(unsafe.Pointer(&written)))
	if r1 == 0 {
		return fmt.Errorf("%w: %v", ErrTerminalUnavailable, callErr)
	}
	return w.moveCursor(1, 1)
}

func (w *winTerminal) resetScreen() error {
	r1, _, callErr := procSetConsoleTextAttribute.Call(
		uintptr(w.hout), uintptr(defaultAttribute))
	if r1 == 0 {
		return fmt.Errorf("%w: %v", ErrTerminalUnavailable, callErr)
	}
	return w.clearScreen()
}

func (w *winTerminal) bufferInfo() (*windows.ConsoleScreenBufferInfo, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(w.hout, &info); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTerminalUnavailable, err)
	}
	return &info, nil
}

// coordArg packs a Coord into the single machine word the console API
// expects for by-value COORD parameters.
func coordArg(c windows.Coord) uintptr {
	return uintptr(uint32(uint16(c.X)) | uint32(uint16(c.Y))<<16)
}
