/*
 * Copyright (C) 2024 by Jason Figge
 */

package conio_test

import (
	"fmt"

	"github.com/jfigge/conio"
)

func Example() {
	term, err := conio.NewTerminal()
	if err != nil {
		fmt.Println(err)
		return
	}
	defer func() { _ = term.Close() }()

	_ = term.Puts("press any key...")
	c, err := term.ReadChar(conio.NoEcho)
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = term.Printf("key code %d\n", c)
}

func ExampleTerminal_CursorXY() {
	term, err := conio.NewTerminal()
	if err != nil {
		fmt.Println(err)
		return
	}
	defer func() { _ = term.Close() }()

	pos, ok, err := term.CursorXY()
	if err != nil || !ok {
		// terminal did not produce a position report
		return
	}
	_ = term.MoveTo(1, 1)
	_ = term.Printf("was at column %d, row %d", pos.X, pos.Y)
	_ = term.MoveTo(pos.X, pos.Y)
}
