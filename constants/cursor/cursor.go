/*
 * Copyright (C) 2024 by Jason Figge
 */

package cursor

const (
	// Show / Hide cursor
	Show = "\u001b[?25h"
	Hide = "\u001b[?25l"

	// Report asks the terminal to report the cursor position. The reply
	// arrives on the input stream as ESC [ row ; col R.
	Report = "\u001b[6n"
)
