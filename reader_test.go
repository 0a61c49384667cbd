/*
 * Copyright (C) 2024 by Jason Figge
 */

package conio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTerminal(t *testing.T, input string) (*Terminal, *fakeController, *bytes.Buffer) {
	t.Helper()
	f := newFakeController()
	in := strings.NewReader(input)
	out := &bytes.Buffer{}
	term, err := NewTerminal(terminalOptionRaw(&vtTerminal{in: in, out: out, ctrl: f}, in, out))
	require.NoError(t, err)
	return term, f, out
}

func Test_ReadChar(t *testing.T) {
	tests := map[string]struct {
		input string
		echo  EchoMode
		c     int
	}{
		"no echo":       {input: "a", echo: NoEcho, c: 'a'},
		"echo":          {input: "z", echo: Echo, c: 'z'},
		"control":       {input: "\x03", echo: NoEcho, c: 3},
		"end of stream": {input: "", echo: NoEcho, c: EOF},
	}
	for name, test := range tests {
		t.Run(name, func(tt *testing.T) {
			term, f, _ := newTestTerminal(tt, test.input)
			c, err := term.ReadChar(test.echo)
			assert.NoError(tt, err)
			assert.Equal(tt, test.c, c)
			assert.Equal(tt, fakeDefaultMode, f.mode, "mode must be restored after the read")
			if len(f.applied) > 0 {
				raw := f.applied[0]
				assert.False(tt, raw.canonical)
				assert.Equal(tt, test.echo == Echo, raw.echo)
				assert.True(tt, raw.blocking)
			}
		})
	}
}

func Test_PushBack(t *testing.T) {
	term, f, _ := newTestTerminal(t, "xyz")

	c, err := term.PushBack('q')
	assert.NoError(t, err)
	assert.Equal(t, int('q'), c)

	// single slot only; a second push before consumption is rejected
	_, err = term.PushBack('r')
	assert.ErrorIs(t, err, ErrPushbackFull)

	applied := len(f.applied)
	c, err = term.ReadChar(NoEcho)
	assert.NoError(t, err)
	assert.Equal(t, int('q'), c)
	assert.Equal(t, applied, len(f.applied), "pushback read must not enter raw mode")

	// slot drained; stream resumes
	c, err = term.ReadChar(NoEcho)
	assert.NoError(t, err)
	assert.Equal(t, int('x'), c)

	// slot reusable after draining
	_, err = term.PushBack('s')
	assert.NoError(t, err)
}

func Test_PushBackInvalid(t *testing.T) {
	term, _, _ := newTestTerminal(t, "")
	_, err := term.PushBack(-7)
	assert.ErrorIs(t, err, ErrPushbackInvalid)
	_, err = term.PushBack(0x100)
	assert.ErrorIs(t, err, ErrPushbackInvalid)
}

func Test_Pending(t *testing.T) {
	tests := map[string]struct {
		input    string
		pushed   bool
		ready    bool
		rawEntry bool
	}{
		"no input":         {input: "", ready: false, rawEntry: true},
		"input waiting":    {input: "k", ready: true, rawEntry: true},
		"pushback waiting": {input: "", pushed: true, ready: true, rawEntry: false},
	}
	for name, test := range tests {
		t.Run(name, func(tt *testing.T) {
			term, f, _ := newTestTerminal(tt, test.input)
			if test.pushed {
				_, err := term.PushBack('p')
				require.NoError(tt, err)
			}
			ready, err := term.Pending()
			assert.NoError(tt, err)
			assert.Equal(tt, test.ready, ready)
			assert.Equal(tt, fakeDefaultMode, f.mode, "probe must not leave a visible mode change")
			if test.rawEntry {
				require.NotEmpty(tt, f.applied)
				assert.False(tt, f.applied[0].blocking, "probe must use a non-blocking read")
			} else {
				assert.Empty(tt, f.applied)
			}
		})
	}
}

func Test_PendingParksCharacterForNextRead(t *testing.T) {
	term, _, _ := newTestTerminal(t, "ab")

	ready, err := term.Pending()
	require.NoError(t, err)
	require.True(t, ready)

	c, err := term.ReadChar(NoEcho)
	assert.NoError(t, err)
	assert.Equal(t, int('a'), c, "probed character must not be lost")

	c, err = term.ReadChar(NoEcho)
	assert.NoError(t, err)
	assert.Equal(t, int('b'), c)
}

func Test_Read(t *testing.T) {
	term, _, _ := newTestTerminal(t, "ello")
	_, err := term.PushBack('h')
	require.NoError(t, err)

	buf := make([]byte, 8)
	n, err := term.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, 1, n, "pushback drains before the stream")
	assert.Equal(t, byte('h'), buf[0])

	n, err = term.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, "ello", string(buf[:n]))

	n, err = term.Read(nil)
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func Test_ReadLine(t *testing.T) {
	tests := map[string]struct {
		input  string
		line   string
		errIs  error
		pushed int
	}{
		"simple line":        {input: "hello\n", line: "hello"},
		"crlf stripped":      {input: "hello\r\n", line: "hello"},
		"empty line":         {input: "\n", line: ""},
		"eof ends line":      {input: "partial", line: "partial"},
		"exhausted stream":   {input: "", errIs: ErrStreamClosed},
		"pushback prepended": {input: "bc\n", line: "abc", pushed: 'a'},
	}
	for name, test := range tests {
		t.Run(name, func(tt *testing.T) {
			term, _, _ := newTestTerminal(tt, test.input)
			if test.pushed != 0 {
				_, err := term.PushBack(test.pushed)
				require.NoError(tt, err)
			}
			line, err := term.ReadLine()
			if test.errIs != nil {
				assert.ErrorIs(tt, err, test.errIs)
				return
			}
			assert.NoError(tt, err)
			assert.Equal(tt, test.line, line)
		})
	}
}

func Test_Scanf(t *testing.T) {
	term, _, _ := newTestTerminal(t, "42 widgets")
	var n int
	var s string
	count, err := term.Scanf("%d %s", &n, &s)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 42, n)
	assert.Equal(t, "widgets", s)
}
