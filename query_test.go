/*
 * Copyright (C) 2024 by Jason Figge
 */

package conio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// replyStream feeds a synthetic terminal reply one character at a time
// and counts how many characters the parser consumed.
type replyStream struct {
	data     string
	consumed int
}

func (r *replyStream) next() (int, error) {
	if r.consumed >= len(r.data) {
		return EOF, nil
	}
	c := int(r.data[r.consumed])
	r.consumed++
	return c, nil
}

func Test_ParseCursorReport(t *testing.T) {
	tests := map[string]struct {
		reply       string
		pos         CursorPosition
		ok          bool
		errIs       error
		maxConsumed int
	}{
		"well formed report": {
			reply: "\x1b[5;12R",
			pos:   CursorPosition{X: 12, Y: 5},
			ok:    true,
		},
		"multi digit accumulation": {
			reply: "\x1b[123;456R",
			pos:   CursorPosition{X: 456, Y: 123},
			ok:    true,
		},
		"valid zero position": {
			reply: "\x1b[0;0R",
			pos:   CursorPosition{X: 0, Y: 0},
			ok:    true,
		},
		"first byte not escape": {
			reply:       "x[5;12R",
			maxConsumed: 1,
		},
		"second byte not bracket": {
			reply:       "\x1bX5;12R",
			maxConsumed: 2,
		},
		"letter inside first number": {
			reply: "\x1b[5a;12R",
		},
		"missing terminator": {
			reply: "\x1b[5;12",
		},
		"empty reply": {
			reply:       "",
			maxConsumed: 1,
		},
		"overflow errors out": {
			reply: "\x1b[99999999999999999999;1R",
			errIs: ErrOverflow,
		},
	}
	for name, test := range tests {
		t.Run(name, func(tt *testing.T) {
			stream := &replyStream{data: test.reply}
			pos, ok, err := parseCursorReport(stream.next)
			if test.errIs != nil {
				assert.ErrorIs(tt, err, test.errIs)
			} else {
				assert.NoError(tt, err)
			}
			assert.Equal(tt, test.ok, ok)
			assert.Equal(tt, test.pos, pos, "aborts must leave the position at its zero value")
			if test.maxConsumed > 0 {
				assert.LessOrEqual(tt, stream.consumed, test.maxConsumed)
			}
		})
	}
}

func Test_QueryCursorWritesRequest(t *testing.T) {
	out := &bytes.Buffer{}
	f := newFakeController()
	v := &vtTerminal{in: strings.NewReader("\x1b[3;7R"), out: out, ctrl: f}

	pos, ok, err := v.queryCursor()
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, CursorPosition{X: 7, Y: 3}, pos)
	assert.Equal(t, "\x1b[6n", out.String())
	assert.Equal(t, fakeDefaultMode, f.mode, "query must restore the input mode")
}

func Test_QueryCursorAbortRestoresMode(t *testing.T) {
	out := &bytes.Buffer{}
	f := newFakeController()
	v := &vtTerminal{in: strings.NewReader("garbage"), out: out, ctrl: f}

	pos, ok, err := v.queryCursor()
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, CursorPosition{}, pos)
	assert.Equal(t, fakeDefaultMode, f.mode)
}
