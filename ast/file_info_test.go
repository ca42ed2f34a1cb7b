package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourcePos(t *testing.T) {
	t.Parallel()

	src := []byte("abc\n\tdef\nghi")
	info := NewFileInfo("test.stmt", src)
	info.AddLine(4)
	info.AddLine(9)

	pos := info.SourcePos(0)
	assert.Equal(t, "test.stmt:1:1", pos.String())

	pos = info.SourcePos(2)
	assert.Equal(t, 1, pos.Line)
	assert.Equal(t, 3, pos.Col)

	// tabs advance to the next 8-column tabstop
	pos = info.SourcePos(5)
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 9, pos.Col)

	pos = info.SourcePos(10)
	assert.Equal(t, 3, pos.Line)
	assert.Equal(t, 2, pos.Col)
}

func TestSourceLine(t *testing.T) {
	t.Parallel()

	info := NewFileInfo("test.stmt", []byte("abc\r\ndef\n"))
	info.AddLine(5)
	info.AddLine(9)

	assert.Equal(t, "abc", info.SourceLine(1))
	assert.Equal(t, "def", info.SourceLine(2))
	assert.Equal(t, "", info.SourceLine(3))
	assert.Equal(t, "", info.SourceLine(0))

	assert.Equal(t, 0, info.LineStart(1))
	assert.Equal(t, 5, info.LineStart(2))
	assert.Equal(t, -1, info.LineStart(4))
}

func TestAddLineValidation(t *testing.T) {
	t.Parallel()

	info := NewFileInfo("test.stmt", []byte("ab\ncd"))
	info.AddLine(3)

	assert.Panics(t, func() { info.AddLine(3) })
	assert.Panics(t, func() { info.AddLine(-1) })
	assert.Panics(t, func() { info.AddLine(100) })
}

func TestUnknownPos(t *testing.T) {
	t.Parallel()

	pos := UnknownPos("mystery.stmt")
	assert.Equal(t, "mystery.stmt", pos.String())
}
