package reporter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/stmtcompile/ast"
)

func renderToString(err ErrorWithPos, info *ast.FileInfo) string {
	var out strings.Builder
	Render(&out, err, info)
	return out.String()
}

func TestRenderCaretAlignment(t *testing.T) {
	t.Parallel()

	src := "foo\tbar # baz\n"
	info := ast.NewFileInfo("test.stmt", []byte(src))
	info.AddLine(14)

	err := Errorf(info.SourcePos(8), "unexpected token: #")
	got := renderToString(err, info)

	// tabs render four columns wide, and the caret lines up with the
	// offending character in the expanded line
	assert.Equal(t,
		"test.stmt:1:13: unexpected token: #\n"+
			"  foo bar # baz\n"+
			"          ^\n",
		got)
}

func TestRenderWideRunes(t *testing.T) {
	t.Parallel()

	src := "héllo ✓;"
	info := ast.NewFileInfo("test.stmt", []byte(src))

	// error on the ";", which is at byte offset 10 but display column 7
	err := Errorf(info.SourcePos(10), "unexpected token: ;")
	got := renderToString(err, info)

	lines := strings.Split(got, "\n")
	assert.Equal(t, "  héllo ✓;", lines[1])
	assert.Equal(t, "         ^", lines[2])
}

func TestRenderWithoutFileInfo(t *testing.T) {
	t.Parallel()

	err := Errorf(ast.SourcePos{Filename: "gone.stmt", Line: 2, Col: 4}, "oops")
	assert.Equal(t, "gone.stmt:2:4: oops\n", renderToString(err, nil))

	// a position with no line degrades the same way
	err = Errorf(ast.UnknownPos("gone.stmt"), "oops")
	assert.Equal(t, "gone.stmt: oops\n", renderToString(err, &ast.FileInfo{}))
}
