package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/bufbuild/stmtcompile/ast"
)

// TabstopWidth is the size all tabstops are rendered as.
const TabstopWidth = 4

// Render writes a human-readable rendering of err to w: the position and
// message, followed by the offending source line and a caret marking the
// position within it. If info is nil or the position has no line, only the
// message line is written.
func Render(w io.Writer, err ErrorWithPos, info *ast.FileInfo) {
	fmt.Fprintf(w, "%v\n", err)

	pos := err.GetPosition()
	if info == nil || pos.Line <= 0 {
		return
	}
	line := info.SourceLine(pos.Line)
	start := info.LineStart(pos.Line)
	if start < 0 {
		return
	}
	prefix := pos.Offset - start
	if prefix < 0 || prefix > len(line) {
		return
	}

	fmt.Fprintf(w, "  %s\n", expandTabs(line))
	fmt.Fprintf(w, "  %s^\n", strings.Repeat(" ", stringWidth(line[:prefix])))
}

// expandTabs replaces tabs with spaces up to the next tabstop, so that the
// caret line (which contains no tabs) lines up with the source line.
func expandTabs(text string) string {
	if !strings.ContainsRune(text, '\t') {
		return text
	}
	var out strings.Builder
	column := 0
	for _, r := range text {
		if r == '\t' {
			tab := TabstopWidth - (column % TabstopWidth)
			out.WriteString(strings.Repeat(" ", tab))
			column += tab
			continue
		}
		out.WriteRune(r)
		column += uniseg.StringWidth(string(r))
	}
	return out.String()
}

// stringWidth calculates the rendered width of text, accounting for
// tabstops. We can't just use uniseg.StringWidth, because that doesn't
// respect tabstops correctly.
func stringWidth(text string) int {
	column := 0
	for text != "" {
		nextTab := strings.IndexByte(text, '\t')
		haveTab := nextTab != -1
		next := text
		if haveTab {
			next, text = text[:nextTab], text[nextTab+1:]
		} else {
			text = ""
		}

		column += uniseg.StringWidth(next)

		if haveTab {
			column += TabstopWidth - (column % TabstopWidth)
		}
	}
	return column
}
