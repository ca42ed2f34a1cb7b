package reporter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/stmtcompile/ast"
)

func testPos(line, col int) ast.SourcePos {
	return ast.SourcePos{Filename: "test.stmt", Line: line, Col: col}
}

func TestHandlerContinuesWhenReporterReturnsNil(t *testing.T) {
	t.Parallel()

	var seen []ErrorWithPos
	h := NewHandler(NewReporter(func(err ErrorWithPos) error {
		seen = append(seen, err)
		return nil
	}, nil))

	assert.NoError(t, h.HandleErrorf(testPos(1, 1), "first"))
	assert.NoError(t, h.HandleErrorf(testPos(2, 1), "second %s", "problem"))
	require.Len(t, seen, 2)
	assert.Equal(t, "test.stmt:2:1: second problem", seen[1].Error())

	// errors were reported but all swallowed
	assert.ErrorIs(t, h.Error(), ErrInvalidSource)
	assert.NoError(t, h.ReporterError())
}

func TestHandlerAbortsWhenReporterReturnsError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("stop")
	calls := 0
	h := NewHandler(NewReporter(func(ErrorWithPos) error {
		calls++
		return sentinel
	}, nil))

	assert.ErrorIs(t, h.HandleErrorf(testPos(1, 1), "boom"), sentinel)
	// after aborting, subsequent errors are not reported again
	assert.ErrorIs(t, h.HandleErrorf(testPos(2, 1), "later"), sentinel)
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, h.Error(), sentinel)
	assert.ErrorIs(t, h.ReporterError(), sentinel)
}

func TestHandlerDefaultReporterFailsFast(t *testing.T) {
	t.Parallel()

	h := NewHandler(nil)
	err := h.HandleErrorf(testPos(3, 7), "oops")
	require.Error(t, err)

	var ewp ErrorWithPos
	require.ErrorAs(t, err, &ewp)
	assert.Equal(t, testPos(3, 7), ewp.GetPosition())
	assert.Equal(t, "oops", ewp.Unwrap().Error())
}

func TestHandlerWarnings(t *testing.T) {
	t.Parallel()

	var warnings []ErrorWithPos
	h := NewHandler(NewReporter(nil, func(err ErrorWithPos) {
		warnings = append(warnings, err)
	}))

	h.HandleWarning(testPos(1, 2), errors.New("sketchy"))
	require.Len(t, warnings, 1)
	assert.Equal(t, "test.stmt:1:2: sketchy", warnings[0].Error())
	// warnings never make the handler fail
	assert.NoError(t, h.Error())
}

func TestErrorWithPosUnwrap(t *testing.T) {
	t.Parallel()

	underlying := errors.New("bad token")
	err := Error(testPos(4, 5), underlying)
	assert.Equal(t, "test.stmt:4:5: bad token", err.Error())
	assert.ErrorIs(t, err, underlying)
}
