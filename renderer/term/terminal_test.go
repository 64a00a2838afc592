package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/kanvas/raster"
)

func splitFrame(t *testing.T) *raster.FrameBuffer {
	t.Helper()
	fb := raster.MustNew(4, 2)
	fb.Rect(0, 0, 4, 1, 255, 0, 0, false)
	fb.Rect(0, 1, 4, 1, 0, 0, 255, false)
	return fb
}

func TestPresentTrueColorHalfBlocks(t *testing.T) {
	var buf bytes.Buffer
	term := New(&buf, 80, termenv.WithProfile(termenv.TrueColor))

	require.NoError(t, term.Present(splitFrame(t)))

	out := buf.String()
	assert.Equal(t, 4, strings.Count(out, halfBlock))
	assert.Contains(t, out, "38;2;255;0;0")
	assert.Contains(t, out, "48;2;0;0;255")
}

func TestPresentAsciiRamp(t *testing.T) {
	var buf bytes.Buffer
	term := New(&buf, 80, termenv.WithProfile(termenv.Ascii))

	fb := raster.MustNew(6, 4)
	fb.ClearColor(raster.White)
	require.NoError(t, term.Present(fb))

	assert.Contains(t, buf.String(), "@@@@@@\n@@@@@@\n")
	assert.NotContains(t, buf.String(), halfBlock)
}

func TestGridSizeDownsamples(t *testing.T) {
	term := New(&bytes.Buffer{}, 40, termenv.WithProfile(termenv.Ascii))

	cols, rows := term.GridSize(400, 300)
	assert.Equal(t, 40, cols)
	assert.Equal(t, 15, rows)

	cols, rows = term.GridSize(10, 5)
	assert.Equal(t, 10, cols)
	assert.Equal(t, 3, rows)
}

func TestDefaultColumns(t *testing.T) {
	term := New(&bytes.Buffer{}, 0)
	cols, _ := term.GridSize(1000, 10)
	assert.Equal(t, DefaultColumns, cols)
}

func TestRampChar(t *testing.T) {
	assert.Equal(t, byte(' '), RampChar(raster.Black))
	assert.Equal(t, byte('@'), RampChar(raster.White))
	assert.InDelta(t, 0.299, Luminance(raster.RGB(255, 0, 0)), 1e-9)
}

func TestCloseStopsPresenting(t *testing.T) {
	var buf bytes.Buffer
	term := New(&buf, 80, termenv.WithProfile(termenv.TrueColor))
	require.NoError(t, term.Present(splitFrame(t)))
	require.NoError(t, term.Close())
	require.NoError(t, term.Close())

	assert.ErrorIs(t, term.Present(splitFrame(t)), ErrClosed)
}
