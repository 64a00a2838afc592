// Package term presents framebuffers on an ANSI terminal.
package term

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/pthm-cable/kanvas/raster"
)

// ErrClosed is returned by Present after Close.
var ErrClosed = errors.New("term: presenter closed")

// DefaultColumns is the output width used when none is given.
const DefaultColumns = 80

const (
	halfBlock = "▀"
	ramp      = " .:-=+*#%@"
)

// Terminal draws each frame with upper half-block cells: the foreground carries
// the top pixel and the background the bottom one. Profiles without color fall
// back to a luminance ramp.
type Terminal struct {
	out     *termenv.Output
	cols    int
	started bool
	closed  bool
	sb      strings.Builder
}

// New creates a terminal presenter writing to w. Without a profile option the
// color profile is detected from w and the environment.
func New(w io.Writer, cols int, opts ...termenv.OutputOption) *Terminal {
	if cols <= 0 {
		cols = DefaultColumns
	}
	return &Terminal{out: termenv.NewOutput(w, opts...), cols: cols}
}

// Profile returns the color profile in use.
func (t *Terminal) Profile() termenv.Profile { return t.out.Profile }

// GridSize returns the character grid used for a fb of the given size.
func (t *Terminal) GridSize(width, height int) (cols, rows int) {
	cols, pixelRows := t.sampleSize(width, height)
	return cols, (pixelRows + 1) / 2
}

// sampleSize is the downsampled pixel grid: one column per character and two
// pixel rows per text row.
func (t *Terminal) sampleSize(width, height int) (cols, rows int) {
	cols = min(t.cols, width)
	rows = max(1, height*cols/width)
	return cols, rows
}

// Present implements sketch.Presenter.
func (t *Terminal) Present(fb *raster.FrameBuffer) error {
	if t.closed {
		return ErrClosed
	}
	if !t.started {
		t.out.HideCursor()
		t.out.ClearScreen()
		t.started = true
	}
	t.out.MoveCursor(1, 1)

	cols, rows := t.sampleSize(fb.Width(), fb.Height())
	sample := func(col, row int) raster.Color {
		c, _ := fb.At(col*fb.Width()/cols, row*fb.Height()/rows)
		return c
	}

	t.sb.Reset()
	ascii := t.out.Profile == termenv.Ascii
	for row := 0; row < rows; row += 2 {
		for col := 0; col < cols; col++ {
			top := sample(col, row)
			bottom, hasBottom := top, row+1 < rows
			if hasBottom {
				bottom = sample(col, row+1)
			}
			if ascii {
				t.sb.WriteByte(RampChar(top.Lerp(bottom, 0.5)))
				continue
			}
			style := t.out.String(halfBlock).Foreground(t.out.Color(hex(top)))
			if hasBottom {
				style = style.Background(t.out.Color(hex(bottom)))
			}
			t.sb.WriteString(style.String())
		}
		t.sb.WriteByte('\n')
	}
	_, err := t.out.WriteString(t.sb.String())
	return err
}

// Close restores the cursor.
func (t *Terminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if t.started {
		t.out.ShowCursor()
	}
	return nil
}

// Luminance returns the Rec. 601 luma of c in [0, 1].
func Luminance(c raster.Color) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// RampChar maps c to a character of increasing ink density.
func RampChar(c raster.Color) byte {
	i := int(Luminance(c)*float64(len(ramp)-1) + 0.5)
	return ramp[min(max(i, 0), len(ramp)-1)]
}

func hex(c raster.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
