// Package export writes framebuffers to timestamped image files.
package export

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"

	"github.com/pthm-cable/kanvas/raster"
)

// ErrUnknownFormat is returned for image formats the saver cannot encode.
var ErrUnknownFormat = errors.New("export: unknown image format")

const (
	// DefaultDir is where images go when Saver.Dir is empty.
	DefaultDir = "output"
	// DefaultBase names files saved without a base.
	DefaultBase = "kanvas"
	// TimestampLayout is appended to every file name.
	TimestampLayout = "20060102_150405"

	jpegQuality = 95
)

// Saver writes framebuffers to Dir as <base>_<timestamp>.<ext>.
type Saver struct {
	Dir    string
	Format string // png, jpg or bmp; empty means png
	Scale  int    // nearest-neighbour upscale factor; values below 2 keep native size
	Now    func() time.Time
}

// New returns a Saver after checking the format.
func New(dir, format string, scale int) (*Saver, error) {
	s := &Saver{Dir: dir, Format: format, Scale: scale}
	if _, _, err := s.encoder(); err != nil {
		return nil, err
	}
	return s, nil
}

// Save encodes fb and returns the path of the written file.
func (s *Saver) Save(fb *raster.FrameBuffer, base string) (string, error) {
	enc, ext, err := s.encoder()
	if err != nil {
		return "", err
	}

	dir := s.Dir
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	path := uniquePath(filepath.Join(dir, Filename(base, now())), ext)

	if err := imgio.Save(path, s.image(fb), enc); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, nil
}

func (s *Saver) image(fb *raster.FrameBuffer) image.Image {
	img := fb.ToImage()
	if s.Scale < 2 {
		return img
	}
	return transform.Resize(img, fb.Width()*s.Scale, fb.Height()*s.Scale, transform.NearestNeighbor)
}

func (s *Saver) encoder() (imgio.Encoder, string, error) {
	switch strings.ToLower(s.Format) {
	case "", "png":
		return imgio.PNGEncoder(), ".png", nil
	case "jpg", "jpeg":
		return imgio.JPEGEncoder(jpegQuality), ".jpg", nil
	case "bmp":
		return imgio.BMPEncoder(), ".bmp", nil
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownFormat, s.Format)
	}
}

// Filename builds "<base>_<timestamp>" without an extension.
func Filename(base string, t time.Time) string {
	return SanitizeBase(base) + "_" + t.Format(TimestampLayout)
}

// SanitizeBase makes base safe to use as a file name. Empty bases become DefaultBase.
func SanitizeBase(base string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return DefaultBase
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, base)
}

// uniquePath appends _1, _2, ... when saves land in the same second.
func uniquePath(stem, ext string) string {
	path := stem + ext
	for i := 1; ; i++ {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return path
		}
		path = fmt.Sprintf("%s_%d%s", stem, i, ext)
	}
}
