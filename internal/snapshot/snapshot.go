package snapshot

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/vovakirdan/bigboard/internal/board"
	"github.com/vovakirdan/bigboard/internal/core"
)

// Legend strip layout, in pixels.
const (
	legendHeight = 40
	swatchSize   = 16
	swatchGap    = 4
	legendPad    = 8
	fontSize     = 12.0
)

// Options controls what goes into an image.
type Options struct {
	Legend bool // append a strip with cursor position and palette
}

var loadFace = sync.OnceValues(func() (font.Face, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
})

// Render draws s into a new image.
func Render(s *board.State, opts Options) (image.Image, error) {
	cv, err := render(s, opts)
	if err != nil {
		return nil, err
	}
	return cv.Image(), nil
}

func render(s *board.State, opts Options) (*Canvas, error) {
	w, h := s.Geometry().ScreenSize()
	total := h
	if opts.Legend {
		total += legendHeight
	}

	cv := NewCanvas(w, total)
	if err := s.Render(cv); err != nil {
		return nil, fmt.Errorf("render board: %w", err)
	}
	if opts.Legend {
		if err := drawLegend(cv, s, h); err != nil {
			return nil, err
		}
	}
	return cv, nil
}

// drawLegend paints the strip below the grid starting at y = top.
func drawLegend(cv *Canvas, s *board.State, top int) error {
	face, err := loadFace()
	if err != nil {
		return err
	}
	dc := cv.Context()
	w, _ := s.Geometry().ScreenSize()

	if err := cv.FillRect(core.NewRect(0, top, w, legendHeight), board.Black); err != nil {
		return err
	}

	wheel := s.Wheel()
	y := top + (legendHeight-swatchSize)/2
	for i, nc := range wheel.Palette() {
		x := legendPad + i*(swatchSize+swatchGap)
		r := core.NewRect(x, y, swatchSize, swatchSize)
		if err := cv.FillRect(r, nc.Color); err != nil {
			return err
		}
		if i == wheel.Index() {
			if err := cv.StrokeRect(core.NewRect(x-2, y-2, swatchSize+4, swatchSize+4), 2, board.White); err != nil {
				return err
			}
		}
	}

	textX := float64(legendPad + wheel.Len()*(swatchSize+swatchGap) + legendPad)
	dc.SetFontFace(face)
	dc.SetColor(board.White)
	label := fmt.Sprintf("%s  %s %s", s.Cursor().Position(), wheel.Name(), wheel.Color().Hex())
	dc.DrawStringAnchored(label, textX, float64(top)+legendHeight/2, 0, 0.5)
	return nil
}

// Encode writes s as a PNG to w.
func Encode(w io.Writer, s *board.State, opts Options) error {
	cv, err := render(s, opts)
	if err != nil {
		return err
	}
	return cv.Context().EncodePNG(w)
}

// Save writes s as a PNG file, creating parent directories.
func Save(path string, s *board.State, opts Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create screenshot directory: %w", err)
	}
	cv, err := render(s, opts)
	if err != nil {
		return err
	}
	if err := cv.Context().SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// DefaultDir returns ~/.bigboard/screenshots, or ./screenshots when the home
// directory is unknown.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".bigboard", "screenshots")
}

// Path returns a timestamped screenshot path inside dir.
func Path(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("bigboard_%s.png", now.Format("20060102_150405")))
}
