package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/taigrr/asciimarch/pkg/render"
)

// ErrUnknownFormat is returned for an unsupported image format.
var ErrUnknownFormat = errors.New("unknown image format")

// Format is an output encoding.
type Format int

const (
	PNG Format = iota
	WebP
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case WebP:
		return "webp"
	}
	return "unknown"
}

// ParseFormat resolves a format name or file extension.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return PNG, nil
	case "webp":
		return WebP, nil
	}
	return PNG, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}

// FormatFor picks the format from a file name's extension.
func FormatFor(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Foreground colours uncoloured cells.
var Foreground = color.RGBA{255, 255, 255, 255}

// Rasterize draws g onto a new image, one face cell per grid cell.
func Rasterize(g *render.Grid, f *Face) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Cols*f.CellW, g.Rows*f.CellH))
	bg := g.Background
	if bg.A == 0 {
		bg = color.RGBA{A: 255}
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	d := &font.Drawer{Dst: img, Face: f.Face}
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			c := g.At(x, y)
			if c.Glyph == ' ' || c.Glyph == 0 {
				continue
			}
			fg := c.Color
			if fg.A == 0 {
				fg = Foreground
			}
			d.Src = image.NewUniform(fg)
			d.Dot = fixed.P(x*f.CellW, y*f.CellH+f.Baseline)
			d.DrawString(string(c.Glyph))
		}
	}
	return img
}

// Encode writes img in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case PNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
	case WebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("encode webp: %w", err)
		}
	default:
		return fmt.Errorf("%v: %w", format, ErrUnknownFormat)
	}
	return nil
}

// WriteFile rasterizes g and writes it to path, choosing the format from
// the extension.
func WriteFile(path string, g *render.Grid, f *Face) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	if err := Encode(out, Rasterize(g, f), format); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
