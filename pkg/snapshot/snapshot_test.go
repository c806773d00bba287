package snapshot

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/asciimarch/pkg/render"
)

func newFace(t *testing.T, size float64) *Face {
	t.Helper()
	m, err := NewMetrics()
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	f, err := m.Face(size)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestCellSize(t *testing.T) {
	m, err := NewMetrics()
	if err != nil {
		t.Fatal(err)
	}

	w14, h14 := m.CellSize(14)
	if w14 <= 0 || h14 <= w14 {
		t.Errorf("cell at 14 = %vx%v, want positive and taller than wide", w14, h14)
	}

	w28, h28 := m.CellSize(28)
	if w28 < 2*w14-3 || w28 > 2*w14+3 {
		t.Errorf("cell width at 28 = %v, want about %v", w28, 2*w14)
	}
	if h28 < 2*h14-3 || h28 > 2*h14+3 {
		t.Errorf("cell height at 28 = %v, want about %v", h28, 2*h14)
	}

	var _ render.FontMetrics = m
}

func TestFaceBaseline(t *testing.T) {
	f := newFace(t, 16)
	if f.Baseline <= 0 || f.Baseline > f.CellH {
		t.Errorf("baseline = %d, want in (0, %d]", f.Baseline, f.CellH)
	}
}

func TestRasterize(t *testing.T) {
	f := newFace(t, 16)
	g := render.NewGrid(2, 1)
	red := color.RGBA{255, 0, 0, 255}
	g.Set(0, 0, render.Cell{Glyph: '█', Color: red})
	g.Background = color.RGBA{0, 0, 64, 255}

	img := Rasterize(g, f)
	if got := img.Bounds().Size(); got != (image.Point{2 * f.CellW, f.CellH}) {
		t.Fatalf("size = %v, want %dx%d", got, 2*f.CellW, f.CellH)
	}

	var inked bool
	for y := 0; y < f.CellH && !inked; y++ {
		for x := 0; x < f.CellW; x++ {
			c := img.RGBAAt(x, y)
			if c.R > 128 && c.G < 64 {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("first cell has no red ink")
	}

	for y := 0; y < f.CellH; y++ {
		for x := f.CellW + 1; x < 2*f.CellW; x++ {
			if c := img.RGBAAt(x, y); c != g.Background {
				t.Fatalf("blank cell pixel (%d,%d) = %v, want background", x, y, c)
			}
		}
	}
}

func TestEncode(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))

	t.Run("png", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Encode(&buf, img, PNG); err != nil {
			t.Fatal(err)
		}
		out, err := png.Decode(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if out.Bounds() != img.Bounds() {
			t.Errorf("bounds = %v, want %v", out.Bounds(), img.Bounds())
		}
	})

	t.Run("webp", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Encode(&buf, img, WebP); err != nil {
			t.Fatal(err)
		}
		b := buf.Bytes()
		if len(b) < 12 || string(b[:4]) != "RIFF" || string(b[8:12]) != "WEBP" {
			t.Errorf("header = %q, want RIFF....WEBP", b[:min(len(b), 12)])
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if err := Encode(&bytes.Buffer{}, img, Format(9)); !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("got %v, want ErrUnknownFormat", err)
		}
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  bool
	}{
		{"png", PNG, false},
		{".PNG", PNG, false},
		{"webp", WebP, false},
		{".gif", PNG, true},
		{"", PNG, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFormat(tc.in)
			if (err != nil) != tc.err || got != tc.want {
				t.Errorf("got %v, %v; want %v, err=%v", got, err, tc.want, tc.err)
			}
		})
	}
}

func TestWriteFile(t *testing.T) {
	f := newFace(t, 12)
	g := render.NewGrid(3, 2)
	g.Set(1, 1, render.Cell{Glyph: '@'})

	dir := t.TempDir()
	for _, name := range []string{"out.png", "out.webp"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, g, f); err != nil {
			t.Fatalf("WriteFile(%s): %v", name, err)
		}
		if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
			t.Errorf("%s: stat %v, %v", name, fi, err)
		}
	}

	if err := WriteFile(filepath.Join(dir, "out.bmp"), g, f); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("bmp: got %v, want ErrUnknownFormat", err)
	}
}
