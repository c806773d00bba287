package render

import "testing"

type fakeMetrics struct {
	calls int
}

func (m *fakeMetrics) CellSize(size float64) (w, h float64) {
	m.calls++
	return size * 0.5, size
}

func TestViewportTransitions(t *testing.T) {
	m := &fakeMetrics{}
	v := NewViewport(m)
	if v.State() != NeedsFontMetrics {
		t.Fatalf("initial state = %v, want %v", v.State(), NeedsFontMetrics)
	}

	v.SetSurface(800, 600)
	if v.State() != NeedsFontMetrics {
		t.Errorf("surface change downgraded state to %v", v.State())
	}

	cols, rows, resized := v.Update()
	if !resized || cols != 114 || rows != 42 {
		t.Errorf("Update() = %d, %d, %v; want 114, 42, true", cols, rows, resized)
	}
	if m.calls != 1 {
		t.Errorf("metrics measured %d times, want 1", m.calls)
	}
	if v.State() != Clean {
		t.Errorf("state = %v, want clean", v.State())
	}

	if _, _, resized := v.Update(); resized {
		t.Error("clean Update() reported a resize")
	}

	v.SetResScale(0.5)
	if v.State() != NeedsResize {
		t.Errorf("state = %v, want %v", v.State(), NeedsResize)
	}
	cols, rows, resized = v.Update()
	if !resized || cols != 57 || rows != 21 {
		t.Errorf("Update() = %d, %d, %v; want 57, 21, true", cols, rows, resized)
	}
	if m.calls != 1 {
		t.Errorf("resolution change remeasured the font")
	}

	v.SetFontSize(20)
	if v.State() != NeedsFontMetrics {
		t.Errorf("state = %v, want %v", v.State(), NeedsFontMetrics)
	}
	v.Update()
	if w, h := v.CellSize(); w != 10 || h != 20 || m.calls != 2 {
		t.Errorf("cell = %vx%v after %d measures, want 10x20 after 2", w, h, m.calls)
	}
}

func TestViewportUnchangedInputs(t *testing.T) {
	v := NewViewport(TerminalMetrics{})
	v.SetSurface(80, 48)
	v.Update()

	v.SetSurface(80, 48)
	v.SetResScale(1)
	v.SetFontSize(14)
	if v.State() != Clean {
		t.Errorf("state = %v after no-op setters, want clean", v.State())
	}
	v.Invalidate()
	if _, _, resized := v.Update(); !resized {
		t.Error("Invalidate did not force a resize")
	}
}

func TestGridSize(t *testing.T) {
	tests := []struct {
		name       string
		w, h       float64
		cw, ch     float64
		scale      float64
		cols, rows int
	}{
		{"terminal", 80, 48, 1, 2, 1, 80, 24},
		{"scaled down", 80, 48, 1, 2, 0.5, 40, 12},
		{"scaled up", 80, 48, 1, 2, 2, 160, 48},
		{"tiny surface", 10, 10, 8, 16, 1, 8, 6},
		{"floor after scale", 10, 10, 8, 16, 0.5, 8, 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cols, rows := GridSize(tc.w, tc.h, tc.cw, tc.ch, tc.scale)
			if cols != tc.cols || rows != tc.rows {
				t.Errorf("got %dx%d, want %dx%d", cols, rows, tc.cols, tc.rows)
			}
		})
	}
}
