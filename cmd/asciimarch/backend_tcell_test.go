package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/taigrr/asciimarch/pkg/config"
	"github.com/taigrr/asciimarch/pkg/render"
)

func simScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(20, 10)
	return screen
}

func TestServeTcellStops(t *testing.T) {
	tests := []struct {
		name string
		stop func(cancel context.CancelFunc, screen tcell.SimulationScreen)
	}{
		{"escape", func(_ context.CancelFunc, s tcell.SimulationScreen) {
			s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
		}},
		{"context", func(cancel context.CancelFunc, _ tcell.SimulationScreen) {
			cancel()
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			screen := simScreen(t)
			cfg := config.Default()
			cfg.Adaptive = false
			app := NewApp(config.NewStore(cfg), render.TerminalMetrics{})

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			done := make(chan error, 1)
			go func() { done <- serveTcell(ctx, app, screen) }()

			tc.stop(cancel, screen)
			select {
			case err := <-done:
				if err != nil {
					t.Errorf("got %v, want nil", err)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("loop did not stop")
			}
		})
	}
}

func TestPollTcellStopsWhenUnread(t *testing.T) {
	screen := simScreen(t)
	for range 3 {
		screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	}

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan tcell.Event, 1)
	done := make(chan struct{})
	go func() {
		pollTcell(ctx, screen, out)
		close(done)
	}()

	// Nobody drains out, so the poller is parked on its second send.
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("poller blocked after cancel")
	}
	if len(out) != 1 {
		t.Errorf("got %d buffered events, want 1", len(out))
	}
}
