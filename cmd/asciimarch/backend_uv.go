package main

import (
	"context"
	"fmt"
	"os"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
)

// runUV runs the viewer on an ultraviolet terminal.
func runUV(ctx context.Context, app *App) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)
	fmt.Fprint(os.Stdout, "\x1b[?1002h") // button-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // SGR extended mouse mode

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1002l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	// Events are applied on the render goroutine so the store sees a
	// single writer per frame.
	events := make(chan uv.Event, 64)
	go func() {
		for ev := range term.Events() {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	app.SetSurface(float64(width), float64(height)*2)
	targetDuration := app.Interval()

	for {
		now := time.Now()
		for drained := false; !drained; {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				if !handleUV(app, ev, &width, &height) {
					return nil
				}
				if _, ok := ev.(uv.WindowSizeEvent); ok {
					term.Erase()
					term.Resize(width, height)
					app.SetSurface(float64(width), float64(height)*2)
				}
			default:
				drained = true
			}
		}

		g, resized := app.Step(now)
		if resized {
			term.Erase()
		}
		area := uv.Rect(0, 0, width, height)
		g.Draw(term, area)
		if app.ShowHUD {
			cols, rows := app.Size()
			line := hudLine(app.FPS(), cols, rows, app.Store.Snapshot(), width)
			uv.NewStyledString(line).Draw(term, uv.Rect(0, 0, width, 1))
		}
		if err := term.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		if elapsed := time.Since(now); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// handleUV applies one terminal event. It reports false on quit.
func handleUV(app *App, ev uv.Event, width, height *int) bool {
	c := app.Controls
	switch ev := ev.(type) {
	case uv.WindowSizeEvent:
		*width, *height = ev.Width, ev.Height

	case uv.KeyPressEvent:
		switch {
		case ev.MatchString("escape", "ctrl+c"):
			return app.Do(ActionQuit)
		case ev.MatchString("w"):
			c.Press(HoldRotXNeg)
		case ev.MatchString("s"):
			c.Press(HoldRotXPos)
		case ev.MatchString("a"):
			c.Press(HoldRotZNeg)
		case ev.MatchString("d"):
			c.Press(HoldRotZPos)
		case ev.MatchString("q"):
			c.Press(HoldZoomOut)
		case ev.MatchString("e"):
			c.Press(HoldZoomIn)
		case ev.MatchString("r"):
			app.Do(ActionReset)
		case ev.MatchString("left"):
			app.Do(ActionOrbitLeft)
		case ev.MatchString("right"):
			app.Do(ActionOrbitRight)
		case ev.MatchString("up"):
			app.Do(ActionOrbitUp)
		case ev.MatchString("down"):
			app.Do(ActionOrbitDown)
		case ev.MatchString("tab"):
			app.Do(ActionNextShape)
		case ev.MatchString("c"):
			app.Do(ActionNextMode)
		case ev.MatchString("p"):
			app.Do(ActionNextPalette)
		case ev.MatchString("g"):
			app.Do(ActionNextRamp)
		case ev.MatchString("i"):
			app.Do(ActionToggleInvert)
		case ev.MatchString("n"):
			app.Do(ActionToggleNoise)
		case ev.MatchString("t"):
			app.Do(ActionToggleTAA)
		case ev.MatchString("space"):
			app.Do(ActionToggleSpin)
		case ev.MatchString("?"), ev.MatchString("shift+/"):
			app.Do(ActionToggleHUD)
		}

	case uv.KeyReleaseEvent:
		switch {
		case ev.MatchString("w"):
			c.Release(HoldRotXNeg)
		case ev.MatchString("s"):
			c.Release(HoldRotXPos)
		case ev.MatchString("a"):
			c.Release(HoldRotZNeg)
		case ev.MatchString("d"):
			c.Release(HoldRotZPos)
		case ev.MatchString("q"):
			c.Release(HoldZoomOut)
		case ev.MatchString("e"):
			c.Release(HoldZoomIn)
		}

	case uv.MouseClickEvent:
		c.MouseDown(ev.X, ev.Y)

	case uv.MouseReleaseEvent:
		c.MouseUp()

	case uv.MouseMotionEvent:
		app.Drag(ev.X, ev.Y)

	case uv.MouseWheelEvent:
		switch ev.Button {
		case uv.MouseWheelUp:
			c.Wheel(-1)
		case uv.MouseWheelDown:
			c.Wheel(1)
		}
	}
	return true
}
