package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// runTcell runs the viewer on a tcell screen. tcell reports no key
// releases, so held keys fade out on their own.
func runTcell(ctx context.Context, app *App) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	return serveTcell(ctx, app, screen)
}

// serveTcell runs the event and frame loop on an initialized screen until
// ctx ends or a quit key arrives.
func serveTcell(ctx context.Context, app *App, screen tcell.Screen) error {
	screen.EnableMouse()
	screen.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eventChan := make(chan tcell.Event, 100)
	go pollTcell(ctx, screen, eventChan)

	width, height := screen.Size()
	app.SetSurface(float64(width), float64(height)*2)

	ticker := time.NewTicker(app.Interval())
	defer ticker.Stop()

	hudStyle := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorLightGreen)
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			if resize, ok := ev.(*tcell.EventResize); ok {
				width, height = resize.Size()
				screen.Sync()
				app.SetSurface(float64(width), float64(height)*2)
				continue
			}
			if !handleTcell(app, ev) {
				return nil
			}

		case now := <-ticker.C:
			g, resized := app.Step(now)
			if resized {
				screen.Clear()
			}
			g.DrawTcell(screen)
			if app.ShowHUD {
				cols, rows := app.Size()
				x := 0
				for _, r := range hudPlain(app.FPS(), cols, rows, app.Store.Snapshot()) {
					if x >= width {
						break
					}
					screen.SetContent(x, 0, r, nil, hudStyle)
					x++
				}
			}
			screen.Show()
		}
	}
}

// pollTcell forwards screen events to out until the screen is finalized or
// ctx ends.
func pollTcell(ctx context.Context, screen tcell.Screen, out chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// handleTcell applies one tcell event. It reports false on quit.
func handleTcell(app *App, ev tcell.Event) bool {
	c := app.Controls
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return app.Do(ActionQuit)
		case tcell.KeyLeft:
			app.Do(ActionOrbitLeft)
		case tcell.KeyRight:
			app.Do(ActionOrbitRight)
		case tcell.KeyUp:
			app.Do(ActionOrbitUp)
		case tcell.KeyDown:
			app.Do(ActionOrbitDown)
		case tcell.KeyTab:
			app.Do(ActionNextShape)
		case tcell.KeyRune:
			if h, ok := runeHolds[ev.Rune()]; ok {
				c.Press(h)
				return true
			}
			return app.Do(runeActions[ev.Rune()])
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		switch btn := ev.Buttons(); {
		case btn&tcell.WheelUp != 0:
			c.Wheel(-1)
		case btn&tcell.WheelDown != 0:
			c.Wheel(1)
		case btn&tcell.Button1 != 0:
			if c.dragging {
				app.Drag(x, y)
			} else {
				c.MouseDown(x, y)
			}
		default:
			c.MouseUp()
		}
	}
	return true
}

var runeHolds = map[rune]Hold{
	'w': HoldRotXNeg,
	's': HoldRotXPos,
	'a': HoldRotZNeg,
	'd': HoldRotZPos,
	'q': HoldZoomOut,
	'e': HoldZoomIn,
}

var runeActions = map[rune]Action{
	'r': ActionReset,
	'c': ActionNextMode,
	'p': ActionNextPalette,
	'g': ActionNextRamp,
	'i': ActionToggleInvert,
	'n': ActionToggleNoise,
	't': ActionToggleTAA,
	' ': ActionToggleSpin,
	'?': ActionToggleHUD,
}
