package terminal

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/outbreak/config"
	"github.com/pthm-cable/outbreak/sim"
)

// Muter silences an audio reporter.
type Muter interface {
	SetMuted(bool)
	Muted() bool
}

// App routes terminal input to a running Driver.
type App struct {
	screen tcell.Screen
	view   *View
	driver *sim.Driver
	run    config.Run
	muter  Muter

	status Status
}

// NewApp creates an app. run is the configuration used by reset; muter
// may be nil. The driver must already be running.
func NewApp(screen tcell.Screen, view *View, driver *sim.Driver, run config.Run, muter Muter) *App {
	a := &App{
		screen: screen,
		view:   view,
		driver: driver,
		run:    run,
		muter:  muter,
		status: Status{Running: true, Speed: driver.Speed()},
	}
	if muter != nil {
		a.status.Muted = muter.Muted()
	}
	return a
}

// Run handles events until the user quits or ctx is cancelled. The driver
// must already be running.
func (a *App) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			a.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	a.view.SetStatus(a.status)

	for {
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			return ctx.Err()
		case *tcell.EventResize:
			a.view.Redraw()
		case *tcell.EventKey:
			if a.handle(KeyAction(ev)) {
				return nil
			}
		}
	}
}

// handle applies an action and reports whether the app should exit.
func (a *App) handle(action Action) bool {
	switch action {
	case ActionQuit:
		return true
	case ActionToggleRun:
		a.status.Running = !a.status.Running
		if a.status.Running {
			a.driver.Resume()
		} else {
			a.driver.Stop()
		}
	case ActionStep:
		a.status.Running = false
		a.driver.Stop()
		a.driver.Step()
	case ActionReset:
		a.status.Running = true
		a.driver.Reset(a.run)
	case ActionFaster:
		a.driver.SetSpeed(a.status.Speed + 1)
		a.status.Speed = a.driver.Speed()
	case ActionSlower:
		a.driver.SetSpeed(a.status.Speed - 1)
		a.status.Speed = a.driver.Speed()
	case ActionMute:
		if a.muter == nil {
			return false
		}
		a.muter.SetMuted(!a.muter.Muted())
		a.status.Muted = a.muter.Muted()
	default:
		return false
	}
	a.view.SetStatus(a.status)
	return false
}
