package fileman

import (
	"github.com/rivo/tview"
)

//go:generate mockgen -destination=mock_app_test.go -package=fileman . App

// App is the part of *tview.Application the navigator drives.
type App interface {
	Run() error
	SetFocus(p tview.Primitive)
	SetRoot(root tview.Primitive, fullscreen bool)
	EnableMouse(bool)
	Stop()
}

// NewApp adapts a tview application, dropping the chained return values.
func NewApp(app *tview.Application) App {
	return appProxy{app: app}
}

var _ App = (*appProxy)(nil)

type appProxy struct {
	app *tview.Application
}

func (a appProxy) Run() error {
	return a.app.Run()
}

func (a appProxy) SetFocus(p tview.Primitive) {
	_ = a.app.SetFocus(p)
}

func (a appProxy) SetRoot(root tview.Primitive, fullscreen bool) {
	_ = a.app.SetRoot(root, fullscreen)
}

func (a appProxy) EnableMouse(enable bool) {
	_ = a.app.EnableMouse(enable)
}

func (a appProxy) Stop() {
	a.app.Stop()
}
