package desktop

import (
	"os"

	"mostrodesk/internal/logging"
	"mostrodesk/internal/login"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window is the fyne rendering of the login screen. Widgets are created once
// and every dispatched event re-applies the rendered tree to them.
type Window struct {
	app  fyne.App
	win  fyne.Window
	ctrl *login.Controller

	bg      *canvas.Rectangle
	logo    *canvas.Image
	seed    *widget.Entry
	buttons []*widget.Button

	themed bool
	dark   bool
	closed bool
}

func NewWindow(a fyne.App, logoPath string) *Window {
	w := &Window{app: a}
	w.ctrl = login.NewController(w, logoPath)

	tree := w.ctrl.Tree()
	w.win = a.NewWindow(tree.Title)
	w.win.Resize(fyne.NewSize(tree.Window.Width, tree.Window.Height))
	w.win.SetFixedSize(!tree.Resizable)
	w.win.CenterOnScreen()
	w.win.SetContent(w.build(tree))
	w.apply(tree)
	return w
}

func (w *Window) build(tree login.Tree) fyne.CanvasObject {
	if _, err := os.Stat(tree.Logo.Path); err != nil {
		logging.Warnf("logo not available: %v", err)
	}
	w.logo = canvas.NewImageFromFile(tree.Logo.Path)
	w.logo.FillMode = canvas.ImageFillContain
	w.logo.SetMinSize(fyne.NewSize(tree.Logo.Size.Width, tree.Logo.Size.Height))

	w.seed = widget.NewEntry()
	w.seed.SetPlaceHolder(tree.Seed.Placeholder)
	w.seed.OnChanged = func(s string) {
		w.dispatch(login.SeedChanged{Text: s})
	}
	w.seed.OnSubmitted = func(string) {
		w.dispatch(login.LoginPressed{})
	}
	seedBox := container.NewGridWrap(
		fyne.NewSize(tree.Seed.Width, w.seed.MinSize().Height+tree.Seed.Padding),
		w.seed,
	)

	items := []fyne.CanvasObject{w.logo, seedBox}
	w.buttons = w.buttons[:0]
	for _, b := range tree.Buttons {
		ev := b.OnPress
		btn := widget.NewButton(b.Label, func() { w.dispatch(ev) })
		btn.Importance = widget.HighImportance
		w.buttons = append(w.buttons, btn)
		items = append(items, btn)
	}

	column := container.New(layout.NewCustomPaddedVBoxLayout(tree.Spacing), items...)
	w.bg = canvas.NewRectangle(tree.Palette.Background)
	if tree.Centered {
		return container.NewStack(w.bg, container.NewCenter(column))
	}
	return container.NewStack(w.bg, column)
}

func (w *Window) apply(tree login.Tree) {
	if !w.themed || w.dark != tree.Palette.Dark {
		w.app.Settings().SetTheme(newPaletteTheme(tree.Palette))
		w.themed, w.dark = true, tree.Palette.Dark
	}

	w.bg.FillColor = tree.Palette.Background
	w.bg.Refresh()

	if w.seed.Text != tree.Seed.Value {
		w.seed.SetText(tree.Seed.Value)
	}
	for i, b := range tree.Buttons {
		if i < len(w.buttons) && w.buttons[i].Text != b.Label {
			w.buttons[i].SetText(b.Label)
		}
	}
}

func (w *Window) dispatch(e login.Event) {
	if w.closed {
		return
	}
	tree := w.ctrl.Dispatch(e)
	if w.closed {
		return
	}
	w.apply(tree)
}

func (w *Window) Diagnostic(msg string) {
	logging.Infof("login: %s", msg)
}

func (w *Window) RequestClose() {
	w.closed = true
	w.win.Close()
}

func (w *Window) State() login.State {
	return w.ctrl.State()
}

func (w *Window) ShowAndRun() {
	w.win.ShowAndRun()
}
