package terminal

import (
	"fmt"
	"path/filepath"

	"mostrodesk/internal/logging"
	"mostrodesk/internal/login"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Screen renders the login screen in a terminal. Images cannot be drawn, so
// the logo is shown as a text banner.
type Screen struct {
	app  *tview.Application
	ctrl *login.Controller

	root   *tview.Flex
	banner *tview.TextView
	seed   *tview.InputField
	form   *tview.Form
	status *tview.TextView

	closed bool
}

func NewScreen(app *tview.Application, logoPath string) *Screen {
	s := &Screen{app: app}
	s.ctrl = login.NewController(s, logoPath)

	tree := s.ctrl.Tree()
	s.build(tree)
	s.apply(tree)
	return s
}

func (s *Screen) build(tree login.Tree) {
	s.banner = tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText(fmt.Sprintf("MOSTRO\n(%s)", filepath.Base(tree.Logo.Path)))

	s.seed = tview.NewInputField().
		SetLabel("Seed ").
		SetPlaceholder(tree.Seed.Placeholder).
		SetFieldWidth(0)
	s.seed.SetChangedFunc(func(text string) {
		s.dispatch(login.SeedChanged{Text: text})
	})
	s.seed.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			s.dispatch(login.LoginPressed{})
		}
	})

	s.form = tview.NewForm().AddFormItem(s.seed)
	for _, b := range tree.Buttons {
		ev := b.OnPress
		s.form.AddButton(b.Label, func() { s.dispatch(ev) })
	}
	s.form.SetButtonsAlign(tview.AlignCenter)
	s.form.SetBorder(true).SetTitle(" " + tree.Title + " ").SetTitleAlign(tview.AlignCenter)
	enableButtonNav(s.app, s.form)

	s.status = tview.NewTextView().SetTextAlign(tview.AlignCenter)

	s.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(s.banner, 3, 0, false).
		AddItem(s.form, 0, 1, true).
		AddItem(s.status, 1, 0, false)
}

func (s *Screen) apply(tree login.Tree) {
	applyPalette(s.form, tree.Palette)
	bg := toTCell(tree.Palette.Background)
	fg := toTCell(tree.Palette.Foreground)
	s.root.SetBackgroundColor(bg)
	s.banner.SetBackgroundColor(bg)
	s.banner.SetTextColor(fg)
	s.status.SetBackgroundColor(bg)
	s.status.SetTextColor(fg)

	if s.seed.GetText() != tree.Seed.Value {
		s.seed.SetText(tree.Seed.Value)
	}
}

func (s *Screen) dispatch(e login.Event) {
	if s.closed {
		return
	}
	tree := s.ctrl.Dispatch(e)
	if s.closed {
		return
	}
	s.apply(tree)
}

func (s *Screen) Diagnostic(msg string) {
	s.status.SetText(msg)
	logging.Infof("login: %s", msg)
}

func (s *Screen) RequestClose() {
	s.closed = true
	s.app.Stop()
}

func (s *Screen) State() login.State {
	return s.ctrl.State()
}

func (s *Screen) Primitive() tview.Primitive {
	return newCenteredBox(s.root, 44, 16, 80, 20, 0.8, 0.6)
}

func Run(logoPath string) error {
	restore := redirectLogs()
	defer restore()

	app := tview.NewApplication()
	s := NewScreen(app, logoPath)
	if err := app.SetRoot(s.Primitive(), true).EnableMouse(true).Run(); err != nil {
		return fmt.Errorf("terminal host: %w", err)
	}
	return nil
}
