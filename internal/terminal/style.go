package terminal

import (
	"image/color"

	"mostrodesk/internal/login"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func toTCell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func applyPalette(f *tview.Form, p login.Palette) {
	bg := toTCell(p.Background)
	fg := toTCell(p.Foreground)

	f.SetBackgroundColor(bg)
	f.SetBorderColor(fg)
	f.SetTitleColor(fg)
	f.SetLabelColor(fg)
	f.SetFieldBackgroundColor(fg)
	f.SetFieldTextColor(bg)
	f.SetButtonBackgroundColor(toTCell(p.ButtonBackground))
	f.SetButtonTextColor(toTCell(p.ButtonText))
}

// enableButtonNav lets Left/Right move between the form buttons.
func enableButtonNav(app *tview.Application, form *tview.Form) {
	prev := form.GetInputCapture()
	form.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		_, btn := form.GetFocusedItemIndex()
		if btn >= 0 {
			switch event.Key() {
			case tcell.KeyLeft:
				if btn > 0 {
					app.SetFocus(form.GetButton(btn - 1))
				}
				return nil
			case tcell.KeyRight:
				if btn < form.GetButtonCount()-1 {
					app.SetFocus(form.GetButton(btn + 1))
				}
				return nil
			}
		}
		if prev != nil {
			return prev(event)
		}
		return event
	})
}
