package desktop

import (
	"image/color"

	"mostrodesk/internal/login"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// paletteTheme maps a login palette onto the fyne default theme.
type paletteTheme struct {
	p login.Palette
}

var _ fyne.Theme = paletteTheme{}

func newPaletteTheme(p login.Palette) fyne.Theme {
	return paletteTheme{p: p}
}

func (t paletteTheme) variant() fyne.ThemeVariant {
	if t.p.Dark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

func (t paletteTheme) Color(n fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch n {
	case theme.ColorNameBackground:
		return t.p.Background
	case theme.ColorNameForeground:
		return t.p.Foreground
	case theme.ColorNamePrimary, theme.ColorNameButton:
		return t.p.ButtonBackground
	case theme.ColorNameForegroundOnPrimary:
		return t.p.ButtonText
	}
	return theme.DefaultTheme().Color(n, t.variant())
}

func (t paletteTheme) Font(s fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(s)
}

func (t paletteTheme) Icon(n fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(n)
}

func (t paletteTheme) Size(n fyne.ThemeSizeName) float32 {
	if n == theme.SizeNameInputRadius {
		return t.p.ButtonRadius
	}
	return theme.DefaultTheme().Size(n)
}
