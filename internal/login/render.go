package login

import "image/color"

const (
	WindowTitle  = "Mostro Desktop - Login"
	WindowWidth  = 400
	WindowHeight = 600

	DefaultLogoPath = "assets/word-logo.png"
	SeedPlaceholder = "Enter your 12 seed phrases..."
)

type Palette struct {
	Dark             bool
	Background       color.Color
	Foreground       color.Color
	ButtonBackground color.Color
	ButtonText       color.Color
	ButtonRadius     float32
}

var (
	darkPalette = Palette{
		Dark:             true,
		Background:       color.NRGBA{R: 0x08, G: 0x08, B: 0x08, A: 0xff},
		Foreground:       color.White,
		ButtonBackground: color.White,
		ButtonText:       color.Black,
		ButtonRadius:     7,
	}
	lightPalette = Palette{
		Dark:             false,
		Background:       color.White,
		Foreground:       color.Black,
		ButtonBackground: color.White,
		ButtonText:       color.Black,
		ButtonRadius:     7,
	}
)

func PaletteFor(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

type Size struct {
	Width, Height float32
}

type Logo struct {
	Path string
	Size Size
}

type TextField struct {
	Placeholder string
	Value       string
	Width       float32
	Padding     float32
}

type Button struct {
	Label   string
	OnPress Event
}

// Tree describes one frame of the login screen, top to bottom.
type Tree struct {
	Title     string
	Window    Size
	Resizable bool
	Palette   Palette
	Logo      Logo
	Seed      TextField
	Buttons   []Button
	Spacing   float32
	Centered  bool
}

func Render(s State, logoPath string) Tree {
	if logoPath == "" {
		logoPath = DefaultLogoPath
	}
	return Tree{
		Title:     WindowTitle,
		Window:    Size{Width: WindowWidth, Height: WindowHeight},
		Resizable: false,
		Palette:   PaletteFor(s.DarkMode),
		Logo:      Logo{Path: logoPath, Size: Size{Width: 200, Height: 50}},
		Seed: TextField{
			Placeholder: SeedPlaceholder,
			Value:       s.SeedText,
			Width:       300,
			Padding:     10,
		},
		Buttons: []Button{
			{Label: "Login", OnPress: LoginPressed{}},
			{Label: "Generate Key", OnPress: GenerateKeyPressed{}},
			{Label: "Toggle Theme", OnPress: ToggleTheme{}},
			{Label: "Close", OnPress: ClosePressed{}},
		},
		Spacing:  20,
		Centered: true,
	}
}
