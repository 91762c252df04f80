package desktop

import (
	"bytes"
	"strings"
	"testing"

	"mostrodesk/internal/logging"
	"mostrodesk/internal/login"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	clog "github.com/charmbracelet/log"
)

func newTestWindow(t *testing.T) *Window {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	return NewWindow(a, "testdata/missing-logo.png")
}

func TestNewWindowIsFixedSize(t *testing.T) {
	w := newTestWindow(t)

	if w.win.Title() != login.WindowTitle {
		t.Fatalf("unexpected title %q", w.win.Title())
	}
	if !w.win.FixedSize() {
		t.Fatalf("expected a fixed size window")
	}
	if len(w.buttons) != 4 {
		t.Fatalf("expected 4 buttons, got %d", len(w.buttons))
	}
	if w.seed.PlaceHolder != login.SeedPlaceholder {
		t.Fatalf("unexpected placeholder %q", w.seed.PlaceHolder)
	}
}

func TestTypingUpdatesState(t *testing.T) {
	w := newTestWindow(t)

	test.Type(w.seed, "a b c")
	if got := w.State().SeedText; got != "a b c" {
		t.Fatalf("expected typed seed in state, got %q", got)
	}
}

func TestGenerateKeyFillsEntry(t *testing.T) {
	w := newTestWindow(t)

	test.Tap(w.buttons[1])
	if w.seed.Text != login.PlaceholderSeed {
		t.Fatalf("entry not updated, got %q", w.seed.Text)
	}
	if w.State().SeedText != login.PlaceholderSeed {
		t.Fatalf("state not updated, got %q", w.State().SeedText)
	}

	test.Tap(w.buttons[0])
	if w.State().SeedText != login.PlaceholderSeed {
		t.Fatalf("login changed the seed")
	}
}

func TestToggleThemeSwitchesPalette(t *testing.T) {
	w := newTestWindow(t)
	dark := login.PaletteFor(true)
	light := login.PaletteFor(false)

	if w.bg.FillColor != dark.Background {
		t.Fatalf("expected dark background, got %v", w.bg.FillColor)
	}
	test.Tap(w.buttons[2])
	if w.State().DarkMode {
		t.Fatalf("expected light mode")
	}
	if w.bg.FillColor != light.Background {
		t.Fatalf("expected light background, got %v", w.bg.FillColor)
	}
	bg := w.app.Settings().Theme().Color(theme.ColorNameBackground, theme.VariantDark)
	if bg != light.Background {
		t.Fatalf("theme not switched, got %v", bg)
	}
}

func TestCloseClosesWindowOnce(t *testing.T) {
	w := newTestWindow(t)

	test.Tap(w.buttons[3])
	if !w.closed {
		t.Fatalf("expected window to be closed")
	}
	test.Tap(w.buttons[2])
	if !w.State().DarkMode {
		t.Fatalf("events after close must be ignored")
	}
}

func TestPaletteThemeRadius(t *testing.T) {
	th := newPaletteTheme(login.PaletteFor(true))
	if got := th.Size(theme.SizeNameInputRadius); got != 7 {
		t.Fatalf("expected radius 7, got %v", got)
	}
	if got := th.Color(theme.ColorNameForegroundOnPrimary, theme.VariantDark); got != login.PaletteFor(true).ButtonText {
		t.Fatalf("unexpected button text color %v", got)
	}
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logging.L
	logging.L = clog.New(&buf)
	logging.L.SetLevel(clog.DebugLevel)
	t.Cleanup(func() { logging.L = prev })
	return &buf
}

func TestMissingLogoIsLoggedNotFatal(t *testing.T) {
	logs := captureLogs(t)
	w := newTestWindow(t)

	out := logs.String()
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "testdata/missing-logo.png") {
		t.Fatalf("expected warn line for the missing logo, got: %s", out)
	}
	if w.logo == nil || len(w.buttons) != 4 {
		t.Fatalf("window should still be built without the logo")
	}
}

func TestEnterSubmitsLogin(t *testing.T) {
	w := newTestWindow(t)
	logs := captureLogs(t)

	test.Type(w.seed, "a b c d e f g h i j k l")
	w.seed.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})

	if !strings.Contains(logs.String(), "Logging in with seed: a b c d e f g h i j k l") {
		t.Fatalf("expected login diagnostic, got: %s", logs.String())
	}
	if w.State().SeedText != "a b c d e f g h i j k l" {
		t.Fatalf("login changed the seed: %q", w.State().SeedText)
	}
}

func TestTypingKeepsTheme(t *testing.T) {
	w := newTestWindow(t)
	before := w.app.Settings().Theme()

	test.Type(w.seed, "abc")
	if w.app.Settings().Theme() != before {
		t.Fatalf("typing should not replace the theme")
	}
	test.Tap(w.buttons[2])
	if w.app.Settings().Theme() == before {
		t.Fatalf("toggle should replace the theme")
	}
}
