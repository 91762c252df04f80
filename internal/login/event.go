package login

// Event is a single user interaction. The set of events is closed.
type Event interface {
	event()
}

type SeedChanged struct {
	Text string
}

type LoginPressed struct{}

type GenerateKeyPressed struct{}

type ToggleTheme struct{}

type ClosePressed struct{}

func (SeedChanged) event()        {}
func (LoginPressed) event()       {}
func (GenerateKeyPressed) event() {}
func (ToggleTheme) event()        {}
func (ClosePressed) event()       {}

// Effect is what the host must do after an update. The zero value means nothing.
type Effect struct {
	Diagnostic string
	Close      bool
}
