package login

type State struct {
	SeedText string
	DarkMode bool
}

func NewState() State {
	return State{SeedText: "", DarkMode: true}
}
