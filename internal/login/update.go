package login

import "fmt"

const invalidSeedMessage = "Invalid seed: Please enter exactly 12 words."

func Update(s State, e Event) (State, Effect) {
	switch ev := e.(type) {
	case SeedChanged:
		s.SeedText = ev.Text
		return s, Effect{}
	case LoginPressed:
		if !IsTwelveWords(s.SeedText) {
			return s, Effect{Diagnostic: invalidSeedMessage}
		}
		return s, Effect{Diagnostic: fmt.Sprintf("Logging in with seed: %s", s.SeedText)}
	case GenerateKeyPressed:
		s.SeedText = PlaceholderSeed
		return s, Effect{Diagnostic: fmt.Sprintf("Generated new seed: %s", s.SeedText)}
	case ToggleTheme:
		s.DarkMode = !s.DarkMode
		return s, Effect{}
	case ClosePressed:
		return s, Effect{Close: true}
	}
	return s, Effect{}
}
