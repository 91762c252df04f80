package login

import "strings"

const SeedWords = 12

// PlaceholderSeed is not a real mnemonic.
const PlaceholderSeed = "word1 word2 word3 word4 word5 word6 word7 word8 word9 word10 word11 word12"

func WordCount(s string) int {
	return len(strings.Fields(s))
}

func IsTwelveWords(s string) bool {
	return WordCount(s) == SeedWords
}
