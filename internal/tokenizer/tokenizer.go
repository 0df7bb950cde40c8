package tokenizer

import (
	"strings"
)

// wordSeparator is the only byte that separates words. Tabs, newlines and
// punctuation are kept as part of a word.
const wordSeparator = ' '

// SplitIntoWords splits text on the space character.
// Runs of spaces never produce empty words, and leading/trailing spaces are ignored.
func SplitIntoWords(text string) []string {
	words := make([]string, 0) // Initialize as empty slice, not nil
	for _, word := range strings.Split(text, string(wordSeparator)) {
		if word != "" { // Filter out empty strings
			words = append(words, word)
		}
	}
	return words
}
