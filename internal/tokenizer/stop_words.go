package tokenizer

import "sort"

// StopWords is a case-sensitive set of words that are ignored both when
// indexing documents and when parsing queries.
type StopWords struct {
	words map[string]struct{}
}

// NewStopWords creates an empty stop-word set.
func NewStopWords() *StopWords {
	return &StopWords{words: make(map[string]struct{})}
}

// Add splits text into words and adds each of them to the set.
// Adding a word that is already present is a no-op.
func (sw *StopWords) Add(text string) {
	for _, word := range SplitIntoWords(text) {
		sw.words[word] = struct{}{}
	}
}

// IsStopWord reports whether word is an exact member of the set.
func (sw *StopWords) IsStopWord(word string) bool {
	_, ok := sw.words[word]
	return ok
}

// Filter returns the words that are not stop words, in their original order.
// The input slice is left untouched.
func (sw *StopWords) Filter(words []string) []string {
	filtered := make([]string, 0, len(words))
	for _, word := range words {
		if !sw.IsStopWord(word) {
			filtered = append(filtered, word)
		}
	}
	return filtered
}

// SplitIntoWordsNoStop is SplitIntoWords followed by Filter.
func (sw *StopWords) SplitIntoWordsNoStop(text string) []string {
	return sw.Filter(SplitIntoWords(text))
}

// Words returns a sorted snapshot of the set.
func (sw *StopWords) Words() []string {
	words := make([]string, 0, len(sw.words))
	for word := range sw.words {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// Len returns the number of distinct stop words.
func (sw *StopWords) Len() int {
	return len(sw.words)
}
