package search

import (
	"github.com/gcbaptista/tfidf-search-engine/internal/tokenizer"
)

// Query is a parsed search query.
//
// Terms holds every query word left after stop-word filtering, including words
// carrying the minus-word marker. MinusWords holds the marked words with the
// marker stripped; documents containing any of them are excluded from results.
type Query struct {
	Terms      map[string]struct{}
	MinusWords map[string]struct{}
}

// ParseQuery splits rawQuery into words, drops stop words and sorts the rest
// into a Query. A word consisting only of the marker adds the empty string to MinusWords.
func ParseQuery(rawQuery string, stopWords *tokenizer.StopWords, marker byte) Query {
	query := Query{
		Terms:      make(map[string]struct{}),
		MinusWords: make(map[string]struct{}),
	}
	for _, word := range stopWords.SplitIntoWordsNoStop(rawQuery) {
		query.Terms[word] = struct{}{}
		if word[0] == marker {
			query.MinusWords[word[1:]] = struct{}{}
		}
	}
	return query
}

// IsEmpty reports whether the query has neither terms nor minus words.
func (q Query) IsEmpty() bool {
	return len(q.Terms) == 0 && len(q.MinusWords) == 0
}
