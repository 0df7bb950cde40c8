package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gcbaptista/tfidf-search-engine/internal/tokenizer"
)

func set(words ...string) map[string]struct{} {
	result := make(map[string]struct{}, len(words))
	for _, word := range words {
		result[word] = struct{}{}
	}
	return result
}

func TestParseQuery(t *testing.T) {
	stopWords := tokenizer.NewStopWords()
	stopWords.Add("the a -in")

	tests := []struct {
		name           string
		rawQuery       string
		wantTerms      map[string]struct{}
		wantMinusWords map[string]struct{}
	}{
		{"empty query", "", set(), set()},
		{"plain words", "cat dog", set("cat", "dog"), set()},
		{"duplicates collapse", "cat cat dog", set("cat", "dog"), set()},
		{"stop words removed", "the cat a dog", set("cat", "dog"), set()},
		{"minus word kept in terms", "cat -dog", set("cat", "-dog"), set("dog")},
		{"lone marker adds empty minus word", "cat -", set("cat", "-"), set("")},
		{"double marker", "--cat", set("--cat"), set("-cat")},
		{"marker only at start counts", "ca-t", set("ca-t"), set()},
		{"marked stop word is filtered before parsing", "cat -in", set("cat"), set()},
		{"minus of a stop word is not a stop word", "-the", set("-the"), set("the")},
		{"case sensitive", "Cat -Dog", set("Cat", "-Dog"), set("Dog")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := ParseQuery(tt.rawQuery, stopWords, '-')
			assert.Equal(t, tt.wantTerms, query.Terms)
			assert.Equal(t, tt.wantMinusWords, query.MinusWords)
		})
	}
}

func TestQueryIsEmpty(t *testing.T) {
	stopWords := tokenizer.NewStopWords()
	stopWords.Add("the")

	assert.True(t, ParseQuery("", stopWords, '-').IsEmpty())
	assert.True(t, ParseQuery("the the", stopWords, '-').IsEmpty())
	assert.False(t, ParseQuery("-cat", stopWords, '-').IsEmpty())
}
