package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDocument_TermFrequencies(t *testing.T) {
	ii := NewInvertedIndex()
	ii.AddDocument(0, []string{"white", "cat", "and", "white", "tail"})

	assert.Equal(t, 1, ii.DocumentCount())
	assert.Equal(t, 4, ii.TermCount())
	assert.InDelta(t, 0.4, ii.TermsFor("white")[0], 1e-9)
	assert.InDelta(t, 0.2, ii.TermsFor("cat")[0], 1e-9)
	assert.InDelta(t, 0.2, ii.TermsFor("tail")[0], 1e-9)
}

func TestAddDocument_TFSumsToOne(t *testing.T) {
	ii := NewInvertedIndex()
	docs := [][]string{
		{"a"},
		{"fluffy", "cat", "fluffy", "tail"},
		{"well-groomed", "dog", "expressive", "eyes", "dog", "dog", "x"},
		{"one", "two", "three"},
	}
	for id, words := range docs {
		ii.AddDocument(id, words)
	}

	for id := range docs {
		terms, ok := ii.DocumentTerms(id)
		require.True(t, ok, "document %d should exist", id)
		sum := 0.0
		for _, tf := range terms {
			sum += tf
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "TF sum of document %d", id)
	}
}

func TestAddDocument_EmptyDocument(t *testing.T) {
	ii := NewInvertedIndex()
	ii.AddDocument(0, []string{})
	ii.AddDocument(1, nil)

	assert.Equal(t, 2, ii.DocumentCount(), "empty documents still count toward the corpus")
	assert.Equal(t, 0, ii.TermCount())

	terms, ok := ii.DocumentTerms(0)
	require.True(t, ok)
	assert.Empty(t, terms)
}

func TestAddDocument_Overwrite(t *testing.T) {
	ii := NewInvertedIndex()
	assert.False(t, ii.AddDocument(0, []string{"cat", "dog"}))
	assert.False(t, ii.AddDocument(1, []string{"cat", "bird"}))

	assert.True(t, ii.AddDocument(0, []string{"fish"}))

	assert.Equal(t, 2, ii.DocumentCount())
	assert.False(t, ii.HasTerm("dog"), "stale term of the replaced document should be dropped")
	assert.Equal(t, PostingList{1: 0.5}, ii.TermsFor("cat"), "other documents must not be affected")
	assert.Equal(t, PostingList{1: 0.5}, ii.TermsFor("bird"))
	assert.Equal(t, PostingList{0: 1.0}, ii.TermsFor("fish"))
}

func TestAddDocument_SameDocumentTwice(t *testing.T) {
	once := NewInvertedIndex()
	once.AddDocument(0, []string{"cat", "sat"})

	twice := NewInvertedIndex()
	twice.AddDocument(0, []string{"cat", "sat"})
	twice.AddDocument(0, []string{"cat", "sat"})

	assert.Equal(t, once.DocumentCount(), twice.DocumentCount())
	assert.Equal(t, once.TermsFor("cat"), twice.TermsFor("cat"))
	assert.Equal(t, once.TermsFor("sat"), twice.TermsFor("sat"))
}

func TestTermsFor(t *testing.T) {
	ii := NewInvertedIndex()
	ii.AddDocument(0, []string{"cat"})
	ii.AddDocument(1, []string{"cat", "dog"})

	t.Run("unknown term", func(t *testing.T) {
		postings := ii.TermsFor("unknown")
		assert.NotNil(t, postings)
		assert.Empty(t, postings)
		assert.Equal(t, 0, ii.DocumentFrequency("unknown"))
	})

	t.Run("known term", func(t *testing.T) {
		assert.Equal(t, PostingList{0: 1.0, 1: 0.5}, ii.TermsFor("cat"))
		assert.Equal(t, 2, ii.DocumentFrequency("cat"))
	})

	t.Run("returned postings are a copy", func(t *testing.T) {
		postings := ii.TermsFor("cat")
		postings[42] = 1.0
		assert.Equal(t, 2, ii.DocumentFrequency("cat"))
	})

	t.Run("terms are case sensitive", func(t *testing.T) {
		assert.False(t, ii.HasTerm("Cat"))
	})
}

func TestDocumentTerms_Unknown(t *testing.T) {
	ii := NewInvertedIndex()
	_, ok := ii.DocumentTerms(7)
	assert.False(t, ok)
}
