package index

import (
	"sync"
)

// InvertedIndex maps a term to the documents containing it, together with
// the term frequency of the term in each of those documents.
//
// Documents are append-only. Re-adding an ID replaces that document's
// entries and leaves every other document untouched.
type InvertedIndex struct {
	mu       sync.RWMutex
	index    map[string]PostingList
	docTerms map[int][]string // Document ID -> terms it is indexed under, used for overwrites
}

// NewInvertedIndex creates an empty inverted index.
func NewInvertedIndex() *InvertedIndex {
	return &InvertedIndex{
		index:    make(map[string]PostingList),
		docTerms: make(map[int][]string),
	}
}

// AddDocument indexes the (already stop-word filtered) words of a document.
//
// A document without words is still counted in DocumentCount but contributes
// no terms. Re-adding an existing ID first removes its previous entries and
// does not increase DocumentCount again.
// It returns true if the ID was already present.
func (ii *InvertedIndex) AddDocument(docID int, words []string) bool {
	ii.mu.Lock()
	defer ii.mu.Unlock()

	_, replaced := ii.docTerms[docID]
	if replaced {
		ii.removeDocumentLocked(docID)
	}

	terms := make([]string, 0)
	if len(words) > 0 {
		for term, tf := range computeTermFrequencies(words) {
			postings, exists := ii.index[term]
			if !exists {
				postings = make(PostingList)
				ii.index[term] = postings
			}
			postings[docID] = tf
			terms = append(terms, term)
		}
	}
	ii.docTerms[docID] = terms

	return replaced
}

// removeDocumentLocked deletes docID from every posting list it appears in.
// Terms left without documents are dropped. Caller must hold the write lock.
func (ii *InvertedIndex) removeDocumentLocked(docID int) {
	for _, term := range ii.docTerms[docID] {
		postings := ii.index[term]
		delete(postings, docID)
		if len(postings) == 0 {
			delete(ii.index, term)
		}
	}
	delete(ii.docTerms, docID)
}

// TermsFor returns a copy of the postings of term.
// An unknown term yields an empty, non-nil PostingList.
func (ii *InvertedIndex) TermsFor(term string) PostingList {
	ii.mu.RLock()
	defer ii.mu.RUnlock()

	postings := ii.index[term]
	result := make(PostingList, len(postings))
	for docID, tf := range postings {
		result[docID] = tf
	}
	return result
}

// DocumentFrequency returns the number of documents containing term without copying its postings.
func (ii *InvertedIndex) DocumentFrequency(term string) int {
	ii.mu.RLock()
	defer ii.mu.RUnlock()
	return ii.index[term].DocumentFrequency()
}

// HasTerm reports whether term is indexed.
func (ii *InvertedIndex) HasTerm(term string) bool {
	ii.mu.RLock()
	defer ii.mu.RUnlock()
	_, exists := ii.index[term]
	return exists
}

// DocumentCount returns the number of distinct documents added so far.
func (ii *InvertedIndex) DocumentCount() int {
	ii.mu.RLock()
	defer ii.mu.RUnlock()
	return len(ii.docTerms)
}

// TermCount returns the number of distinct indexed terms.
func (ii *InvertedIndex) TermCount() int {
	ii.mu.RLock()
	defer ii.mu.RUnlock()
	return len(ii.index)
}

// DocumentTerms returns the term frequencies of a single document.
// The second return value is false if the document was never added.
func (ii *InvertedIndex) DocumentTerms(docID int) (map[string]float64, bool) {
	ii.mu.RLock()
	defer ii.mu.RUnlock()

	terms, exists := ii.docTerms[docID]
	if !exists {
		return nil, false
	}
	result := make(map[string]float64, len(terms))
	for _, term := range terms {
		result[term] = ii.index[term][docID]
	}
	return result, true
}
