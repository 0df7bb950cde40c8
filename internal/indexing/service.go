package indexing

import (
	"fmt"
	"log"

	"github.com/gcbaptista/tfidf-search-engine/index"
	internalErrors "github.com/gcbaptista/tfidf-search-engine/internal/errors"
	"github.com/gcbaptista/tfidf-search-engine/internal/tokenizer"
	"github.com/gcbaptista/tfidf-search-engine/model"
)

// Service implements the indexing logic for a single index.
// It shares its stop words with the search service of the same index, so
// documents and queries are always filtered the same way.
type Service struct {
	invertedIndex *index.InvertedIndex
	stopWords     *tokenizer.StopWords
}

// NewService creates a new indexing Service.
func NewService(invertedIndex *index.InvertedIndex, stopWords *tokenizer.StopWords) (*Service, error) {
	if invertedIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if stopWords == nil {
		return nil, fmt.Errorf("stop words cannot be nil")
	}
	return &Service{
		invertedIndex: invertedIndex,
		stopWords:     stopWords,
	}, nil
}

// SetStopWords adds the space-separated words of text to the stop words.
// Documents indexed earlier keep the terms they were indexed with.
func (s *Service) SetStopWords(text string) {
	if s.invertedIndex.DocumentCount() > 0 {
		log.Printf("Warning: stop words changed after %d documents were indexed; existing documents are not reindexed", s.invertedIndex.DocumentCount())
	}
	s.stopWords.Add(text)
}

// AddDocument indexes the words of text under docID.
//
// A document consisting only of stop words is counted but adds no terms.
// Re-adding an ID replaces the previous version of that document.
func (s *Service) AddDocument(docID int, text string) error {
	if docID < 0 {
		return internalErrors.NewDocumentIDError(docID)
	}

	words := s.stopWords.SplitIntoWordsNoStop(text)
	if len(words) == 0 {
		log.Printf("Info: document %d has no words after stop-word removal; it is counted but not indexed", docID)
	}
	if replaced := s.invertedIndex.AddDocument(docID, words); replaced {
		log.Printf("Info: document %d was already indexed; previous version replaced", docID)
	}
	return nil
}

// AddDocuments adds a batch of documents to the index in order.
// Every ID is validated before anything is indexed, so an invalid batch leaves the index unchanged.
func (s *Service) AddDocuments(docs []model.DocumentInput) error {
	for i, doc := range docs {
		if doc.ID < 0 {
			return fmt.Errorf("document at position %d: %w", i, internalErrors.NewDocumentIDError(doc.ID))
		}
	}

	for _, doc := range docs {
		if err := s.AddDocument(doc.ID, doc.Text); err != nil {
			return fmt.Errorf("failed to add document ID %d: %w", doc.ID, err)
		}
	}
	return nil
}
