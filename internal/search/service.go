package search

import (
	"fmt"
	"sort"
	"time"

	"github.com/gcbaptista/tfidf-search-engine/config"
	"github.com/gcbaptista/tfidf-search-engine/index"
	"github.com/gcbaptista/tfidf-search-engine/internal/tokenizer"
	"github.com/gcbaptista/tfidf-search-engine/model"
	"github.com/gcbaptista/tfidf-search-engine/services"
	"github.com/google/uuid"
)

// Service implements TF-IDF ranking for a single index.
// It fulfills the services.Searcher interface.
type Service struct {
	invertedIndex *index.InvertedIndex
	stopWords     *tokenizer.StopWords
	settings      *config.EngineSettings
	calculator    *TFIDFCalculator
}

// NewService creates a new search Service.
// settings must already have defaults applied.
func NewService(invIndex *index.InvertedIndex, stopWords *tokenizer.StopWords, settings *config.EngineSettings) (*Service, error) {
	if invIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if stopWords == nil {
		return nil, fmt.Errorf("stop words cannot be nil")
	}
	if settings == nil {
		return nil, fmt.Errorf("settings cannot be nil")
	}
	if len(settings.MinusWordMarker) != 1 {
		return nil, fmt.Errorf("minus word marker must be exactly one byte, got '%s'", settings.MinusWordMarker)
	}

	return &Service{
		invertedIndex: invIndex,
		stopWords:     stopWords,
		settings:      settings,
		calculator:    NewTFIDFCalculator(invIndex),
	}, nil
}

// FindTopDocuments ranks the indexed documents against rawQuery and returns
// at most MaxResultDocumentCount of them, most relevant first. Documents with
// equal relevance are ordered by ascending ID.
func (s *Service) FindTopDocuments(rawQuery string) []model.Document {
	docs, _ := s.findTopDocuments(rawQuery, s.settings.MaxResultDocumentCount)
	return docs
}

// findTopDocuments returns the ranked documents truncated to limit, and the
// number of matches before truncation.
func (s *Service) findTopDocuments(rawQuery string, limit int) ([]model.Document, int) {
	query := ParseQuery(rawQuery, s.stopWords, s.settings.Marker())
	matchedDocuments := s.findAllDocuments(query)

	sort.Slice(matchedDocuments, func(i, j int) bool {
		if matchedDocuments[i].Relevance != matchedDocuments[j].Relevance {
			return matchedDocuments[i].Relevance > matchedDocuments[j].Relevance
		}
		return matchedDocuments[i].ID < matchedDocuments[j].ID
	})

	totalHits := len(matchedDocuments)
	if totalHits > limit {
		matchedDocuments = matchedDocuments[:limit]
	}
	return matchedDocuments, totalHits
}

// findAllDocuments accumulates TF-IDF relevance for every document matching a
// query term, then drops every document containing a minus word.
func (s *Service) findAllDocuments(query Query) []model.Document {
	matchedDocuments := make([]model.Document, 0)
	if query.IsEmpty() || s.invertedIndex.DocumentCount() == 0 {
		return matchedDocuments
	}

	documentRelevance := make(map[int]float64)
	for term := range query.Terms {
		postings := s.invertedIndex.TermsFor(term)
		if len(postings) == 0 {
			continue
		}
		idf := s.calculator.CalculateIDF(term)
		for docID, tf := range postings {
			documentRelevance[docID] += CalculateTFIDF(tf, idf)
		}
	}

	for minusWord := range query.MinusWords {
		for docID := range s.invertedIndex.TermsFor(minusWord) {
			delete(documentRelevance, docID)
		}
	}

	for docID, relevance := range documentRelevance {
		matchedDocuments = append(matchedDocuments, model.Document{ID: docID, Relevance: relevance})
	}
	return matchedDocuments
}

// Search performs a search operation based on the query.
func (s *Service) Search(query services.SearchQuery) (services.SearchResult, error) {
	startTime := time.Now()

	if query.Limit < 0 {
		return services.SearchResult{}, fmt.Errorf("limit cannot be negative, got %d", query.Limit)
	}
	limit := s.settings.MaxResultDocumentCount
	if query.Limit > 0 && query.Limit < limit {
		limit = query.Limit
	}

	hits, totalHits := s.findTopDocuments(query.QueryString, limit)

	return services.SearchResult{
		Hits:    hits,
		Total:   totalHits,
		Took:    time.Since(startTime).Milliseconds(),
		QueryId: uuid.New().String(),
	}, nil
}
