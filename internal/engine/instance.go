package engine

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gcbaptista/tfidf-search-engine/config"
	"github.com/gcbaptista/tfidf-search-engine/index"
	"github.com/gcbaptista/tfidf-search-engine/internal/errors"
	"github.com/gcbaptista/tfidf-search-engine/internal/indexing"
	"github.com/gcbaptista/tfidf-search-engine/internal/metrics"
	"github.com/gcbaptista/tfidf-search-engine/internal/search"
	"github.com/gcbaptista/tfidf-search-engine/internal/tokenizer"
	"github.com/gcbaptista/tfidf-search-engine/model"
	"github.com/gcbaptista/tfidf-search-engine/services"
)

// SearchServer holds all components and services for a single search index.
// It implements the services.IndexAccessor interface.
//
// Mutations (stop words, documents) take the write lock and queries the read
// lock, so once indexing is done any number of queries may run concurrently.
type SearchServer struct {
	mu            sync.RWMutex
	settings      *config.EngineSettings
	invertedIndex *index.InvertedIndex
	stopWords     *tokenizer.StopWords
	indexer       *indexing.Service
	searcher      *search.Service
	metrics       *metrics.Metrics
}

// NewSearchServer creates a standalone search server.
// An empty name falls back to config.DefaultIndexName.
func NewSearchServer(settings config.EngineSettings) (*SearchServer, error) {
	if settings.Name == "" {
		settings.Name = config.DefaultIndexName
	}
	return newSearchServer(settings, nil)
}

func newSearchServer(settings config.EngineSettings, m *metrics.Metrics) (*SearchServer, error) {
	settings.ApplyDefaults()
	if problems := settings.Validate(); len(problems) > 0 {
		return nil, errors.NewValidationError("settings", strings.Join(problems, "; "))
	}

	invIndex := index.NewInvertedIndex()
	stopWords := tokenizer.NewStopWords()
	stopWords.Add(settings.StopWords)

	indexerService, err := indexing.NewService(invIndex, stopWords)
	if err != nil {
		return nil, fmt.Errorf("failed to create indexer service: %w", err)
	}
	searchService, err := search.NewService(invIndex, stopWords, &settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create search service: %w", err)
	}

	return &SearchServer{
		settings:      &settings,
		invertedIndex: invIndex,
		stopWords:     stopWords,
		indexer:       indexerService,
		searcher:      searchService,
		metrics:       m,
	}, nil
}

// SetStopWords adds the space-separated words of text to the stop words.
// It is meant to be called before any document is added.
func (s *SearchServer) SetStopWords(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.indexer.SetStopWords(text)
}

// AddDocument indexes text under docID. Only a negative docID is an error.
func (s *SearchServer) AddDocument(docID int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.indexer.AddDocument(docID, text); err != nil {
		return err
	}
	s.metrics.ObserveDocumentsIndexed(s.settings.Name, 1, s.invertedIndex.DocumentCount())
	return nil
}

// AddDocuments delegates to the underlying Indexer service.
// This satisfies a part of the services.IndexAccessor interface.
func (s *SearchServer) AddDocuments(docs []model.DocumentInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.indexer.AddDocuments(docs); err != nil {
		return err
	}
	s.metrics.ObserveDocumentsIndexed(s.settings.Name, len(docs), s.invertedIndex.DocumentCount())
	return nil
}

// FindTopDocuments returns the most relevant documents for rawQuery, at most
// MaxResultDocumentCount of them.
func (s *SearchServer) FindTopDocuments(rawQuery string) []model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := s.searcher.FindTopDocuments(rawQuery)
	s.metrics.ObserveSearch(s.settings.Name, len(docs))
	return docs
}

// Search delegates to the underlying Searcher service.
// This satisfies a part of the services.IndexAccessor interface.
func (s *SearchServer) Search(query services.SearchQuery) (services.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, err := s.searcher.Search(query)
	if err != nil {
		return services.SearchResult{}, errors.NewValidationError("limit", err.Error())
	}
	s.metrics.ObserveSearch(s.settings.Name, len(result.Hits))
	return result, nil
}

// Settings returns the configuration settings for this index.
// Stop words added through SetStopWords are not reflected; see StopWords.
func (s *SearchServer) Settings() config.EngineSettings {
	return *s.settings
}

// StopWords returns the current stop words, sorted.
func (s *SearchServer) StopWords() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stopWords.Words()
}

// Stats returns document, term and stop-word counts.
func (s *SearchServer) Stats() services.IndexStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return services.IndexStats{
		Name:          s.settings.Name,
		DocumentCount: s.invertedIndex.DocumentCount(),
		TermCount:     s.invertedIndex.TermCount(),
		StopWordCount: s.stopWords.Len(),
	}
}
