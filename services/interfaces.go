package services

import (
	"github.com/gcbaptista/tfidf-search-engine/config"
	"github.com/gcbaptista/tfidf-search-engine/model"
)

type SearchResult struct {
	Hits    []model.Document `json:"hits"`
	Total   int              `json:"total"`    // matching documents before the result limit
	Took    int64            `json:"took"`     // milliseconds
	QueryId string           `json:"query_id"` // unique UUID for this search query
}

type SearchQuery struct {
	QueryString string
	Limit       int // Optional: lowers the index's max result document count when positive
}

// IndexStats summarises the content of an index.
type IndexStats struct {
	Name          string `json:"name"`
	DocumentCount int    `json:"document_count"`
	TermCount     int    `json:"term_count"`
	StopWordCount int    `json:"stop_word_count"`
}

// Indexer defines operations for adding data to an index
type Indexer interface {
	SetStopWords(text string)
	AddDocument(docID int, text string) error
	AddDocuments(docs []model.DocumentInput) error
}

// Searcher defines operations for querying an index
type Searcher interface {
	FindTopDocuments(rawQuery string) []model.Document
	Search(query SearchQuery) (SearchResult, error)
}

// IndexManager manages the lifecycle of indices
type IndexManager interface {
	CreateIndex(settings config.EngineSettings) error
	GetIndex(name string) (IndexAccessor, error) // IndexAccessor combines Indexer and Searcher
	DeleteIndex(name string) error
	ListIndexes() []string
}

type IndexAccessor interface {
	Indexer
	Searcher
	Settings() config.EngineSettings
	StopWords() []string
	Stats() IndexStats
}
