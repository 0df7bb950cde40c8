package engine

import (
	"log"
	"sync"

	"github.com/gcbaptista/tfidf-search-engine/internal/metrics"
	"github.com/gcbaptista/tfidf-search-engine/services"
)

var (
	_ services.IndexManager  = (*Engine)(nil)
	_ services.IndexAccessor = (*SearchServer)(nil)
)

// Engine manages multiple independent search indexes.
// It implements the services.IndexManager interface.
type Engine struct {
	mu      sync.RWMutex
	indexes map[string]*SearchServer
	metrics *metrics.Metrics
}

// NewEngine creates a new search engine orchestrator.
// m may be nil, in which case nothing is recorded.
func NewEngine(m *metrics.Metrics) *Engine {
	log.Printf("Info: starting in-memory search engine")
	return &Engine{
		indexes: make(map[string]*SearchServer),
		metrics: m,
	}
}
