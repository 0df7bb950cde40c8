package engine

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/gcbaptista/tfidf-search-engine/config"
	"github.com/gcbaptista/tfidf-search-engine/internal/errors"
	"github.com/gcbaptista/tfidf-search-engine/services"
)

// CreateIndex creates a new, empty index with the given settings.
func (e *Engine) CreateIndex(settings config.EngineSettings) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if strings.TrimSpace(settings.Name) == "" {
		return errors.NewValidationError("name", "index name cannot be empty")
	}
	if _, exists := e.indexes[settings.Name]; exists {
		return errors.NewIndexAlreadyExistsError(settings.Name)
	}

	instance, err := newSearchServer(settings, e.metrics)
	if err != nil {
		return fmt.Errorf("failed to create new index instance for '%s': %w", settings.Name, err)
	}

	e.indexes[settings.Name] = instance
	log.Printf("Index '%s' created.", settings.Name)
	return nil
}

// GetIndex retrieves an index by name.
func (e *Engine) GetIndex(name string) (services.IndexAccessor, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	instance, exists := e.indexes[name]
	if !exists {
		return nil, errors.NewIndexNotFoundError(name)
	}
	return instance, nil
}

// DeleteIndex removes an index and its metrics.
func (e *Engine) DeleteIndex(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.indexes[name]; !exists {
		return errors.NewIndexNotFoundError(name)
	}
	delete(e.indexes, name)
	e.metrics.ForgetIndex(name)

	log.Printf("Index '%s' deleted successfully.", name)
	return nil
}

// ListIndexes returns the names of all indexes, sorted.
func (e *Engine) ListIndexes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.indexes))
	for name := range e.indexes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
