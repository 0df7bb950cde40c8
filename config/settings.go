// Package config provides configuration structures for the search engine.
// It defines per-index engine settings and the file-based configuration of the program.
package config

import (
	"fmt"
	"strings"
)

const (
	// DefaultMaxResultDocumentCount is the number of documents returned by a search when not configured.
	DefaultMaxResultDocumentCount = 5
	// DefaultMinusWordMarker prefixes query words that exclude documents containing them.
	DefaultMinusWordMarker = "-"
	// DefaultIndexName is used by the console program, which works with a single index.
	DefaultIndexName = "default"
)

// EngineSettings contains all configuration options for a single search index.
//
// StopWords is applied once when the index is created; words are separated
// by spaces and matched case-sensitively.
type EngineSettings struct {
	Name                   string `json:"name" yaml:"name"`                                        // Unique name for the index
	StopWords              string `json:"stop_words" yaml:"stopWords"`                             // Space-separated words ignored in documents and queries
	MaxResultDocumentCount int    `json:"max_result_document_count" yaml:"maxResultDocumentCount"` // Upper bound on returned documents (e.g., 5)
	MinusWordMarker        string `json:"minus_word_marker" yaml:"minusWordMarker"`                // Single-byte prefix marking exclusion words (e.g., "-")
}

// ApplyDefaults applies default values to the settings
func (settings *EngineSettings) ApplyDefaults() {
	if settings.MaxResultDocumentCount == 0 {
		settings.MaxResultDocumentCount = DefaultMaxResultDocumentCount
	}
	if settings.MinusWordMarker == "" {
		settings.MinusWordMarker = DefaultMinusWordMarker
	}
}

// Validate checks the settings and returns one message per problem found.
// It is meant to be called after ApplyDefaults.
func (settings *EngineSettings) Validate() []string {
	var errors []string

	if strings.TrimSpace(settings.Name) == "" {
		errors = append(errors, "Index name cannot be empty or whitespace-only")
	}
	if settings.MaxResultDocumentCount < 0 {
		errors = append(errors, fmt.Sprintf("max_result_document_count cannot be negative, got %d", settings.MaxResultDocumentCount))
	}
	if len(settings.MinusWordMarker) != 1 {
		errors = append(errors, fmt.Sprintf("minus_word_marker must be exactly one byte, got '%s'", settings.MinusWordMarker))
	} else if settings.MinusWordMarker == " " {
		errors = append(errors, "minus_word_marker cannot be the word separator (space)")
	}

	return errors
}

// Marker returns the minus-word marker as a byte. Settings must be valid.
func (settings *EngineSettings) Marker() byte {
	return settings.MinusWordMarker[0]
}
