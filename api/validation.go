// Package api provides the HTTP interface of the search engine.
package api

import (
	"strings"

	"github.com/gcbaptista/tfidf-search-engine/config"
	"github.com/gcbaptista/tfidf-search-engine/model"
)

// maxDocumentsPerRequest bounds a single PUT of documents.
const maxDocumentsPerRequest = 10000

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateIndexName validates an index name parameter
func ValidateIndexName(indexName string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if indexName == "" {
		result.AddError("indexName", "Index name is required")
		return result
	}

	if strings.TrimSpace(indexName) != indexName {
		result.AddError("indexName", "Index name cannot have leading or trailing whitespace")
		return result
	}

	if strings.ContainsAny(indexName, "/\\") {
		result.AddError("indexName", "Index name cannot contain slashes")
	}

	return result
}

// ValidateEngineSettings validates index settings for creation.
// Defaults are applied to a copy before validation, so zero values are accepted.
func ValidateEngineSettings(settings config.EngineSettings) *ValidationResult {
	result := ValidateIndexName(settings.Name)
	if result.HasErrors() {
		return result
	}

	settings.ApplyDefaults()
	for _, problem := range settings.Validate() {
		result.AddError("settings", problem)
	}
	return result
}

// ValidateDocuments validates a batch of documents to index
func ValidateDocuments(docs []model.DocumentInput) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if len(docs) == 0 {
		result.AddError("documents", "At least one document is required")
		return result
	}
	if len(docs) > maxDocumentsPerRequest {
		result.AddError("documents", "Too many documents in one request")
		return result
	}

	for _, doc := range docs {
		if doc.ID < 0 {
			result.AddError("id", "Document ID must be non-negative")
		}
	}
	return result
}

// ValidateSearchRequest validates a search request body
func ValidateSearchRequest(req SearchRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if req.Limit < 0 {
		result.AddError("limit", "Limit cannot be negative")
	}
	return result
}
