package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/tfidf-search-engine/config"
)

// StopWordsRequest is the body of PUT /indexes/:indexName/stop-words.
type StopWordsRequest struct {
	StopWords string `json:"stop_words"`
}

// IndexResponse describes an index: its settings and current stop words.
type IndexResponse struct {
	Settings  config.EngineSettings `json:"settings"`
	StopWords []string              `json:"stop_words"`
}

// CreateIndexHandler handles the creation of a new index.
// Request Body: config.EngineSettings
func (api *API) CreateIndexHandler(c *gin.Context) {
	var settings config.EngineSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if result := ValidateEngineSettings(settings); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.engine.CreateIndex(settings); err != nil {
		SendEngineError(c, ErrorCodeInternalError, "create index", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "index created", "name": settings.Name})
}

// ListIndexesHandler lists the names of all indexes.
func (api *API) ListIndexesHandler(c *gin.Context) {
	names := api.engine.ListIndexes()
	c.JSON(http.StatusOK, gin.H{"indexes": names, "total": len(names)})
}

// GetIndexHandler returns the settings and stop words of an index.
func (api *API) GetIndexHandler(c *gin.Context) {
	indexAccessor, _, ok := api.getIndexOrAbort(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, IndexResponse{
		Settings:  indexAccessor.Settings(),
		StopWords: indexAccessor.StopWords(),
	})
}

// DeleteIndexHandler deletes an index and all its documents.
func (api *API) DeleteIndexHandler(c *gin.Context) {
	indexName := c.Param("indexName")
	if result := ValidateIndexName(indexName); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.engine.DeleteIndex(indexName); err != nil {
		SendEngineError(c, ErrorCodeInternalError, "delete index", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "index deleted", "name": indexName})
}

// GetIndexStatsHandler returns statistics for a specific index
func (api *API) GetIndexStatsHandler(c *gin.Context) {
	indexAccessor, _, ok := api.getIndexOrAbort(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, indexAccessor.Stats())
}

// SetStopWordsHandler adds stop words to an index.
// Documents indexed before the call keep the terms they were indexed with.
func (api *API) SetStopWordsHandler(c *gin.Context) {
	indexAccessor, indexName, ok := api.getIndexOrAbort(c)
	if !ok {
		return
	}

	var req StopWordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	indexAccessor.SetStopWords(req.StopWords)
	c.JSON(http.StatusOK, gin.H{
		"status":     "stop words updated",
		"name":       indexName,
		"stop_words": indexAccessor.StopWords(),
	})
}
