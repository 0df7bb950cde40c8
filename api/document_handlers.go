package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/tfidf-search-engine/model"
)

// AddDocumentsHandler handles adding or replacing documents in an index.
// Request Body: []model.DocumentInput
func (api *API) AddDocumentsHandler(c *gin.Context) {
	indexAccessor, _, ok := api.getIndexOrAbort(c)
	if !ok {
		return
	}

	var docs []model.DocumentInput
	if err := c.ShouldBindJSON(&docs); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if result := ValidateDocuments(docs); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := indexAccessor.AddDocuments(docs); err != nil {
		SendEngineError(c, ErrorCodeIndexingFailed, "add documents", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "documents indexed",
		"indexed":        len(docs),
		"document_count": indexAccessor.Stats().DocumentCount,
	})
}
