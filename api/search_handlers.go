package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/tfidf-search-engine/services"
)

// SearchRequest defines the structure for search queries.
type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"` // Optional: lowers the index's max result document count
}

// SearchHandler handles search requests to an index.
// Request Body: SearchRequest
func (api *API) SearchHandler(c *gin.Context) {
	indexAccessor, indexName, ok := api.getIndexOrAbort(c)
	if !ok {
		return
	}

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Invalid request body: "+err.Error())
		return
	}

	if result := ValidateSearchRequest(req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	result, err := indexAccessor.Search(services.SearchQuery{
		QueryString: req.Query,
		Limit:       req.Limit,
	})
	if err != nil {
		SendEngineError(c, ErrorCodeSearchFailed, "search on index '"+indexName+"'", err)
		return
	}

	c.JSON(http.StatusOK, result)
}
