package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/tfidf-search-engine/internal/metrics"
	"github.com/gcbaptista/tfidf-search-engine/services"
)

const defaultMaxBodySize = 10 << 20 // 10MB

// API holds dependencies for API handlers, primarily the search engine manager.
type API struct {
	engine services.IndexManager
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.IndexManager) *API {
	return &API{engine: engine}
}

// Options configures optional parts of the HTTP surface.
type Options struct {
	Metrics     *metrics.Metrics // When set, requests are counted and GET /metrics is exposed
	MaxBodySize int64            // Request body limit in bytes; 0 means 10MB
}

// SetupRoutes defines all the API routes for the search engine.
func SetupRoutes(router *gin.Engine, engine services.IndexManager, opts Options) {
	apiHandler := NewAPI(engine)

	maxBodySize := opts.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = defaultMaxBodySize
	}
	router.Use(RequestIDMiddleware(), CORSMiddleware(), RequestSizeLimitMiddleware(maxBodySize))
	if opts.Metrics != nil {
		router.Use(MetricsMiddleware(opts.Metrics))
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Index management routes
	indexRoutes := router.Group("/indexes")
	{
		indexRoutes.POST("", apiHandler.CreateIndexHandler)                       // Create a new index
		indexRoutes.GET("", apiHandler.ListIndexesHandler)                        // List all indexes
		indexRoutes.GET("/:indexName", apiHandler.GetIndexHandler)                // Get settings and stop words
		indexRoutes.DELETE("/:indexName", apiHandler.DeleteIndexHandler)          // Delete an index
		indexRoutes.GET("/:indexName/stats", apiHandler.GetIndexStatsHandler)     // Get index statistics
		indexRoutes.PUT("/:indexName/stop-words", apiHandler.SetStopWordsHandler) // Add stop words

		// Document route per index
		indexRoutes.PUT("/:indexName/documents", apiHandler.AddDocumentsHandler) // Add/Replace documents

		// Search route per index
		indexRoutes.POST("/:indexName/_search", apiHandler.SearchHandler)
	}
}

// HealthCheckHandler provides a simple health check endpoint
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "tfidf-search-engine",
		"timestamp": fmt.Sprintf("%d", time.Now().Unix()),
	})
}

// getIndexOrAbort resolves the :indexName path parameter, writing the error response itself on failure.
func (api *API) getIndexOrAbort(c *gin.Context) (services.IndexAccessor, string, bool) {
	indexName := c.Param("indexName")
	if result := ValidateIndexName(indexName); result.HasErrors() {
		SendValidationError(c, result)
		return nil, indexName, false
	}

	indexAccessor, err := api.engine.GetIndex(indexName)
	if err != nil {
		SendEngineError(c, ErrorCodeInternalError, "get index", err)
		return nil, indexName, false
	}
	return indexAccessor, indexName, true
}
