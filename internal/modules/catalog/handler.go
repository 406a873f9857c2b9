package catalog

import (
	"net/http"

	"aidemoi/internal/database"
	"aidemoi/internal/domain"
	"aidemoi/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetCategories handles GET /api/categories?lang=
func (h *Handler) GetCategories(c *gin.Context) {
	loc := domain.ParseLocale(c.Query("lang"))

	categories, err := h.service.ListCategories(c.Request.Context(), loc)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}

// Search handles GET /api/search?lang=&category=&city=&country=&type=
func (h *Handler) Search(c *gin.Context) {
	var q SearchQuery
	// Binding plain strings cannot fail in a way we care about; bad values
	// are filtered out by Filters.
	_ = c.ShouldBindQuery(&q)

	results, err := h.service.Search(c.Request.Context(), domain.ParseLocale(q.Lang), q.Filters())
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}

// GetStats handles GET /api/stats
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

// RegisterRoutes registers all catalog routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/categories", h.GetCategories)
	r.GET("/search", h.Search)
	r.GET("/stats", h.GetStats)
}

func handleError(c *gin.Context, err error) {
	_ = c.Error(err)

	if database.IsUnavailable(err) {
		response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable")
		return
	}
	response.Error(c, http.StatusInternalServerError, "Internal server error")
}
