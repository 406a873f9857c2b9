package provider

import (
	"errors"
	"net/http"
	"strconv"

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

// GetProvider handles GET /api/providers/:id?lang=
func (h *Handler) GetProvider(c *gin.Context) {
	// A malformed id cannot match any provider.
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, notFoundMessage)
		return
	}

	detail, err := h.service.GetDetail(c.Request.Context(), id, domain.ParseLocale(c.Query("lang")))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"provider": detail.Provider,
		"services": detail.Services,
		"reviews":  detail.Reviews,
	})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/providers/:id", h.GetProvider)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrProviderNotFound):
		response.Error(c, http.StatusNotFound, notFoundMessage)
	case database.IsUnavailable(err):
		_ = c.Error(err)
		response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal server error")
	}
}
