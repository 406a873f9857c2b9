package subscription

import (
	"net/http"

	"aidemoi/internal/database"
	"aidemoi/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CheckSubscription handles POST /api/auth/check-subscription
func (h *Handler) CheckSubscription(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	st, err := h.service.Check(c.Request.Context(), req.Email)
	if err != nil {
		_ = c.Error(err)
		if database.IsUnavailable(err) {
			response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	if !st.Found {
		response.Failure(c, http.StatusOK, gin.H{"subscribed": false})
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"subscribed": st.Subscribed,
		"expires_at": st.ExpiresAt,
	})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/auth/check-subscription", h.CheckSubscription)
}
