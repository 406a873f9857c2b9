// Package server assembles the HTTP router from the feature modules.
package server

import (
	"context"
	"net/http"
	"time"

	"aidemoi/internal/config"
	"aidemoi/internal/database"
	"aidemoi/internal/middleware"
	"aidemoi/internal/modules/catalog"
	"aidemoi/internal/modules/provider"
	"aidemoi/internal/modules/subscription"
	"aidemoi/internal/pkg/response"
	"aidemoi/internal/repository"
	"aidemoi/internal/web"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Options tune the router; zero values are fine for production.
type Options struct {
	Clock     func() time.Time
	AccessLog bool
}

func NewRouter(db *gorm.DB, cfg *config.Config, opts Options) *gin.Engine {
	categoryRepo := repository.NewCategoryRepository(db)
	searchRepo := repository.NewSearchRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	userRepo := repository.NewUserRepository(db)

	catalogHandler := catalog.NewHandler(catalog.NewService(categoryRepo, searchRepo, statsRepo, opts.Clock))
	providerHandler := provider.NewHandler(provider.NewService(providerRepo, reviewRepo))
	subscriptionHandler := subscription.NewHandler(subscription.NewService(userRepo, opts.Clock))

	r := gin.New()
	r.Use(middleware.RequestID())
	if opts.AccessLog {
		r.Use(gin.Logger())
	}
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	api.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	{
		catalogHandler.RegisterRoutes(api)
		providerHandler.RegisterRoutes(api)
		subscriptionHandler.RegisterRoutes(api)
		api.GET("/health", health(db))
		// Preflight for every API path; CORS aborts with 204 before this runs.
		api.OPTIONS("/*path", func(c *gin.Context) {})
	}

	web.NewHandler(cfg.StaticDir).RegisterRoutes(r)

	return r
}

func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := database.Ping(ctx, db); err != nil {
			_ = c.Error(err)
			response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	}
}
