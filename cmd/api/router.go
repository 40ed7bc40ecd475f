package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"specialist-directory-backend/internal/shared/middleware"
	"specialist-directory-backend/internal/shared/response"
	"specialist-directory-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
	)

	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route not found")
	})

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupSpecialistRoutes(api, c)
		setupPlatformFeeRoutes(api, c)
		setupMediaRoutes(api, c)
	}

	return router
}

func setupSpecialistRoutes(api *gin.RouterGroup, c *container.Container) {
	specialists := api.Group("/specialists")
	{
		// Public listing must be registered before /:id so gin does not
		// treat "public" as an identifier.
		specialists.GET("/public", c.SpecialistHandler.ListPublicSpecialists)

		specialists.GET("", c.SpecialistHandler.ListSpecialists)
		specialists.GET("/:id", c.SpecialistHandler.GetSpecialistByID)
		specialists.POST("", c.SpecialistHandler.CreateSpecialist)
		specialists.PUT("/:id", c.SpecialistHandler.UpdateSpecialist)
		specialists.PATCH("/:id/publish", c.SpecialistHandler.PublishSpecialist)
		specialists.DELETE("/:id", c.SpecialistHandler.DeleteSpecialist)
	}
}

func setupPlatformFeeRoutes(api *gin.RouterGroup, c *container.Container) {
	fees := api.Group("/platform-fees")
	{
		fees.GET("", c.PlatformFeeHandler.ListFees)
		fees.GET("/:id", c.PlatformFeeHandler.GetFeeByID)
	}
}

func setupMediaRoutes(api *gin.RouterGroup, c *container.Container) {
	media := api.Group("/media")
	{
		media.POST("", c.MediaHandler.RegisterMedia)
		media.GET("/:id", c.MediaHandler.GetMediaByID)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.Ping(ctx); err != nil {
				dbStatus = "error"
			}
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = "error"
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
