package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "bookingportal/internal/config"
	h "bookingportal/internal/http/handlers"
	"bookingportal/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, api *h.API) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware(env))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	root := r.Group("/api")
	{
		root.GET("/health", api.Health)
		root.GET("/store-check", api.StoreCheck)

		bookings := root.Group("/bookings")
		bookings.POST("", api.SubmitBooking)
		bookings.POST("/quote", api.Quote)
		bookings.GET("/status", api.SubmitStatus)

		history := root.Group("/history")
		history.GET("", api.GetHistory)
		history.DELETE("", api.ClearHistory)
		history.GET("/:id/receipt", api.GetReceipt)

		root.GET("/agent", api.GetAgent)
		root.PUT("/agent", api.SetAgent)

		root.GET("/catalog", api.GetCatalog)
	}

	return r
}

func corsMiddleware(env intconfig.Env) gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins:     env.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowOrigins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}
	return cors.New(cfg)
}
