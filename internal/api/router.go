// Package api exposes plan generation and flight search over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with CORS, rate limiting and JSON panic
// recovery. Request logs go to logOut when it is non-nil.
func NewRouter(h *Handlers, cfg Config, logOut io.Writer) *gin.Engine {
	if cfg.Release {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if logOut != nil {
		r.Use(gin.LoggerWithWriter(logOut))
	}
	r.Use(recovery(logOut))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	api.GET("/health", h.Health)
	api.GET("/catalog/:destination", h.Catalog)

	limited := api.Group("")
	if cfg.RateLimitRPS > 0 {
		limited.Use(NewRateLimiter(cfg.RateLimitRPS, cfg.RateBurst).Middleware())
	}
	limited.POST("/plan", h.Plan)
	limited.POST("/flights", h.SearchFlights)
	limited.POST("/export", h.Export)
	return r
}

func recovery(logOut io.Writer) gin.HandlerFunc {
	if logOut == nil {
		logOut = io.Discard
	}
	logger := slog.New(slog.NewTextHandler(logOut, nil))
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("http_panic", "path", c.Request.URL.Path, "panic", fmt.Sprint(recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
}

// Serve runs handler on addr until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		return nil
	}
}
