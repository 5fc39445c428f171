package server

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/filadex/filadex/internal/config"
	"github.com/filadex/filadex/internal/handler"
	"github.com/filadex/filadex/internal/importer"
	"github.com/filadex/filadex/internal/repository"
	"github.com/filadex/filadex/internal/response"
)

// Server holds the Echo app and dependencies.
type Server struct {
	Echo   *echo.Echo
	Config *config.Config
}

// New builds the Echo server and registers routes.
func New(cfg *config.Config, pool *pgxpool.Pool, log zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover(), middleware.Logger())
	if len(cfg.Server.CORSAllowedOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.Server.CORSAllowedOrigins,
		}))
	}

	vendors := repository.NewVendorRepository(pool)
	filaments := repository.NewFilamentRepository(pool)
	spools := repository.NewSpoolRepository(pool)

	importH := &handler.ImportHandler{
		Importer: importer.New(vendors, filaments, spools, log),
		Log:      log,
	}
	catalogH := &handler.CatalogHandler{
		Vendors:   vendors,
		Filaments: filaments,
		Spools:    spools,
	}

	api := e.Group("/api/v1")
	api.GET("/health", func(c echo.Context) error {
		return response.OK(c, map[string]string{"status": "healthy"}, "")
	})

	api.POST("/import/vendors", importH.ImportVendors)
	api.POST("/import/filaments", importH.ImportFilaments)
	api.POST("/import/spools", importH.ImportSpools)

	api.GET("/vendors", catalogH.ListVendors)
	api.GET("/filaments", catalogH.ListFilaments)
	api.GET("/spools", catalogH.ListSpools)

	return &Server{Echo: e, Config: cfg}
}

// Start starts the HTTP server. Blocks until the context is cancelled or the
// server fails. On context cancel, Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	s.Echo.Server.ReadTimeout = time.Duration(s.Config.Server.ReadTimeout) * time.Second
	s.Echo.Server.WriteTimeout = time.Duration(s.Config.Server.WriteTimeout) * time.Second
	s.Echo.Server.IdleTimeout = time.Duration(s.Config.Server.IdleTimeout) * time.Second

	go func() {
		<-ctx.Done()
		_ = s.Shutdown(context.Background())
	}()
	return s.Echo.Start(":" + s.Config.Server.Port)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}
