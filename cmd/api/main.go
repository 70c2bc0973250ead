package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "jobsearch-api/docs"
	"jobsearch-api/internal/config"
	"jobsearch-api/internal/handler"
	"jobsearch-api/internal/logging"
	"jobsearch-api/internal/middleware"
	"jobsearch-api/internal/repository"
	"jobsearch-api/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Job Search API
//	@version		1.0
//	@description	Postal code radius search and job lookup.
//	@BasePath		/
func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

func run() error {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}

	logger := logging.SetupDefault(config.LogLevel, config.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database connection, shared read-only by all requests
	conn, err := repository.NewPool(ctx, config.DBSource)
	if err != nil {
		return fmt.Errorf("cannot connect to db: %w", err)
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)

	placeService := service.NewPlaceService(repo)
	radiusService := service.NewRadiusService(repo)
	jobService := service.NewJobService(repo)
	statsService := service.NewStatsService(repo)

	placeHandler := handler.NewPlaceHandler(placeService)
	radiusHandler := handler.NewRadiusHandler(radiusService)
	jobHandler := handler.NewJobHandler(jobService, statsService)

	gin.SetMode(config.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	if len(config.CORSAllowedOrigins) == 0 || config.CORSAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = config.CORSAllowedOrigins
	}
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		if err := conn.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api")
	api.GET("/locations", placeHandler.SearchPlaces)
	api.GET("/radius-search", radiusHandler.RadiusSearch)
	api.GET("/jobs", jobHandler.SearchJobs)
	api.GET("/jobs-stats", jobHandler.JobStats)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    config.ServerAddress,
		Handler: r,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", config.ServerAddress).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	log.Info().Msg("stopped")
	return nil
}
