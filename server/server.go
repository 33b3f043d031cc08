package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ofwtools/ofw-mock-server/api"
	"github.com/ofwtools/ofw-mock-server/config"
	"github.com/ofwtools/ofw-mock-server/internal/logger"
	"github.com/ofwtools/ofw-mock-server/internal/repository"
	"github.com/ofwtools/ofw-mock-server/services"
)

type Server struct {
	config       *config.Config
	log          logger.Logger
	httpServer   *http.Server
	router       *gin.Engine
	services     *services.Services
	repositories *repository.Repositories
}

func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize logger
	if cfg.AppConfig.Debug {
		cfg.Logger.DevMode = true
		cfg.Logger.LogLevel = "debug"
	}
	appLogger := logger.NewAppLogger(cfg.Logger)
	appLogger.InitLogger()

	// Initialize repositories and services
	repos := repository.InitRepositories(cfg.AppConfig.DataDir, appLogger)
	svcs := services.InitServices(repos)

	// Initialize Gin
	if !cfg.AppConfig.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	return &Server{
		config:       cfg,
		log:          appLogger,
		router:       router,
		services:     svcs,
		repositories: repos,
		httpServer: &http.Server{
			Addr:    ":" + cfg.AppConfig.APIPort,
			Handler: router,
		},
	}, nil
}

func (s *Server) Initialize() error {
	// Load fixtures before taking traffic; a corrupt fixture file is an
	// operator error and stops startup.
	if err := s.repositories.FixtureRepository.Load(); err != nil {
		return err
	}
	s.logLoadReport()

	// Setup API routes
	api.RegisterRoutes(s.router, s.config.AppConfig, s.services, s.repositories, s.log)

	return nil
}

func (s *Server) logLoadReport() {
	stats := s.repositories.FixtureRepository.Stats()
	s.log.Infof("Data loaded from %s", s.config.AppConfig.DataDir)
	s.log.Infof("  Folders: %v", stats.FoldersLoaded)
	s.log.Infof("  Message folders: %d", stats.MessageFolderCount)
	s.log.Infof("  Full messages: %d", stats.FullMessageCount)
	s.log.Infof("  LocalStorage: %v", stats.LocalStorageLoaded)
}

func (s *Server) Run() error {
	if err := s.Initialize(); err != nil {
		return err
	}

	go func() {
		s.log.Infof("OFW mock server listening on port %s", s.config.AppConfig.APIPort)
		for _, endpoint := range []string{
			"GET  /health",
			"GET  /ofw/appv2/localstorage.json",
			"GET  /pub/v1/messageFolders",
			"GET  /pub/v3/messages",
			"GET  /pub/v3/messages/<id>",
			"POST /reload",
		} {
			s.log.Infof("  %s", endpoint)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Errorf("HTTP server error: %v", err)
		}
	}()

	return s.waitForShutdown()
}

func (s *Server) waitForShutdown() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	s.log.Infof("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.log.Errorf("HTTP server shutdown error: %v", err)
		return err
	}
	return nil
}
