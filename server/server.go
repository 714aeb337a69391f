package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/techagentng/snipmark/config"
	"github.com/techagentng/snipmark/db"
	"github.com/techagentng/snipmark/services"
)

type Server struct {
	Config             *config.Config
	BookmarkRepository db.BookmarkRepository
	BookmarkService    services.BookmarkService
	DB                 *db.GormDB
}

// Start runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests and releases the database pool.
func (s *Server) Start() {
	router := s.setupRouter()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.Config.Port),
		Handler: router,
	}

	go func() {
		logrus.Infof("bookmarking service running at http://localhost:%d", s.Config.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("server forced to shutdown: %v", err)
	}

	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			logrus.Errorf("error closing database: %v", err)
		}
	}
	logrus.Info("server exited")
}
