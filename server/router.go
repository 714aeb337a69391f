package server

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (s *Server) setupRouter() *gin.Engine {
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "test" {
		r := gin.New()
		s.defineRoutes(r)
		return r
	}

	r := gin.New()
	r.Use(requestIDMiddleware())
	r.Use(requestLogger())
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	s.defineRoutes(r)

	return r
}

func (s *Server) defineRoutes(router *gin.Engine) {
	router.GET("/", s.handleDashboard())
	router.GET("/health", s.handleHealth())

	router.POST("/bookmarks", s.handleCreateBookmark())
	router.GET("/bookmarks", s.handleGetBookmarks())
	router.GET("/bookmarks/:id", s.handleGetBookmark())
	router.DELETE("/bookmarks/:id", s.handleDeleteBookmark())
}
