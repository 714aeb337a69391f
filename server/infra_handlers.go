package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func (s *Server) handleHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	}
}

// handleDashboard saves a throwaway bookmark and renders it, a quick manual
// check that the write path and the database are alive.
func (s *Server) handleDashboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		testText := "This is a test bookmark entry."
		userAgent := c.Request.UserAgent()
		ipAddress := c.ClientIP()

		saved, err := s.BookmarkService.CreateBookmark(testText, ipAddress, userAgent)
		if err != nil {
			logrus.Errorf("test insert failed: %v", err)
			c.String(http.StatusInternalServerError, "Failed to save test bookmark.")
			return
		}

		logrus.Infof("test insert successful: id=%d", saved.ID)
		html := fmt.Sprintf(`
      <h1>Welcome to the Bookmarking Service!</h1>
      <p>Test bookmark saved!</p>
      <ul>
        <li>ID: %d</li>
        <li>Created At: %s</li>
        <li>Text: %s</li>
      </ul>
    `, saved.ID, saved.CreatedAt, testText)
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
	}
}
