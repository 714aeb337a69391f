package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/techagentng/snipmark/db"
	"github.com/techagentng/snipmark/models"
)

var validate = validator.New()

func (s *Server) handleCreateBookmark() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateBookmarkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid `text` field"})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid `text` field"})
			return
		}

		ipAddress := c.ClientIP()
		userAgent := c.Request.UserAgent()

		bookmark, err := s.BookmarkService.CreateBookmark(req.Text, ipAddress, userAgent)
		if err != nil {
			logrus.Errorf("DB Error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(http.StatusCreated, models.CreateBookmarkResponse{
			ID:        bookmark.ID,
			CreatedAt: bookmark.CreatedAt,
		})
	}
}

func (s *Server) handleGetBookmarks() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := db.DefaultPageSize
		if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
			limit = v
		}
		// values above the cap are clamped, never rejected
		if limit > db.MaxPageSize {
			limit = db.MaxPageSize
		}

		offset := 0
		if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
			offset = v
		}

		search := c.Query("search")

		bookmarks, pagination, err := s.BookmarkService.GetBookmarks(limit, offset, search)
		if err != nil {
			logrus.Errorf("DB Error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"bookmarks":  bookmarks,
			"pagination": pagination,
		})
	}
}

func (s *Server) handleGetBookmark() gin.HandlerFunc {
	return func(c *gin.Context) {
		// digits only; anything else never reaches the store
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			// a well-formed id too large for any assigned key matches nothing
			if errors.Is(err, strconv.ErrRange) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Bookmark not found"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bookmark id"})
			return
		}

		bookmark, err := s.BookmarkService.GetBookmarkByID(id)
		if err != nil {
			if errors.Is(err, db.ErrBookmarkNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Bookmark not found"})
				return
			}
			logrus.Errorf("DB Error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, bookmark)
	}
}

func (s *Server) handleDeleteBookmark() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Bookmark not found"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bookmark id"})
			return
		}

		if err := s.BookmarkService.DeleteBookmarkByID(id); err != nil {
			if errors.Is(err, db.ErrBookmarkNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Bookmark not found"})
				return
			}
			logrus.Errorf("DB Error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
	}
}
