package services

import (
	"github.com/techagentng/snipmark/config"
	"github.com/techagentng/snipmark/db"
	"github.com/techagentng/snipmark/models"
	"github.com/techagentng/snipmark/services/utils"
)

// BookmarkService interface
type BookmarkService interface {
	CreateBookmark(text, ipAddress, userAgent string) (*models.Bookmark, error)
	GetBookmarks(limit, offset int, search string) ([]models.Bookmark, *models.Pagination, error)
	GetBookmarkByID(id uint64) (*models.Bookmark, error)
	DeleteBookmarkByID(id uint64) error
}

// bookmarkService struct
type bookmarkService struct {
	Config       *config.Config
	bookmarkRepo db.BookmarkRepository
}

// NewBookmarkService creates a new instance of BookmarkService
func NewBookmarkService(bookmarkRepo db.BookmarkRepository, conf *config.Config) BookmarkService {
	return &bookmarkService{
		bookmarkRepo: bookmarkRepo,
		Config:       conf,
	}
}

// CreateBookmark derives the device hash from the request provenance and
// persists the snippet. Field validation happened at the handler; the text
// arrives here already checked.
func (bs *bookmarkService) CreateBookmark(text, ipAddress, userAgent string) (*models.Bookmark, error) {
	bookmark := &models.Bookmark{
		Text:       text,
		UserAgent:  userAgent,
		IPAddress:  ipAddress,
		DeviceHash: utils.GenerateDeviceHash(ipAddress, userAgent),
	}
	return bs.bookmarkRepo.SaveBookmark(bookmark)
}

func (bs *bookmarkService) GetBookmarks(limit, offset int, search string) ([]models.Bookmark, *models.Pagination, error) {
	bookmarks, total, err := bs.bookmarkRepo.GetBookmarks(limit, offset, search)
	if err != nil {
		return nil, nil, err
	}

	if bookmarks == nil {
		bookmarks = []models.Bookmark{}
	}

	pagination := &models.Pagination{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: total > int64(offset+limit),
	}

	return bookmarks, pagination, nil
}

func (bs *bookmarkService) GetBookmarkByID(id uint64) (*models.Bookmark, error) {
	return bs.bookmarkRepo.GetBookmarkByID(id)
}

func (bs *bookmarkService) DeleteBookmarkByID(id uint64) error {
	return bs.bookmarkRepo.DeleteBookmarkByID(id)
}
