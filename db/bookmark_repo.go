package db

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/techagentng/snipmark/models"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// ErrBookmarkNotFound is returned when a lookup or delete targets an id
// with no matching row. Absence is an expected outcome, not a failure.
var ErrBookmarkNotFound = errors.New("bookmark not found")

// likeEscaper neutralizes LIKE metacharacters so a search term only ever
// matches itself literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type BookmarkRepository interface {
	SaveBookmark(bookmark *models.Bookmark) (*models.Bookmark, error)
	GetBookmarks(limit, offset int, search string) ([]models.Bookmark, int64, error)
	GetBookmarkByID(id uint64) (*models.Bookmark, error)
	DeleteBookmarkByID(id uint64) error
}

type bookmarkRepo struct {
	DB *gorm.DB
}

func NewBookmarkRepo(db *GormDB) BookmarkRepository {
	return &bookmarkRepo{db.DB}
}

// SaveBookmark appends one row; id and created_at are assigned by the
// insert and filled back into the passed model. Identical payloads always
// create distinct rows, there is no dedup by device_hash.
func (b *bookmarkRepo) SaveBookmark(bookmark *models.Bookmark) (*models.Bookmark, error) {
	if err := b.DB.Create(bookmark).Error; err != nil {
		return nil, errors.Wrap(err, "failed to save bookmark")
	}
	return bookmark, nil
}

// GetBookmarks returns one page ordered by created_at descending, plus the
// total count of rows matching the same filter. The count and the page are
// two queries; under concurrent writes the total can drift by the number of
// creates/deletes landing between them, which is accepted.
func (b *bookmarkRepo) GetBookmarks(limit, offset int, search string) ([]models.Bookmark, int64, error) {
	var bookmarks []models.Bookmark
	var total int64

	query := b.DB.Model(&models.Bookmark{})
	if search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		query = query.Where(`LOWER(text) LIKE ? ESCAPE '\'`, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count bookmarks")
	}

	err := query.Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).Find(&bookmarks).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list bookmarks")
	}

	return bookmarks, total, nil
}

func (b *bookmarkRepo) GetBookmarkByID(id uint64) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	err := b.DB.First(&bookmark, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookmarkNotFound
		}
		return nil, errors.Wrap(err, "failed to fetch bookmark")
	}
	return &bookmark, nil
}

// DeleteBookmarkByID removes the row permanently. Deleting an id that no
// longer exists returns ErrBookmarkNotFound, so two racing deletes on the
// same id resolve to one success and one not-found.
func (b *bookmarkRepo) DeleteBookmarkByID(id uint64) error {
	result := b.DB.Delete(&models.Bookmark{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete bookmark")
	}
	if result.RowsAffected == 0 {
		return ErrBookmarkNotFound
	}
	return nil
}
