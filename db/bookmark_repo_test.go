package db

import (
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/techagentng/snipmark/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) BookmarkRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Bookmark{}))
	return &bookmarkRepo{gdb}
}

func TestSaveBookmarkAssignsIDAndCreatedAt(t *testing.T) {
	repo := newTestRepo(t)

	saved, err := repo.SaveBookmark(&models.Bookmark{
		Text:       "Buy milk",
		IPAddress:  "1.2.3.4",
		UserAgent:  "TestAgent",
		DeviceHash: "abc123",
	})
	require.NoError(t, err)
	require.NotZero(t, saved.ID)
	require.False(t, saved.CreatedAt.IsZero())
}

func TestSaveBookmarkNoDedup(t *testing.T) {
	repo := newTestRepo(t)

	first, err := repo.SaveBookmark(&models.Bookmark{Text: "same", DeviceHash: "samehash"})
	require.NoError(t, err)
	second, err := repo.SaveBookmark(&models.Bookmark{Text: "same", DeviceHash: "samehash"})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
}

func TestGetBookmarkByIDRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	saved, err := repo.SaveBookmark(&models.Bookmark{
		Text:       "Buy milk",
		IPAddress:  "1.2.3.4",
		UserAgent:  "TestAgent",
		DeviceHash: "hash",
	})
	require.NoError(t, err)

	got, err := repo.GetBookmarkByID(uint64(saved.ID))
	require.NoError(t, err)
	require.Equal(t, "Buy milk", got.Text)
	require.Equal(t, "hash", got.DeviceHash)
}

func TestGetBookmarkByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetBookmarkByID(999)
	require.True(t, errors.Is(err, ErrBookmarkNotFound))
}

func TestDeleteBookmarkByID(t *testing.T) {
	repo := newTestRepo(t)

	saved, err := repo.SaveBookmark(&models.Bookmark{Text: "to delete"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteBookmarkByID(uint64(saved.ID)))

	// second delete observes absence
	err = repo.DeleteBookmarkByID(uint64(saved.ID))
	require.True(t, errors.Is(err, ErrBookmarkNotFound))

	_, err = repo.GetBookmarkByID(uint64(saved.ID))
	require.True(t, errors.Is(err, ErrBookmarkNotFound))
}

func TestDeleteBookmarkByIDAbsent(t *testing.T) {
	repo := newTestRepo(t)
	err := repo.DeleteBookmarkByID(12345)
	require.True(t, errors.Is(err, ErrBookmarkNotFound))
}

func seedBookmarks(t *testing.T, repo BookmarkRepository, texts []string) {
	t.Helper()
	base := time.Now().Add(-time.Hour)
	for i, text := range texts {
		_, err := repo.SaveBookmark(&models.Bookmark{
			Text:      text,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
}

func TestGetBookmarksOrderedNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	seedBookmarks(t, repo, []string{"oldest", "middle", "newest"})

	items, total, err := repo.GetBookmarks(10, 0, "")
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, items, 3)
	require.Equal(t, "newest", items[0].Text)
	require.Equal(t, "middle", items[1].Text)
	require.Equal(t, "oldest", items[2].Text)
}

func TestGetBookmarksPagination(t *testing.T) {
	repo := newTestRepo(t)
	var texts []string
	for i := 0; i < 5; i++ {
		texts = append(texts, fmt.Sprintf("entry %d", i))
	}
	seedBookmarks(t, repo, texts)

	seen := 0
	for offset := 0; offset < 5; offset += 2 {
		items, total, err := repo.GetBookmarks(2, offset, "")
		require.NoError(t, err)
		require.EqualValues(t, 5, total)
		seen += len(items)
	}
	require.Equal(t, 5, seen)
}

func TestGetBookmarksSearchCaseInsensitive(t *testing.T) {
	repo := newTestRepo(t)
	seedBookmarks(t, repo, []string{"Buy MILK tomorrow", "buy bread", "call mom about milk"})

	items, total, err := repo.GetBookmarks(10, 0, "milk")
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	for _, item := range items {
		require.Contains(t, []string{"Buy MILK tomorrow", "call mom about milk"}, item.Text)
	}
}

func TestGetBookmarksSearchSubstringNotPrefix(t *testing.T) {
	repo := newTestRepo(t)
	seedBookmarks(t, repo, []string{"remarkable note", "nothing here"})

	items, total, err := repo.GetBookmarks(10, 0, "markab")
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	require.Equal(t, "remarkable note", items[0].Text)
}

func TestGetBookmarksSearchTreatsMetacharactersLiterally(t *testing.T) {
	repo := newTestRepo(t)
	seedBookmarks(t, repo, []string{"100% done", "100x done", "a_b note", "axb note", `back\slash`})

	items, total, err := repo.GetBookmarks(10, 0, "100%")
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	require.Equal(t, "100% done", items[0].Text)

	items, total, err = repo.GetBookmarks(10, 0, "a_b")
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	require.Equal(t, "a_b note", items[0].Text)

	items, total, err = repo.GetBookmarks(10, 0, `back\`)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	require.Equal(t, `back\slash`, items[0].Text)
}

func TestGetBookmarksEmptyResult(t *testing.T) {
	repo := newTestRepo(t)

	items, total, err := repo.GetBookmarks(10, 0, "absent")
	require.NoError(t, err)
	require.EqualValues(t, 0, total)
	require.Empty(t, items)
}
