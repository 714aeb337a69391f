package models

import (
	"time"
)

// Bookmark is a persisted text snippet with the provenance of the request
// that created it. user_agent and ip_address are stored for analytics but
// never serialized in API responses; clients only ever see the derived
// device hash.
type Bookmark struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	UserAgent  string    `json:"-"`
	IPAddress  string    `json:"-"`
	DeviceHash string    `gorm:"size:64;index" json:"device_hash"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateBookmarkRequest struct {
	Text string `json:"text" validate:"required,max=5000"`
}

// CreateBookmarkResponse carries only the server-generated fields; the
// caller already holds everything else it submitted.
type CreateBookmarkResponse struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}
