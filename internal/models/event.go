package models

// Bookmark lifecycle event types.
const (
	EventBookmarkCreated = "bookmark.created"
	EventBookmarkUpdated = "bookmark.updated"
	EventBookmarkDeleted = "bookmark.deleted"
)

// BookmarkEvent is published to Kafka after a bookmark mutation.
type BookmarkEvent struct {
	EventID    string `json:"event_id"`
	Type       string `json:"type"`
	BookmarkID string `json:"bookmark_id"`
	OwnerID    string `json:"owner_id"`
	URL        string `json:"url"`
	Timestamp  int64  `json:"timestamp"`
}
