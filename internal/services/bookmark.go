package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/agnostic-bookmarks/internal/logger"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/models"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/repositories"
)

// BookmarkReader defines bookmark lookups. Missing records are returned as nil, nil.
type BookmarkReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Bookmark, error)                           // Returns a bookmark by id
	GetByOwnerAndURL(ctx context.Context, ownerID uuid.UUID, url string) (*models.Bookmark, error) // Returns the owner's bookmark for url
	List(ctx context.Context, ownerID uuid.UUID, f models.BookmarkFilter) ([]models.Bookmark, error)
	ListTags(ctx context.Context, ownerID uuid.UUID) ([]string, error)
}

// BookmarkWriter defines bookmark mutations.
type BookmarkWriter interface {
	Create(ctx context.Context, b *models.Bookmark) error
	Update(ctx context.Context, b *models.Bookmark) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TagCache caches each owner's distinct tags.
type TagCache interface {
	Get(ctx context.Context, ownerID uuid.UUID) ([]string, bool, error)
	Set(ctx context.Context, ownerID uuid.UUID, tags []string) error
	Invalidate(ctx context.Context, ownerID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// BookmarkService implements bookmark operations for a single requesting user.
// Every operation by id passes the ownership guard first.
type BookmarkService struct {
	reader      BookmarkReader
	writer      BookmarkWriter
	cache       TagCache
	kafkaWriter KafkaWriter
}

// NewBookmarkService creates a new BookmarkService. cache and kafkaWriter may be nil.
func NewBookmarkService(
	reader BookmarkReader,
	writer BookmarkWriter,
	cache TagCache,
	kafkaWriter KafkaWriter,
) *BookmarkService {
	return &BookmarkService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// owned fetches the bookmark and checks it belongs to userID.
// Ids that are not UUIDs cannot exist and are reported as not found.
func (s *BookmarkService) owned(ctx context.Context, userID uuid.UUID, id string) (*models.Bookmark, error) {
	bookmarkID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrBookmarkNotFound
	}

	b, err := s.reader.GetByID(ctx, bookmarkID)
	if err != nil {
		logger.Log.Errorw("failed to get bookmark", "bookmarkID", id, "error", err)
		return nil, err
	}
	if b == nil {
		return nil, ErrBookmarkNotFound
	}
	if b.OwnerID != userID {
		logger.Log.Warnw("bookmark owner mismatch", "bookmarkID", id, "userID", userID)
		return nil, ErrNotAuthorized
	}
	return b, nil
}

// List returns one page of the user's bookmarks matching f.
func (s *BookmarkService) List(ctx context.Context, userID uuid.UUID, f models.BookmarkFilter) ([]models.Bookmark, error) {
	bookmarks, err := s.reader.List(ctx, userID, f)
	if err != nil {
		logger.Log.Errorw("failed to list bookmarks", "userID", userID, "error", err)
		return nil, err
	}
	return bookmarks, nil
}

// FindByURL returns the user's bookmark with exactly the given url.
func (s *BookmarkService) FindByURL(ctx context.Context, userID uuid.UUID, url string) (*models.Bookmark, error) {
	b, err := s.reader.GetByOwnerAndURL(ctx, userID, url)
	if err != nil {
		logger.Log.Errorw("failed to find bookmark by url", "userID", userID, "url", url, "error", err)
		return nil, err
	}
	if b == nil {
		return nil, ErrBookmarkNotFound
	}
	return b, nil
}

// Get returns a bookmark owned by userID.
func (s *BookmarkService) Get(ctx context.Context, userID uuid.UUID, id string) (*models.Bookmark, error) {
	return s.owned(ctx, userID, id)
}

// Create stores a new bookmark owned by userID.
func (s *BookmarkService) Create(ctx context.Context, userID uuid.UUID, req models.CreateBookmarkRequest) (*models.Bookmark, error) {
	if err := validateRequest(req, "URL", "Name"); err != nil {
		return nil, err
	}

	tags := models.Tags(req.Tags)
	if tags == nil {
		tags = models.Tags{}
	}

	b := &models.Bookmark{
		BookmarkID:  uuid.New(),
		OwnerID:     userID,
		URL:         req.URL,
		Name:        req.Name,
		Description: req.Description,
		Tags:        tags,
	}

	if err := s.writer.Create(ctx, b); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, ErrURLAlreadyExists
		}
		logger.Log.Errorw("failed to create bookmark", "userID", userID, "error", err)
		return nil, err
	}

	s.invalidateTags(ctx, userID)
	s.publishEvent(ctx, models.EventBookmarkCreated, b)

	return b, nil
}

// Update applies the supplied fields to a bookmark owned by userID.
// Owner, id and creation time never change.
func (s *BookmarkService) Update(ctx context.Context, userID uuid.UUID, id string, req models.UpdateBookmarkRequest) (*models.Bookmark, error) {
	b, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.URL != nil {
		b.URL = *req.URL
	}
	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.Tags != nil {
		b.Tags = models.Tags(*req.Tags)
		if b.Tags == nil {
			b.Tags = models.Tags{}
		}
	}

	if err := validateRequest(models.CreateBookmarkRequest{Name: b.Name, URL: b.URL}, "URL", "Name"); err != nil {
		return nil, err
	}

	if err := s.writer.Update(ctx, b); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, ErrURLAlreadyExists
		}
		logger.Log.Errorw("failed to update bookmark", "bookmarkID", id, "error", err)
		return nil, err
	}

	if req.Tags != nil {
		s.invalidateTags(ctx, userID)
	}
	s.publishEvent(ctx, models.EventBookmarkUpdated, b)

	return b, nil
}

// Delete removes a bookmark owned by userID and returns it.
func (s *BookmarkService) Delete(ctx context.Context, userID uuid.UUID, id string) (*models.Bookmark, error) {
	b, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.writer.Delete(ctx, b.BookmarkID); err != nil {
		logger.Log.Errorw("failed to delete bookmark", "bookmarkID", id, "error", err)
		return nil, err
	}

	s.invalidateTags(ctx, userID)
	s.publishEvent(ctx, models.EventBookmarkDeleted, b)

	return b, nil
}

// Tags returns the distinct tags of the user's bookmarks, sorted.
// Cache failures are logged and the store is used instead.
func (s *BookmarkService) Tags(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if s.cache != nil {
		tags, ok, err := s.cache.Get(ctx, userID)
		if err != nil {
			logger.Log.Warnw("failed to read cached tags", "userID", userID, "error", err)
		}
		if ok {
			return tags, nil
		}
	}

	tags, err := s.reader.ListTags(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list tags", "userID", userID, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, tags); err != nil {
			logger.Log.Warnw("failed to cache tags", "userID", userID, "error", err)
		}
	}
	return tags, nil
}

func (s *BookmarkService) invalidateTags(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		logger.Log.Warnw("failed to invalidate cached tags", "userID", userID, "error", err)
	}
}

// publishEvent publishes a bookmark lifecycle event to Kafka.
func (s *BookmarkService) publishEvent(ctx context.Context, eventType string, b *models.Bookmark) {
	event := models.BookmarkEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		BookmarkID: b.BookmarkID.String(),
		OwnerID:    b.OwnerID.String(),
		URL:        b.URL,
		Timestamp:  time.Now().Unix(),
	}

	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", eventType)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal bookmark event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.BookmarkID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish bookmark event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Bookmark event published to Kafka", "event_id", event.EventID, "type", eventType)
	}
}
