package content

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"content-platform/core/apperr"
	"content-platform/core/utils"
	"content-platform/feature/metadata"

	"content-platform/feature/content/models"
	performermodels "content-platform/feature/performer/models"
)

// Page is one page of content items with pagination meta.
type Page struct {
	Content []models.Content `json:"content"`
	Meta    utils.Meta       `json:"meta"`
}

// CreateInput carries the writable fields for a new content item.
type CreateInput struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Type            string     `json:"type"`
	PerformerID     string     `json:"performerId"`
	ThumbnailURL    string     `json:"thumbnailUrl"`
	HLSURL          string     `json:"hlsUrl"`
	AudioURL        string     `json:"audioUrl"`
	OriginalFileURL string     `json:"originalFileUrl"`
	Duration        int        `json:"duration"`
	FileSize        int64      `json:"fileSize"`
	OriginalDate    *time.Time `json:"originalDate"`
	IsProcessed     bool       `json:"isProcessed"`
}

// UpdateInput carries optional field updates; nil means leave as is.
type UpdateInput struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	ThumbnailURL    *string    `json:"thumbnailUrl"`
	HLSURL          *string    `json:"hlsUrl"`
	AudioURL        *string    `json:"audioUrl"`
	OriginalFileURL *string    `json:"originalFileUrl"`
	Duration        *int       `json:"duration"`
	FileSize        *int64     `json:"fileSize"`
	OriginalDate    *time.Time `json:"originalDate"`
	IsActive        *bool      `json:"isActive"`
	IsProcessed     *bool      `json:"isProcessed"`
}

// Service implements content reads and the admin write path.
type Service struct {
	db     *gorm.DB
	store  *metadata.Store
	logger *zap.Logger
}

// NewService creates a new content service.
func NewService(db *gorm.DB, store *metadata.Store, logger *zap.Logger) *Service {
	return &Service{db: db, store: store, logger: logger}
}

// List returns one page of active content, newest first, optionally
// filtered to one performer.
func (s *Service) List(ctx context.Context, page, limit int, performerID string) (*Page, error) {
	page, limit = utils.ClampPagination(page, limit)

	query := s.db.WithContext(ctx).Model(&models.Content{}).Where("is_active = ?", true)
	if performerID != "" {
		query = query.Where("performer_id = ?", performerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperr.ExternalService("failed to count content", err)
	}

	var content []models.Content
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&content).Error
	if err != nil {
		return nil, apperr.ExternalService("failed to list content", err)
	}

	return &Page{Content: content, Meta: utils.NewMeta(total, page, limit)}, nil
}

// Get returns one content item by id.
func (s *Service) Get(ctx context.Context, id string) (*models.Content, error) {
	var row models.Content
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("content not found")
	}
	if err != nil {
		return nil, apperr.ExternalService("failed to query content", err)
	}
	return &row, nil
}

// IncrementViewCount bumps the view counter in place. No
// read-modify-write, so concurrent views never lose updates.
func (s *Service) IncrementViewCount(ctx context.Context, id string) error {
	return s.increment(ctx, id, "view_count")
}

// IncrementDownloadCount bumps the download counter in place.
func (s *Service) IncrementDownloadCount(ctx context.Context, id string) error {
	return s.increment(ctx, id, "download_count")
}

func (s *Service) increment(ctx context.Context, id, column string) error {
	result := s.db.WithContext(ctx).Model(&models.Content{}).Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return apperr.ExternalService("failed to update counter", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("content not found")
	}
	return nil
}

// Create inserts a content item with a hash derived from its title and
// owning performer, then writes the metadata document. As with
// performers, the row is the source of truth and a failed document
// write is left to the next rebuild.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Content, error) {
	if in.Title == "" {
		return nil, apperr.Validation("title is required")
	}
	contentType := models.ContentType(in.Type)
	if !contentType.Valid() {
		return nil, apperr.Validation("type must be video or audio")
	}

	var performer performermodels.Performer
	err := s.db.WithContext(ctx).First(&performer, "id = ?", in.PerformerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Validation("performer not found")
	}
	if err != nil {
		return nil, apperr.ExternalService("failed to query performer", err)
	}

	hash := metadata.ContentHash(in.Title, performer.Hash)

	var existing models.Content
	err = s.db.WithContext(ctx).First(&existing, "hash = ?", hash).Error
	if err == nil {
		return nil, apperr.Conflict("content already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ExternalService("failed to query content", err)
	}

	row := models.Content{
		Hash:            hash,
		Title:           in.Title,
		Description:     in.Description,
		Type:            contentType,
		PerformerID:     performer.ID,
		ThumbnailURL:    in.ThumbnailURL,
		HLSURL:          in.HLSURL,
		AudioURL:        in.AudioURL,
		OriginalFileURL: in.OriginalFileURL,
		Duration:        in.Duration,
		FileSize:        in.FileSize,
		OriginalDate:    in.OriginalDate,
		IsActive:        true,
		IsProcessed:     in.IsProcessed,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, apperr.ExternalService("failed to create content", err)
	}

	if err := s.store.SaveContent(ctx, metadata.ContentDocumentFrom(&row, &performer)); err != nil {
		s.logger.Warn("Failed to write content metadata document",
			zap.String("hash", row.Hash), zap.Error(err))
	}

	return &row, nil
}

// Update applies the set fields of in. Retitling derives a new hash;
// old storage objects are removed best effort and the document is
// rewritten under the new hash.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*models.Content, error) {
	var row models.Content
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("content not found")
	}
	if err != nil {
		return nil, apperr.ExternalService("failed to query content", err)
	}

	var performer performermodels.Performer
	if err := s.db.WithContext(ctx).First(&performer, "id = ?", row.PerformerID).Error; err != nil {
		return nil, apperr.ExternalService("failed to query performer", err)
	}

	oldHash := row.Hash

	if in.Title != nil && *in.Title != "" {
		row.Title = *in.Title
		row.Hash = metadata.ContentHash(*in.Title, performer.Hash)
	}
	if in.Description != nil {
		row.Description = *in.Description
	}
	if in.ThumbnailURL != nil {
		row.ThumbnailURL = *in.ThumbnailURL
	}
	if in.HLSURL != nil {
		row.HLSURL = *in.HLSURL
	}
	if in.AudioURL != nil {
		row.AudioURL = *in.AudioURL
	}
	if in.OriginalFileURL != nil {
		row.OriginalFileURL = *in.OriginalFileURL
	}
	if in.Duration != nil {
		row.Duration = *in.Duration
	}
	if in.FileSize != nil {
		row.FileSize = *in.FileSize
	}
	if in.OriginalDate != nil {
		row.OriginalDate = in.OriginalDate
	}
	if in.IsActive != nil {
		row.IsActive = *in.IsActive
	}
	if in.IsProcessed != nil {
		row.IsProcessed = *in.IsProcessed
	}

	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return nil, apperr.ExternalService("failed to update content", err)
	}

	if row.Hash != oldHash && oldHash != "" {
		s.store.DeleteContentObjects(ctx, oldHash)
	}
	if err := s.store.SaveContent(ctx, metadata.ContentDocumentFrom(&row, &performer)); err != nil {
		s.logger.Warn("Failed to write content metadata document",
			zap.String("hash", row.Hash), zap.Error(err))
	}

	return &row, nil
}

// Delete removes one content item: storage objects first, best effort,
// then the row.
func (s *Service) Delete(ctx context.Context, id string) error {
	var row models.Content
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("content not found")
	}
	if err != nil {
		return apperr.ExternalService("failed to query content", err)
	}

	s.store.DeleteContentObjects(ctx, row.Hash)

	if err := s.db.WithContext(ctx).Delete(&models.Content{}, "id = ?", id).Error; err != nil {
		return apperr.ExternalService("failed to delete content", err)
	}

	s.logger.Info("Content deleted", zap.String("id", id), zap.String("hash", row.Hash))
	return nil
}
