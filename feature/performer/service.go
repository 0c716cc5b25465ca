package performer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"content-platform/core/apperr"
	"content-platform/core/cache"
	"content-platform/core/utils"
	"content-platform/feature/metadata"

	contentmodels "content-platform/feature/content/models"
	"content-platform/feature/performer/models"
)

// Page is one page of performers with pagination meta.
type Page struct {
	Performers []models.Performer `json:"performers"`
	Meta       utils.Meta         `json:"meta"`
}

// ContentPage is one page of a performer's content.
type ContentPage struct {
	Content []contentmodels.Content `json:"content"`
	Meta    utils.Meta              `json:"meta"`
}

// CreateInput carries the writable fields for a new performer.
type CreateInput struct {
	Name        string            `json:"name"`
	ShortName   string            `json:"shortName"`
	FullName    string            `json:"fullName"`
	Bio         string            `json:"bio"`
	Location    string            `json:"location"`
	ImageURL    string            `json:"imageUrl"`
	SocialLinks map[string]string `json:"socialLinks"`
	BirthDate   *time.Time        `json:"birthDate"`
	DeathDate   *time.Time        `json:"deathDate"`
	JoinedDate  *time.Time        `json:"joinedDate"`
	IsDeceased  bool              `json:"isDeceased"`
}

// UpdateInput carries optional field updates; nil means leave as is.
type UpdateInput struct {
	Name        *string            `json:"name"`
	ShortName   *string            `json:"shortName"`
	FullName    *string            `json:"fullName"`
	Bio         *string            `json:"bio"`
	Location    *string            `json:"location"`
	ImageURL    *string            `json:"imageUrl"`
	SocialLinks *map[string]string `json:"socialLinks"`
	BirthDate   *time.Time         `json:"birthDate"`
	DeathDate   *time.Time         `json:"deathDate"`
	JoinedDate  *time.Time         `json:"joinedDate"`
	IsDeceased  *bool              `json:"isDeceased"`
	IsActive    *bool              `json:"isActive"`
}

// Service implements performer reads for clients and writes for admin
// tooling. List and Get go through the read cache; entries age out by
// TTL, writes do not invalidate them.
type Service struct {
	db     *gorm.DB
	store  *metadata.Store
	cache  *cache.Cache
	logger *zap.Logger
}

// NewService creates a new performer service.
func NewService(db *gorm.DB, store *metadata.Store, c *cache.Cache, logger *zap.Logger) *Service {
	return &Service{db: db, store: store, cache: c, logger: logger}
}

// List returns one page of active performers, newest first.
func (s *Service) List(ctx context.Context, page, limit int) (*Page, error) {
	page, limit = utils.ClampPagination(page, limit)
	key := fmt.Sprintf("performers_all_%d_%d", page, limit)

	v, err := s.cache.GetOrCompute(key, func() (any, error) {
		var performers []models.Performer
		var total int64

		query := s.db.WithContext(ctx).Model(&models.Performer{}).Where("is_active = ?", true)
		if err := query.Count(&total).Error; err != nil {
			return nil, apperr.ExternalService("failed to count performers", err)
		}
		err := query.Order("created_at DESC").
			Offset((page - 1) * limit).Limit(limit).
			Find(&performers).Error
		if err != nil {
			return nil, apperr.ExternalService("failed to list performers", err)
		}

		return &Page{Performers: performers, Meta: utils.NewMeta(total, page, limit)}, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Page), nil
}

// Get returns one performer by id.
func (s *Service) Get(ctx context.Context, id string) (*models.Performer, error) {
	key := "performer_" + id

	v, err := s.cache.GetOrCompute(key, func() (any, error) {
		var performer models.Performer
		err := s.db.WithContext(ctx).First(&performer, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("performer not found")
		}
		if err != nil {
			return nil, apperr.ExternalService("failed to query performer", err)
		}
		return &performer, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Performer), nil
}

// ListContent returns one page of a performer's active content, newest
// first. Items may shift between pages while content is being added;
// offset pagination is accepted here.
func (s *Service) ListContent(ctx context.Context, performerID string, page, limit int) (*ContentPage, error) {
	if _, err := s.Get(ctx, performerID); err != nil {
		return nil, err
	}

	page, limit = utils.ClampPagination(page, limit)

	var content []contentmodels.Content
	var total int64

	query := s.db.WithContext(ctx).Model(&contentmodels.Content{}).
		Where("performer_id = ? AND is_active = ?", performerID, true)
	if err := query.Count(&total).Error; err != nil {
		return nil, apperr.ExternalService("failed to count content", err)
	}
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&content).Error
	if err != nil {
		return nil, apperr.ExternalService("failed to list content", err)
	}

	return &ContentPage{Content: content, Meta: utils.NewMeta(total, page, limit)}, nil
}

// Create inserts a performer with a hash derived from its name and
// writes the matching metadata document to storage. The row is the
// source of truth; a failed document write is logged and left to the
// next metadata rebuild.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Performer, error) {
	if in.Name == "" {
		return nil, apperr.Validation("name is required")
	}

	hash := metadata.PerformerHash(in.Name)

	var existing models.Performer
	err := s.db.WithContext(ctx).First(&existing, "hash = ?", hash).Error
	if err == nil {
		return nil, apperr.Conflict("performer already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ExternalService("failed to query performer", err)
	}

	performer := models.Performer{
		Hash:        hash,
		Name:        in.Name,
		ShortName:   in.ShortName,
		FullName:    in.FullName,
		Bio:         in.Bio,
		Location:    in.Location,
		ImageURL:    in.ImageURL,
		SocialLinks: in.SocialLinks,
		BirthDate:   in.BirthDate,
		DeathDate:   in.DeathDate,
		JoinedDate:  in.JoinedDate,
		IsDeceased:  in.IsDeceased,
		IsActive:    true,
	}
	if err := s.db.WithContext(ctx).Create(&performer).Error; err != nil {
		return nil, apperr.ExternalService("failed to create performer", err)
	}

	if err := s.store.SavePerformer(ctx, metadata.PerformerDocumentFrom(&performer)); err != nil {
		s.logger.Warn("Failed to write performer metadata document",
			zap.String("hash", performer.Hash), zap.Error(err))
	}

	return &performer, nil
}

// Update applies the set fields of in. Renaming derives a new hash;
// the old storage objects are removed best effort and the document is
// rewritten under the new hash. Content hashes embed the owner's hash,
// so a rename also re-derives every owned content row.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*models.Performer, error) {
	var performer models.Performer
	err := s.db.WithContext(ctx).First(&performer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("performer not found")
	}
	if err != nil {
		return nil, apperr.ExternalService("failed to query performer", err)
	}

	oldHash := performer.Hash

	if in.Name != nil && *in.Name != "" {
		performer.Name = *in.Name
		performer.Hash = metadata.PerformerHash(*in.Name)
	}
	if in.ShortName != nil {
		performer.ShortName = *in.ShortName
	}
	if in.FullName != nil {
		performer.FullName = *in.FullName
	}
	if in.Bio != nil {
		performer.Bio = *in.Bio
	}
	if in.Location != nil {
		performer.Location = *in.Location
	}
	if in.ImageURL != nil {
		performer.ImageURL = *in.ImageURL
	}
	if in.SocialLinks != nil {
		performer.SocialLinks = *in.SocialLinks
	}
	if in.BirthDate != nil {
		performer.BirthDate = in.BirthDate
	}
	if in.DeathDate != nil {
		performer.DeathDate = in.DeathDate
	}
	if in.JoinedDate != nil {
		performer.JoinedDate = in.JoinedDate
	}
	if in.IsDeceased != nil {
		performer.IsDeceased = *in.IsDeceased
	}
	if in.IsActive != nil {
		performer.IsActive = *in.IsActive
	}

	if err := s.db.WithContext(ctx).Save(&performer).Error; err != nil {
		return nil, apperr.ExternalService("failed to update performer", err)
	}

	if performer.Hash != oldHash && oldHash != "" {
		s.store.DeletePerformerObjects(ctx, oldHash)
		if err := s.rehashContent(ctx, &performer); err != nil {
			return nil, err
		}
	}
	if err := s.store.SavePerformer(ctx, metadata.PerformerDocumentFrom(&performer)); err != nil {
		s.logger.Warn("Failed to write performer metadata document",
			zap.String("hash", performer.Hash), zap.Error(err))
	}

	return &performer, nil
}

// rehashContent re-derives the hash of every content row owned by
// performer after its hash changed. Rows are saved under the new hash,
// old storage objects are removed best effort, and each metadata
// document is rewritten under its new namespace.
func (s *Service) rehashContent(ctx context.Context, performer *models.Performer) error {
	var content []contentmodels.Content
	if err := s.db.WithContext(ctx).Find(&content, "performer_id = ?", performer.ID).Error; err != nil {
		return apperr.ExternalService("failed to list content", err)
	}

	for i := range content {
		row := &content[i]
		oldHash := row.Hash
		row.Hash = metadata.ContentHash(row.Title, performer.Hash)
		if row.Hash == oldHash {
			continue
		}

		if err := s.db.WithContext(ctx).Save(row).Error; err != nil {
			return apperr.ExternalService("failed to update content", err)
		}
		s.store.DeleteContentObjects(ctx, oldHash)
		if err := s.store.SaveContent(ctx, metadata.ContentDocumentFrom(row, performer)); err != nil {
			s.logger.Warn("Failed to write content metadata document",
				zap.String("hash", row.Hash), zap.Error(err))
		}
	}
	return nil
}

// Delete removes a performer and everything it owns. Storage objects
// go first, best effort, so an unreachable bucket still leaves the
// database consistent; content rows cascade with the performer row.
func (s *Service) Delete(ctx context.Context, id string) error {
	var performer models.Performer
	err := s.db.WithContext(ctx).First(&performer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("performer not found")
	}
	if err != nil {
		return apperr.ExternalService("failed to query performer", err)
	}

	var content []contentmodels.Content
	if err := s.db.WithContext(ctx).Find(&content, "performer_id = ?", id).Error; err != nil {
		return apperr.ExternalService("failed to list content", err)
	}

	for i := range content {
		s.store.DeleteContentObjects(ctx, content[i].Hash)
	}
	s.store.DeletePerformerObjects(ctx, performer.Hash)

	if err := s.db.WithContext(ctx).Delete(&contentmodels.Content{}, "performer_id = ?", id).Error; err != nil {
		return apperr.ExternalService("failed to delete content rows", err)
	}
	if err := s.db.WithContext(ctx).Delete(&models.Performer{}, "id = ?", id).Error; err != nil {
		return apperr.ExternalService("failed to delete performer", err)
	}

	s.logger.Info("Performer deleted",
		zap.String("id", id), zap.String("hash", performer.Hash),
		zap.Int("content", len(content)))
	return nil
}
