package sync

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"content-platform/core/apperr"
	"content-platform/core/metrics"
	"content-platform/feature/metadata"

	contentmodels "content-platform/feature/content/models"
	performermodels "content-platform/feature/performer/models"
)

// Result reports how many entities a sync run reconciled.
type Result struct {
	Performers int `json:"performers"`
	Content    int `json:"content"`
	// Skipped counts entities whose metadata document was missing,
	// malformed, or referenced an unknown performer.
	Skipped int `json:"skipped"`
}

// Service is the sync engine: it keeps the relational store and the
// bucket-stored metadata documents consistent in both directions.
type Service struct {
	db     *gorm.DB
	store  *metadata.Store
	logger *zap.Logger

	// inflight serializes mutating runs per process. Upsert-by-hash is
	// the only other safety net against duplicate-insert races.
	inflight sync.Mutex
}

// NewService creates a new sync service.
func NewService(db *gorm.DB, store *metadata.Store, logger *zap.Logger) *Service {
	return &Service{db: db, store: store, logger: logger}
}

// SyncFromR2 enumerates all metadata documents in bucket storage and
// upserts a relational row for each, keyed by hash. Running it twice
// against unchanged storage produces no additional rows.
//
// A single malformed or missing document is skipped and counted; the
// storage listing itself failing aborts the run with one aggregate error.
func (s *Service) SyncFromR2(ctx context.Context) (*Result, error) {
	if !s.inflight.TryLock() {
		return nil, apperr.Conflict("sync already in progress")
	}
	defer s.inflight.Unlock()

	s.logger.Info("Starting sync from R2")

	result := &Result{}

	performerHashes, err := s.store.ListPerformerHashes(ctx)
	if err != nil {
		metrics.SyncRuns.WithLabelValues("from_r2", "error").Inc()
		return nil, err
	}

	for _, hash := range performerHashes {
		doc, err := s.store.GetPerformer(ctx, hash)
		if err != nil {
			if apperr.KindOf(err) == apperr.KindExternalService {
				metrics.SyncRuns.WithLabelValues("from_r2", "error").Inc()
				return nil, err
			}
			s.skip(result, "performer", hash, err)
			continue
		}
		if doc == nil {
			s.skip(result, "performer", hash, errors.New("metadata document missing"))
			continue
		}
		if err := s.upsertPerformer(doc); err != nil {
			metrics.SyncRuns.WithLabelValues("from_r2", "error").Inc()
			return nil, err
		}
		result.Performers++
	}

	contentHashes, err := s.store.ListContentHashes(ctx)
	if err != nil {
		metrics.SyncRuns.WithLabelValues("from_r2", "error").Inc()
		return nil, err
	}

	for _, hash := range contentHashes {
		doc, err := s.store.GetContent(ctx, hash)
		if err != nil {
			if apperr.KindOf(err) == apperr.KindExternalService {
				metrics.SyncRuns.WithLabelValues("from_r2", "error").Inc()
				return nil, err
			}
			s.skip(result, "content", hash, err)
			continue
		}
		if doc == nil {
			s.skip(result, "content", hash, errors.New("metadata document missing"))
			continue
		}
		if err := s.upsertContent(doc, result); err != nil {
			metrics.SyncRuns.WithLabelValues("from_r2", "error").Inc()
			return nil, err
		}
	}

	metrics.SyncRuns.WithLabelValues("from_r2", "success").Inc()
	s.logger.Info("Sync from R2 finished",
		zap.Int("performers", result.Performers),
		zap.Int("content", result.Content),
		zap.Int("skipped", result.Skipped))

	return result, nil
}

func (s *Service) skip(result *Result, kind, hash string, err error) {
	result.Skipped++
	metrics.SyncEntitiesSkipped.Inc()
	s.logger.Warn("Skipping entity during sync",
		zap.String("kind", kind), zap.String("hash", hash), zap.Error(err))
}

// upsertPerformer creates or updates one performer row keyed by the
// document's hash. The document's hash is trusted as-is so rows recover
// with exactly the identity the bucket recorded.
func (s *Service) upsertPerformer(doc *metadata.PerformerDocument) error {
	var existing performermodels.Performer
	err := s.db.Where("hash = ?", doc.Hash).First(&existing).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row := performermodels.Performer{
			ID:          doc.ID,
			Hash:        doc.Hash,
			Name:        doc.Name,
			ShortName:   doc.ShortName,
			FullName:    doc.FullName,
			Bio:         doc.Bio,
			Location:    doc.Location,
			ImageURL:    doc.ImageURL,
			SocialLinks: doc.SocialLinks,
			BirthDate:   doc.BirthDate,
			DeathDate:   doc.DeathDate,
			JoinedDate:  doc.JoinedDate,
			IsDeceased:  doc.IsDeceased,
			IsActive:    true,
		}
		if err := s.db.Create(&row).Error; err != nil {
			return apperr.ExternalService("failed to create performer row", err)
		}
		return nil
	case err != nil:
		return apperr.ExternalService("failed to query performer row", err)
	}

	existing.Name = doc.Name
	existing.ShortName = doc.ShortName
	existing.FullName = doc.FullName
	existing.Bio = doc.Bio
	existing.Location = doc.Location
	existing.ImageURL = doc.ImageURL
	existing.SocialLinks = doc.SocialLinks
	existing.BirthDate = doc.BirthDate
	existing.DeathDate = doc.DeathDate
	existing.JoinedDate = doc.JoinedDate
	existing.IsDeceased = doc.IsDeceased
	if err := s.db.Save(&existing).Error; err != nil {
		return apperr.ExternalService("failed to update performer row", err)
	}
	return nil
}

// upsertContent creates or updates one content row keyed by the
// document's hash, resolving the owning performer by its hash. Content
// whose performer has no row yet is skipped, not failed: performer
// documents are processed first, so this only happens for orphans.
func (s *Service) upsertContent(doc *metadata.ContentDocument, result *Result) error {
	var performer performermodels.Performer
	err := s.db.Where("hash = ?", doc.PerformerHash).First(&performer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.skip(result, "content", doc.Hash, errors.New("performer row missing for "+doc.PerformerHash))
		return nil
	}
	if err != nil {
		return apperr.ExternalService("failed to query performer row", err)
	}

	var existing contentmodels.Content
	err = s.db.Where("hash = ?", doc.Hash).First(&existing).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row := contentmodels.Content{
			ID:              doc.ID,
			Hash:            doc.Hash,
			Title:           doc.Title,
			Description:     doc.Description,
			Type:            contentmodels.ContentType(doc.Type),
			ThumbnailURL:    doc.ThumbnailURL,
			HLSURL:          doc.HLSURL,
			AudioURL:        doc.AudioURL,
			OriginalFileURL: doc.OriginalURL,
			Duration:        doc.Duration,
			FileSize:        doc.FileSize,
			PerformerID:     performer.ID,
			OriginalDate:    doc.OriginalDate,
			IsActive:        true,
			IsProcessed:     doc.IsProcessed,
		}
		if err := s.db.Create(&row).Error; err != nil {
			return apperr.ExternalService("failed to create content row", err)
		}
	case err != nil:
		return apperr.ExternalService("failed to query content row", err)
	default:
		existing.Title = doc.Title
		existing.Description = doc.Description
		existing.Type = contentmodels.ContentType(doc.Type)
		existing.ThumbnailURL = doc.ThumbnailURL
		existing.HLSURL = doc.HLSURL
		existing.AudioURL = doc.AudioURL
		existing.OriginalFileURL = doc.OriginalURL
		existing.Duration = doc.Duration
		existing.FileSize = doc.FileSize
		existing.PerformerID = performer.ID
		existing.OriginalDate = doc.OriginalDate
		existing.IsProcessed = doc.IsProcessed
		if err := s.db.Save(&existing).Error; err != nil {
			return apperr.ExternalService("failed to update content row", err)
		}
	}

	result.Content++
	return nil
}

// RebuildMetadata regenerates every metadata document from the
// relational rows, overwriting storage. Performer documents are written
// completely before any content document, because a content hash
// depends on its performer's hash. A failed write leaves the entity for
// the next full rebuild; there is no retry within a run.
func (s *Service) RebuildMetadata(ctx context.Context) (*Result, error) {
	if !s.inflight.TryLock() {
		return nil, apperr.Conflict("sync already in progress")
	}
	defer s.inflight.Unlock()

	s.logger.Info("Starting metadata rebuild")

	result := &Result{}

	var performers []performermodels.Performer
	if err := s.db.Find(&performers).Error; err != nil {
		metrics.SyncRuns.WithLabelValues("rebuild", "error").Inc()
		return nil, apperr.ExternalService("failed to load performers", err)
	}

	byID := make(map[string]*performermodels.Performer, len(performers))
	for i := range performers {
		p := &performers[i]
		byID[p.ID] = p

		if err := s.store.SavePerformer(ctx, metadata.PerformerDocumentFrom(p)); err != nil {
			s.skip(result, "performer", p.Hash, err)
			continue
		}
		result.Performers++
	}

	var content []contentmodels.Content
	if err := s.db.Find(&content).Error; err != nil {
		metrics.SyncRuns.WithLabelValues("rebuild", "error").Inc()
		return nil, apperr.ExternalService("failed to load content", err)
	}

	for i := range content {
		c := &content[i]
		performer, ok := byID[c.PerformerID]
		if !ok {
			s.skip(result, "content", c.Hash, errors.New("performer row missing"))
			continue
		}
		if err := s.store.SaveContent(ctx, metadata.ContentDocumentFrom(c, performer)); err != nil {
			s.skip(result, "content", c.Hash, err)
			continue
		}
		result.Content++
	}

	metrics.SyncRuns.WithLabelValues("rebuild", "success").Inc()
	s.logger.Info("Metadata rebuild finished",
		zap.Int("performers", result.Performers),
		zap.Int("content", result.Content),
		zap.Int("skipped", result.Skipped))

	return result, nil
}
