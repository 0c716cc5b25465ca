package streaming

import (
	"errors"
	"io"
	"os"
	"path"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"content-platform/core/apperr"
	"content-platform/core/metrics"
	"content-platform/core/server"

	"content-platform/feature/content/models"
)

// Download bundles an opened file with the client-facing name and MIME
// type to serve it under.
type Download struct {
	File     io.ReadCloser
	Filename string
	MimeType string
	Size     int64
}

// Service resolves content rows to media files on local disk. All URL
// fields on a content row are paths relative to the media root; the
// resolved path is confined to that root before any file is opened.
type Service struct {
	db     *gorm.DB
	cfg    server.Config
	logger *zap.Logger
}

// NewService creates a new streaming service.
func NewService(db *gorm.DB, cfg server.Config, logger *zap.Logger) *Service {
	return &Service{db: db, cfg: cfg, logger: logger}
}

func (s *Service) content(id string) (*models.Content, error) {
	var row models.Content
	err := s.db.First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Content not found")
	}
	if err != nil {
		return nil, apperr.ExternalService("failed to query content", err)
	}
	return &row, nil
}

// open resolves rel against the media root and opens it. A path that
// escapes the root or points at a missing file yields the same
// not-found message, so responses never reveal disk layout.
func (s *Service) open(rel, asset, missingMsg string) (*os.File, error) {
	p, ok := s.cfg.ResolveMediaPath(rel)
	if !ok {
		metrics.StreamingNotFound.WithLabelValues(asset).Inc()
		return nil, apperr.NotFound(missingMsg)
	}
	f, err := os.Open(p)
	if errors.Is(err, os.ErrNotExist) {
		metrics.StreamingNotFound.WithLabelValues(asset).Inc()
		return nil, apperr.NotFound(missingMsg)
	}
	if err != nil {
		return nil, apperr.ExternalService("failed to open media file", err)
	}
	return f, nil
}

// GetHLSPlaylist returns the playlist text for a content item and
// counts the request as a view.
func (s *Service) GetHLSPlaylist(id string) ([]byte, error) {
	row, err := s.content(id)
	if err != nil {
		return nil, err
	}
	if row.HLSURL == "" {
		metrics.StreamingNotFound.WithLabelValues("playlist").Inc()
		return nil, apperr.NotFound("HLS playlist not found")
	}

	f, err := s.open(row.HLSURL, "playlist", "HLS playlist file not found")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	playlist, err := io.ReadAll(f)
	if err != nil {
		return nil, apperr.ExternalService("failed to read playlist", err)
	}

	if err := s.db.Model(&models.Content{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		s.logger.Warn("Failed to increment view count", zap.String("id", id), zap.Error(err))
	}

	return playlist, nil
}

// ValidSegmentName reports whether a segment name is a bare file name.
// Anything that could address another directory is rejected.
func ValidSegmentName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, "/\\") {
		return false
	}
	if strings.Contains(name, "..") {
		return false
	}
	return true
}

// GetHLSSegment opens one segment file from the same directory as the
// content's playlist.
func (s *Service) GetHLSSegment(id, segment string) (io.ReadCloser, error) {
	if !ValidSegmentName(segment) {
		return nil, apperr.Validation("Invalid segment name")
	}

	row, err := s.content(id)
	if err != nil {
		return nil, err
	}
	if row.HLSURL == "" {
		metrics.StreamingNotFound.WithLabelValues("segment").Inc()
		return nil, apperr.NotFound("HLS segment not found")
	}

	rel := path.Join(path.Dir(row.HLSURL), segment)
	return s.open(rel, "segment", "HLS segment not found")
}

// GetAudio opens the audio rendition of a content item.
func (s *Service) GetAudio(id string) (io.ReadCloser, error) {
	row, err := s.content(id)
	if err != nil {
		return nil, err
	}
	if row.AudioURL == "" {
		metrics.StreamingNotFound.WithLabelValues("audio").Inc()
		return nil, apperr.NotFound("Audio not found")
	}
	return s.open(row.AudioURL, "audio", "Audio file not found")
}

// GetDownloadFile opens the original file for download, names it after
// the content title with the extension for its type, and counts the
// download.
func (s *Service) GetDownloadFile(id string) (*Download, error) {
	row, err := s.content(id)
	if err != nil {
		return nil, err
	}
	if row.OriginalFileURL == "" {
		metrics.StreamingNotFound.WithLabelValues("download").Inc()
		return nil, apperr.NotFound("Download not found")
	}

	f, err := s.open(row.OriginalFileURL, "download", "Download file not found")
	if err != nil {
		return nil, err
	}

	var size int64
	if info, err := f.Stat(); err == nil {
		size = info.Size()
	}

	if err := s.db.Model(&models.Content{}).Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + 1")).Error; err != nil {
		s.logger.Warn("Failed to increment download count", zap.String("id", id), zap.Error(err))
	}

	return &Download{
		File:     f,
		Filename: row.Title + row.Type.Extension(),
		MimeType: row.Type.MimeType(),
		Size:     size,
	}, nil
}
