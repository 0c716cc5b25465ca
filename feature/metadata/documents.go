package metadata

import (
	"fmt"
	"time"

	contentmodels "content-platform/feature/content/models"
	performermodels "content-platform/feature/performer/models"
)

// PerformerDocument is the bucket-stored JSON mirror of a performer row.
// It is the recovery source of truth: a database rebuild recreates the
// row entirely from this document.
type PerformerDocument struct {
	ID          string            `json:"id"`
	Hash        string            `json:"hash"`
	Name        string            `json:"name"`
	ShortName   string            `json:"shortName,omitempty"`
	FullName    string            `json:"fullName,omitempty"`
	Bio         string            `json:"bio,omitempty"`
	Location    string            `json:"location,omitempty"`
	ImageURL    string            `json:"imageUrl,omitempty"`
	SocialLinks map[string]string `json:"socialLinks,omitempty"`
	BirthDate   *time.Time        `json:"birthDate,omitempty"`
	DeathDate   *time.Time        `json:"deathDate,omitempty"`
	JoinedDate  *time.Time        `json:"joinedDate,omitempty"`
	IsDeceased  bool              `json:"isDeceased"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// Validate checks the fields a document must carry to be usable as a
// reconciliation source.
func (d *PerformerDocument) Validate() error {
	if d.Hash == "" {
		return fmt.Errorf("performer document missing hash")
	}
	if d.Name == "" {
		return fmt.Errorf("performer document %s missing name", d.Hash)
	}
	return nil
}

// ContentDocument is the bucket-stored JSON mirror of a content row.
type ContentDocument struct {
	ID            string     `json:"id"`
	Hash          string     `json:"hash"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	PerformerHash string     `json:"performerHash"`
	PerformerName string     `json:"performerName,omitempty"`
	Type          string     `json:"type"`
	Duration      int        `json:"duration"`
	FileSize      int64      `json:"fileSize"`
	OriginalDate  *time.Time `json:"originalDate,omitempty"`
	Categories    []string   `json:"categories,omitempty"`
	ThumbnailURL  string     `json:"thumbnailUrl,omitempty"`
	HLSURL        string     `json:"hlsUrl,omitempty"`
	AudioURL      string     `json:"audioUrl,omitempty"`
	OriginalURL   string     `json:"originalFileUrl,omitempty"`
	IsProcessed   bool       `json:"isProcessed"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Validate checks the fields a document must carry to be usable as a
// reconciliation source.
func (d *ContentDocument) Validate() error {
	if d.Hash == "" {
		return fmt.Errorf("content document missing hash")
	}
	if d.Title == "" {
		return fmt.Errorf("content document %s missing title", d.Hash)
	}
	if d.PerformerHash == "" {
		return fmt.Errorf("content document %s missing performer hash", d.Hash)
	}
	if !contentmodels.ContentType(d.Type).Valid() {
		return fmt.Errorf("content document %s has unknown type %q", d.Hash, d.Type)
	}
	return nil
}

// PerformerDocumentFrom builds the metadata document for a performer row.
// The hash is recomputed from the name so the document is always
// internally consistent even when the row's stored hash drifted.
func PerformerDocumentFrom(p *performermodels.Performer) *PerformerDocument {
	return &PerformerDocument{
		ID:          p.ID,
		Hash:        PerformerHash(p.Name),
		Name:        p.Name,
		ShortName:   p.ShortName,
		FullName:    p.FullName,
		Bio:         p.Bio,
		Location:    p.Location,
		ImageURL:    p.ImageURL,
		SocialLinks: p.SocialLinks,
		BirthDate:   p.BirthDate,
		DeathDate:   p.DeathDate,
		JoinedDate:  p.JoinedDate,
		IsDeceased:  p.IsDeceased,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ContentDocumentFrom builds the metadata document for a content row
// owned by the given performer.
func ContentDocumentFrom(c *contentmodels.Content, performer *performermodels.Performer) *ContentDocument {
	performerHash := PerformerHash(performer.Name)
	return &ContentDocument{
		ID:            c.ID,
		Hash:          ContentHash(c.Title, performerHash),
		Title:         c.Title,
		Description:   c.Description,
		PerformerHash: performerHash,
		PerformerName: performer.Name,
		Type:          string(c.Type),
		Duration:      c.Duration,
		FileSize:      c.FileSize,
		OriginalDate:  c.OriginalDate,
		ThumbnailURL:  c.ThumbnailURL,
		HLSURL:        c.HLSURL,
		AudioURL:      c.AudioURL,
		OriginalURL:   c.OriginalFileURL,
		IsProcessed:   c.IsProcessed,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
