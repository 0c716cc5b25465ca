// Package models defines the content table mapping.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentType discriminates between video and audio items.
type ContentType string

const (
	TypeVideo ContentType = "video"
	TypeAudio ContentType = "audio"
)

// Valid reports whether t is a known content type.
func (t ContentType) Valid() bool {
	return t == TypeVideo || t == TypeAudio
}

// Extension returns the download file extension for this type,
// including the leading dot.
func (t ContentType) Extension() string {
	if t == TypeVideo {
		return ".mp4"
	}
	return ".mp3"
}

// MimeType returns the download MIME type for this type.
func (t ContentType) MimeType() string {
	if t == TypeVideo {
		return "video/mp4"
	}
	return "audio/mpeg"
}

// Content is a single video or audio item owned by one performer.
//
// Hash is derived from (title, performer hash) and stays stable across
// database rebuilds; storage objects live under content/{hash}/
// regardless of the row's generated id.
type Content struct {
	ID          string      `gorm:"type:uuid;primaryKey" json:"id"`
	Hash        string      `gorm:"index" json:"hash"`
	Title       string      `gorm:"not null" json:"title"`
	Description string      `gorm:"type:text" json:"description"`
	Type        ContentType `gorm:"not null" json:"type"`

	ThumbnailURL    string `json:"thumbnailUrl"`
	HLSURL          string `json:"hlsUrl"`
	AudioURL        string `json:"audioUrl"`
	OriginalFileURL string `json:"originalFileUrl"`

	// Duration in seconds.
	Duration int   `gorm:"default:0" json:"duration"`
	FileSize int64 `gorm:"default:0" json:"fileSize"`

	ViewCount     int `gorm:"default:0" json:"viewCount"`
	DownloadCount int `gorm:"default:0" json:"downloadCount"`

	PerformerID string `gorm:"type:uuid;index;not null" json:"performerId"`

	OriginalDate *time.Time `json:"originalDate,omitempty"`

	// No column default: gorm drops zero-valued fields from inserts
	// when one is set, which would silently store false as true.
	IsActive bool `json:"isActive"`
	// IsProcessed is true only once the derived media (HLS playlist,
	// segments, thumbnail) exist in storage.
	IsProcessed bool `gorm:"default:false" json:"isProcessed"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName sets the table name explicitly.
func (Content) TableName() string {
	return "content"
}

// BeforeCreate assigns a UUID primary key when none is set.
func (c *Content) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
