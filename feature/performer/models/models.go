// Package models defines the performers table mapping.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	contentmodels "content-platform/feature/content/models"
)

// Performer is an artist who owns zero or more content items.
//
// Hash is a pure function of the normalized name; it keys the
// performers/{hash}/ namespace in bucket storage and survives database
// rebuilds. Two performers with the same normalized name share a hash.
type Performer struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	Hash      string `gorm:"index" json:"hash"`
	Name      string `gorm:"not null" json:"name"`
	ShortName string `json:"shortName"`
	FullName  string `json:"fullName"`
	Bio       string `gorm:"type:text" json:"bio"`
	ImageURL  string `json:"imageUrl"`
	Location  string `json:"location"`

	SocialLinks map[string]string `gorm:"serializer:json" json:"socialLinks,omitempty"`

	BirthDate  *time.Time `json:"birthDate,omitempty"`
	DeathDate  *time.Time `json:"deathDate,omitempty"`
	JoinedDate *time.Time `json:"joinedDate,omitempty"`

	IsDeceased bool `json:"isDeceased"`
	// No column default: gorm drops zero-valued fields from inserts
	// when one is set, which would silently store false as true.
	IsActive bool `json:"isActive"`

	Content []contentmodels.Content `gorm:"foreignKey:PerformerID;constraint:OnDelete:CASCADE" json:"content,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName sets the table name explicitly.
func (Performer) TableName() string {
	return "performers"
}

// BeforeCreate assigns a UUID primary key when none is set.
func (p *Performer) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
