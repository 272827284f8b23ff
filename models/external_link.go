package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExternalLink is a curated storefront link shown in the customer app,
// with localized labels and an optional note per language.
type ExternalLink struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	NameAr       *string   `json:"name_ar"`
	NameKu       *string   `json:"name_ku"`
	ExternalLink string    `gorm:"not null" json:"external_link"`
	ImageURL     *string   `json:"image_url"`
	NoteEn       *string   `json:"note_en"`
	NoteAr       *string   `json:"note_ar"`
	NoteKu       *string   `json:"note_ku"`
	DisplayOrder *int      `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName keeps the table the customer app already reads.
func (ExternalLink) TableName() string {
	return "external_link_categories"
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (l *ExternalLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
