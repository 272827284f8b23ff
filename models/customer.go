package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile represents a customer account created by the customer-facing
// app. Admins read and annotate profiles but never create them.
type Profile struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	FullName  string         `gorm:"not null" json:"full_name"`
	Phone     string         `gorm:"not null" json:"phone"`
	Email     *string        `json:"email"`
	Address   *string        `json:"address"`
	IDNumber  *string        `json:"id_number"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
