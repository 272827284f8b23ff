package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessCode is a shared secret handed to a wholesale customer so the
// customer app can unlock the wholesale catalog. Codes are visible to
// the admin in clear, so they are stored as entered. A non-shared code
// binds to the first device that uses it.
type AccessCode struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Password     string    `gorm:"not null;uniqueIndex" json:"password"`
	CustomerName string    `gorm:"not null" json:"customer_name"`
	IsShared     bool      `gorm:"not null;default:false" json:"is_shared"`
	DeviceID     *string   `json:"device_id"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName keeps the table the customer app already reads.
func (AccessCode) TableName() string {
	return "customer_passwords"
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (a *AccessCode) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
