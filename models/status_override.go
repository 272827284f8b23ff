package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusOverride is the audit record written whenever an admin moves
// an order outside the guarded workflow. Overrides are the only way to
// reach the manual stages (accepted, preparing, arrived_iraq) or to
// move a status backwards.
type StatusOverride struct {
	ID         string      `gorm:"primaryKey;size:36" json:"id"`
	OrderID    string      `gorm:"not null;index;size:36" json:"order_id"`
	FromStatus OrderStatus `gorm:"not null" json:"from_status"`
	ToStatus   OrderStatus `gorm:"not null" json:"to_status"`
	Reason     string      `gorm:"not null" json:"reason"`
	AdminID    string      `gorm:"not null" json:"admin_id"`
	CreatedAt  time.Time   `json:"created_at"`
}

// TableName specifies the table name for the StatusOverride model
func (StatusOverride) TableName() string {
	return "status_overrides"
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (s *StatusOverride) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
