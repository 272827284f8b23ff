package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Special request statuses. Unlike orders these do not form a chain;
// the admin picks the outcome directly.
const (
	RequestPending   = "pending"
	RequestQuoted    = "quoted"
	RequestReplied   = "replied"
	RequestRejected  = "rejected"
	RequestCompleted = "completed"
)

// SpecialRequest is a free-form sourcing request ("find me this
// product") submitted by a customer outside the normal order flow.
type SpecialRequest struct {
	ID                 string   `gorm:"primaryKey;size:36" json:"id"`
	UserID             string   `gorm:"not null;index;size:36" json:"user_id"`
	Customer           *Profile `gorm:"foreignKey:UserID" json:"customer,omitempty"`
	WhatsappNumber     *string  `json:"whatsapp_number"`
	ProductDescription string   `json:"product_description"`
	Status             string   `gorm:"not null;default:'pending';index" json:"status"`
	AdminResponse      *string  `json:"admin_response"`
	QuotedPrice        *float64 `json:"quoted_price"`
	AttachmentURL      *string  `json:"attachment_url"`       // uploaded by the customer
	AdminAttachmentURL *string  `json:"admin_attachment_url"` // uploaded with the admin reply

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the SpecialRequest model
func (SpecialRequest) TableName() string {
	return "special_requests"
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (r *SpecialRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
