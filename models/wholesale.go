package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductCategory groups wholesale shops and products.
type ProductCategory struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ProductCategory) TableName() string {
	return "product_categories"
}

func (c *ProductCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Shop is a wholesale supplier inside a category.
type Shop struct {
	ID         string           `gorm:"primaryKey;size:36" json:"id"`
	Name       string           `gorm:"not null" json:"name"`
	CategoryID string           `gorm:"not null;index;size:36" json:"category_id"`
	Category   *ProductCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func (Shop) TableName() string {
	return "shops"
}

func (s *Shop) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// WholesaleProduct is a catalog item shown to access-code holders.
// Names and descriptions carry English, Arabic and Kurdish variants.
type WholesaleProduct struct {
	ID            string           `gorm:"primaryKey;size:36" json:"id"`
	NameEn        string           `gorm:"not null" json:"name_en"`
	NameAr        *string          `json:"name_ar"`
	NameKu        *string          `json:"name_ku"`
	DescriptionEn *string          `json:"description_en"`
	DescriptionAr *string          `json:"description_ar"`
	DescriptionKu *string          `json:"description_ku"`
	Price         float64          `gorm:"not null" json:"price"`
	StockQuantity *int             `json:"stock_quantity"`
	CategoryID    *string          `gorm:"index;size:36" json:"category_id"`
	Category      *ProductCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ShopID        *string          `gorm:"index;size:36" json:"shop_id"`
	Shop          *Shop            `gorm:"foreignKey:ShopID" json:"shop,omitempty"`
	IsActive      bool             `gorm:"not null;default:true" json:"is_active"`
	ImageURL      *string          `json:"image_url"`
	Images        []ProductImage   `gorm:"foreignKey:ProductID" json:"images,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (WholesaleProduct) TableName() string {
	return "wholesale_products"
}

func (p *WholesaleProduct) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ProductImage is one gallery entry for a wholesale product.
type ProductImage struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	ProductID    string    `gorm:"not null;index;size:36" json:"product_id"`
	ImageURL     string    `gorm:"not null" json:"image_url"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

func (ProductImage) TableName() string {
	return "product_images"
}

func (i *ProductImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
