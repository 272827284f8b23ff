package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShippingMethod is how an order travels from China to Iraq.
// "both" means the customer has not yet committed to air or sea and
// expects a dual quote.
type ShippingMethod string

const (
	ShippingSea  ShippingMethod = "sea"
	ShippingAir  ShippingMethod = "air"
	ShippingBoth ShippingMethod = "both"
)

// Valid reports whether m is one of the known shipping methods.
func (m ShippingMethod) Valid() bool {
	switch m {
	case ShippingSea, ShippingAir, ShippingBoth:
		return true
	}
	return false
}

// Resolved reports whether the method has been narrowed to a single
// carrier. Orders cannot advance past quoted while unresolved.
func (m ShippingMethod) Resolved() bool {
	return m == ShippingSea || m == ShippingAir
}

// OrderStatus is the lifecycle stage of an order.
type OrderStatus string

const (
	StatusPending       OrderStatus = "pending"
	StatusQuoted        OrderStatus = "quoted"
	StatusAccepted      OrderStatus = "accepted"
	StatusBuying        OrderStatus = "buying"
	StatusReceivedChina OrderStatus = "received_china"
	StatusPreparing     OrderStatus = "preparing"
	StatusOnTheWay      OrderStatus = "on_the_way"
	StatusArrivedIraq   OrderStatus = "arrived_iraq"
	StatusReadyPickup   OrderStatus = "ready_pickup"
	StatusCompleted     OrderStatus = "completed"
	StatusCancelled     OrderStatus = "cancelled"
)

// AllStatuses lists every status in display order, matching the
// progress bar in the customer app.
var AllStatuses = []OrderStatus{
	StatusPending, StatusQuoted, StatusAccepted, StatusBuying,
	StatusReceivedChina, StatusPreparing, StatusOnTheWay,
	StatusArrivedIraq, StatusReadyPickup, StatusCompleted, StatusCancelled,
}

// guardedNext is the workflow the admin dashboard drives. accepted,
// preparing and arrived_iraq have no guarded operation; they are
// reachable only through the audited status override.
var guardedNext = map[OrderStatus]OrderStatus{
	StatusPending:       StatusQuoted,
	StatusQuoted:        StatusBuying,
	StatusBuying:        StatusReceivedChina,
	StatusReceivedChina: StatusOnTheWay,
	StatusOnTheWay:      StatusReadyPickup,
	StatusReadyPickup:   StatusCompleted,
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	for _, st := range AllStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Terminal reports whether the order can no longer move through the
// guarded workflow.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether the guarded workflow allows moving
// from s to next. Cancellation is allowed from any non-terminal
// status; everything else must follow the forward chain.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	return guardedNext[s] == next
}

// MaxReceivedChinaPhotos caps the warehouse photo gallery per order.
const MaxReceivedChinaPhotos = 6

// Order represents a customer purchase order moving through the
// cross-border pipeline. Orders are created in "pending" by the
// customer app and mutated only by admin operations.
type Order struct {
	ID             string         `gorm:"primaryKey;size:36" json:"id"`
	UserID         string         `gorm:"not null;index;size:36" json:"user_id"`
	Customer       *Profile       `gorm:"foreignKey:UserID" json:"customer,omitempty"`
	ProductURL     string         `json:"product_url"`
	ProductDetails string         `json:"product_details"`
	ShippingMethod ShippingMethod `gorm:"not null;default:'sea'" json:"shipping_method"`
	Status         OrderStatus    `gorm:"not null;default:'pending';index" json:"status"`

	// Pricing, all nullable until the quote is submitted. The air/sea
	// pair is only populated for "both" orders so the choice can be
	// resolved later without re-deriving costs from the summary text.
	ProductPrice    *float64 `json:"product_price"`
	ShippingCost    *float64 `json:"shipping_cost"`
	ShippingCostAir *float64 `json:"shipping_cost_air"`
	ShippingCostSea *float64 `json:"shipping_cost_sea"`
	TransferFee     *float64 `json:"transfer_fee"`
	AdminBenefit    *float64 `json:"admin_benefit"`
	AmountPaid      *float64 `json:"amount_paid"`

	AdminResponse          *string    `json:"admin_response"` // rendered quote summary sent to the customer
	PaymentNotes           *string    `json:"payment_notes"`
	TrackingNumber         *string    `json:"tracking_number"`
	ReceivedChinaPhotoURLs StringList `gorm:"type:text" json:"received_china_photo_urls"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// ShortID returns the 8-character order reference shown to customers.
func (o *Order) ShortID() string {
	short := make([]rune, 0, 8)
	for _, r := range o.ID {
		if r == '-' {
			continue
		}
		short = append(short, r)
		if len(short) == 8 {
			break
		}
	}
	return string(short)
}
