package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"Pending to quoted", StatusPending, StatusQuoted, true},
		{"Quoted to buying", StatusQuoted, StatusBuying, true},
		{"Buying to received in China", StatusBuying, StatusReceivedChina, true},
		{"Received in China to on the way", StatusReceivedChina, StatusOnTheWay, true},
		{"On the way to ready for pickup", StatusOnTheWay, StatusReadyPickup, true},
		{"Ready for pickup to completed", StatusReadyPickup, StatusCompleted, true},

		{"Cannot skip quoting", StatusPending, StatusBuying, false},
		{"Cannot skip the warehouse", StatusBuying, StatusOnTheWay, false},
		{"Cannot move backwards", StatusOnTheWay, StatusBuying, false},
		{"Cannot re-quote a quoted order", StatusQuoted, StatusQuoted, false},

		{"Manual stages have no guarded entry", StatusBuying, StatusPreparing, false},
		{"Accepted is not a guarded target", StatusQuoted, StatusAccepted, false},
		{"Arrived in Iraq is not a guarded target", StatusOnTheWay, StatusArrivedIraq, false},

		{"Cancel from pending", StatusPending, StatusCancelled, true},
		{"Cancel from on the way", StatusOnTheWay, StatusCancelled, true},
		{"Cancel from a manual stage", StatusPreparing, StatusCancelled, true},
		{"Cannot cancel a completed order", StatusCompleted, StatusCancelled, false},
		{"Cannot cancel twice", StatusCancelled, StatusCancelled, false},

		{"Completed is terminal", StatusCompleted, StatusQuoted, false},
		{"Cancelled is terminal", StatusCancelled, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.Valid(), "expected %s to be valid", s)
	}
	assert.False(t, OrderStatus("shipped").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestShippingMethod(t *testing.T) {
	assert.True(t, ShippingSea.Valid())
	assert.True(t, ShippingAir.Valid())
	assert.True(t, ShippingBoth.Valid())
	assert.False(t, ShippingMethod("truck").Valid())

	assert.True(t, ShippingSea.Resolved())
	assert.True(t, ShippingAir.Resolved())
	assert.False(t, ShippingBoth.Resolved())
}

func TestOrderShortID(t *testing.T) {
	order := Order{ID: "a1b2c3d4-e5f6-7890-abcd-ef1234567890"}
	assert.Equal(t, "a1b2c3d4", order.ShortID())

	short := Order{ID: "abc"}
	assert.Equal(t, "abc", short.ShortID())
}

func TestOrderBeforeCreate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(&Profile{}, &Order{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	profile := Profile{FullName: "Test Customer", Phone: "+9647501112222"}
	db.Create(&profile)

	order := Order{UserID: profile.ID, ShippingMethod: ShippingSea, Status: StatusPending}
	assert.NoError(t, db.Create(&order).Error)
	assert.Len(t, order.ID, 36)

	keep := Order{ID: "fixed-id", UserID: profile.ID, ShippingMethod: ShippingSea, Status: StatusPending}
	assert.NoError(t, db.Create(&keep).Error)
	assert.Equal(t, "fixed-id", keep.ID)
}
