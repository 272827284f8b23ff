package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/zagross-express/zagross-admin-api/config"
	"github.com/zagross-express/zagross-admin-api/middleware"
	"github.com/zagross-express/zagross-admin-api/models"
	"github.com/zagross-express/zagross-admin-api/quote"
	"github.com/zagross-express/zagross-admin-api/services"
)

// fetchOrder loads the order from the :id route parameter. On failure
// it writes the error envelope and returns false.
func fetchOrder(c *gin.Context) (*models.Order, bool) {
	orderID := c.Param("id")
	if orderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "Order ID is required",
			},
		})
		return nil, false
	}

	db := config.GetDB()
	var order models.Order
	if err := db.First(&order, "id = ?", orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return nil, false
	}

	return &order, true
}

// rejectTransition writes the standard guard-failure envelope.
func rejectTransition(c *gin.Context, from, to models.OrderStatus) {
	c.JSON(http.StatusConflict, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "INVALID_TRANSITION",
			"message": fmt.Sprintf("Cannot move order from %s to %s", from, to),
		},
	})
}

// saveOrder persists the order and publishes a change event. On
// failure it writes the error envelope and returns false.
func saveOrder(c *gin.Context, order *models.Order) bool {
	db := config.GetDB()
	if err := db.Save(order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update order",
			},
		})
		return false
	}

	services.GetEventHub().Publish(services.OrderEvent{
		OrderID: order.ID,
		Status:  string(order.Status),
	})
	return true
}

// SubmitQuoteRequest represents the request body for submitting a quote
type SubmitQuoteRequest struct {
	ProductPrice    *float64 `json:"product_price" binding:"required"`
	ShippingCostAir *float64 `json:"shipping_cost_air"`
	ShippingCostSea *float64 `json:"shipping_cost_sea"`
	TransferFee     *float64 `json:"transfer_fee"`
	AdminBenefit    *float64 `json:"admin_benefit"`
	Message         string   `json:"message"`
}

// SubmitQuote handles POST /api/v1/orders/:id/quote - prices a pending
// order and moves it to quoted. For "both" orders the air and sea
// costs are persisted as columns so the later choice never has to be
// re-derived from the summary text.
func SubmitQuote(c *gin.Context) {
	order, ok := fetchOrder(c)
	if !ok {
		return
	}

	if !order.Status.CanTransition(models.StatusQuoted) {
		rejectTransition(c, order.Status, models.StatusQuoted)
		return
	}

	var req SubmitQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	in := &quote.Input{
		Method:       order.ShippingMethod,
		ProductPrice: *req.ProductPrice,
		AirCost:      req.ShippingCostAir,
		SeaCost:      req.ShippingCostSea,
		TransferFee:  req.TransferFee,
		Message:      req.Message,
	}
	if req.AdminBenefit != nil {
		in.AdminBenefit = *req.AdminBenefit
	}

	if err := in.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": err.Error(),
			},
		})
		return
	}

	fee := in.EffectiveTransferFee()
	benefit := in.AdminBenefit
	summary := in.Summary()

	order.ProductPrice = req.ProductPrice
	order.TransferFee = &fee
	order.AdminBenefit = &benefit
	order.AdminResponse = &summary
	order.Status = models.StatusQuoted

	switch order.ShippingMethod {
	case models.ShippingBoth:
		order.ShippingCostAir = req.ShippingCostAir
		order.ShippingCostSea = req.ShippingCostSea
		// Default until the customer picks; replaced on resolution.
		order.ShippingCost = req.ShippingCostSea
	case models.ShippingAir:
		order.ShippingCostAir = req.ShippingCostAir
		order.ShippingCost = req.ShippingCostAir
	default:
		order.ShippingCostSea = req.ShippingCostSea
		order.ShippingCost = req.ShippingCostSea
	}

	if !saveOrder(c, order) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// RecordPaymentRequest represents the request body for recording a payment
type RecordPaymentRequest struct {
	AmountPaid   *float64 `json:"amount_paid" binding:"required"`
	PaymentNotes string   `json:"payment_notes"`
	ChosenMethod string   `json:"chosen_method" binding:"omitempty,oneof=air sea"`
}

// RecordPayment handles POST /api/v1/orders/:id/payment - records the
// customer's payment and moves the order from quoted to buying. Orders
// quoted with method "both" must carry the customer's air/sea choice;
// the shipping method is narrowed and the matching quoted cost becomes
// the order's shipping cost.
func RecordPayment(c *gin.Context) {
	order, ok := fetchOrder(c)
	if !ok {
		return
	}

	if !order.Status.CanTransition(models.StatusBuying) {
		rejectTransition(c, order.Status, models.StatusBuying)
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	if *req.AmountPaid < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Amount paid must be greater than or equal to 0",
			},
		})
		return
	}

	if order.ShippingMethod == models.ShippingBoth {
		if req.ChosenMethod == "" {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNRESOLVED_SHIPPING",
					"message": "Select whether the customer chose air or sea before recording payment",
				},
			})
			return
		}

		chosen := models.ShippingMethod(req.ChosenMethod)
		cost := quotedCostFor(order, chosen)
		if cost == nil {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNRESOLVED_SHIPPING",
					"message": "The quoted " + req.ChosenMethod + " cost could not be determined for this order",
				},
			})
			return
		}

		order.ShippingMethod = chosen
		order.ShippingCost = cost
	}

	if order.ProductPrice == nil || order.ShippingCost == nil {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNRESOLVED_SHIPPING",
				"message": "Order pricing is incomplete; submit a quote first",
			},
		})
		return
	}

	total := quote.Total(*order.ProductPrice, *order.ShippingCost,
		floatOrZero(order.TransferFee), floatOrZero(order.AdminBenefit))

	order.AmountPaid = req.AmountPaid
	if notes := strings.TrimSpace(req.PaymentNotes); notes != "" {
		order.PaymentNotes = &notes
	} else {
		order.PaymentNotes = nil
	}
	order.Status = models.StatusBuying

	if !saveOrder(c, order) {
		return
	}

	services.GetNotifier().NotifyOrderEvent(order.UserID, order.ID, services.EventPaidInProcess)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
		"meta": gin.H{
			"total_due": total,
		},
	})
}

// quotedCostFor recovers the per-method cost of a "both" quote. The
// structured columns win; the summary-text parse covers orders quoted
// before those columns existed.
func quotedCostFor(order *models.Order, method models.ShippingMethod) *float64 {
	if method == models.ShippingAir && order.ShippingCostAir != nil {
		return order.ShippingCostAir
	}
	if method == models.ShippingSea && order.ShippingCostSea != nil {
		return order.ShippingCostSea
	}

	if order.AdminResponse == nil {
		return nil
	}
	air, sea := quote.ParseBothCosts(*order.AdminResponse)
	if method == models.ShippingAir {
		return air
	}
	return sea
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// TrackingRequest carries the optional tracking number attached while
// the parcel moves through China.
type TrackingRequest struct {
	TrackingNumber string `json:"tracking_number"`
}

// MarkReceivedInChina handles POST /api/v1/orders/:id/received-china
func MarkReceivedInChina(c *gin.Context) {
	order, ok := fetchOrder(c)
	if !ok {
		return
	}

	if !order.Status.CanTransition(models.StatusReceivedChina) {
		rejectTransition(c, order.Status, models.StatusReceivedChina)
		return
	}

	var req TrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	applyTracking(order, req.TrackingNumber)
	order.Status = models.StatusReceivedChina

	if !saveOrder(c, order) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// MarkOnTheWay handles POST /api/v1/orders/:id/on-the-way
func MarkOnTheWay(c *gin.Context) {
	order, ok := fetchOrder(c)
	if !ok {
		return
	}

	if !order.Status.CanTransition(models.StatusOnTheWay) {
		rejectTransition(c, order.Status, models.StatusOnTheWay)
		return
	}

	var req TrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	applyTracking(order, req.TrackingNumber)
	order.Status = models.StatusOnTheWay

	if !saveOrder(c, order) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

func applyTracking(order *models.Order, trackingNumber string) {
	if tn := strings.TrimSpace(trackingNumber); tn != "" {
		order.TrackingNumber = &tn
	}
}

// MarkReadyPickup handles POST /api/v1/orders/:id/ready-pickup - the
// parcel arrived at the office; the customer gets a pickup push.
func MarkReadyPickup(c *gin.Context) {
	order, ok := fetchOrder(c)
	if !ok {
		return
	}

	if !order.Status.CanTransition(models.StatusReadyPickup) {
		rejectTransition(c, order.Status, models.StatusReadyPickup)
		return
	}

	order.Status = models.StatusReadyPickup

	if !saveOrder(c, order) {
		return
	}

	services.GetNotifier().NotifyOrderEvent(order.UserID, order.ID, services.EventReadyPickup)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// CompleteOrderRequest represents the request body for completing an order
type CompleteOrderRequest struct {
	AmountLeft string `json:"amount_left"`
}

// CompleteOrder handles POST /api/v1/orders/:id/complete - the
// customer picked the parcel up. Any remaining balance is appended to
// the payment notes for the books.
func CompleteOrder(c *gin.Context) {
	order, ok := fetchOrder(c)
	if !ok {
		return
	}

	if !order.Status.CanTransition(models.StatusCompleted) {
		rejectTransition(c, order.Status, models.StatusCompleted)
		return
	}

	var req CompleteOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	if amount := strings.TrimSpace(req.AmountLeft); amount != "" {
		note := "Amount left to pay (on complete): " + amount
		if order.PaymentNotes != nil && *order.PaymentNotes != "" {
			note = *order.PaymentNotes + "\n" + note
		}
		order.PaymentNotes = &note
	}
	order.Status = models.StatusCompleted

	if !saveOrder(c, order) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - allowed from
// any non-terminal status, no side effects.
func CancelOrder(c *gin.Context) {
	order, ok := fetchOrder(c)
	if !ok {
		return
	}

	if !order.Status.CanTransition(models.StatusCancelled) {
		rejectTransition(c, order.Status, models.StatusCancelled)
		return
	}

	order.Status = models.StatusCancelled

	if !saveOrder(c, order) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// OverrideStatusRequest represents the request body for a manual override
type OverrideStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

// OverrideStatus handles POST /api/v1/orders/:id/override-status - the
// escape hatch for correcting mistakes. It bypasses every workflow
// guard but always writes an audit row naming the admin and reason; it
// is the only way to reach accepted, preparing or arrived_iraq, or to
// move a status backwards.
func OverrideStatus(c *gin.Context) {
	adminID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Could not extract user information",
			},
		})
		return
	}

	order, ok := fetchOrder(c)
	if !ok {
		return
	}

	var req OverrideStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	newStatus := models.OrderStatus(req.Status)
	if !newStatus.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Unknown order status",
			},
		})
		return
	}
	if newStatus == order.Status {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Order is already in that status",
			},
		})
		return
	}

	db := config.GetDB()
	override := models.StatusOverride{
		OrderID:    order.ID,
		FromStatus: order.Status,
		ToStatus:   newStatus,
		Reason:     strings.TrimSpace(req.Reason),
		AdminID:    adminID,
	}
	if err := db.Create(&override).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to record status override",
			},
		})
		return
	}

	order.Status = newStatus

	if !saveOrder(c, order) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
		"meta": gin.H{
			"override_id": override.ID,
		},
	})
}
