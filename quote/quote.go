// Package quote holds the pricing rules for admin quotes: the
// transfer-fee waiver, the customer-facing summary text, and total
// computation per shipping method.
package quote

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/zagross-express/zagross-admin-api/models"
)

const (
	// TransferFeeThreshold is the product price at or below which the
	// transfer fee is waived.
	TransferFeeThreshold = 30.0

	// DefaultTransferFee applies above the threshold when the admin
	// leaves the fee blank.
	DefaultTransferFee = 5.0

	// AdminMessageSeparator splits the line-item block from the
	// admin's free-text note inside the rendered summary. The customer
	// app keys on this exact marker.
	AdminMessageSeparator = "---ADMIN_MESSAGE---"
)

// ValidationError reports missing or out-of-range quote input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Input is everything the admin supplies when submitting a quote.
// AirCost and SeaCost are required depending on the shipping method:
// "both" needs both, "air" needs air, "sea" needs sea.
type Input struct {
	Method       models.ShippingMethod
	ProductPrice float64
	AirCost      *float64
	SeaCost      *float64
	TransferFee  *float64
	AdminBenefit float64
	Message      string
}

// Validate checks the numeric inputs before any state change.
func (in *Input) Validate() error {
	if math.IsNaN(in.ProductPrice) || in.ProductPrice < 0 {
		return &ValidationError{Field: "product_price", Message: "Product price must be a number greater than or equal to 0"}
	}

	switch in.Method {
	case models.ShippingBoth:
		if !validCost(in.AirCost) || !validCost(in.SeaCost) {
			return &ValidationError{Field: "shipping_cost", Message: "Both air and sea shipping costs are required and must be greater than or equal to 0"}
		}
	case models.ShippingAir:
		if !validCost(in.AirCost) {
			return &ValidationError{Field: "shipping_cost_air", Message: "Air shipping cost is required and must be greater than or equal to 0"}
		}
	case models.ShippingSea:
		if !validCost(in.SeaCost) {
			return &ValidationError{Field: "shipping_cost_sea", Message: "Sea shipping cost is required and must be greater than or equal to 0"}
		}
	default:
		return &ValidationError{Field: "shipping_method", Message: "Unknown shipping method"}
	}

	if in.TransferFee != nil && (math.IsNaN(*in.TransferFee) || *in.TransferFee < 0) {
		return &ValidationError{Field: "transfer_fee", Message: "Transfer fee must be a number greater than or equal to 0"}
	}
	if math.IsNaN(in.AdminBenefit) || in.AdminBenefit < 0 {
		return &ValidationError{Field: "admin_benefit", Message: "Admin benefit must be a number greater than or equal to 0"}
	}

	return nil
}

// EffectiveTransferFee applies the waiver: free at or below the
// threshold regardless of what the admin typed, otherwise the admin's
// figure (which may be an explicit zero) or the default.
func (in *Input) EffectiveTransferFee() float64 {
	return TransferFee(in.ProductPrice, in.TransferFee)
}

// TransferFee computes the fee for a product price. requested may be
// nil, meaning the admin left the field at its default.
func TransferFee(productPrice float64, requested *float64) float64 {
	if productPrice <= TransferFeeThreshold {
		return 0
	}
	if requested == nil {
		return DefaultTransferFee
	}
	return *requested
}

// ShippingCost returns the quoted cost for the method the order will
// ship by. For "both" the caller resolves first.
func (in *Input) ShippingCost(method models.ShippingMethod) float64 {
	if method == models.ShippingAir {
		return deref(in.AirCost)
	}
	return deref(in.SeaCost)
}

// Summary renders the quote text sent to the customer. Line items
// first, then the optional admin note after the separator.
func (in *Input) Summary() string {
	var b strings.Builder
	b.WriteString("📦 Product: $" + formatAmount(in.ProductPrice))

	switch in.Method {
	case models.ShippingBoth:
		b.WriteString("\n💰 Air Shipping: $" + formatAmount(deref(in.AirCost)))
		b.WriteString("\n🚢 Sea Shipping: $" + formatAmount(deref(in.SeaCost)))
	case models.ShippingAir:
		b.WriteString("\n✈️ Air Shipping: $" + formatAmount(deref(in.AirCost)))
	default:
		b.WriteString("\n🚢 Sea Shipping: $" + formatAmount(deref(in.SeaCost)))
	}

	if fee := in.EffectiveTransferFee(); fee > 0 {
		b.WriteString("\n💸 Transfer Fee: $" + formatAmount(fee))
	} else {
		b.WriteString("\n💸 Transfer Fee: Free")
	}

	if msg := strings.TrimSpace(in.Message); msg != "" {
		b.WriteString("\n\n" + AdminMessageSeparator + "\n" + msg)
	}

	return b.String()
}

// Total is the amount due for one resolved method.
func Total(productPrice, shippingCost, transferFee, adminBenefit float64) float64 {
	return productPrice + shippingCost + transferFee + adminBenefit
}

var (
	airCostRe = regexp.MustCompile(`(?:💰|✈️) Air Shipping: \$(\d+(?:\.\d+)?)`)
	seaCostRe = regexp.MustCompile(`🚢 Sea Shipping: \$(\d+(?:\.\d+)?)`)
)

// ParseBothCosts recovers the per-method costs from a rendered
// summary. Quotes now persist these as columns; the parser remains for
// orders quoted before those columns existed, where the summary text
// is the only record of the air/sea breakdown.
func ParseBothCosts(summary string) (air, sea *float64) {
	if m := airCostRe.FindStringSubmatch(summary); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			air = &v
		}
	}
	if m := seaCostRe.FindStringSubmatch(summary); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			sea = &v
		}
	}
	return air, sea
}

func validCost(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && *v >= 0
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
