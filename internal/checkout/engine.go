package checkout

import (
	"github.com/noah-isme/backend-cart/internal/cart"
)

// discountRates maps customer tiers to the share of the shipping cost waived
// at checkout. The discount never touches merchandise prices.
var discountRates = map[cart.CustomerType]float64{
	cart.CustomerStandard: 0,
	cart.CustomerPremium:  0.10,
}

// Result is the outcome of one checkout calculation.
type Result struct {
	Cart             cart.DTO `json:"cart"`
	ShippingCost     float64  `json:"shippingCost"`
	CustomerDiscount float64  `json:"customerDiscount"`
	Total            float64  `json:"total"`
}

// ShippingCalculator prices delivery for a cart.
type ShippingCalculator interface {
	CalculateShippingCost(c cart.Cart) float64
}

// Engine computes checkout totals. It holds no mutable state; one engine may
// serve concurrent requests.
type Engine struct {
	shipping ShippingCalculator
	convert  func(cart.Cart) cart.DTO
}

// NewEngine builds an engine around the given calculator. A nil convert falls
// back to the canonical structural copy.
func NewEngine(shipping ShippingCalculator, convert func(cart.Cart) cart.DTO) *Engine {
	if convert == nil {
		convert = cart.ToDTO
	}
	return &Engine{shipping: shipping, convert: convert}
}

// CalculateTotals prices shipping, applies the tier discount and assembles
// the result. The input cart is never mutated and identical inputs yield
// identical results.
func (e *Engine) CalculateTotals(c cart.Cart) Result {
	shippingCost := e.shipping.CalculateShippingCost(c)
	discount := shippingCost * discountRates[c.CustomerType]
	return Result{
		Cart:             e.convert(c),
		ShippingCost:     shippingCost,
		CustomerDiscount: discount,
		Total:            shippingCost - discount,
	}
}
