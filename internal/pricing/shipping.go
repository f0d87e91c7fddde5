package pricing

import "github.com/noah-isme/backend-cart/internal/cart"

// Distance tier multipliers, derived from comparing the destination to the
// shipping office by country and city. Street never participates.
const (
	rateSameCity     = 1.0
	rateSameCountry  = 2.0
	rateOtherCountry = 15.0
)

// DefaultOrigin is the shipping office assumed when no origin is configured.
var DefaultOrigin = cart.Address{Country: "USA", City: "Dallas", Street: "1 Main Street"}

// methodRates is the shipping method × customer tier multiplier table.
// Premium customers pay no surcharge for expedited or priority service;
// express costs the same for both tiers.
var methodRates = map[cart.ShippingMethod]map[cart.CustomerType]float64{
	cart.ShippingStandard: {
		cart.CustomerStandard: 1.0,
		cart.CustomerPremium:  1.0,
	},
	cart.ShippingExpedited: {
		cart.CustomerStandard: 1.2,
		cart.CustomerPremium:  1.0,
	},
	cart.ShippingPriority: {
		cart.CustomerStandard: 2.0,
		cart.CustomerPremium:  1.0,
	},
	cart.ShippingExpress: {
		cart.CustomerStandard: 2.5,
		cart.CustomerPremium:  2.5,
	},
}

// ShippingCalculator prices delivery for a cart relative to a fixed origin
// address. The origin is set at construction and never mutated, so one
// calculator may serve concurrent requests.
type ShippingCalculator struct {
	origin cart.Address
}

// NewShippingCalculator builds a calculator shipping from the given office.
func NewShippingCalculator(origin cart.Address) *ShippingCalculator {
	return &ShippingCalculator{origin: origin}
}

// NewDefaultShippingCalculator builds a calculator shipping from DefaultOrigin.
func NewDefaultShippingCalculator() *ShippingCalculator {
	return NewShippingCalculator(DefaultOrigin)
}

// CalculateShippingCost returns the delivery cost for the cart in the same
// unit as item prices. Cost scales linearly with the summed item quantity;
// an empty cart costs nothing regardless of tier and method.
func (s *ShippingCalculator) CalculateShippingCost(c cart.Cart) float64 {
	qty := c.TotalQuantity()
	if qty == 0 {
		return 0
	}
	// Direct lookup: ParseShippingMethod and ParseCustomerType guard the
	// closed sets, so every cart reaching here has an entry in the table.
	return s.distanceTier(c.ShippingAddress) * methodRates[c.ShippingMethod][c.CustomerType] * float64(qty)
}

func (s *ShippingCalculator) distanceTier(dst cart.Address) float64 {
	if dst.Country != s.origin.Country {
		return rateOtherCountry
	}
	if dst.City != s.origin.City {
		return rateSameCountry
	}
	return rateSameCity
}
