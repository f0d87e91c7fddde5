package cart

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates the requested cart could not be located.
var ErrNotFound = errors.New("cart not found")

// ErrInvalidInput is returned when the provided payload is invalid.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidAddress is returned when a shipping address fails validation.
var ErrInvalidAddress = errors.New("invalid shipping address")

// ErrItemNotFound indicates the referenced line item is not in the cart.
var ErrItemNotFound = errors.New("cart item not found")

// CustomerType is the closed set of customer tiers.
type CustomerType string

const (
	CustomerStandard CustomerType = "standard"
	CustomerPremium  CustomerType = "premium"
)

// ParseCustomerType maps free-form input onto the closed tier set.
func ParseCustomerType(value string) (CustomerType, error) {
	switch CustomerType(strings.ToLower(strings.TrimSpace(value))) {
	case CustomerStandard:
		return CustomerStandard, nil
	case CustomerPremium:
		return CustomerPremium, nil
	default:
		return "", fmt.Errorf("unknown customer type %q: %w", value, ErrInvalidInput)
	}
}

// ShippingMethod is the closed set of delivery service levels.
type ShippingMethod string

const (
	ShippingStandard  ShippingMethod = "standard"
	ShippingExpedited ShippingMethod = "expedited"
	ShippingPriority  ShippingMethod = "priority"
	ShippingExpress   ShippingMethod = "express"
)

// ParseShippingMethod maps free-form input onto the closed method set.
func ParseShippingMethod(value string) (ShippingMethod, error) {
	switch ShippingMethod(strings.ToLower(strings.TrimSpace(value))) {
	case ShippingStandard:
		return ShippingStandard, nil
	case ShippingExpedited:
		return ShippingExpedited, nil
	case ShippingPriority:
		return ShippingPriority, nil
	case ShippingExpress:
		return ShippingExpress, nil
	default:
		return "", fmt.Errorf("unknown shipping method %q: %w", value, ErrInvalidInput)
	}
}

// Address is a flat delivery location. It carries no identity beyond its fields.
type Address struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Street  string `json:"street"`
}

// Item is a cart line. Price is the per-unit amount in the shop currency.
type Item struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Cart is the unit of work for checkout calculation. The engine treats it as
// immutable; all mutation goes through Service.
type Cart struct {
	ID              string         `json:"id"`
	CustomerID      string         `json:"customerId"`
	CustomerType    CustomerType   `json:"customerType"`
	ShippingMethod  ShippingMethod `json:"shippingMethod"`
	ShippingAddress Address        `json:"shippingAddress"`
	Items           []Item         `json:"items"`
}

// TotalQuantity sums line quantities. Negative quantities never enter via the
// service layer but are skipped anyway.
func (c Cart) TotalQuantity() int {
	var total int
	for _, it := range c.Items {
		if it.Quantity > 0 {
			total += it.Quantity
		}
	}
	return total
}
