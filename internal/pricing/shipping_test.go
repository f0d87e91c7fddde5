package pricing

import (
	"testing"

	"github.com/noah-isme/backend-cart/internal/cart"
)

var testOffice = cart.Address{
	Country: "The Netherlands",
	City:    "Amsterdam",
	Street:  "Cheese street 1",
}

func singleItemCart(method cart.ShippingMethod, tier cart.CustomerType, dst cart.Address) cart.Cart {
	return cart.Cart{
		CustomerType:    tier,
		ShippingMethod:  method,
		ShippingAddress: dst,
		Items:           []cart.Item{{Quantity: 1}},
	}
}

func TestCalculateShippingCostDistanceTiers(t *testing.T) {
	cases := []struct {
		name string
		dst  cart.Address
		want float64
	}{
		{
			name: "same city same country",
			dst:  cart.Address{Country: "The Netherlands", City: "Amsterdam", Street: "Windmill street 1"},
			want: 1.0,
		},
		{
			name: "other city same country",
			dst:  cart.Address{Country: "The Netherlands", City: "Rotterdam", Street: "Windmill street 1"},
			want: 2.0,
		},
		{
			name: "other country",
			dst:  cart.Address{Country: "Canada", City: "Sim City", Street: "123 West Hill"},
			want: 15.0,
		},
	}
	calc := NewShippingCalculator(testOffice)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := calc.CalculateShippingCost(singleItemCart(cart.ShippingStandard, cart.CustomerStandard, tc.dst))
			if got != tc.want {
				t.Fatalf("expected cost %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCalculateShippingCostMethodAndTierRates(t *testing.T) {
	sameCity := cart.Address{Country: "The Netherlands", City: "Amsterdam", Street: "Windmill street 1"}
	cases := []struct {
		method cart.ShippingMethod
		tier   cart.CustomerType
		want   float64
	}{
		{cart.ShippingStandard, cart.CustomerStandard, 1.0},
		{cart.ShippingExpedited, cart.CustomerStandard, 1.2},
		{cart.ShippingPriority, cart.CustomerStandard, 2.0},
		{cart.ShippingExpress, cart.CustomerStandard, 2.5},
		{cart.ShippingStandard, cart.CustomerPremium, 1.0},
		{cart.ShippingExpedited, cart.CustomerPremium, 1.0},
		{cart.ShippingPriority, cart.CustomerPremium, 1.0},
		{cart.ShippingExpress, cart.CustomerPremium, 2.5},
	}
	calc := NewShippingCalculator(testOffice)
	for _, tc := range cases {
		t.Run(string(tc.method)+"/"+string(tc.tier), func(t *testing.T) {
			got := calc.CalculateShippingCost(singleItemCart(tc.method, tc.tier, sameCity))
			if got != tc.want {
				t.Fatalf("expected cost %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCalculateShippingCostScalesWithQuantity(t *testing.T) {
	sameCity := cart.Address{Country: "The Netherlands", City: "Amsterdam", Street: "Windmill street 1"}
	calc := NewShippingCalculator(testOffice)
	for _, qty := range []int{0, 1, 2, 101} {
		c := cart.Cart{
			CustomerType:    cart.CustomerStandard,
			ShippingMethod:  cart.ShippingStandard,
			ShippingAddress: sameCity,
			Items:           []cart.Item{{Quantity: qty}},
		}
		got := calc.CalculateShippingCost(c)
		if got != float64(qty) {
			t.Fatalf("quantity %d: expected cost %v, got %v", qty, float64(qty), got)
		}
	}
}

func TestCalculateShippingCostSumsAcrossLines(t *testing.T) {
	sameCity := cart.Address{Country: "The Netherlands", City: "Amsterdam", Street: "Windmill street 1"}
	calc := NewShippingCalculator(testOffice)
	for _, lines := range []int{0, 1, 2, 101} {
		items := make([]cart.Item, 0, lines)
		for i := 0; i < lines; i++ {
			items = append(items, cart.Item{Quantity: 1})
		}
		c := cart.Cart{
			CustomerType:    cart.CustomerStandard,
			ShippingMethod:  cart.ShippingStandard,
			ShippingAddress: sameCity,
			Items:           items,
		}
		got := calc.CalculateShippingCost(c)
		if got != float64(lines) {
			t.Fatalf("%d lines: expected cost %v, got %v", lines, float64(lines), got)
		}
	}
}

func TestCalculateShippingCostStacksAllFactors(t *testing.T) {
	otherCity := cart.Address{Country: "The Netherlands", City: "Rotterdam", Street: "Windmill street 1"}
	cases := []struct {
		tier cart.CustomerType
		want float64
	}{
		{cart.CustomerStandard, 16.0}, // 2 * (1 + 3) * 2
		{cart.CustomerPremium, 8.0},   // 2 * (1 + 3) * 1
	}
	calc := NewShippingCalculator(testOffice)
	for _, tc := range cases {
		c := cart.Cart{
			CustomerType:    tc.tier,
			ShippingMethod:  cart.ShippingPriority,
			ShippingAddress: otherCity,
			Items:           []cart.Item{{Quantity: 1}, {Quantity: 3}},
		}
		got := calc.CalculateShippingCost(c)
		if got != tc.want {
			t.Fatalf("tier %s: expected cost %v, got %v", tc.tier, tc.want, got)
		}
	}
}

func TestCalculateShippingCostDefaultOffice(t *testing.T) {
	calc := NewDefaultShippingCalculator()
	dst := cart.Address{Country: "USA", City: "Dallas", Street: "123 right lane."}
	got := calc.CalculateShippingCost(singleItemCart(cart.ShippingStandard, cart.CustomerStandard, dst))
	if got != 1.0 {
		t.Fatalf("expected same city rate from default office, got %v", got)
	}
}
