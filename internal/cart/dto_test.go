package cart

import "testing"

func TestToDTOPreservesEveryField(t *testing.T) {
	c := Cart{
		ID:             "1",
		CustomerID:     "2",
		CustomerType:   CustomerPremium,
		ShippingMethod: ShippingExpress,
		ShippingAddress: Address{
			Country: "The Netherlands",
			City:    "Amsterdam",
			Street:  "Cheese street 1",
		},
		Items: []Item{
			{ProductID: "A", ProductName: "Product A", Quantity: 2, Price: 1.5},
			{ProductID: "B", ProductName: "Product B", Quantity: 1, Price: 1.0},
		},
	}

	dto := ToDTO(c)

	if dto.ID != "1" || dto.CustomerID != "2" {
		t.Fatalf("identity fields lost: %+v", dto)
	}
	if dto.CustomerType != CustomerPremium || dto.ShippingMethod != ShippingExpress {
		t.Fatalf("enum fields lost: %+v", dto)
	}
	if dto.ShippingAddress.Country != "The Netherlands" ||
		dto.ShippingAddress.City != "Amsterdam" ||
		dto.ShippingAddress.Street != "Cheese street 1" {
		t.Fatalf("address fields lost: %+v", dto.ShippingAddress)
	}
	if len(dto.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(dto.Items))
	}
	first := dto.Items[0]
	if first.ProductID != "A" || first.ProductName != "Product A" || first.Quantity != 2 || first.Price != 1.5 {
		t.Fatalf("first item mismatch: %+v", first)
	}
	second := dto.Items[1]
	if second.ProductID != "B" || second.ProductName != "Product B" || second.Quantity != 1 || second.Price != 1.0 {
		t.Fatalf("second item mismatch: %+v", second)
	}
}

func TestToDTOEmptyCart(t *testing.T) {
	dto := ToDTO(Cart{ID: "x"})
	if dto.ID != "x" {
		t.Fatalf("expected id preserved, got %q", dto.ID)
	}
	if len(dto.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(dto.Items))
	}
}

func TestParseCustomerType(t *testing.T) {
	if _, err := ParseCustomerType("Premium "); err != nil {
		t.Fatalf("expected case and space tolerant parse, got %v", err)
	}
	if _, err := ParseCustomerType("gold"); err == nil {
		t.Fatal("expected unknown tier to be rejected")
	}
}

func TestParseShippingMethod(t *testing.T) {
	for _, raw := range []string{"standard", "Expedited", "PRIORITY", " express "} {
		if _, err := ParseShippingMethod(raw); err != nil {
			t.Fatalf("expected %q to parse, got %v", raw, err)
		}
	}
	if _, err := ParseShippingMethod("overnight"); err == nil {
		t.Fatal("expected unknown method to be rejected")
	}
}

func TestTotalQuantitySkipsNonPositive(t *testing.T) {
	c := Cart{Items: []Item{{Quantity: 2}, {Quantity: 0}, {Quantity: -3}, {Quantity: 5}}}
	if got := c.TotalQuantity(); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}
