package cart

import "testing"

func TestIsValidCompleteAddress(t *testing.T) {
	v := AddressValidator{}
	addr := Address{Country: "The Netherlands", City: "Amsterdam", Street: "Kaasstraat 1"}
	if !v.IsValid(&addr) {
		t.Fatal("expected complete address to be valid")
	}
}

func TestIsValidNilAddress(t *testing.T) {
	v := AddressValidator{}
	if v.IsValid(nil) {
		t.Fatal("expected nil address to be invalid")
	}
}

func TestIsValidMissingFields(t *testing.T) {
	cases := []struct {
		name string
		addr Address
	}{
		{"empty country", Address{Country: "", City: "Amsterdam", Street: "Kaasstraat 1"}},
		{"empty city", Address{Country: "The Netherlands", City: "", Street: "Kaasstraat 1"}},
		{"empty street", Address{Country: "The Netherlands", City: "Amsterdam", Street: ""}},
	}
	v := AddressValidator{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if v.IsValid(&tc.addr) {
				t.Fatal("expected address to be invalid")
			}
		})
	}
}

func TestIsValidWhitespaceOnlyFieldPasses(t *testing.T) {
	v := AddressValidator{}
	addr := Address{Country: " ", City: "Amsterdam", Street: "Kaasstraat 1"}
	if !v.IsValid(&addr) {
		t.Fatal("whitespace is not trimmed; address should pass")
	}
}
