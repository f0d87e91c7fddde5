package cart

// AddressDTO mirrors Address in API responses.
type AddressDTO struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Street  string `json:"street"`
}

// ItemDTO mirrors Item in API responses.
type ItemDTO struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// DTO is the outward representation of a cart.
type DTO struct {
	ID              string         `json:"id"`
	CustomerID      string         `json:"customerId"`
	CustomerType    CustomerType   `json:"customerType"`
	ShippingMethod  ShippingMethod `json:"shippingMethod"`
	ShippingAddress AddressDTO     `json:"shippingAddress"`
	Items           []ItemDTO      `json:"items"`
}

// ToDTO copies a cart field by field. The copy is deliberately enumerated
// rather than reflective so that field correspondence stays reviewable; item
// order and count are preserved exactly.
func ToDTO(c Cart) DTO {
	items := make([]ItemDTO, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, ItemDTO{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return DTO{
		ID:             c.ID,
		CustomerID:     c.CustomerID,
		CustomerType:   c.CustomerType,
		ShippingMethod: c.ShippingMethod,
		ShippingAddress: AddressDTO{
			Country: c.ShippingAddress.Country,
			City:    c.ShippingAddress.City,
			Street:  c.ShippingAddress.Street,
		},
		Items: items,
	}
}
