package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Store is the persistence surface the cart service depends on. Reads must
// treat expired carts as absent.
type Store interface {
	CreateCart(ctx context.Context, c Cart, expiresAt time.Time) error
	GetCart(ctx context.Context, id string) (Cart, error)
	ListCarts(ctx context.Context) ([]Cart, error)
	SetItems(ctx context.Context, id string, items []Item, expiresAt time.Time) error
	DeleteCart(ctx context.Context, id string) error
}

// CreateInput carries the fields needed to open a cart.
type CreateInput struct {
	CustomerID      string
	CustomerType    string
	ShippingMethod  string
	ShippingAddress Address
	Items           []ItemInput
}

// ItemInput carries one line item from the caller.
type ItemInput struct {
	ProductID   string
	ProductName string
	Quantity    int
	Price       float64
}

// Service encapsulates cart domain operations.
type Service struct {
	Store     Store
	Validator AddressValidator
	TTL       time.Duration
	Now       func() time.Time
}

func (s *Service) ttl() time.Duration {
	if s == nil || s.TTL <= 0 {
		return 7 * 24 * time.Hour
	}
	return s.TTL
}

func (s *Service) now() time.Time {
	if s != nil && s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create validates the input and persists a new cart.
func (s *Service) Create(ctx context.Context, in CreateInput) (Cart, error) {
	if s == nil || s.Store == nil {
		return Cart{}, errors.New("cart service not configured")
	}
	if in.CustomerID == "" {
		return Cart{}, fmt.Errorf("customerId is required: %w", ErrInvalidInput)
	}
	customerType, err := ParseCustomerType(in.CustomerType)
	if err != nil {
		return Cart{}, err
	}
	method, err := ParseShippingMethod(in.ShippingMethod)
	if err != nil {
		return Cart{}, err
	}
	address := in.ShippingAddress
	if !s.Validator.IsValid(&address) {
		return Cart{}, ErrInvalidAddress
	}
	items, err := buildItems(in.Items)
	if err != nil {
		return Cart{}, err
	}
	c := Cart{
		ID:              uuid.NewString(),
		CustomerID:      in.CustomerID,
		CustomerType:    customerType,
		ShippingMethod:  method,
		ShippingAddress: address,
		Items:           items,
	}
	if err := s.Store.CreateCart(ctx, c, s.now().Add(s.ttl())); err != nil {
		return Cart{}, err
	}
	return c, nil
}

// Get loads a live cart by id.
func (s *Service) Get(ctx context.Context, id string) (Cart, error) {
	if s == nil || s.Store == nil {
		return Cart{}, errors.New("cart service not configured")
	}
	if _, err := uuid.Parse(id); err != nil {
		return Cart{}, fmt.Errorf("parse cart id: %w", ErrInvalidInput)
	}
	return s.Store.GetCart(ctx, id)
}

// List returns all live carts.
func (s *Service) List(ctx context.Context) ([]Cart, error) {
	if s == nil || s.Store == nil {
		return nil, errors.New("cart service not configured")
	}
	return s.Store.ListCarts(ctx)
}

// Delete removes a cart.
func (s *Service) Delete(ctx context.Context, id string) error {
	if s == nil || s.Store == nil {
		return errors.New("cart service not configured")
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("parse cart id: %w", ErrInvalidInput)
	}
	return s.Store.DeleteCart(ctx, id)
}

// AddItem inserts a line or increments quantity when the product is present.
func (s *Service) AddItem(ctx context.Context, cartID string, in ItemInput) (Cart, error) {
	if s == nil || s.Store == nil {
		return Cart{}, errors.New("cart service not configured")
	}
	if in.ProductID == "" {
		return Cart{}, fmt.Errorf("productId is required: %w", ErrInvalidInput)
	}
	if in.Quantity < 0 || in.Price < 0 {
		return Cart{}, fmt.Errorf("quantity and price must be non-negative: %w", ErrInvalidInput)
	}
	c, err := s.Get(ctx, cartID)
	if err != nil {
		return Cart{}, err
	}
	merged := false
	for i := range c.Items {
		if c.Items[i].ProductID == in.ProductID {
			c.Items[i].Quantity += in.Quantity
			merged = true
			break
		}
	}
	if !merged {
		c.Items = append(c.Items, Item{
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			Quantity:    in.Quantity,
			Price:       in.Price,
		})
	}
	if err := s.Store.SetItems(ctx, c.ID, c.Items, s.now().Add(s.ttl())); err != nil {
		return Cart{}, err
	}
	return c, nil
}

// RemoveItem drops a line by product id.
func (s *Service) RemoveItem(ctx context.Context, cartID, productID string) (Cart, error) {
	if s == nil || s.Store == nil {
		return Cart{}, errors.New("cart service not configured")
	}
	c, err := s.Get(ctx, cartID)
	if err != nil {
		return Cart{}, err
	}
	kept := make([]Item, 0, len(c.Items))
	found := false
	for _, it := range c.Items {
		if it.ProductID == productID {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return Cart{}, ErrItemNotFound
	}
	c.Items = kept
	if err := s.Store.SetItems(ctx, c.ID, c.Items, s.now().Add(s.ttl())); err != nil {
		return Cart{}, err
	}
	return c, nil
}

func buildItems(inputs []ItemInput) ([]Item, error) {
	items := make([]Item, 0, len(inputs))
	for _, in := range inputs {
		if in.ProductID == "" {
			return nil, fmt.Errorf("productId is required: %w", ErrInvalidInput)
		}
		if in.Quantity < 0 || in.Price < 0 {
			return nil, fmt.Errorf("quantity and price must be non-negative: %w", ErrInvalidInput)
		}
		items = append(items, Item{
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			Quantity:    in.Quantity,
			Price:       in.Price,
		})
	}
	return items, nil
}
