package store

import (
	"context"
	"time"

	"github.com/noah-isme/backend-cart/internal/cart"
)

// CachedCarts fronts a CartStore with a read-through Redis cache. Writes
// invalidate; only single-cart reads are cached since the list endpoint is
// an admin surface.
type CachedCarts struct {
	Store *CartStore
	Cache *Cache
}

func cacheKey(id string) string {
	return "cart:" + id
}

// CreateCart inserts the cart and primes the cache.
func (s *CachedCarts) CreateCart(ctx context.Context, c cart.Cart, expiresAt time.Time) error {
	if err := s.Store.CreateCart(ctx, c, expiresAt); err != nil {
		return err
	}
	_ = s.Cache.SetJSON(ctx, cacheKey(c.ID), c)
	return nil
}

// GetCart serves from cache when possible.
func (s *CachedCarts) GetCart(ctx context.Context, id string) (cart.Cart, error) {
	var cached cart.Cart
	if ok, err := s.Cache.GetJSON(ctx, cacheKey(id), &cached); err == nil && ok {
		return cached, nil
	}
	c, err := s.Store.GetCart(ctx, id)
	if err != nil {
		return cart.Cart{}, err
	}
	_ = s.Cache.SetJSON(ctx, cacheKey(id), c)
	return c, nil
}

// ListCarts always hits postgres.
func (s *CachedCarts) ListCarts(ctx context.Context) ([]cart.Cart, error) {
	return s.Store.ListCarts(ctx)
}

// SetItems writes through and invalidates.
func (s *CachedCarts) SetItems(ctx context.Context, id string, items []cart.Item, expiresAt time.Time) error {
	if err := s.Store.SetItems(ctx, id, items, expiresAt); err != nil {
		return err
	}
	_ = s.Cache.Delete(ctx, cacheKey(id))
	return nil
}

// DeleteCart removes the row and the cache entry.
func (s *CachedCarts) DeleteCart(ctx context.Context, id string) error {
	if err := s.Store.DeleteCart(ctx, id); err != nil {
		return err
	}
	_ = s.Cache.Delete(ctx, cacheKey(id))
	return nil
}
