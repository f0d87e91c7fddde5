package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/noah-isme/backend-cart/internal/cart"
	"github.com/noah-isme/backend-cart/internal/common"
)

// ErrDuplicate indicates a cart with the same id already exists.
var ErrDuplicate = errors.New("cart already exists")

const uniqueViolation = "23505"

// CartStore persists carts in postgres. Items are stored as a jsonb document
// since the engine only ever reads them as a whole.
type CartStore struct {
	Pool *pgxpool.Pool
}

// CreateCart inserts a new cart row.
func (s *CartStore) CreateCart(ctx context.Context, c cart.Cart, expiresAt time.Time) error {
	if s == nil || s.Pool == nil {
		return errors.New("cart store not configured")
	}
	items, err := json.Marshal(c.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	_, err = s.Pool.Exec(ctx, `
		INSERT INTO carts (id, customer_id, customer_type, shipping_method, ship_country, ship_city, ship_street, items, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.CustomerID, string(c.CustomerType), string(c.ShippingMethod),
		c.ShippingAddress.Country, c.ShippingAddress.City, c.ShippingAddress.Street,
		items, expiresAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return common.NewAppError("CONFLICT", "cart already exists", http.StatusConflict, ErrDuplicate)
		}
		return err
	}
	return nil
}

// GetCart loads a live cart by id. Expired carts read as not found.
func (s *CartStore) GetCart(ctx context.Context, id string) (cart.Cart, error) {
	if s == nil || s.Pool == nil {
		return cart.Cart{}, errors.New("cart store not configured")
	}
	row := s.Pool.QueryRow(ctx, `
		SELECT id, customer_id, customer_type, shipping_method, ship_country, ship_city, ship_street, items
		FROM carts
		WHERE id = $1 AND expires_at > now()`, id)
	c, err := scanCart(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cart.Cart{}, cart.ErrNotFound
		}
		return cart.Cart{}, err
	}
	return c, nil
}

// ListCarts returns all live carts, oldest first.
func (s *CartStore) ListCarts(ctx context.Context) ([]cart.Cart, error) {
	if s == nil || s.Pool == nil {
		return nil, errors.New("cart store not configured")
	}
	rows, err := s.Pool.Query(ctx, `
		SELECT id, customer_id, customer_type, shipping_method, ship_country, ship_city, ship_street, items
		FROM carts
		WHERE expires_at > now()
		ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	carts := make([]cart.Cart, 0)
	for rows.Next() {
		c, err := scanCart(rows)
		if err != nil {
			return nil, err
		}
		carts = append(carts, c)
	}
	return carts, rows.Err()
}

// SetItems replaces the item list and extends the cart lifetime.
func (s *CartStore) SetItems(ctx context.Context, id string, items []cart.Item, expiresAt time.Time) error {
	if s == nil || s.Pool == nil {
		return errors.New("cart store not configured")
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	tag, err := s.Pool.Exec(ctx, `
		UPDATE carts SET items = $2, expires_at = $3, updated_at = now()
		WHERE id = $1 AND expires_at > now()`, id, encoded, expiresAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return cart.ErrNotFound
	}
	return nil
}

// DeleteCart removes a cart row.
func (s *CartStore) DeleteCart(ctx context.Context, id string) error {
	if s == nil || s.Pool == nil {
		return errors.New("cart store not configured")
	}
	tag, err := s.Pool.Exec(ctx, `DELETE FROM carts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return cart.ErrNotFound
	}
	return nil
}

// DeleteExpired purges carts whose lifetime has passed and reports how many
// rows went away. Used by the background worker.
func (s *CartStore) DeleteExpired(ctx context.Context) (int64, error) {
	if s == nil || s.Pool == nil {
		return 0, errors.New("cart store not configured")
	}
	tag, err := s.Pool.Exec(ctx, `DELETE FROM carts WHERE expires_at <= now()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanCart(row pgx.Row) (cart.Cart, error) {
	var (
		c     cart.Cart
		ctype string
		smeth string
		items []byte
	)
	if err := row.Scan(&c.ID, &c.CustomerID, &ctype, &smeth,
		&c.ShippingAddress.Country, &c.ShippingAddress.City, &c.ShippingAddress.Street, &items); err != nil {
		return cart.Cart{}, err
	}
	c.CustomerType = cart.CustomerType(ctype)
	c.ShippingMethod = cart.ShippingMethod(smeth)
	if len(items) > 0 {
		if err := json.Unmarshal(items, &c.Items); err != nil {
			return cart.Cart{}, fmt.Errorf("decode items: %w", err)
		}
	}
	return c, nil
}
