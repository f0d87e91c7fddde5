package checkout

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noah-isme/backend-cart/internal/cart"
	"github.com/noah-isme/backend-cart/internal/common"
	"github.com/noah-isme/backend-cart/internal/obs"
)

// CartGetter loads carts for checkout.
type CartGetter interface {
	Get(ctx context.Context, id string) (cart.Cart, error)
}

// Handler wires the checkout engine to HTTP.
type Handler struct {
	Carts  CartGetter
	Engine *Engine
}

// Checkout runs the engine over a stored cart and returns the totals.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	if h.Carts == nil || h.Engine == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "checkout not configured", nil)
		return
	}
	c, err := h.Carts.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	result := h.Engine.CalculateTotals(c)
	obs.ObserveCheckout(string(c.CustomerType), "ok")
	common.JSONData(w, http.StatusOK, result)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cart.ErrNotFound):
		obs.ObserveCheckout("", "not_found")
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "cart not found", nil)
	case errors.Is(err, cart.ErrInvalidInput):
		obs.ObserveCheckout("", "bad_request")
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid cart id", nil)
	default:
		obs.ObserveCheckout("", "error")
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unable to load cart", nil)
	}
}
