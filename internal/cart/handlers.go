package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"

	"github.com/noah-isme/backend-cart/internal/common"
	"github.com/noah-isme/backend-cart/internal/obs"
)

// Handler wires the cart service to HTTP.
type Handler struct {
	Svc      *Service
	Validate *validator.Validate
}

type addressPayload struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Street  string `json:"street"`
}

type itemPayload struct {
	ProductID   string  `json:"productId" validate:"required"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	Price       float64 `json:"price" validate:"gte=0"`
}

type createCartPayload struct {
	CustomerID      string         `json:"customerId" validate:"required"`
	CustomerType    string         `json:"customerType" validate:"required"`
	ShippingMethod  string         `json:"shippingMethod" validate:"required"`
	ShippingAddress addressPayload `json:"shippingAddress"`
	Items           []itemPayload  `json:"items" validate:"dive"`
}

// Create opens a new cart.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "cart service not configured", nil)
		return
	}
	var payload createCartPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json payload", nil)
		return
	}
	if err := h.validate(payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", err.Error())
		return
	}
	items := make([]ItemInput, 0, len(payload.Items))
	for _, it := range payload.Items {
		items = append(items, ItemInput{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	c, err := h.Svc.Create(r.Context(), CreateInput{
		CustomerID:     payload.CustomerID,
		CustomerType:   payload.CustomerType,
		ShippingMethod: payload.ShippingMethod,
		ShippingAddress: Address{
			Country: payload.ShippingAddress.Country,
			City:    payload.ShippingAddress.City,
			Street:  payload.ShippingAddress.Street,
		},
		Items: items,
	})
	if err != nil {
		obs.ObserveCartWrite("create", "fail")
		h.writeError(w, err)
		return
	}
	obs.ObserveCartWrite("create", "ok")
	common.JSONData(w, http.StatusCreated, ToDTO(c))
}

// List returns all live carts.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "cart service not configured", nil)
		return
	}
	carts, err := h.Svc.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	dtos := make([]DTO, 0, len(carts))
	for _, c := range carts {
		dtos = append(dtos, ToDTO(c))
	}
	common.JSONData(w, http.StatusOK, dtos)
}

// Get returns one cart by id.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "cart service not configured", nil)
		return
	}
	c, err := h.Svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSONData(w, http.StatusOK, ToDTO(c))
}

// Delete removes a cart.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "cart service not configured", nil)
		return
	}
	if err := h.Svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		obs.ObserveCartWrite("delete", "fail")
		h.writeError(w, err)
		return
	}
	obs.ObserveCartWrite("delete", "ok")
	w.WriteHeader(http.StatusNoContent)
}

// AddItem appends or merges a line item.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "cart service not configured", nil)
		return
	}
	var payload itemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json payload", nil)
		return
	}
	if err := h.validate(payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", err.Error())
		return
	}
	c, err := h.Svc.AddItem(r.Context(), chi.URLParam(r, "id"), ItemInput{
		ProductID:   payload.ProductID,
		ProductName: payload.ProductName,
		Quantity:    payload.Quantity,
		Price:       payload.Price,
	})
	if err != nil {
		obs.ObserveCartWrite("add_item", "fail")
		h.writeError(w, err)
		return
	}
	obs.ObserveCartWrite("add_item", "ok")
	common.JSONData(w, http.StatusOK, ToDTO(c))
}

// RemoveItem drops a line item by product id.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "cart service not configured", nil)
		return
	}
	c, err := h.Svc.RemoveItem(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "productId"))
	if err != nil {
		obs.ObserveCartWrite("remove_item", "fail")
		h.writeError(w, err)
		return
	}
	obs.ObserveCartWrite("remove_item", "ok")
	common.JSONData(w, http.StatusOK, ToDTO(c))
}

func (h *Handler) validate(v any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(v)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var appErr *common.AppError
	switch {
	case errors.As(err, &appErr):
		common.JSONAppError(w, appErr)
	case errors.Is(err, ErrNotFound):
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "cart not found", nil)
	case errors.Is(err, ErrItemNotFound):
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "cart item not found", nil)
	case errors.Is(err, ErrInvalidAddress):
		common.JSONError(w, http.StatusBadRequest, "INVALID_ADDRESS", "shipping address is incomplete", nil)
	case errors.Is(err, ErrInvalidInput):
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
	default:
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unexpected error", nil)
	}
}
