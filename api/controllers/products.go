package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/buyyourkawa/kawa-backend/api/responses"
	"github.com/buyyourkawa/kawa-backend/api/validators"
	"github.com/buyyourkawa/kawa-backend/internal/catalog"
	"github.com/buyyourkawa/kawa-backend/pkg/enums"
	pkgerrors "github.com/buyyourkawa/kawa-backend/pkg/errors"
	"github.com/buyyourkawa/kawa-backend/pkg/logger"
)

// CreateProduct adds a menu item to the catalog.
func CreateProduct(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		var payload catalog.ProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := enums.ParseProductCategory(strings.TrimSpace(payload.Category))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category"))
			return
		}

		product, err := store.Create(r.Context(), payload.Model(category))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// GetProduct returns one menu item by id.
func GetProduct(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "productID"), "product_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := store.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// UpdateProduct overwrites the catalog-management fields of a menu item.
// Stock is adjusted through the dedicated stock endpoint.
func UpdateProduct(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "productID"), "product_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload catalog.ProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := enums.ParseProductCategory(strings.TrimSpace(payload.Category))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category"))
			return
		}

		product, err := store.Update(r.Context(), id, payload.Fields(category))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

type stockAdjustmentRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// AdjustProductStock applies a manual restock or correction delta.
func AdjustProductStock(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "productID"), "product_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload stockAdjustmentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := store.AdjustStock(r.Context(), id, payload.Delta)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// ListProducts returns the menu, optionally filtered by category and
// availability.
func ListProducts(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter catalog.ListFilter

		if raw := strings.TrimSpace(r.URL.Query().Get("category")); raw != "" {
			category, err := enums.ParseProductCategory(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category"))
				return
			}
			filter.Category = &category
		}
		// The menu hides unavailable items unless explicitly asked for them.
		filter.AvailableOnly = true
		if raw := strings.TrimSpace(r.URL.Query().Get("available_only")); raw != "" {
			filter.AvailableOnly = !strings.EqualFold(raw, "false")
		}

		products, err := store.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, products)
	}
}
