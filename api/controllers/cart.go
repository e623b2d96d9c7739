package controllers

import (
	"net/http"

	"github.com/mohit-1289/martx-backend/api/responses"
	"github.com/mohit-1289/martx-backend/api/validators"
	"github.com/mohit-1289/martx-backend/internal/storefront"
	"github.com/mohit-1289/martx-backend/pkg/logger"
)

type addItemRequest struct {
	ProductID int `json:"productId" validate:"required,min=1"`
	Quantity  int `json:"quantity" validate:"omitempty,min=1"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// CartAddItem adds quantity of a product, accumulating onto existing lines.
func CartAddItem(hub *storefront.Hub, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dispatchAndWrite(w, r, hub, logg, storefront.AddToCart{
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
		})
	}
}

// CartSetQuantity sets an exact line quantity; zero removes the line.
func CartSetQuantity(hub *storefront.Hub, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req setQuantityRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dispatchAndWrite(w, r, hub, logg, storefront.SetQuantity{
			ProductID: productID,
			Quantity:  req.Quantity,
		})
	}
}

// CartRemoveItem deletes a line; removing an absent line is not an error.
func CartRemoveItem(hub *storefront.Hub, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dispatchAndWrite(w, r, hub, logg, storefront.RemoveFromCart{ProductID: productID})
	}
}
