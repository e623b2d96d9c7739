package controllers

import (
	"net/http"

	"github.com/mohit-1289/martx-backend/api/responses"
	"github.com/mohit-1289/martx-backend/api/validators"
	"github.com/mohit-1289/martx-backend/internal/orders"
	"github.com/mohit-1289/martx-backend/internal/storefront"
	"github.com/mohit-1289/martx-backend/pkg/logger"
)

// CheckoutSubmit runs the checkout reducer. Presence validation happens in
// the order assembler so missing-field reporting stays in one place; the
// request body is decoded without extra field rules here.
func CheckoutSubmit(hub *storefront.Hub, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form orders.CheckoutForm
		if err := validators.DecodeJSONBody(r, &form); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dispatchAndWrite(w, r, hub, logg, storefront.SubmitCheckout{Form: form})
	}
}
