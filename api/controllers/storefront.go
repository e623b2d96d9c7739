package controllers

import (
	"net/http"

	"github.com/mohit-1289/martx-backend/api/responses"
	"github.com/mohit-1289/martx-backend/api/validators"
	"github.com/mohit-1289/martx-backend/internal/storefront"
	"github.com/mohit-1289/martx-backend/pkg/logger"
)

type navigateRequest struct {
	Page string `json:"page" validate:"required"`
}

type searchRequest struct {
	Query string `json:"query"`
}

type categoryRequest struct {
	Category string `json:"category"`
}

type quantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// StorefrontSnapshot returns the current view-model without dispatching.
func StorefrontSnapshot(hub *storefront.Hub, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		controller, err := sessionController(r, hub)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, controller.Snapshot())
	}
}

func StorefrontNavigate(hub *storefront.Hub, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req navigateRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := storefront.ParsePage(req.Page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dispatchAndWrite(w, r, hub, logg, storefront.Navigate{Page: page})
	}
}

func StorefrontSearch(hub *storefront.Hub, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dispatchAndWrite(w, r, hub, logg, storefront.Search{Query: req.Query})
	}
}

func StorefrontCategory(hub *storefront.Hub, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req categoryRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dispatchAndWrite(w, r, hub, logg, storefront.SelectCategory{Category: req.Category})
	}
}

// StorefrontQuantity nudges the product-detail quantity selector.
func StorefrontQuantity(hub *storefront.Hub, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req quantityRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dispatchAndWrite(w, r, hub, logg, storefront.ChangeQuantity{Delta: req.Delta})
	}
}

func dispatchAndWrite(w http.ResponseWriter, r *http.Request, hub *storefront.Hub, logg *logger.Logger, cmd storefront.Command) {
	controller, err := sessionController(r, hub)
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return
	}

	snapshot, err := controller.Dispatch(r.Context(), cmd)
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return
	}
	responses.WriteSuccess(w, snapshot)
}
