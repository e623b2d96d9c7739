package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mohit-1289/martx-backend/api/responses"
	"github.com/mohit-1289/martx-backend/internal/catalog"
	"github.com/mohit-1289/martx-backend/internal/storefront"
	pkgerrors "github.com/mohit-1289/martx-backend/pkg/errors"
	"github.com/mohit-1289/martx-backend/pkg/logger"
)

// ProductsList serves the shared catalog, loading it on first use.
func ProductsList(catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !catalogSvc.Loaded() {
			if err := catalogSvc.Load(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}
		responses.WriteSuccess(w, catalogSvc.Products())
	}
}

// ProductsCategories serves the distinct category list in catalog order.
func ProductsCategories(catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !catalogSvc.Loaded() {
			if err := catalogSvc.Load(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}
		responses.WriteSuccess(w, catalogSvc.Categories())
	}
}

// ProductView dispatches the detail-page transition for the session.
func ProductView(hub *storefront.Hub, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dispatchAndWrite(w, r, hub, logg, storefront.ViewProduct{ProductID: productID})
	}
}

func productIDParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "product id must be a positive integer")
	}
	return id, nil
}
