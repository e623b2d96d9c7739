package controllers

import (
	"net/http"

	"github.com/mohit-1289/martx-backend/internal/storefront"
	"github.com/mohit-1289/martx-backend/pkg/logger"
)

// ThemeToggle flips the session's light/dark preference.
func ThemeToggle(hub *storefront.Hub, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dispatchAndWrite(w, r, hub, logg, storefront.ToggleTheme{})
	}
}
