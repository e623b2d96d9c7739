package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/mohit-1289/martx-backend/api/middleware"
	"github.com/mohit-1289/martx-backend/internal/storefront"
	pkgerrors "github.com/mohit-1289/martx-backend/pkg/errors"
)

// sessionController resolves the per-session storefront controller from the
// request context. The session middleware guarantees an id is present.
func sessionController(r *http.Request, hub *storefront.Hub) (*storefront.Controller, error) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "missing session")
	}
	return hub.Session(r.Context(), sessionID)
}

func newTimeoutContext(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), timeout)
}
