package theme

import (
	"context"
	"errors"
	"time"
)

const (
	Light = "light"
	Dark  = "dark"
)

// Store is the key/value surface the theme preference persists through.
// *redis.Client satisfies it.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	ThemeKey(sessionID string) string
}

// Service persists the per-session light/dark preference.
type Service interface {
	// Get returns the stored preference, defaulting to light.
	Get(ctx context.Context, sessionID string) string
	// Toggle flips the preference, persists it, and returns the new value.
	// The returned theme is the flipped value even when persistence fails.
	Toggle(ctx context.Context, sessionID string) (string, error)
}

type service struct {
	kv Store
}

// NewService builds the theme service over the shared key/value store.
func NewService(kv Store) (Service, error) {
	if kv == nil {
		return nil, errors.New("theme store is required")
	}
	return &service{kv: kv}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) string {
	value, err := s.kv.Get(ctx, s.kv.ThemeKey(sessionID))
	if err != nil || (value != Light && value != Dark) {
		return Light
	}
	return value
}

func (s *service) Toggle(ctx context.Context, sessionID string) (string, error) {
	next := Dark
	if s.Get(ctx, sessionID) == Dark {
		next = Light
	}
	if err := s.kv.Set(ctx, s.kv.ThemeKey(sessionID), next, 0); err != nil {
		return next, err
	}
	return next, nil
}
