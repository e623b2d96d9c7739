package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	redisclient "github.com/mohit-1289/martx-backend/pkg/redis"
)

// Repository persists the full ledger as one serialized value per session.
type Repository interface {
	Save(ctx context.Context, sessionID string, items []LineItem) error
	Load(ctx context.Context, sessionID string) ([]LineItem, error)
}

type redisRepository struct {
	kv *redisclient.Client
}

// NewRepository builds the key/value backed cart repository.
func NewRepository(kv *redisclient.Client) (Repository, error) {
	if kv == nil {
		return nil, errors.New("redis client is required")
	}
	return &redisRepository{kv: kv}, nil
}

func (r *redisRepository) Save(ctx context.Context, sessionID string, items []LineItem) error {
	if items == nil {
		items = []LineItem{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}
	return r.kv.Set(ctx, r.kv.CartKey(sessionID), string(payload), 0)
}

func (r *redisRepository) Load(ctx context.Context, sessionID string) ([]LineItem, error) {
	raw, err := r.kv.Get(ctx, r.kv.CartKey(sessionID))
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading cart: %w", err)
	}
	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decoding cart: %w", err)
	}
	return items, nil
}
