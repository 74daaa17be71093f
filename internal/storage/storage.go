package storage

import (
	"context"
	"errors"

	"tarimvitrin.com/app/internal/modules/storefront"
)

var ErrNotFound = errors.New("view state not found")

// StateStore keeps each browser's catalog view state between requests.
type StateStore interface {
	Get(ctx context.Context, sessionID string) (storefront.State, error)
	Save(ctx context.Context, sessionID string, st storefront.State) error
	Delete(ctx context.Context, sessionID string) error
}
