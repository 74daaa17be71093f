package products

import (
	"context"
	"errors"
	"fmt"
)

// Store is the external record store holding the product collection.
type Store interface {
	// List returns the whole collection, newest first.
	List(ctx context.Context) ([]Product, error)
	// Insert creates a record; the store assigns its ID and creation time.
	Insert(ctx context.Context, f Fields) (Product, error)
	// Update replaces the editable fields of the record with the given ID.
	Update(ctx context.Context, id string, f Fields) (Product, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrNotFound  = errors.New("ürün bulunamadı")
	ErrMissingID = errors.New("ürün kimliği boş")
)

// StoreError carries a message reported by the store. The message is meant
// to be shown to the user as is.
type StoreError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s failed", e.Op)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Message returns the text to show the user for a store failure.
func Message(err error) string {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
