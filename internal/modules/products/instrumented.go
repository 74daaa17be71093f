package products

import (
	"context"
	"errors"
	"time"
)

// OpRecorder receives one observation per store call.
type OpRecorder interface {
	RecordStoreOperation(op, status string, d time.Duration)
}

// Instrumented wraps a Store and reports every call to rec.
type Instrumented struct {
	next Store
	rec  OpRecorder
}

func NewInstrumented(next Store, rec OpRecorder) *Instrumented {
	return &Instrumented{next: next, rec: rec}
}

func (s *Instrumented) List(ctx context.Context) ([]Product, error) {
	start := time.Now()
	items, err := s.next.List(ctx)
	s.observe("list", start, err)
	return items, err
}

func (s *Instrumented) Insert(ctx context.Context, f Fields) (Product, error) {
	start := time.Now()
	p, err := s.next.Insert(ctx, f)
	s.observe("insert", start, err)
	return p, err
}

func (s *Instrumented) Update(ctx context.Context, id string, f Fields) (Product, error) {
	start := time.Now()
	p, err := s.next.Update(ctx, id, f)
	s.observe("update", start, err)
	return p, err
}

func (s *Instrumented) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.next.Delete(ctx, id)
	s.observe("delete", start, err)
	return err
}

func (s *Instrumented) observe(op string, start time.Time, err error) {
	status := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		status = "not_found"
	default:
		status = "error"
	}
	s.rec.RecordStoreOperation(op, status, time.Since(start))
}
