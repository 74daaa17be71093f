package products

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps records in process memory. Used for local development
// and tests.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]Product
	now   func() time.Time
}

func NewMemoryStore(seed ...Product) *MemoryStore {
	s := &MemoryStore{items: make(map[string]Product, len(seed)), now: time.Now}
	for _, p := range seed {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = s.now()
		}
		s.items[p.ID] = p
	}
	return s
}

func (s *MemoryStore) List(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.items))
	for _, p := range s.items {
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) Insert(ctx context.Context, f Fields) (Product, error) {
	if err := ctx.Err(); err != nil {
		return Product{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Product{
		ID:          uuid.NewString(),
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		ImageURL:    f.ImageURL,
		Category:    f.Category,
		CreatedAt:   s.now(),
	}
	s.items[p.ID] = p
	return p, nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, f Fields) (Product, error) {
	if err := ctx.Err(); err != nil {
		return Product{}, err
	}
	if id == "" {
		return Product{}, ErrMissingID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.items[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	p.Name = f.Name
	p.Description = f.Description
	p.Price = f.Price
	p.ImageURL = f.ImageURL
	p.Category = f.Category
	s.items[id] = p
	return p, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if id == "" {
		return ErrMissingID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}

// SetClock replaces the clock used for creation timestamps.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}
