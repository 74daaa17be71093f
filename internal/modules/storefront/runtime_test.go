package storefront

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tarimvitrin.com/app/internal/modules/products"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) List(ctx context.Context) ([]products.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]products.Product)
	return items, args.Error(1)
}

func (m *MockStore) Insert(ctx context.Context, f products.Fields) (products.Product, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(products.Product), args.Error(1)
}

func (m *MockStore) Update(ctx context.Context, id string, f products.Fields) (products.Product, error) {
	args := m.Called(ctx, id, f)
	return args.Get(0).(products.Product), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type countingObserver struct{ names []string }

func (o *countingObserver) RecordViewEvent(name string) { o.names = append(o.names, name) }

func TestRuntime_UpdateWithEmptyIDNeverCallsStore(t *testing.T) {
	store := new(MockStore)
	rt := NewRuntime(store, quietLogger())

	s := rt.Dispatch(context.Background(), NewState(), UpdateRequested{Draft: validDraft()})

	require.NotNil(t, s.Notice)
	assert.Equal(t, MsgSelectForEdit, s.Notice.Message)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	store.AssertExpectations(t)
}

func TestRuntime_MountLoadFailureTolerated(t *testing.T) {
	store := new(MockStore)
	store.On("List", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	rt := NewRuntime(store, quietLogger())
	s := rt.Dispatch(context.Background(), NewState(), Mounted{})

	assert.Empty(t, s.Products)
	assert.False(t, s.Loaded)
	assert.Nil(t, s.Notice)
	store.AssertExpectations(t)
}

func TestRuntime_CreateThenReload(t *testing.T) {
	ctx := context.Background()
	store := products.NewMemoryStore()
	obs := &countingObserver{}
	rt := NewRuntime(store, quietLogger()).WithObserver(obs)

	s := rt.Dispatch(ctx, NewState(), Mounted{})
	require.True(t, s.Loaded)
	require.Empty(t, s.Products)

	d := validDraft()
	d.Description = "açıklama"
	d.ImageURL = "https://cdn/x.png"
	s = rt.Dispatch(ctx, s, DraftSubmitted{Draft: d})

	require.Len(t, s.Products, 1)
	got := s.Products[0]
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, d.Fields(), got.Fields())
	assert.Equal(t, DefaultDraft(), s.Draft)
	assert.Equal(t, MsgCreated, s.Notice.Message)

	assert.Equal(t, []string{"mounted", "loaded", "draft_submitted", "mutation_succeeded", "loaded"}, obs.names)
}

func TestRuntime_UpdateRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := products.NewMemoryStore(
		products.Product{ID: "1", Name: "Gübre A", Category: "Katı Ürünler", Price: 150, Description: "toz"},
	)
	rt := NewRuntime(store, quietLogger())

	s := rt.Dispatch(ctx, NewState(), Mounted{})
	s = rt.Dispatch(ctx, s, EditStarted{ID: "1"})

	d := s.Draft
	d.Price = "175"
	s = rt.Dispatch(ctx, s, DraftSubmitted{Draft: d})

	require.Len(t, s.Products, 1)
	assert.Equal(t, 175.0, s.Products[0].Price)
	assert.Equal(t, "Gübre A", s.Products[0].Name)
	assert.Equal(t, "toz", s.Products[0].Description)
	assert.Equal(t, "Katı Ürünler", s.Products[0].Category)
	assert.False(t, s.Draft.EditMode())
}

func TestRuntime_MutationFailureKeepsDraftAndList(t *testing.T) {
	store := new(MockStore)
	store.On("Insert", mock.Anything, mock.Anything).
		Return(products.Product{}, &products.StoreError{Op: "insert", Message: "permission denied for table products"}).Once()

	rt := NewRuntime(store, quietLogger())
	start := loadedState()
	d := validDraft()

	s := rt.Dispatch(context.Background(), start, DraftSubmitted{Draft: d})

	assert.Equal(t, d, s.Draft)
	assert.Equal(t, start.Products, s.Products)
	require.NotNil(t, s.Notice)
	assert.Equal(t, "permission denied for table products", s.Notice.Message)
	store.AssertNotCalled(t, "List", mock.Anything)
	store.AssertExpectations(t)
}

func TestRuntime_DoubleDeleteStaysStable(t *testing.T) {
	ctx := context.Background()
	store := products.NewMemoryStore(
		products.Product{ID: "1", Name: "Gübre A", Category: "Katı Ürünler"},
		products.Product{ID: "2", Name: "Sprey B", Category: "Sıvı Ürünler"},
	)
	rt := NewRuntime(store, quietLogger())

	s := rt.Dispatch(ctx, NewState(), Mounted{})
	s = rt.Dispatch(ctx, s, DeleteRequested{ID: "1", Confirmed: true})
	require.Len(t, s.Products, 1)
	assert.Equal(t, MsgDeleted, s.TakeNotice().Message)

	before := s.Products
	s = rt.Dispatch(ctx, s, DeleteRequested{ID: "1", Confirmed: true})

	assert.Equal(t, before, s.Products)
	require.NotNil(t, s.Notice)
	assert.Equal(t, NoticeError, s.Notice.Kind)
	assert.Equal(t, products.ErrNotFound.Error(), s.Notice.Message)
}

func TestRuntime_UnconfirmedDeleteDoesNotCallStore(t *testing.T) {
	store := new(MockStore)
	rt := NewRuntime(store, quietLogger())

	s := rt.Dispatch(context.Background(), loadedState(), DeleteRequested{ID: "1"})

	assert.Len(t, s.Products, 2)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
