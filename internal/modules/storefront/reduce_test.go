package storefront

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarimvitrin.com/app/internal/modules/products"
)

func loadedState() State {
	s := NewState()
	s, _ = Reduce(s, Loaded{Products: []products.Product{
		{ID: "1", Name: "Gübre A", Category: "Katı Ürünler", Price: 150, Description: "toz"},
		{ID: "2", Name: "Sprey B", Category: "Sıvı Ürünler", Price: 80},
	}})
	return s
}

func validDraft() Draft {
	return Draft{Name: "Yeni", Price: "42", Category: "Damlama Ürünleri"}
}

func TestReduce_MountLoads(t *testing.T) {
	_, eff := Reduce(NewState(), Mounted{})
	assert.Equal(t, EffectLoad, eff.Kind)

	_, eff = Reduce(NewState(), ReloadRequested{})
	assert.Equal(t, EffectLoad, eff.Kind)
}

func TestReduce_LoadFailureKeepsList(t *testing.T) {
	s := loadedState()
	next, eff := Reduce(s, Loaded{Err: errors.New("boom")})

	assert.Equal(t, EffectNone, eff.Kind)
	assert.Equal(t, s.Products, next.Products)
	assert.Nil(t, next.Notice)

	first, _ := Reduce(NewState(), Loaded{Err: errors.New("boom")})
	assert.Empty(t, first.Products)
	assert.False(t, first.Loaded)
}

func TestReduce_QueryDrivesDerivedViews(t *testing.T) {
	s, _ := Reduce(loadedState(), QueryChanged{Query: "gübre"})

	require.Len(t, s.Filtered(), 1)
	assert.Equal(t, "1", s.Filtered()[0].ID)

	buckets := s.Buckets()
	assert.Equal(t, 1, buckets[0].Count())
	assert.Equal(t, 0, buckets[1].Count())

	s, _ = Reduce(s, QueryChanged{Query: ""})
	assert.Len(t, s.Filtered(), 2)
}

func TestReduce_ModalIsSnapshot(t *testing.T) {
	s, _ := Reduce(loadedState(), CardSelected{ID: "1"})
	require.True(t, s.Modal.Visible())
	assert.Equal(t, 150.0, s.Modal.Product.Price)

	s, _ = Reduce(s, Loaded{Products: []products.Product{
		{ID: "1", Name: "Gübre A", Category: "Katı Ürünler", Price: 999},
	}})
	assert.Equal(t, 150.0, s.Modal.Product.Price)

	s, _ = Reduce(s, ModalClosed{})
	assert.False(t, s.Modal.Visible())

	s, _ = Reduce(s, CardSelected{ID: "missing"})
	assert.False(t, s.Modal.Visible())
}

func TestReduce_AdminToggleIndependentOfModal(t *testing.T) {
	s, _ := Reduce(loadedState(), AdminToggled{})
	assert.True(t, s.AdminOpen)
	assert.False(t, s.Modal.Open)

	s, _ = Reduce(s, CardSelected{ID: "2"})
	assert.True(t, s.AdminOpen)

	s, _ = Reduce(s, AdminToggled{})
	assert.False(t, s.AdminOpen)
	assert.True(t, s.Modal.Open)

	s.AdminOpen = true
	s, _ = Reduce(s, AdminClosed{})
	assert.False(t, s.AdminOpen)
}

func TestReduce_EditSeed(t *testing.T) {
	s, eff := Reduce(loadedState(), EditStarted{ID: "1"})

	assert.Equal(t, EffectNone, eff.Kind)
	assert.True(t, s.AdminOpen)
	assert.Equal(t, Draft{
		ID: "1", Name: "Gübre A", Description: "toz", Price: "150", Category: "Katı Ürünler",
	}, s.Draft)
	assert.True(t, s.Draft.EditMode())

	s, _ = Reduce(s, DraftReset{})
	assert.Equal(t, DefaultDraft(), s.Draft)

	s, _ = Reduce(s, EditStarted{ID: "missing"})
	require.NotNil(t, s.Notice)
	assert.Equal(t, NoticeError, s.Notice.Kind)
}

func TestReduce_CreateEmitsInsert(t *testing.T) {
	d := validDraft()
	d.Price = "abc"
	d.Name = "  Yeni  "

	s, eff := Reduce(loadedState(), DraftSubmitted{Draft: d})

	require.Equal(t, EffectInsert, eff.Kind)
	assert.Empty(t, eff.ID)
	assert.Equal(t, products.Fields{Name: "Yeni", Price: 0, Category: "Damlama Ürünleri"}, eff.Fields)
	assert.Nil(t, s.Notice)
}

func TestReduce_ValidationBlocksSubmit(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		field string
	}{
		{"blank name", Draft{Name: "  ", Category: "Katı Ürünler"}, "İsim"},
		{"blank category", Draft{Name: "x"}, "Kategori"},
		{"unknown category", Draft{Name: "x", Category: "Tohum"}, "Kategori"},
		{"catch-all category", Draft{Name: "x", Category: "Diğer"}, "Kategori"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, eff := Reduce(loadedState(), DraftSubmitted{Draft: tt.draft})

			assert.Equal(t, EffectNone, eff.Kind)
			require.NotNil(t, s.Notice)
			assert.Equal(t, NoticeError, s.Notice.Kind)
			assert.Contains(t, s.Notice.Fields, tt.field)
			assert.Equal(t, tt.draft, s.Draft)
		})
	}
}

func TestReduce_UpdateWithoutIDIsRejected(t *testing.T) {
	s, eff := Reduce(loadedState(), UpdateRequested{Draft: validDraft()})

	assert.Equal(t, EffectNone, eff.Kind)
	require.NotNil(t, s.Notice)
	assert.Equal(t, MsgSelectForEdit, s.Notice.Message)
}

func TestReduce_SubmitWithIDUpdates(t *testing.T) {
	s, _ := Reduce(loadedState(), EditStarted{ID: "2"})
	d := s.Draft
	d.Price = "95.5"

	_, eff := Reduce(s, DraftSubmitted{Draft: d})
	require.Equal(t, EffectUpdate, eff.Kind)
	assert.Equal(t, "2", eff.ID)
	assert.Equal(t, 95.5, eff.Fields.Price)
	assert.Equal(t, "Sprey B", eff.Fields.Name)
}

func TestReduce_Delete(t *testing.T) {
	s := loadedState()

	next, eff := Reduce(s, DeleteRequested{ID: "2"})
	assert.Equal(t, EffectNone, eff.Kind)
	require.NotNil(t, next.Notice)
	assert.Equal(t, MsgConfirmDelete, next.Notice.Message)

	next, eff = Reduce(s, DeleteRequested{ID: "", Confirmed: true})
	assert.Equal(t, EffectNone, eff.Kind)
	assert.Equal(t, MsgSelectForDelete, next.Notice.Message)

	next, eff = Reduce(s, DeleteRequested{ID: "2", Confirmed: true})
	assert.Equal(t, Effect{Kind: EffectDelete, ID: "2"}, eff)
	assert.Equal(t, s.Products, next.Products)
}

func TestReduce_DeleteOfDraftRecordResetsDraft(t *testing.T) {
	s, _ := Reduce(loadedState(), EditStarted{ID: "1"})
	s, _ = Reduce(s, DeleteRequested{ID: "1", Confirmed: true})
	assert.Equal(t, DefaultDraft(), s.Draft)

	s, _ = Reduce(loadedState(), EditStarted{ID: "1"})
	s, _ = Reduce(s, DeleteRequested{ID: "2", Confirmed: true})
	assert.Equal(t, "1", s.Draft.ID)
}

func TestReduce_MutationOutcomes(t *testing.T) {
	s := loadedState()
	s.Draft = validDraft()

	ok, eff := Reduce(s, MutationSucceeded{Op: EffectInsert})
	assert.Equal(t, EffectLoad, eff.Kind)
	assert.Equal(t, DefaultDraft(), ok.Draft)
	assert.Equal(t, MsgCreated, ok.Notice.Message)

	failed, eff := Reduce(s, MutationFailed{Op: EffectInsert, Err: &products.StoreError{Message: "duplicate key"}})
	assert.Equal(t, EffectNone, eff.Kind)
	assert.Equal(t, s.Draft, failed.Draft)
	assert.Equal(t, s.Products, failed.Products)
	assert.Equal(t, "duplicate key", failed.Notice.Message)

	del, eff := Reduce(s, MutationSucceeded{Op: EffectDelete})
	assert.Equal(t, EffectLoad, eff.Kind)
	assert.Equal(t, s.Draft, del.Draft)
	assert.Equal(t, MsgDeleted, del.Notice.Message)
}

func TestState_TakeNotice(t *testing.T) {
	s := NewState()
	s.Notice = &Notice{Kind: NoticeInfo, Message: "x"}

	n := s.TakeNotice()
	require.NotNil(t, n)
	assert.Equal(t, "x", n.Message)
	assert.Nil(t, s.Notice)
	assert.Nil(t, s.TakeNotice())
}
