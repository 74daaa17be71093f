package storefront

import (
	"strings"

	"tarimvitrin.com/app/internal/modules/products"
)

// Kullanıcıya gösterilen sabit mesajlar.
const (
	MsgSelectForEdit   = "Düzenlemek için ürün seçin"
	MsgSelectForDelete = "Silmek için ürün seçin"
	MsgConfirmDelete   = "Silme işlemi onaylanmadı."
	MsgUnknownProduct  = "Ürün bulunamadı."
	MsgInvalidForm     = "Form eksik veya hatalı."
	MsgCreated         = "Ürün eklendi."
	MsgUpdated         = "Ürün güncellendi."
	MsgDeleted         = "Ürün silindi."
)

// Reduce applies ev to s and returns the next state together with the store
// call it needs, if any. It never talks to the store itself.
func Reduce(s State, ev Event) (State, Effect) {
	switch e := ev.(type) {
	case Mounted, ReloadRequested:
		return s, Effect{Kind: EffectLoad}

	case Loaded:
		if e.Err != nil {
			// keep whatever was shown before
			return s, noEffect
		}
		s.Products = append([]products.Product{}, e.Products...)
		s.Loaded = true
		return s, noEffect

	case QueryChanged:
		s.Query = e.Query
		return s, noEffect

	case CardSelected:
		p, ok := products.FindByID(s.Products, e.ID)
		if !ok {
			return s, noEffect
		}
		s.Modal = Modal{Open: true, Product: &p}
		return s, noEffect

	case ModalClosed:
		s.Modal = Modal{}
		return s, noEffect

	case AdminToggled:
		s.AdminOpen = !s.AdminOpen
		return s, noEffect

	case AdminClosed:
		s.AdminOpen = false
		return s, noEffect

	case EditStarted:
		p, ok := products.FindByID(s.Products, e.ID)
		if !ok {
			s.Notice = &Notice{Kind: NoticeError, Message: MsgUnknownProduct}
			return s, noEffect
		}
		s.Draft = DraftFrom(p)
		s.AdminOpen = true
		return s, noEffect

	case DraftChanged:
		s.Draft = e.Draft
		return s, noEffect

	case DraftReset:
		s.Draft = DefaultDraft()
		return s, noEffect

	case DraftSubmitted:
		s.Draft = e.Draft
		if s.Draft.EditMode() {
			return submitUpdate(s)
		}
		return submitCreate(s)

	case UpdateRequested:
		s.Draft = e.Draft
		return submitUpdate(s)

	case DeleteRequested:
		id := strings.TrimSpace(e.ID)
		if id == "" {
			s.Notice = &Notice{Kind: NoticeError, Message: MsgSelectForDelete}
			return s, noEffect
		}
		if !e.Confirmed {
			s.Notice = &Notice{Kind: NoticeInfo, Message: MsgConfirmDelete}
			return s, noEffect
		}
		if s.Draft.ID == id {
			s.Draft = DefaultDraft()
		}
		return s, Effect{Kind: EffectDelete, ID: id}

	case MutationSucceeded:
		msg := MsgDeleted
		switch e.Op {
		case EffectInsert:
			msg = MsgCreated
			s.Draft = DefaultDraft()
		case EffectUpdate:
			msg = MsgUpdated
			s.Draft = DefaultDraft()
		}
		s.Notice = &Notice{Kind: NoticeSuccess, Message: msg}
		return s, Effect{Kind: EffectLoad}

	case MutationFailed:
		s.Notice = &Notice{Kind: NoticeError, Message: products.Message(e.Err)}
		return s, noEffect
	}

	return s, noEffect
}

func submitCreate(s State) (State, Effect) {
	if errs := ValidateDraft(s.Draft); errs != nil {
		s.Notice = invalidNotice(errs)
		return s, noEffect
	}
	return s, Effect{Kind: EffectInsert, Fields: s.Draft.Fields()}
}

func submitUpdate(s State) (State, Effect) {
	id := strings.TrimSpace(s.Draft.ID)
	if id == "" {
		s.Notice = &Notice{Kind: NoticeError, Message: MsgSelectForEdit}
		return s, noEffect
	}
	if errs := ValidateDraft(s.Draft); errs != nil {
		s.Notice = invalidNotice(errs)
		return s, noEffect
	}
	return s, Effect{Kind: EffectUpdate, ID: id, Fields: s.Draft.Fields()}
}

func invalidNotice(fields map[string]string) *Notice {
	return &Notice{
		Kind:    NoticeError,
		Message: MsgInvalidForm + " " + summarize(fields),
		Fields:  fields,
	}
}
