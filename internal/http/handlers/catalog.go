package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tarimvitrin.com/app/internal/http/flash"
	"tarimvitrin.com/app/internal/http/middleware"
	"tarimvitrin.com/app/internal/http/render"
	"tarimvitrin.com/app/internal/http/validation"
	"tarimvitrin.com/app/internal/modules/products"
	"tarimvitrin.com/app/internal/modules/storefront"
	"tarimvitrin.com/app/internal/shared/apperr"
	"tarimvitrin.com/app/internal/storage"
	"tarimvitrin.com/app/pkg/view"
	"tarimvitrin.com/app/templates/pages"
)

const (
	pageTitle = "Tarım Vitrini"
	homePath  = "/"
)

// draftForm is what the admin form posts. Business rules are checked by the
// view runtime; binding only rejects oversized input.
type draftForm struct {
	ID          string `form:"id" label:"ID" binding:"max=64"`
	Name        string `form:"name" label:"İsim" binding:"max=255"`
	Description string `form:"description" label:"Açıklama" binding:"max=4000"`
	Price       string `form:"price" label:"Fiyat" binding:"max=32"`
	ImageURL    string `form:"image_url" label:"Görsel URL" binding:"max=1024"`
	Category    string `form:"category" label:"Kategori" binding:"max=64"`
}

func (f draftForm) draft() storefront.Draft {
	return storefront.Draft{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		ImageURL:    f.ImageURL,
		Category:    f.Category,
	}
}

// CatalogHandler serves the catalog page. Every POST turns into view events,
// the resulting state is saved for the browser's view session and the
// browser is redirected back to the page.
type CatalogHandler struct {
	runtime *storefront.Runtime
	states  storage.StateStore
	flash   *flash.Codec
	log     *slog.Logger
}

func NewCatalogHandler(rt *storefront.Runtime, states storage.StateStore, flashCodec *flash.Codec, log *slog.Logger) *CatalogHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CatalogHandler{runtime: rt, states: states, flash: flashCodec, log: log}
}

// Index renders the page. Every visit mounts the page again and reloads the
// list, except the redirect that shows a notice: that one renders the state
// the action left behind, unless no list has been loaded yet. A ?q=
// parameter replaces the current search text.
func (h *CatalogHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	sid := middleware.SessionID(c)

	st, fresh, err := h.state(ctx, sid)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	dirty := fresh

	fl := middleware.GetFlash(c)
	if !fresh && (fl == nil || !st.Loaded) {
		st = h.runtime.Dispatch(ctx, st, storefront.Mounted{})
		dirty = true
	}

	if q, ok := c.GetQuery("q"); ok && q != st.Query {
		st = h.runtime.Dispatch(ctx, st, storefront.QueryChanged{Query: q})
		dirty = true
	}

	if n := st.TakeNotice(); n != nil {
		if fl == nil {
			fl = flashFromNotice(n)
		}
		dirty = true
	}

	if dirty {
		if err := h.states.Save(ctx, sid, st); err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
	}

	render.Component(c, http.StatusOK, pages.Catalog(fl, catalogPage(st, fl)))
}

func (h *CatalogHandler) Search(c *gin.Context) {
	h.apply(c, storefront.QueryChanged{Query: c.PostForm("q")})
}

func (h *CatalogHandler) Reload(c *gin.Context) {
	h.apply(c, storefront.ReloadRequested{})
}

func (h *CatalogHandler) Select(c *gin.Context) {
	h.apply(c, storefront.CardSelected{ID: c.Param("id")})
}

func (h *CatalogHandler) CloseModal(c *gin.Context) {
	h.apply(c, storefront.ModalClosed{})
}

func (h *CatalogHandler) ToggleAdmin(c *gin.Context) {
	h.apply(c, storefront.AdminToggled{})
}

// CloseAdmin keeps whatever was typed into the form before closing the panel.
func (h *CatalogHandler) CloseAdmin(c *gin.Context) {
	if _, posted := c.GetPostForm("name"); !posted {
		h.apply(c, storefront.AdminClosed{})
		return
	}
	var form draftForm
	if !h.bindDraft(c, &form) {
		return
	}
	h.apply(c, storefront.DraftChanged{Draft: form.draft()}, storefront.AdminClosed{})
}

func (h *CatalogHandler) Edit(c *gin.Context) {
	h.apply(c, storefront.EditStarted{ID: c.Param("id")})
}

func (h *CatalogHandler) ResetDraft(c *gin.Context) {
	h.apply(c, storefront.DraftReset{})
}

// Submit creates a record, or updates one when the form carries an ID.
func (h *CatalogHandler) Submit(c *gin.Context) {
	var form draftForm
	if !h.bindDraft(c, &form) {
		return
	}
	h.apply(c, storefront.DraftSubmitted{Draft: form.draft()})
}

func (h *CatalogHandler) Update(c *gin.Context) {
	var form draftForm
	if !h.bindDraft(c, &form) {
		return
	}
	h.apply(c, storefront.UpdateRequested{Draft: form.draft()})
}

// Delete removes a record. The form must carry confirmed=yes, which the
// page's confirmation dialog sets.
func (h *CatalogHandler) Delete(c *gin.Context) {
	h.apply(c, storefront.DeleteRequested{
		ID:        c.Param("id"),
		Confirmed: c.PostForm("confirmed") == "yes",
	})
}

func (h *CatalogHandler) bindDraft(c *gin.Context, form *draftForm) bool {
	if err := c.ShouldBind(form); err != nil {
		fields := validation.FromBindError(err, form)
		render.RedirectWithFlash(c, h.flash, homePath, &view.Flash{
			Kind:    view.FlashError,
			Message: storefront.MsgInvalidForm,
			Fields:  fields,
		})
		return false
	}
	return true
}

// apply dispatches evs in order against the session's state, saves it and
// redirects with the last pending notice.
func (h *CatalogHandler) apply(c *gin.Context, evs ...storefront.Event) {
	ctx := c.Request.Context()
	sid := middleware.SessionID(c)

	st, _, err := h.state(ctx, sid)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	for _, ev := range evs {
		st = h.runtime.Dispatch(ctx, st, ev)
	}
	n := st.TakeNotice()

	if err := h.states.Save(ctx, sid, st); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	render.RedirectWithFlash(c, h.flash, homePath, flashFromNotice(n))
}

// state returns the session's view state. A session seen for the first time
// starts from a fresh state and loads the list.
func (h *CatalogHandler) state(ctx context.Context, sid string) (storefront.State, bool, error) {
	st, err := h.states.Get(ctx, sid)
	if err == nil {
		return st, false, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return storefront.State{}, false, err
	}

	h.log.LogAttrs(ctx, slog.LevelDebug, "view_session_started", slog.String("view_session", sid))
	return h.runtime.Dispatch(ctx, storefront.NewState(), storefront.Mounted{}), true, nil
}

func flashFromNotice(n *storefront.Notice) *view.Flash {
	if n == nil || n.Message == "" {
		return nil
	}
	kind := view.FlashInfo
	switch n.Kind {
	case storefront.NoticeSuccess:
		kind = view.FlashSuccess
	case storefront.NoticeError:
		kind = view.FlashError
	}
	return &view.Flash{Kind: kind, Message: n.Message, Fields: n.Fields}
}

func catalogPage(st storefront.State, fl *view.Flash) view.CatalogPage {
	page := view.CatalogPage{
		Title: pageTitle,
		Query: st.Query,
	}

	for _, b := range st.Buckets() {
		sec := view.CategorySection{Label: b.Label(), Count: b.Count(), Items: make([]view.ProductCard, 0, b.Count())}
		for _, p := range b.Items {
			sec.Items = append(sec.Items, view.ProductCard{ID: p.ID, Name: p.Name, ImageURL: p.ImageURL})
		}
		page.Sections = append(page.Sections, sec)
	}

	if st.Modal.Visible() {
		p := st.Modal.Product
		page.Modal = &view.ProductModal{
			Name:        p.Name,
			Price:       view.Price(p.Price),
			Category:    p.Category,
			Description: p.Description,
			ImageURL:    p.ImageURL,
		}
	}

	if st.AdminOpen {
		page.Admin = adminPanel(st, fl)
	}
	return page
}

func adminPanel(st storefront.State, fl *view.Flash) *view.AdminPanel {
	d := st.Draft
	form := view.AdminForm{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		ImageURL:    d.ImageURL,
		Category:    d.Category,
		EditMode:    d.EditMode(),
	}
	if fl != nil && fl.Kind == view.FlashError {
		form.Errors = fl.Fields
	}

	list := make([]view.AdminListItem, 0, len(st.Products))
	for _, p := range st.Products {
		list = append(list, view.AdminListItem{
			ID:       p.ID,
			Name:     p.Name,
			Category: categoryText(p.Category),
			Price:    view.Price(p.Price),
		})
	}

	return &view.AdminPanel{
		Form:       form,
		Categories: products.CategoryLabels(),
		Products:   list,
	}
}

// categoryText shows the catch-all label for blank categories.
func categoryText(raw string) string {
	if raw == "" {
		return products.Unclassified.Label()
	}
	return raw
}
