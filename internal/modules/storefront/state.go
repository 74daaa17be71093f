package storefront

import (
	"strings"

	"tarimvitrin.com/app/internal/modules/products"
)

// DefaultDraftPrice is the price a fresh admin form starts with.
const DefaultDraftPrice = "100"

type NoticeKind string

const (
	NoticeInfo    NoticeKind = "info"
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a message waiting to be shown to the user once.
type Notice struct {
	Kind    NoticeKind        `json:"kind"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Draft is the admin form's unsaved copy of a record. An empty ID means the
// form creates a new record, a non-empty ID means it edits that record.
type Draft struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
}

func DefaultDraft() Draft { return Draft{Price: DefaultDraftPrice} }

// DraftFrom seeds a draft with every editable field of p.
func DraftFrom(p products.Product) Draft {
	return Draft{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       products.FormatPrice(p.Price),
		ImageURL:    p.ImageURL,
		Category:    p.Category,
	}
}

func (d Draft) EditMode() bool { return strings.TrimSpace(d.ID) != "" }

// Fields converts the draft into store fields. The price is coerced to a
// non-negative number.
func (d Draft) Fields() products.Fields {
	return products.Fields{
		Name:        strings.TrimSpace(d.Name),
		Description: d.Description,
		Price:       products.CoercePrice(d.Price),
		ImageURL:    strings.TrimSpace(d.ImageURL),
		Category:    strings.TrimSpace(d.Category),
	}
}

// Modal holds the record shown in the detail overlay. Product is a copy taken
// when the card was clicked.
type Modal struct {
	Open    bool              `json:"open"`
	Product *products.Product `json:"product,omitempty"`
}

func (m Modal) Visible() bool { return m.Open && m.Product != nil }

// State is everything one catalog page view remembers between events.
type State struct {
	Products  []products.Product `json:"products"`
	Loaded    bool               `json:"loaded"`
	Query     string             `json:"query"`
	Modal     Modal              `json:"modal"`
	AdminOpen bool               `json:"admin_open"`
	Draft     Draft              `json:"draft"`
	Notice    *Notice            `json:"notice,omitempty"`
}

func NewState() State {
	return State{Products: []products.Product{}, Draft: DefaultDraft()}
}

// Filtered is the loaded list narrowed by the current query.
func (s State) Filtered() []products.Product { return products.Filter(s.Products, s.Query) }

// Buckets is the filtered list grouped for display.
func (s State) Buckets() []products.Bucket { return products.Group(s.Filtered()) }

// TakeNotice returns the pending notice and clears it.
func (s *State) TakeNotice() *Notice {
	n := s.Notice
	s.Notice = nil
	return n
}
