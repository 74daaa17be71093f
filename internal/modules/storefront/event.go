package storefront

import "tarimvitrin.com/app/internal/modules/products"

// Event is one user interaction or store outcome fed to Reduce.
type Event interface {
	Name() string
}

type (
	// Mounted is sent when a page view starts.
	Mounted         struct{}
	ReloadRequested struct{}

	Loaded struct {
		Products []products.Product
		Err      error
	}

	QueryChanged struct{ Query string }

	CardSelected struct{ ID string }
	ModalClosed  struct{}

	AdminToggled struct{}
	AdminClosed  struct{}

	EditStarted  struct{ ID string }
	DraftChanged struct{ Draft Draft }
	DraftReset   struct{}

	// DraftSubmitted creates or updates depending on the draft's ID.
	DraftSubmitted struct{ Draft Draft }
	// UpdateRequested always updates; an empty draft ID is a validation error.
	UpdateRequested struct{ Draft Draft }

	DeleteRequested struct {
		ID        string
		Confirmed bool
	}

	MutationSucceeded struct {
		Op      EffectKind
		Product products.Product
	}
	MutationFailed struct {
		Op  EffectKind
		Err error
	}
)

func (Mounted) Name() string           { return "mounted" }
func (ReloadRequested) Name() string   { return "reload_requested" }
func (Loaded) Name() string            { return "loaded" }
func (QueryChanged) Name() string      { return "query_changed" }
func (CardSelected) Name() string      { return "card_selected" }
func (ModalClosed) Name() string       { return "modal_closed" }
func (AdminToggled) Name() string      { return "admin_toggled" }
func (AdminClosed) Name() string       { return "admin_closed" }
func (EditStarted) Name() string       { return "edit_started" }
func (DraftChanged) Name() string      { return "draft_changed" }
func (DraftReset) Name() string        { return "draft_reset" }
func (DraftSubmitted) Name() string    { return "draft_submitted" }
func (UpdateRequested) Name() string   { return "update_requested" }
func (DeleteRequested) Name() string   { return "delete_requested" }
func (MutationSucceeded) Name() string { return "mutation_succeeded" }
func (MutationFailed) Name() string    { return "mutation_failed" }

type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectLoad
	EffectInsert
	EffectUpdate
	EffectDelete
)

func (k EffectKind) String() string {
	switch k {
	case EffectLoad:
		return "load"
	case EffectInsert:
		return "insert"
	case EffectUpdate:
		return "update"
	case EffectDelete:
		return "delete"
	default:
		return "none"
	}
}

// Effect is the single store call a reduction asks for.
type Effect struct {
	Kind   EffectKind
	ID     string
	Fields products.Fields
}

var noEffect = Effect{Kind: EffectNone}
