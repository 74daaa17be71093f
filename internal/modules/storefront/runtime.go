package storefront

import (
	"context"
	"log/slog"

	"tarimvitrin.com/app/internal/modules/products"
)

// EventObserver is told about every event the runtime reduces.
type EventObserver interface {
	RecordViewEvent(name string)
}

// Runtime runs reductions and carries out their store effects. Outcomes of
// store calls are fed back as events until nothing is left to do.
type Runtime struct {
	store    products.Store
	log      *slog.Logger
	observer EventObserver
}

func NewRuntime(store products.Store, log *slog.Logger) *Runtime {
	if log == nil {
		log = slog.Default()
	}
	return &Runtime{store: store, log: log}
}

// WithObserver sets the event observer and returns r.
func (r *Runtime) WithObserver(o EventObserver) *Runtime {
	r.observer = o
	return r
}

// Dispatch reduces ev and every follow-up event and returns the final state.
func (r *Runtime) Dispatch(ctx context.Context, s State, ev Event) State {
	for ev != nil {
		if r.observer != nil {
			r.observer.RecordViewEvent(ev.Name())
		}
		var eff Effect
		s, eff = Reduce(s, ev)
		ev = r.run(ctx, eff)
	}
	return s
}

func (r *Runtime) run(ctx context.Context, eff Effect) Event {
	switch eff.Kind {
	case EffectLoad:
		items, err := r.store.List(ctx)
		if err != nil {
			r.log.LogAttrs(ctx, slog.LevelError, "catalog_load_failed", slog.Any("err", err))
			return Loaded{Err: err}
		}
		return Loaded{Products: items}

	case EffectInsert:
		p, err := r.store.Insert(ctx, eff.Fields)
		return r.outcome(ctx, eff, p, err)

	case EffectUpdate:
		p, err := r.store.Update(ctx, eff.ID, eff.Fields)
		return r.outcome(ctx, eff, p, err)

	case EffectDelete:
		err := r.store.Delete(ctx, eff.ID)
		return r.outcome(ctx, eff, products.Product{ID: eff.ID}, err)
	}
	return nil
}

func (r *Runtime) outcome(ctx context.Context, eff Effect, p products.Product, err error) Event {
	if err != nil {
		r.log.LogAttrs(ctx, slog.LevelWarn, "catalog_mutation_failed",
			slog.String("op", eff.Kind.String()),
			slog.String("id", eff.ID),
			slog.Any("err", err),
		)
		return MutationFailed{Op: eff.Kind, Err: err}
	}
	r.log.LogAttrs(ctx, slog.LevelInfo, "catalog_mutation",
		slog.String("op", eff.Kind.String()),
		slog.String("id", p.ID),
	)
	return MutationSucceeded{Op: eff.Kind, Product: p}
}
