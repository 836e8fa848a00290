package cmd

import (
	"context"

	"github.com/eykd/gh-emoji/internal/domain"
)

// catalogServicer abstracts the cache.Store methods used by adapters.
type catalogServicer interface {
	Load(ctx context.Context) (domain.Catalog, error)
	Refresh(ctx context.Context) (domain.Catalog, error)
}

// iconPicker abstracts picker.Picker.
type iconPicker interface {
	Pick(ctx context.Context, catalog domain.Catalog) (domain.Icon, bool, error)
}

// Services bundles the components commands run against.
type Services struct {
	Store  catalogServicer
	Picker iconPicker
}

// Wirer builds the services for one command run. It is called only when a
// command needs them, so --help and --version work without a home directory
// or a readable config file.
type Wirer func(ctx context.Context) (*Services, error)

// --- listAdapter ---

type listAdapter struct {
	wire Wirer
}

func (a *listAdapter) List(ctx context.Context) (domain.Catalog, error) {
	svc, err := a.wire(ctx)
	if err != nil {
		return nil, err
	}
	return svc.Store.Load(ctx)
}

// --- refreshAdapter ---

type refreshAdapter struct {
	wire Wirer
}

func (a *refreshAdapter) Refresh(ctx context.Context) (domain.Catalog, error) {
	svc, err := a.wire(ctx)
	if err != nil {
		return nil, err
	}
	return svc.Store.Refresh(ctx)
}

// --- pickAdapter ---

type pickAdapter struct {
	wire Wirer
}

func (a *pickAdapter) Pick(ctx context.Context) (domain.Icon, bool, error) {
	svc, err := a.wire(ctx)
	if err != nil {
		return domain.Icon{}, false, err
	}
	catalog, err := svc.Store.Load(ctx)
	if err != nil {
		return domain.Icon{}, false, err
	}
	return svc.Picker.Pick(ctx, catalog)
}
