package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smilematch/quotes/gen/ent"
	"github.com/smilematch/quotes/gen/ent/provider"
	"github.com/smilematch/quotes/gen/ent/provideroverride"
	"github.com/smilematch/quotes/gen/ent/staffmember"
	"github.com/smilematch/quotes/gen/ent/studiophoto"
	"github.com/smilematch/quotes/internal/entity"
)

// CompletionField names one of the provider completion timestamps that the
// eligibility reconciler maintains.
type CompletionField string

const (
	CompletionPriceList CompletionField = "price_list"
	CompletionProfile   CompletionField = "profile"
	CompletionStaff     CompletionField = "staff"
)

// ProviderRepository reads provider rows and maintains the three completion
// timestamps. Nothing else mutates them.
type ProviderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Provider, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Provider, error)
	ListAll(ctx context.Context) ([]*entity.Provider, error)

	// Facts gathers the raw counts eligibility is computed from.
	Facts(ctx context.Context, id uuid.UUID) (*entity.ProviderFacts, error)

	// SetCompletion stamps or clears one completion timestamp.
	SetCompletion(ctx context.Context, id uuid.UUID, field CompletionField, done bool) error
}

type providerRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProviderRepository(client *ent.Client, logger *slog.Logger) ProviderRepository {
	return &providerRepo{client: client, logger: logger}
}

func (r *providerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Provider, error) {
	row, err := r.client.Provider.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProvider(row), nil
}

func (r *providerRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Provider, error) {
	row, err := r.client.Provider.Query().
		Where(provider.UserID(userID)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return toProvider(row), nil
}

func (r *providerRepo) ListAll(ctx context.Context) ([]*entity.Provider, error) {
	rows, err := r.client.Provider.Query().All(ctx)
	if err != nil {
		r.logger.Error("provider list failed", "error", err)
		return nil, err
	}
	out := make([]*entity.Provider, len(rows))
	for i, row := range rows {
		out[i] = toProvider(row)
	}
	return out, nil
}

func (r *providerRepo) Facts(ctx context.Context, id uuid.UUID) (*entity.ProviderFacts, error) {
	row, err := r.client.Provider.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	photos, err := r.client.StudioPhoto.Query().
		Where(studiophoto.ProviderID(id)).
		Count(ctx)
	if err != nil {
		return nil, err
	}
	staff, err := r.client.StaffMember.Query().
		Where(staffmember.ProviderID(id)).
		Count(ctx)
	if err != nil {
		return nil, err
	}
	// Only priced, activated catalog overrides count toward the price-list
	// marker; custom items never do.
	overrides, err := r.client.ProviderOverride.Query().
		Where(
			provideroverride.ProviderID(id),
			provideroverride.Active(true),
			provideroverride.PriceNotNil(),
		).
		Count(ctx)
	if err != nil {
		return nil, err
	}

	return &entity.ProviderFacts{
		HasDescription:        row.Description != nil && *row.Description != "",
		PhotoCount:            photos,
		StaffCount:            staff,
		ActivePricedOverrides: overrides,
		PriceListCompletedAt:  row.PriceListCompletedAt,
		ProfileCompletedAt:    row.ProfileCompletedAt,
		StaffCompletedAt:      row.StaffCompletedAt,
	}, nil
}

func (r *providerRepo) SetCompletion(ctx context.Context, id uuid.UUID, field CompletionField, done bool) error {
	upd := r.client.Provider.UpdateOneID(id)
	switch field {
	case CompletionPriceList:
		if done {
			upd.SetPriceListCompletedAt(now())
		} else {
			upd.ClearPriceListCompletedAt()
		}
	case CompletionProfile:
		if done {
			upd.SetProfileCompletedAt(now())
		} else {
			upd.ClearProfileCompletedAt()
		}
	case CompletionStaff:
		if done {
			upd.SetStaffCompletedAt(now())
		} else {
			upd.ClearStaffCompletedAt()
		}
	}
	if err := upd.Exec(ctx); err != nil {
		r.logger.Error("provider completion update failed", "provider_id", id, "field", field, "error", err)
		return err
	}
	r.logger.Info("provider completion updated", "provider_id", id, "field", field, "done", done)
	return nil
}
