package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smilematch/quotes/constants"
	"github.com/smilematch/quotes/gen/ent"
	"github.com/smilematch/quotes/gen/ent/counteroffer"
	"github.com/smilematch/quotes/gen/ent/quoterecord"
	"github.com/smilematch/quotes/internal/entity"
)

// OfferRepository owns persistence of counter-offers. Status transitions are
// forward-only: sent -> viewed -> accepted|rejected; accepted and rejected
// never revert.
type OfferRepository interface {
	Create(ctx context.Context, quoteID, providerID uuid.UUID, payload json.RawMessage) (*entity.CounterOffer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CounterOffer, error)
	ExistsForQuote(ctx context.Context, quoteID uuid.UUID) (bool, error)
	ExistsForQuoteAndProvider(ctx context.Context, quoteID, providerID uuid.UUID) (bool, error)
	ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.CounterOffer, error)
	ListAcceptedByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.CounterOffer, error)

	// MarkViewed flips the given offers from sent to viewed; offers in any
	// other state are left untouched.
	MarkViewed(ctx context.Context, ids []uuid.UUID) error

	// Accept flips the offer to accepted unless another offer on the same
	// quote record is already accepted (first accept wins). Returns whether
	// the acceptance stood.
	Accept(ctx context.Context, id uuid.UUID) (bool, error)
	Reject(ctx context.Context, id uuid.UUID) (bool, error)
}

type offerRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewOfferRepository(client *ent.Client, logger *slog.Logger) OfferRepository {
	return &offerRepo{client: client, logger: logger}
}

func (r *offerRepo) Create(ctx context.Context, quoteID, providerID uuid.UUID, payload json.RawMessage) (*entity.CounterOffer, error) {
	row, err := r.client.CounterOffer.Create().
		SetQuoteID(quoteID).
		SetProviderID(providerID).
		SetPayload(payload).
		SetStatus(string(constants.OfferSent)).
		Save(ctx)
	if err != nil {
		r.logger.Error("offer create failed", "quote_id", quoteID, "provider_id", providerID, "error", err)
		return nil, err
	}
	r.logger.Info("offer created", "offer_id", row.ID, "quote_id", quoteID, "provider_id", providerID)
	return toCounterOffer(row), nil
}

func (r *offerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.CounterOffer, error) {
	row, err := r.client.CounterOffer.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCounterOffer(row), nil
}

func (r *offerRepo) ExistsForQuote(ctx context.Context, quoteID uuid.UUID) (bool, error) {
	return r.client.CounterOffer.Query().
		Where(counteroffer.QuoteID(quoteID)).
		Exist(ctx)
}

func (r *offerRepo) ExistsForQuoteAndProvider(ctx context.Context, quoteID, providerID uuid.UUID) (bool, error) {
	return r.client.CounterOffer.Query().
		Where(
			counteroffer.QuoteID(quoteID),
			counteroffer.ProviderID(providerID),
		).
		Exist(ctx)
}

func (r *offerRepo) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.CounterOffer, error) {
	quoteIDs, err := r.client.QuoteRecord.Query().
		Where(quoterecord.PatientID(patientID)).
		IDs(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := r.client.CounterOffer.Query().
		Where(counteroffer.QuoteIDIn(quoteIDs...)).
		Order(ent.Desc(counteroffer.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("offer list failed", "patient_id", patientID, "error", err)
		return nil, err
	}
	out := make([]*entity.CounterOffer, len(rows))
	for i, row := range rows {
		out[i] = toCounterOffer(row)
	}
	return out, nil
}

func (r *offerRepo) ListAcceptedByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.CounterOffer, error) {
	rows, err := r.client.CounterOffer.Query().
		Where(
			counteroffer.ProviderID(providerID),
			counteroffer.StatusEQ(string(constants.OfferAccepted)),
		).
		Order(ent.Desc(counteroffer.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.CounterOffer, len(rows))
	for i, row := range rows {
		out[i] = toCounterOffer(row)
	}
	return out, nil
}

func (r *offerRepo) MarkViewed(ctx context.Context, ids []uuid.UUID) error {
	_, err := r.client.CounterOffer.Update().
		Where(
			counteroffer.IDIn(ids...),
			counteroffer.StatusEQ(string(constants.OfferSent)),
		).
		SetStatus(string(constants.OfferViewed)).
		Save(ctx)
	if err != nil {
		r.logger.Error("offer mark viewed failed", "count", len(ids), "error", err)
	}
	return err
}

func (r *offerRepo) Accept(ctx context.Context, id uuid.UUID) (bool, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	accepted, err := r.acceptTx(ctx, tx, id)
	if err != nil {
		_ = tx.Rollback()
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit accept: %w", err)
	}
	return accepted, nil
}

func (r *offerRepo) acceptTx(ctx context.Context, tx *ent.Tx, id uuid.UUID) (bool, error) {
	off, err := tx.CounterOffer.Get(ctx, id)
	if err != nil {
		return false, err
	}
	taken, err := tx.CounterOffer.Query().
		Where(
			counteroffer.QuoteID(off.QuoteID),
			counteroffer.StatusEQ(string(constants.OfferAccepted)),
			counteroffer.IDNEQ(id),
		).
		Exist(ctx)
	if err != nil {
		return false, err
	}
	if taken {
		r.logger.Warn("offer accept rejected: quote already has an accepted offer", "offer_id", id, "quote_id", off.QuoteID)
		return false, nil
	}
	n, err := tx.CounterOffer.Update().
		Where(
			counteroffer.ID(id),
			counteroffer.StatusIn(string(constants.OfferSent), string(constants.OfferViewed)),
		).
		SetStatus(string(constants.OfferAccepted)).
		Save(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *offerRepo) Reject(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.client.CounterOffer.Update().
		Where(
			counteroffer.ID(id),
			counteroffer.StatusIn(string(constants.OfferSent), string(constants.OfferViewed)),
		).
		SetStatus(string(constants.OfferRejected)).
		Save(ctx)
	if err != nil {
		r.logger.Error("offer reject failed", "offer_id", id, "error", err)
		return false, err
	}
	return n > 0, nil
}
