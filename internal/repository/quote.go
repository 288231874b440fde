package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smilematch/quotes/constants"
	"github.com/smilematch/quotes/gen/ent"
	"github.com/smilematch/quotes/gen/ent/quoterecord"
	"github.com/smilematch/quotes/internal/entity"
)

// QuoteRepository owns persistence of quote records and their state machine.
// Status moves only through Claim/MarkCompleted/MarkError/UpdatePayload; reads
// never mutate.
type QuoteRepository interface {
	Create(ctx context.Context, patientID uuid.UUID, filePath, originalFilename string) (*entity.QuoteRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.QuoteRecord, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.QuoteRecord, error)

	// ClaimProcessing flips uploaded -> in_processing and reports whether this
	// caller won the claim. Duplicate deliveries lose the compare-and-swap and
	// must treat the job as a no-op.
	ClaimProcessing(ctx context.Context, id uuid.UUID) (bool, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, payload json.RawMessage) error
	MarkError(ctx context.Context, id uuid.UUID, message string) error

	// UpdatePayload rewrites the structured payload in place (patient confirm).
	// Only valid while the record is completed.
	UpdatePayload(ctx context.Context, id uuid.UUID, payload json.RawMessage) (bool, error)
}

type quoteRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewQuoteRepository(client *ent.Client, logger *slog.Logger) QuoteRepository {
	return &quoteRepo{client: client, logger: logger}
}

func (r *quoteRepo) Create(ctx context.Context, patientID uuid.UUID, filePath, originalFilename string) (*entity.QuoteRecord, error) {
	row, err := r.client.QuoteRecord.Create().
		SetPatientID(patientID).
		SetFilePath(filePath).
		SetOriginalFilename(originalFilename).
		SetStatus(string(constants.QuoteUploaded)).
		Save(ctx)
	if err != nil {
		r.logger.Error("quote create failed", "patient_id", patientID, "error", err)
		return nil, err
	}
	r.logger.Info("quote created", "quote_id", row.ID, "patient_id", patientID, "file_path", filePath)
	return toQuoteRecord(row), nil
}

func (r *quoteRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.QuoteRecord, error) {
	row, err := r.client.QuoteRecord.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toQuoteRecord(row), nil
}

func (r *quoteRepo) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entity.QuoteRecord, error) {
	rows, err := r.client.QuoteRecord.Query().
		Where(quoterecord.PatientID(patientID)).
		Order(ent.Desc(quoterecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("quote list failed", "patient_id", patientID, "error", err)
		return nil, err
	}
	out := make([]*entity.QuoteRecord, len(rows))
	for i, row := range rows {
		out[i] = toQuoteRecord(row)
	}
	return out, nil
}

func (r *quoteRepo) ClaimProcessing(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.client.QuoteRecord.Update().
		Where(
			quoterecord.ID(id),
			quoterecord.StatusEQ(string(constants.QuoteUploaded)),
		).
		SetStatus(string(constants.QuoteInProcessing)).
		Save(ctx)
	if err != nil {
		r.logger.Error("quote claim failed", "quote_id", id, "error", err)
		return false, err
	}
	return n > 0, nil
}

func (r *quoteRepo) MarkCompleted(ctx context.Context, id uuid.UUID, payload json.RawMessage) error {
	err := r.client.QuoteRecord.UpdateOneID(id).
		SetStatus(string(constants.QuoteCompleted)).
		SetPayload(payload).
		ClearErrorMessage().
		Exec(ctx)
	if err != nil {
		r.logger.Error("quote mark completed failed", "quote_id", id, "error", err)
		return err
	}
	r.logger.Info("quote completed", "quote_id", id, "payload_bytes", len(payload))
	return nil
}

func (r *quoteRepo) MarkError(ctx context.Context, id uuid.UUID, message string) error {
	err := r.client.QuoteRecord.UpdateOneID(id).
		SetStatus(string(constants.QuoteError)).
		SetErrorMessage(message).
		Exec(ctx)
	if err != nil {
		r.logger.Error("quote mark error failed", "quote_id", id, "error", err)
		return err
	}
	r.logger.Warn("quote errored", "quote_id", id, "message", message)
	return nil
}

func (r *quoteRepo) UpdatePayload(ctx context.Context, id uuid.UUID, payload json.RawMessage) (bool, error) {
	n, err := r.client.QuoteRecord.Update().
		Where(
			quoterecord.ID(id),
			quoterecord.StatusEQ(string(constants.QuoteCompleted)),
		).
		SetPayload(payload).
		Save(ctx)
	if err != nil {
		r.logger.Error("quote payload update failed", "quote_id", id, "error", err)
		return false, err
	}
	return n > 0, nil
}
