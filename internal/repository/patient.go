package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/smilematch/quotes/gen/ent"
	"github.com/smilematch/quotes/gen/ent/patient"
	"github.com/smilematch/quotes/internal/entity"
)

type PatientRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Patient, error)
}

type patientRepo struct {
	client *ent.Client
}

func NewPatientRepository(client *ent.Client) PatientRepository {
	return &patientRepo{client: client}
}

func (r *patientRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	row, err := r.client.Patient.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPatient(row), nil
}

func (r *patientRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Patient, error) {
	row, err := r.client.Patient.Query().
		Where(patient.UserID(userID)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return toPatient(row), nil
}

func now() time.Time { return time.Now().UTC() }
