package repository

import (
	"github.com/smilematch/quotes/gen/ent"
	"github.com/smilematch/quotes/internal/entity"
)

func toQuoteRecord(row *ent.QuoteRecord) *entity.QuoteRecord {
	if row == nil {
		return nil
	}
	return &entity.QuoteRecord{
		ID:               row.ID,
		PatientID:        row.PatientID,
		FilePath:         row.FilePath,
		OriginalFilename: row.OriginalFilename,
		Status:           row.Status,
		Payload:          row.Payload,
		ErrorMessage:     row.ErrorMessage,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func toCounterOffer(row *ent.CounterOffer) *entity.CounterOffer {
	if row == nil {
		return nil
	}
	return &entity.CounterOffer{
		ID:         row.ID,
		QuoteID:    row.QuoteID,
		ProviderID: row.ProviderID,
		Payload:    row.Payload,
		Status:     row.Status,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func toProvider(row *ent.Provider) *entity.Provider {
	if row == nil {
		return nil
	}
	return &entity.Provider{
		ID:                   row.ID,
		UserID:               row.UserID,
		BusinessName:         row.BusinessName,
		Email:                row.Email,
		Latitude:             row.Latitude,
		Longitude:            row.Longitude,
		PriceListCompletedAt: row.PriceListCompletedAt,
		ProfileCompletedAt:   row.ProfileCompletedAt,
		StaffCompletedAt:     row.StaffCompletedAt,
	}
}

func toPatient(row *ent.Patient) *entity.Patient {
	if row == nil {
		return nil
	}
	return &entity.Patient{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Email:     row.Email,
		Latitude:  row.Latitude,
		Longitude: row.Longitude,
	}
}

func toCustomItem(row *ent.CustomItem) *entity.CustomItem {
	if row == nil {
		return nil
	}
	return &entity.CustomItem{
		ID:          row.ID,
		ProviderID:  row.ProviderID,
		Name:        row.Name,
		Description: derefString(row.Description),
		Price:       row.Price,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
