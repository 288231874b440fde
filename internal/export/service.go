// Package export produces XLSX workbooks for provider-facing reports.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/smilematch/quotes/internal/quote"
	"github.com/smilematch/quotes/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	offers   repository.OfferRepository
	quotes   repository.QuoteRepository
	patients repository.PatientRepository
	logger   *slog.Logger
}

func NewService(offers repository.OfferRepository, quotes repository.QuoteRepository, patients repository.PatientRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{offers: offers, quotes: quotes, patients: patients, logger: logger}
}

// ExportAcceptedOffersXLSX returns an XLSX workbook (as bytes) listing the
// provider's accepted offers: one row per offer line plus a total row per
// offer.
func (s *Service) ExportAcceptedOffersXLSX(ctx context.Context, providerID uuid.UUID) ([]byte, error) {
	start := time.Now()

	offers, err := s.offers.ListAcceptedByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("query accepted offers: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Accepted Offers"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// Drop the default sheet so the workbook opens on ours.
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Accepted Date",
		"Patient",
		"Requested Treatment",
		"Matched Treatment",
		"Quantity",
		"Price (EUR)",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	write := func(col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	for _, off := range offers {
		payload, err := quote.ParseOfferPayload(off.Payload)
		if err != nil {
			s.logger.Warn("export.skip_invalid_offer", "offer_id", off.ID, "error", err)
			continue
		}

		patientName := ""
		if rec, err := s.quotes.GetByID(ctx, off.QuoteID); err == nil {
			if pat, err := s.patients.GetByID(ctx, rec.PatientID); err == nil {
				patientName = pat.Name
			}
		}

		for _, line := range payload.Lines {
			write(1, off.UpdatedAt.Format("2006-01-02"))
			write(2, patientName)
			write(3, line.OriginalDescription)
			write(4, line.MatchedDescription)
			write(5, line.Quantity)
			write(6, line.Price)
			row++
		}
		write(5, "Total")
		write(6, payload.Total)
		row += 2
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.accepted_offers.ok",
		"provider_id", providerID,
		"offers", len(offers),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
