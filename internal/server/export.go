package server

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	quotesv1 "github.com/smilematch/quotes/gen/proto/quotes/v1"
	"github.com/smilematch/quotes/internal/common"
	"github.com/smilematch/quotes/internal/export"
)

type ExportService struct {
	quotesv1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportService(svc *export.Service, logger *slog.Logger) *ExportService {
	return &ExportService{svc: svc, logger: logger}
}

// ExportAcceptedOffers implements quotesv1.ExportServiceServer
func (s *ExportService) ExportAcceptedOffers(ctx context.Context, req *quotesv1.ExportAcceptedOffersRequest) (*quotesv1.ExportAcceptedOffersResponse, error) {
	providerID, err := parseID(req.GetProviderId(), "provider_id")
	if err != nil {
		return nil, err
	}

	data, err := s.svc.ExportAcceptedOffersXLSX(ctx, providerID)
	if err != nil {
		s.logger.Error("export accepted offers failed", "provider_id", providerID, "error", err)
		return nil, common.InternalError("export failed")
	}

	return &quotesv1.ExportAcceptedOffersResponse{
		Xlsx:     data,
		Filename: fmt.Sprintf("accepted-offers-%s.xlsx", time.Now().UTC().Format("2006-01-02")),
	}, nil
}
