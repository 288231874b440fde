// Package notify delivers in-app notifications and email for offer events.
// Delivery failures are logged, never propagated: a lost notification must
// not fail the pipeline or an accept call.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smilematch/quotes/constants"
	"github.com/smilematch/quotes/internal/entity"
	"github.com/smilematch/quotes/internal/repository"
)

type Service struct {
	notifications repository.NotificationRepository
	mailer        Mailer
	baseURL       string // public web origin for action links
	logger        *slog.Logger
}

func NewService(notifications repository.NotificationRepository, mailer Mailer, baseURL string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		notifications: notifications,
		mailer:        mailer,
		baseURL:       baseURL,
		logger:        logger,
	}
}

// OfferReceived tells a patient that a clinic sent a counter-offer.
func (s *Service) OfferReceived(ctx context.Context, patient *entity.Patient, businessName string) {
	msg := fmt.Sprintf("%s sent you a counter-offer for your quote.", businessName)
	actionURL := s.baseURL + "/offers"

	if _, err := s.notifications.Create(ctx, patient.UserID, constants.NotifNewOffer, msg, actionURL); err != nil {
		s.logger.Error("notify.offer_received.store_failed", "patient_id", patient.ID, "error", err)
	}
	if err := s.mailer.Send(patient.Email, "You received a new counter-offer", offerReceivedBody(patient.Name, businessName, actionURL)); err != nil {
		s.logger.Error("notify.offer_received.mail_failed", "patient_id", patient.ID, "error", err)
	}
}

// OfferSentToProvider tells a provider their counter-offer went out. Mail
// only, and it carries no patient contact data.
func (s *Service) OfferSentToProvider(ctx context.Context, provider *entity.Provider) {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your counter-offer for a patient quote has been generated and sent. You will be notified if the patient accepts.</p>",
		provider.BusinessName,
	)
	if err := s.mailer.Send(provider.Email, "Your counter-offer was sent", body); err != nil {
		s.logger.Error("notify.offer_sent.mail_failed", "provider_id", provider.ID, "error", err)
	}
}

// OfferAccepted tells a provider that a patient accepted their offer.
func (s *Service) OfferAccepted(ctx context.Context, provider *entity.Provider, patientName string) {
	msg := fmt.Sprintf("%s accepted your counter-offer.", patientName)
	actionURL := s.baseURL + "/provider/offers"

	if _, err := s.notifications.Create(ctx, provider.UserID, constants.NotifOfferAccepted, msg, actionURL); err != nil {
		s.logger.Error("notify.offer_accepted.store_failed", "provider_id", provider.ID, "error", err)
	}
	if err := s.mailer.Send(provider.Email, "Your counter-offer was accepted", offerAcceptedBody(provider.BusinessName, patientName, actionURL)); err != nil {
		s.logger.Error("notify.offer_accepted.mail_failed", "provider_id", provider.ID, "error", err)
	}
}

// OffersViewed clears the patient's unread new-offer notifications once the
// offers themselves have been marked viewed.
func (s *Service) OffersViewed(ctx context.Context, patientUserID uuid.UUID) {
	if err := s.notifications.MarkReadByKind(ctx, patientUserID, constants.NotifNewOffer); err != nil {
		s.logger.Error("notify.offers_viewed.mark_read_failed", "user_id", patientUserID, "error", err)
	}
}

func offerReceivedBody(patientName, businessName, actionURL string) string {
	return fmt.Sprintf(
		"<p>Hi %s,</p><p><strong>%s</strong> reviewed your dental quote and sent you a counter-offer.</p><p><a href=%q>View your offers</a></p>",
		patientName, businessName, actionURL,
	)
}

func offerAcceptedBody(businessName, patientName, actionURL string) string {
	return fmt.Sprintf(
		"<p>Hi %s,</p><p><strong>%s</strong> accepted your counter-offer.</p><p><a href=%q>View accepted offers</a></p>",
		businessName, patientName, actionURL,
	)
}
