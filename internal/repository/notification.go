package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smilematch/quotes/constants"
	"github.com/smilematch/quotes/gen/ent"
	"github.com/smilematch/quotes/gen/ent/notification"
	"github.com/smilematch/quotes/internal/entity"
)

type NotificationRepository interface {
	Create(ctx context.Context, userID uuid.UUID, kind constants.NotificationKind, message, actionURL string) (*entity.Notification, error)
	ListUnread(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// MarkReadByKind marks every unread notification of one kind as read,
	// used when the user opens the screen the notifications point at.
	MarkReadByKind(ctx context.Context, userID uuid.UUID, kind constants.NotificationKind) error
}

type notificationRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewNotificationRepository(client *ent.Client, logger *slog.Logger) NotificationRepository {
	return &notificationRepo{client: client, logger: logger}
}

func (r *notificationRepo) Create(ctx context.Context, userID uuid.UUID, kind constants.NotificationKind, message, actionURL string) (*entity.Notification, error) {
	row, err := r.client.Notification.Create().
		SetUserID(userID).
		SetKind(string(kind)).
		SetMessage(message).
		SetActionURL(actionURL).
		Save(ctx)
	if err != nil {
		r.logger.Error("notification create failed", "user_id", userID, "kind", kind, "error", err)
		return nil, err
	}
	return toNotification(row), nil
}

func (r *notificationRepo) ListUnread(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	rows, err := r.client.Notification.Query().
		Where(
			notification.UserID(userID),
			notification.ReadAtIsNil(),
		).
		Order(ent.Desc(notification.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Notification, len(rows))
	for i, row := range rows {
		out[i] = toNotification(row)
	}
	return out, nil
}

func (r *notificationRepo) MarkReadByKind(ctx context.Context, userID uuid.UUID, kind constants.NotificationKind) error {
	_, err := r.client.Notification.Update().
		Where(
			notification.UserID(userID),
			notification.KindEQ(string(kind)),
			notification.ReadAtIsNil(),
		).
		SetReadAt(now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("notification mark read failed", "user_id", userID, "kind", kind, "error", err)
	}
	return err
}

func toNotification(row *ent.Notification) *entity.Notification {
	if row == nil {
		return nil
	}
	return &entity.Notification{
		ID:        row.ID,
		UserID:    row.UserID,
		Kind:      row.Kind,
		Message:   row.Message,
		ActionURL: row.ActionURL,
		ReadAt:    row.ReadAt,
		CreatedAt: row.CreatedAt,
	}
}
