package ports

import (
	"context"

	"github.com/ACX0S/Spatioo-sub001/internal/domain"
)

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
}
