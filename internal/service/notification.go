package service

import (
	"context"

	"github.com/ACX0S/Spatioo-sub001/internal/domain"
	"github.com/ACX0S/Spatioo-sub001/internal/service/ports"
)

// NotificationService is the polling surface over the records the core
// emits; delivery itself belongs to external consumers.
type NotificationService struct {
	repo ports.NotificationRepo
}

func NewNotificationService(repo ports.NotificationRepo) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID string) error {
	return s.repo.MarkRead(ctx, id, userID)
}
