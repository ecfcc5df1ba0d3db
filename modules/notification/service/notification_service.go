package service

import (
	"context"
	"time"

	coreEntity "rsvp-manager/core/entity"
	"rsvp-manager/core/params"
	"rsvp-manager/modules/notification/dto"
	"rsvp-manager/modules/notification/entity"
	"rsvp-manager/modules/notification/repository"
)

type NotificationService struct {
	repo   *repository.NotificationRepository
	broker *Broker
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{
		repo:   repo,
		broker: NewBroker(),
	}
}

// Create persists a notification and fans it out to live SSE subscribers.
func (s *NotificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) error {
	notifType := req.Type
	if notifType == "" {
		notifType = entity.TypeRSVPUpdate
	}

	notif := &entity.Notification{
		Title:   req.Title,
		Message: req.Message,
		Type:    notifType,
		Data:    entity.JSONB(req.Data),
		IsRead:  false,
		BaseEntity: coreEntity.BaseEntity{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	if req.GuestID != "" {
		notif.GuestID = &req.GuestID
	}

	if err := s.repo.Create(ctx, notif); err != nil {
		return err
	}

	s.broker.Publish(notif)
	return nil
}

func (s *NotificationService) List(ctx context.Context, queryParams params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	return s.repo.List(ctx, queryParams)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, ids []string) error {
	return s.repo.MarkAsRead(ctx, ids)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context) error {
	return s.repo.MarkAllAsRead(ctx)
}

func (s *NotificationService) CountUnread(ctx context.Context) (int, error) {
	return s.repo.CountUnread(ctx)
}

// Subscribe registers a live feed subscriber. The returned cancel func must
// be called when the consumer goes away.
func (s *NotificationService) Subscribe() (<-chan *entity.Notification, func()) {
	return s.broker.Subscribe()
}
