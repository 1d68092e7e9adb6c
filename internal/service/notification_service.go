package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/SamDTech/realtor-api/internal/config"
	"github.com/SamDTech/realtor-api/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventHomeCreated, n.handleHomeCreated)
	n.dispatcher.Subscribe(events.EventInquiryCreated, n.handleInquiryCreated)
}

func (n *NotificationService) handleUserRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("UserRegistered", zap.Int64("user_id", event.UserID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleHomeCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("HomeCreated", zap.Int64("home_id", event.HomeID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleInquiryCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("InquiryCreated", zap.Int64("home_id", event.HomeID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
