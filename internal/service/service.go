package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"smsbridge/internal/metrics"
	"smsbridge/internal/models"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type Notifier interface {
	Send(n models.Notification) error
}

// MessageCache remembers provider message IDs that were delivered.
type MessageCache interface {
	IsDelivered(ctx context.Context, messageID string) (bool, error)
	StoreDelivered(ctx context.Context, messageID string, deliveredAt time.Time) error
}

type MessageService struct {
	notifier Notifier
	cache    MessageCache
	logger   *zap.Logger
}

// NewMessageService wires the service; cache may be nil to disable
// redelivery detection.
func NewMessageService(notifier Notifier, cache MessageCache, logger *zap.Logger) *MessageService {
	return &MessageService{notifier: notifier, cache: cache, logger: logger}
}

// Process enriches msg and makes one delivery attempt. Only a malformed
// timestamp is returned as an error; delivery failures are logged.
func (s *MessageService) Process(ctx context.Context, msg models.InboundMessage) error {
	s.logger.Debug("inbound message", zap.Any("message", msg))
	metrics.MessagesReceived.Inc()

	guarded := s.cache != nil && msg.MessageID != ""
	if guarded {
		seen, err := s.cache.IsDelivered(ctx, msg.MessageID)
		if err != nil {
			s.logger.Warn("redelivery check failed", zap.String("message_id", msg.MessageID), zap.Error(err))
		} else if seen {
			metrics.MessagesDuplicate.Inc()
			s.logger.Info("dropping redelivered message", zap.String("message_id", msg.MessageID))
			return nil
		}
	}

	n, err := Enrich(msg)
	if err != nil {
		return err
	}

	err = s.notifier.Send(n)
	metrics.RecordDelivery(err)
	if err != nil {
		s.logger.Warn("push delivery failed", zap.String("message_id", msg.MessageID), zap.Error(err))
		return nil
	}
	s.logger.Info("message delivered", zap.String("message_id", msg.MessageID), zap.String("title", n.Title))

	// Recorded only after the send so a delivery cut short is retried by the provider.
	if guarded {
		if err := s.cache.StoreDelivered(ctx, msg.MessageID, time.Now().UTC()); err != nil {
			s.logger.Warn("failed to record delivery", zap.String("message_id", msg.MessageID), zap.Error(err))
		}
	}
	return nil
}
