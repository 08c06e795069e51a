package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/school-admission-api/pkg/sms"
)

// Notification event tags consumed by the SMS provider's templates.
const (
	NotifyEventInquiry            = "inquiry"
	NotifyEventApplication        = "application"
	NotifyEventTestScheduled      = "test_scheduled"
	NotifyEventInterviewScheduled = "interview_scheduled"
	NotifyEventAdmitted           = "admitted"
	NotifyEventEnrolled           = "enrolled"
)

// NotificationGateway sends an SMS-style message for a workflow event.
// Implementations are best-effort: the workflow never fails on a send error.
type NotificationGateway interface {
	Send(ctx context.Context, phone, event string, params map[string]string) error
}

// SMSNotificationGateway delivers notifications through the SMS provider client.
type SMSNotificationGateway struct {
	client *sms.Client
	logger *zap.Logger
}

// NewSMSNotificationGateway constructs an SMS-backed gateway.
func NewSMSNotificationGateway(client *sms.Client, logger *zap.Logger) *SMSNotificationGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SMSNotificationGateway{client: client, logger: logger}
}

// Send forwards the message to the provider.
func (g *SMSNotificationGateway) Send(ctx context.Context, phone, event string, params map[string]string) error {
	if g.client == nil {
		g.logger.Debug("sms client not configured, dropping notification", zap.String("event", event))
		return nil
	}
	return g.client.Send(ctx, phone, event, params)
}
