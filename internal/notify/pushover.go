package notify

import (
	"fmt"

	"github.com/gregdel/pushover"

	"smsbridge/internal/models"
	"smsbridge/internal/secrets"
	"smsbridge/internal/service"
)

type pushoverAPI interface {
	SendMessage(message *pushover.Message, recipient *pushover.Recipient) (*pushover.Response, error)
	GetRecipientDetails(recipient *pushover.Recipient) (*pushover.RecipientDetails, error)
}

// PushoverSender delivers notifications to a single Pushover user or group.
type PushoverSender struct {
	app       pushoverAPI
	recipient *pushover.Recipient
}

var _ service.Notifier = (*PushoverSender)(nil)

// NewPushoverSender validates the credentials against Pushover before
// returning a sender; an invalid app token or user key is an error.
func NewPushoverSender(creds secrets.Credentials) (*PushoverSender, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return newPushoverSender(pushover.New(creds.AppKey), pushover.NewRecipient(creds.UserKey))
}

func newPushoverSender(app pushoverAPI, recipient *pushover.Recipient) (*PushoverSender, error) {
	if _, err := app.GetRecipientDetails(recipient); err != nil {
		return nil, fmt.Errorf("pushover authentication failed: %w", err)
	}
	return &PushoverSender{app: app, recipient: recipient}, nil
}

func (s *PushoverSender) Send(n models.Notification) error {
	msg := pushover.NewMessageWithTitle(n.Body, n.Title)
	msg.HTML = n.HTML
	if !n.Timestamp.IsZero() {
		msg.Timestamp = n.Timestamp.Unix()
	}
	if _, err := s.app.SendMessage(msg, s.recipient); err != nil {
		return fmt.Errorf("pushover send failed: %w", err)
	}
	return nil
}
