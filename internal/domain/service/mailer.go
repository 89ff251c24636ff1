package service

import "context"

// Attachment is a file attached to an outbound mail.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Mail is a composed message handed to the external relay.
type Mail struct {
	To          []string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Mailer transmits mail through the external SMTP relay. The credential
// handshake happens once per Send; no connection is reused across calls.
// A non-nil error means the relay did not accept the message.
type Mailer interface {
	Send(ctx context.Context, mail *Mail) (messageID string, err error)
}
