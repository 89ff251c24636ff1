package entity

import "time"

// Recipient selects who a notification goes to: a direct address or every
// business of a given type. Exactly one field is set; the type cannot
// express "both", callers validate "neither".
type Recipient struct {
	Address      string // Direct email address.
	BusinessType string // Broadcast: all businesses of this type.
}

// Broadcast reports whether the recipient is a business-type broadcast.
func (r Recipient) Broadcast() bool {
	return r.BusinessType != ""
}

// SentMessage is the immutable audit record persisted after a notification
// was accepted by the mail relay. Attachments holds object-storage keys,
// not payloads.
type SentMessage struct {
	ID          string
	Subject     string
	Body        string
	Attachments []string
	Recipient   Recipient
	SentBy      string // Subject of the sending admin.
	CreatedAt   time.Time
}
