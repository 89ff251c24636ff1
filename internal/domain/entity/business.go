package entity

import "time"

// SocialHandles groups a business's social media handles.
type SocialHandles struct {
	Facebook  string
	Instagram string
	Twitter   string
}

// Business is a directory listing. One Business exists per owning user and
// the name is unique across the directory (backed by a store-level unique
// index, not a read-then-write check).
type Business struct {
	ID           string // Document ID, 24-hex.
	OwnerSubject string // Identity-provider subject of the owning user.
	BusinessName string // Unique listing name.
	BusinessType string
	OwnerName    string
	Website      string
	Address      string
	Contact      string
	Social       SocialHandles
	Description  string

	// MembershipExpiryDate is reset to one year from "now" on each payment;
	// renewal does not extend a prior expiry.
	MembershipExpiryDate time.Time
	LastPayDate          time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MembershipActive reports whether the membership is paid up at the given time.
func (b *Business) MembershipActive(at time.Time) bool {
	return b.MembershipExpiryDate.After(at)
}
