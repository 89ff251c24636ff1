package entity

import "time"

// RequestStatus is the lifecycle state of an edit request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestDenied   RequestStatus = "denied"
)

// Terminal reports whether the status is an end state. There is no
// transition out of approved or denied.
func (s RequestStatus) Terminal() bool {
	return s == RequestApproved || s == RequestDenied
}

// EditRequest is a business owner's proposed change set for their listing.
// It is created as pending and resolved to approved or denied by an admin.
type EditRequest struct {
	ID           string // Document ID, 24-hex.
	BusinessID   string
	BusinessName string
	OwnerSubject string
	// Changes holds the proposed field values keyed by listing field name.
	Changes   map[string]string
	Status    RequestStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RequestRecord is the denormalized history copy written when an edit
// request is resolved. Records are append-only and sorted by Date descending
// when listed.
type RequestRecord struct {
	ID           string
	RequestID    string
	BusinessID   string
	BusinessName string
	Changes      map[string]string
	Status       RequestStatus
	ResolvedBy   string // Subject of the resolving admin.
	Date         time.Time
}
