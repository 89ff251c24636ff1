package entity

import "time"

// SignupRequest is a proposed business signup payload, looked up by its
// 24-hex document identifier during onboarding.
type SignupRequest struct {
	ID           string
	BusinessName string
	BusinessType string
	OwnerName    string
	Email        string
	Phone        string
	Status       RequestStatus
	CreatedAt    time.Time
}
