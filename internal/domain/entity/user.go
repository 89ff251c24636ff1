// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a directory member profile. One User exists per identity-provider
// subject; the role is fixed at creation and mutated only through the
// role-assignment operation.
type User struct {
	ID        string // Document ID, 24-hex.
	Subject   string // Identity-provider subject, unique.
	Email     string // Unique contact email.
	Name      string
	Phone     string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}
