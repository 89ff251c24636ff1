package entity

// Role is the role claim issued by the identity provider.
type Role string

const (
	// RoleAdmin can resolve edit requests, send notifications and read analytics.
	RoleAdmin Role = "admin"
	// RoleBusinessOwner owns at most one business listing.
	RoleBusinessOwner Role = "businessOwner"
)

// Valid reports whether the role is one the system knows about.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleBusinessOwner
}
