package entity

// Identity is the caller's resolved identity: the token subject paired with
// the stored user profile. The access gate builds exactly one Identity per
// request and hands it to handlers explicitly; no handler resolves tokens on
// its own.
type Identity struct {
	UserID  string // Document ID of the matching User record.
	Subject string // Identity-provider subject (stable external ID).
	Email   string
	Role    Role
}

// IsAdmin reports whether the caller carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
