package entities

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Principal is the already-authenticated identity supplied by the auth
// gateway. The core trusts it without re-verifying credentials.
type Principal struct {
	ID   string
	Role Role
}

func (p Principal) Admin() bool {
	return p.Role == RoleAdmin
}

// CanAccess reports whether the principal may read or mutate an order
// owned by userID.
func (p Principal) CanAccess(userID string) bool {
	return p.ID == userID || p.Admin()
}
