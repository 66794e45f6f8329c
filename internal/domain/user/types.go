package user

type Role string

const (
	RoleClient Role = "client"
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

// Level orders roles for "at least" checks; unknown roles rank 0.
func (r Role) Level() int {
	switch r {
	case RoleClient:
		return 1
	case RoleOwner:
		return 2
	case RoleAdmin:
		return 3
	default:
		return 0
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
