package domain

// Role is the closed set of actor kinds
type Role string

const (
	RoleClient       Role = "client"
	RoleProfessional Role = "professional"
	RoleAdmin        Role = "admin"
)

// ParseRole accepts only the known roles
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleClient, RoleProfessional, RoleAdmin:
		return r, nil
	}
	return "", ErrUnknownRole
}

// Actor is the authenticated caller of an operation
type Actor struct {
	UserID string
	Role   Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
