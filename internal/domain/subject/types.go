package subject

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role identifies the kind of authenticated caller. Tokens are minted by the
// external identity service; this package only names the values it may carry.
type Role string

const (
	RolePatient      Role = "patient"
	RoleProfessional Role = "professional"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RolePatient, RoleProfessional:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
