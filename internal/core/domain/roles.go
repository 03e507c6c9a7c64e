package domain

import "fmt"

// Role is the account role. It is stored as a string in the users table but
// handled as a closed enumeration everywhere else; decision points switch
// exhaustively on it so a new role is a compile-visible change.
type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

// ParseRole converts a raw string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleJobSeeker, RoleEmployer, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("invalid role: %q", s)
}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleJobSeeker, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// RegistrableRoles are the roles a user may pick at registration.
// Admin accounts are seeded, never self-registered.
var RegistrableRoles = []Role{RoleJobSeeker, RoleEmployer}

// Registrable reports whether the role may be chosen at registration.
func (r Role) Registrable() bool {
	for _, allowed := range RegistrableRoles {
		if r == allowed {
			return true
		}
	}
	return false
}
