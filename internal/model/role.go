package model

import "strings"

// Role is the closed set of principal roles known to the clinic.
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleDoctor Role = "DOCTOR"
)

// ParseRole normalizes a role string. The boolean is false for anything
// outside the known set.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleOwner:
		return RoleOwner, true
	case RoleDoctor:
		return RoleDoctor, true
	default:
		return "", false
	}
}

func (r Role) String() string {
	return string(r)
}
