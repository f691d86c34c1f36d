package auth

import "fmt"

// Role is the closed set of account roles. Every gate matches on it
// exhaustively; there is no fallthrough for unknown values.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// ParseRole validates a raw role string against the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RolePatient, RoleDoctor, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("invalid role: %q", s)
	}
}

func (r Role) String() string { return string(r) }
