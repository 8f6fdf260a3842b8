package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "admin"
	RoleStudent RoleType = "student"
)

// IsValid reports whether the role is one of the closed set of roles.
func (r RoleType) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStudent:
		return true
	}
	return false
}
