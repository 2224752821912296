package constants

// Role is the caller's resolved role. Role resolution is a config lookup,
// not an authorization system.
type Role string

const (
	RoleDev          Role = "Dev"
	RoleDirector     Role = "Director"
	RoleEmployee     Role = "Employee"
	RoleUnauthorized Role = "Unauthorized"
)
