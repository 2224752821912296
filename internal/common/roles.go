package common

import "github.com/joseph-ayodele/mowbot/constants"

// RoleOf resolves a chat user id to its configured role. Dev wins over
// Director wins over Employee when an id appears in several maps.
func (u UsersConfig) RoleOf(id int64) constants.Role {
	if _, ok := u.Devs[id]; ok {
		return constants.RoleDev
	}
	if _, ok := u.Directors[id]; ok {
		return constants.RoleDirector
	}
	if _, ok := u.Employees[id]; ok {
		return constants.RoleEmployee
	}
	return constants.RoleUnauthorized
}

// NameOf returns the configured display name for a user id, or a fallback.
func (u UsersConfig) NameOf(id int64, fallback string) string {
	for _, m := range []map[int64]string{u.Employees, u.Directors, u.Devs} {
		if name, ok := m[id]; ok {
			return name
		}
	}
	return fallback
}
