package constants

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleUser   UserRole = "user"
	RoleViewer UserRole = "viewer"
)

// DisplayName is the name shown for a role when the current identity is
// switched to it.
func (r UserRole) DisplayName() string {
	switch r {
	case RoleAdmin:
		return "Администратор"
	case RoleUser:
		return "Пользователь"
	case RoleViewer:
		return "Наблюдатель"
	}
	return string(r)
}

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleViewer:
		return true
	}
	return false
}
