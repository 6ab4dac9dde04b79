package model

import (
	"strings"
	"time"

	"checklist.com/daily-checklist/pkg/constants"
)

type User struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Password  string             `json:"password"`
	Role      constants.UserRole `json:"role"`
	CreatedAt time.Time          `json:"createdAt"`
}

type UserPatch struct {
	Name     *string
	Password *string
	Role     *constants.UserRole
}

func (u User) Apply(p UserPatch) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	return u
}

// NameMatches compares user names case-insensitively.
func (u User) NameMatches(name string) bool {
	return strings.EqualFold(u.Name, name)
}

func (u User) IsDefaultAdmin() bool {
	return u.ID == constants.DefaultAdminID
}
