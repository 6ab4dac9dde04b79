package model

import (
	"slices"
	"time"

	"checklist.com/daily-checklist/pkg/constants"
)

type AppState struct {
	CurrentUser      User              `json:"currentUser"`
	Users            []User            `json:"users"`
	Tasks            []Task            `json:"tasks"`
	DailyAssignments []DailyAssignment `json:"dailyAssignments"`
	CompletedTasks   []CompletedTask   `json:"completedTasks"`
	LastResetDate    string            `json:"lastResetDate"`
	IsAuthenticated  bool              `json:"isAuthenticated"`
}

// Clone returns a deep copy; the store hands out clones only.
func (s AppState) Clone() AppState {
	c := s
	c.Users = slices.Clone(s.Users)
	c.DailyAssignments = slices.Clone(s.DailyAssignments)
	c.CompletedTasks = slices.Clone(s.CompletedTasks)
	if s.Tasks != nil {
		c.Tasks = make([]Task, len(s.Tasks))
		for i, t := range s.Tasks {
			c.Tasks[i] = t.Clone()
		}
	}
	return c
}

func DefaultAdmin(now time.Time) User {
	return User{
		ID:        constants.DefaultAdminID,
		Name:      constants.DefaultAdminName,
		Password:  constants.DefaultAdminPassword,
		Role:      constants.RoleAdmin,
		CreatedAt: now,
	}
}

func DefaultTasks() []Task {
	return []Task{
		{
			ID:            "1",
			Title:         "Проверить оборудование",
			Description:   "Убедиться, что все оборудование работает правильно",
			ScheduledTime: "09:00",
			AssignedUsers: []string{},
		},
		{
			ID:            "2",
			Title:         "Обновить отчеты",
			Description:   "Подготовить ежедневные отчеты",
			ScheduledTime: "14:00",
			AssignedUsers: []string{},
		},
		{
			ID:            "3",
			Title:         "Проверить безопасность",
			Description:   "Провести проверку безопасности",
			ScheduledTime: "18:00",
			AssignedUsers: []string{},
		},
	}
}

// BootstrapState is the state of a first run: the default admin, three seed
// tasks and nothing else.
func BootstrapState(now time.Time) AppState {
	admin := DefaultAdmin(now)
	return AppState{
		CurrentUser:      admin,
		Users:            []User{admin},
		Tasks:            DefaultTasks(),
		DailyAssignments: []DailyAssignment{},
		CompletedTasks:   []CompletedTask{},
		LastResetDate:    DateString(now),
		IsAuthenticated:  false,
	}
}
