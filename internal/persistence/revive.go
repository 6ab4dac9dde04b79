package persistence

import (
	"fmt"
	"time"

	"checklist.com/daily-checklist/pkg/constants"
	model "checklist.com/daily-checklist/pkg/models"
)

// The stored* types mirror the persisted layout with timestamps kept as
// strings, so every timestamp is parsed explicitly on load.

type storedUser struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Password  string             `json:"password"`
	Role      constants.UserRole `json:"role"`
	CreatedAt string             `json:"createdAt"`
}

type storedTask struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	ScheduledTime string   `json:"scheduledTime"`
	Completed     bool     `json:"completed"`
	CompletedAt   string   `json:"completedAt"`
	CompletedBy   string   `json:"completedBy"`
	IsActive      bool     `json:"isActive"`
	AssignedUsers []string `json:"assignedUsers"`
}

type storedCompletedTask struct {
	ID                string `json:"id"`
	TaskID            string `json:"taskId"`
	Title             string `json:"title"`
	CompletedAt       string `json:"completedAt"`
	CompletedBy       string `json:"completedBy"`
	CompletedByUserID string `json:"completedByUserId"`
	Date              string `json:"date"`
}

type storedState struct {
	CurrentUser      storedUser              `json:"currentUser"`
	Users            []storedUser            `json:"users"`
	Tasks            []storedTask            `json:"tasks"`
	DailyAssignments []model.DailyAssignment `json:"dailyAssignments"`
	CompletedTasks   []storedCompletedTask   `json:"completedTasks"`
	LastResetDate    string                  `json:"lastResetDate"`
	IsAuthenticated  bool                    `json:"isAuthenticated"`
}

func parseTimestamp(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", field, err)
	}
	return t, nil
}

func (u storedUser) revive() (model.User, error) {
	createdAt, err := parseTimestamp("user "+u.ID+" createdAt", u.CreatedAt)
	if err != nil {
		return model.User{}, err
	}
	return model.User{
		ID:        u.ID,
		Name:      u.Name,
		Password:  u.Password,
		Role:      u.Role,
		CreatedAt: createdAt,
	}, nil
}

func (t storedTask) revive() (model.Task, error) {
	task := model.Task{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		ScheduledTime: t.ScheduledTime,
		Completed:     t.Completed,
		CompletedBy:   t.CompletedBy,
		IsActive:      t.IsActive,
		AssignedUsers: t.AssignedUsers,
	}
	if task.AssignedUsers == nil {
		task.AssignedUsers = []string{}
	}
	if t.CompletedAt != "" {
		at, err := parseTimestamp("task "+t.ID+" completedAt", t.CompletedAt)
		if err != nil {
			return model.Task{}, err
		}
		task.CompletedAt = &at
	}
	return task, nil
}

func (c storedCompletedTask) revive() (model.CompletedTask, error) {
	at, err := parseTimestamp("completed task "+c.ID+" completedAt", c.CompletedAt)
	if err != nil {
		return model.CompletedTask{}, err
	}
	return model.CompletedTask{
		ID:                c.ID,
		TaskID:            c.TaskID,
		Title:             c.Title,
		CompletedAt:       at,
		CompletedBy:       c.CompletedBy,
		CompletedByUserID: c.CompletedByUserID,
		Date:              c.Date,
	}, nil
}

func (s storedState) revive() (*model.AppState, error) {
	current, err := s.CurrentUser.revive()
	if err != nil {
		return nil, err
	}

	state := &model.AppState{
		CurrentUser:      current,
		Users:            make([]model.User, 0, len(s.Users)),
		Tasks:            make([]model.Task, 0, len(s.Tasks)),
		DailyAssignments: s.DailyAssignments,
		CompletedTasks:   make([]model.CompletedTask, 0, len(s.CompletedTasks)),
		LastResetDate:    s.LastResetDate,
		IsAuthenticated:  s.IsAuthenticated,
	}
	if state.DailyAssignments == nil {
		state.DailyAssignments = []model.DailyAssignment{}
	}

	for _, u := range s.Users {
		user, err := u.revive()
		if err != nil {
			return nil, err
		}
		state.Users = append(state.Users, user)
	}
	for _, t := range s.Tasks {
		task, err := t.revive()
		if err != nil {
			return nil, err
		}
		state.Tasks = append(state.Tasks, task)
	}
	for _, c := range s.CompletedTasks {
		entry, err := c.revive()
		if err != nil {
			return nil, err
		}
		state.CompletedTasks = append(state.CompletedTasks, entry)
	}

	return state, nil
}
