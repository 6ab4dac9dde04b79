package dto

import (
	"time"

	model "checklist.com/daily-checklist/pkg/models"
)

// UserResponse is a user without its password.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

type StateResponse struct {
	CurrentUser      UserResponse            `json:"currentUser"`
	Users            []UserResponse          `json:"users"`
	Tasks            []model.Task            `json:"tasks"`
	DailyAssignments []model.DailyAssignment `json:"dailyAssignments"`
	CompletedTasks   []model.CompletedTask   `json:"completedTasks"`
	LastResetDate    string                  `json:"lastResetDate"`
	IsAuthenticated  bool                    `json:"isAuthenticated"`
}

func NewStateResponse(s model.AppState) StateResponse {
	return StateResponse{
		CurrentUser:      NewUserResponse(s.CurrentUser),
		Users:            NewUserResponses(s.Users),
		Tasks:            s.Tasks,
		DailyAssignments: s.DailyAssignments,
		CompletedTasks:   s.CompletedTasks,
		LastResetDate:    s.LastResetDate,
		IsAuthenticated:  s.IsAuthenticated,
	}
}
