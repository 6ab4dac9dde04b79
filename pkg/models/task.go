package model

import (
	"slices"
	"time"
)

type Task struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	ScheduledTime string     `json:"scheduledTime"`
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	CompletedBy   string     `json:"completedBy,omitempty"`
	IsActive      bool       `json:"isActive"`
	AssignedUsers []string   `json:"assignedUsers"`
}

// TaskInput is the caller-provided part of a new task.
type TaskInput struct {
	Title         string
	Description   string
	ScheduledTime string
	AssignedUsers []string
}

// TaskPatch holds the fields of a partial task update. Nil fields are left
// untouched.
type TaskPatch struct {
	Title         *string
	Description   *string
	ScheduledTime *string
	AssignedUsers *[]string
}

func (t Task) Clone() Task {
	c := t
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		c.CompletedAt = &at
	}
	c.AssignedUsers = slices.Clone(t.AssignedUsers)
	return c
}

func (t Task) Apply(p TaskPatch) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.ScheduledTime != nil {
		t.ScheduledTime = *p.ScheduledTime
	}
	if p.AssignedUsers != nil {
		t.AssignedUsers = slices.Clone(*p.AssignedUsers)
	}
	return t
}

func (t Task) OpenToAll() bool {
	return len(t.AssignedUsers) == 0
}

func (t Task) AssignedTo(userID string) bool {
	return slices.Contains(t.AssignedUsers, userID)
}
