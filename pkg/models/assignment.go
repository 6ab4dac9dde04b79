package model

import "time"

type DailyAssignment struct {
	Date               string `json:"date"`
	MorningResponsible string `json:"morningResponsible"`
	EveningResponsible string `json:"eveningResponsible"`
}

// CompletedTask is an audit record appended on every completion. Reset never
// touches it.
type CompletedTask struct {
	ID                string    `json:"id"`
	TaskID            string    `json:"taskId"`
	Title             string    `json:"title"`
	CompletedAt       time.Time `json:"completedAt"`
	CompletedBy       string    `json:"completedBy"`
	CompletedByUserID string    `json:"completedByUserId"`
	Date              string    `json:"date"`
}
