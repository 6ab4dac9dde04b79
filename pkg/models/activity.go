package model

import (
	"time"

	"checklist.com/daily-checklist/pkg/constants"
)

func TimeString(now time.Time) string {
	return now.Format(constants.TimeLayout)
}

func DateString(now time.Time) string {
	return now.Format(constants.DateLayout)
}

// IsActiveAt reports whether the task is due and still open. Scheduled times
// are fixed-width HH:MM, so string order is time order.
func IsActiveAt(t Task, now time.Time) bool {
	return !t.Completed && t.ScheduledTime <= TimeString(now)
}

// RecomputeActivity returns a copy of tasks with IsActive recomputed for now.
// No other field changes.
func RecomputeActivity(tasks []Task, now time.Time) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		c := t.Clone()
		c.IsActive = IsActiveAt(t, now)
		out[i] = c
	}
	return out
}

// ResetTasks returns a copy of tasks restored to pending.
func ResetTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		c := t.Clone()
		c.Completed = false
		c.IsActive = false
		c.CompletedAt = nil
		c.CompletedBy = ""
		out[i] = c
	}
	return out
}

// ResetDue reports whether the daily reset should run at now. A date earlier
// than lastResetDate never qualifies, so lastResetDate cannot move backwards.
func ResetDue(now time.Time, lastResetDate string, cutoffHour int) bool {
	return now.Hour() >= cutoffHour && DateString(now) > lastResetDate
}
