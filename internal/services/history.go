package services

import (
	"cmp"
	"slices"

	model "checklist.com/daily-checklist/pkg/models"
)

type Stats struct {
	Tasks          int `json:"tasks"`
	ActiveTasks    int `json:"activeTasks"`
	CompletedToday int `json:"completedToday"`
	CompletedTotal int `json:"completedTotal"`
	Users          int `json:"users"`
}

// CompletedHistory returns log entries newest first. An empty date returns
// the whole log.
func (s *StateService) CompletedHistory(date string) []model.CompletedTask {
	s.mu.Lock()
	entries := make([]model.CompletedTask, 0, len(s.state.CompletedTasks))
	for _, c := range s.state.CompletedTasks {
		if date == "" || c.Date == date {
			entries = append(entries, c)
		}
	}
	s.mu.Unlock()

	slices.SortStableFunc(entries, func(a, b model.CompletedTask) int {
		return b.CompletedAt.Compare(a.CompletedAt)
	})
	return entries
}

// CompletedDates lists the distinct dates of the log, latest first.
func (s *StateService) CompletedDates() []string {
	s.mu.Lock()
	dates := make([]string, 0)
	for _, c := range s.state.CompletedTasks {
		if !slices.Contains(dates, c.Date) {
			dates = append(dates, c.Date)
		}
	}
	s.mu.Unlock()

	slices.SortFunc(dates, func(a, b string) int { return cmp.Compare(b, a) })
	return dates
}

func (s *StateService) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := model.DateString(s.now())
	stats := Stats{
		Tasks:          len(s.state.Tasks),
		CompletedTotal: len(s.state.CompletedTasks),
		Users:          len(s.state.Users),
	}
	for _, t := range s.state.Tasks {
		if t.IsActive && !t.Completed {
			stats.ActiveTasks++
		}
	}
	for _, c := range s.state.CompletedTasks {
		if c.Date == today {
			stats.CompletedToday++
		}
	}
	return stats
}
