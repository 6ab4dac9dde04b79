package validators

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	dto "checklist.com/daily-checklist/internal/data_models"
	apperrors "checklist.com/daily-checklist/internal/errors"
)

var scheduledTimePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9])$`)

// NormalizeScheduledTime accepts H:MM or HH:MM and returns zero-padded HH:MM.
func NormalizeScheduledTime(value string) (string, error) {
	m := scheduledTimePattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return "", apperrors.ErrInvalidScheduledTime
	}
	hour, _ := strconv.Atoi(m[1])
	return fmt.Sprintf("%02d:%s", hour, m[2]), nil
}

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return apperrors.ErrTitleRequired
	}
	r.Description = strings.TrimSpace(r.Description)

	scheduled, err := NormalizeScheduledTime(r.ScheduledTime)
	if err != nil {
		return err
	}
	r.ScheduledTime = scheduled
	return nil
}

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if title == "" {
			return apperrors.ErrTitleRequired
		}
		r.Title = &title
	}
	if r.Description != nil {
		description := strings.TrimSpace(*r.Description)
		r.Description = &description
	}
	if r.ScheduledTime != nil {
		scheduled, err := NormalizeScheduledTime(*r.ScheduledTime)
		if err != nil {
			return err
		}
		r.ScheduledTime = &scheduled
	}
	return nil
}
