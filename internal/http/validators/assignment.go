package validators

import (
	"strings"
	"time"

	dto "checklist.com/daily-checklist/internal/data_models"
	apperrors "checklist.com/daily-checklist/internal/errors"
	"checklist.com/daily-checklist/pkg/constants"
)

func ValidateDate(date string) error {
	if _, err := time.Parse(constants.DateLayout, date); err != nil {
		return apperrors.ErrInvalidDate
	}
	return nil
}

func ValidateAssignmentRequest(r *dto.AssignmentRequest) error {
	r.Date = strings.TrimSpace(r.Date)
	r.MorningResponsible = strings.TrimSpace(r.MorningResponsible)
	r.EveningResponsible = strings.TrimSpace(r.EveningResponsible)
	return ValidateDate(r.Date)
}
