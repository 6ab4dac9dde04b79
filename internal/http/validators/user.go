package validators

import (
	"strings"

	dto "checklist.com/daily-checklist/internal/data_models"
	apperrors "checklist.com/daily-checklist/internal/errors"
	"checklist.com/daily-checklist/pkg/constants"
)

const minPasswordLength = 4

func ValidateRole(role string) (constants.UserRole, error) {
	r := constants.UserRole(strings.TrimSpace(role))
	if !r.Valid() {
		return "", apperrors.ErrInvalidRole
	}
	return r, nil
}

func validatePassword(password string) error {
	if len([]rune(password)) < minPasswordLength {
		return apperrors.ErrPasswordTooShort
	}
	return nil
}

func ValidateCreateUserRequest(r *dto.CreateUserRequest) error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" || strings.TrimSpace(r.Password) == "" {
		return apperrors.ErrUserFieldsRequired
	}
	if err := validatePassword(r.Password); err != nil {
		return err
	}
	if r.Role == "" {
		r.Role = string(constants.RoleUser)
	}
	role, err := ValidateRole(r.Role)
	if err != nil {
		return err
	}
	r.Role = string(role)
	return nil
}

func ValidateUpdateUserRequest(r *dto.UpdateUserRequest) error {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			return apperrors.ErrUserFieldsRequired
		}
		r.Name = &name
	}
	if r.Password != nil {
		if err := validatePassword(*r.Password); err != nil {
			return err
		}
	}
	if r.Role != nil {
		role, err := ValidateRole(*r.Role)
		if err != nil {
			return err
		}
		trimmed := string(role)
		r.Role = &trimmed
	}
	return nil
}

func ValidateLoginRequest(r *dto.LoginRequest) error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" || r.Password == "" {
		return apperrors.ErrUserFieldsRequired
	}
	return nil
}
