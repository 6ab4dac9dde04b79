package validators

import (
	"testing"

	dto "checklist.com/daily-checklist/internal/data_models"
)

func TestNormalizeScheduledTime(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"09:00", "09:00", false},
		{"9:00", "09:00", false},
		{" 23:59 ", "23:59", false},
		{"00:00", "00:00", false},
		{"24:00", "", true},
		{"12:60", "", true},
		{"1200", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeScheduledTime(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeScheduledTime(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizeScheduledTime(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidateUpdateTaskRequest(t *testing.T) {
	empty := "   "
	req := dto.UpdateTaskRequest{Title: &empty}
	if err := ValidateUpdateTaskRequest(&req); err == nil {
		t.Error("expected error for blank title")
	}

	scheduled := "7:05"
	req = dto.UpdateTaskRequest{ScheduledTime: &scheduled}
	if err := ValidateUpdateTaskRequest(&req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *req.ScheduledTime != "07:05" {
		t.Errorf("expected 07:05, got %s", *req.ScheduledTime)
	}
}

func TestValidateCreateUserRequest_DefaultsRole(t *testing.T) {
	req := dto.CreateUserRequest{Name: " Alice ", Password: "pass1234"}
	if err := ValidateCreateUserRequest(&req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Name != "Alice" || req.Role != "user" {
		t.Errorf("unexpected normalized request %+v", req)
	}
}
