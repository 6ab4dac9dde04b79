package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"checklist.com/daily-checklist/internal/persistence"
	repository "checklist.com/daily-checklist/internal/repositories"
	"checklist.com/daily-checklist/internal/services"
	"checklist.com/daily-checklist/internal/testutil"
	"checklist.com/daily-checklist/pkg/constants"
)

func setupServer(t *testing.T) (*echo.Echo, *services.StateService) {
	t.Helper()

	repo := repository.NewStateRepository(testutil.NewTestDB(t))
	adapter := persistence.NewAdapter(repo, constants.StateKey)
	queue := persistence.NewSaveQueue(adapter)
	t.Cleanup(func() { queue.Shutdown(context.Background()) })

	clock := testutil.NewClock(testutil.At(10, 0))
	state := services.NewStateService(adapter, queue, clock.Now)
	state.RefreshActivity(clock.Now())

	e := echo.New()
	Register(e, NewHandler(state), 1000)
	return e, state
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Login(t *testing.T) {
	e, state := setupServer(t)

	rec := doRequest(e, http.MethodPost, "/auth/login", `{"name":"администратор","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}

	rec = doRequest(e, http.MethodPost, "/auth/login", `{"name":"Администратор","password":"admin123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "admin123") {
		t.Error("response must not contain the password")
	}
	if !state.Snapshot().IsAuthenticated {
		t.Error("expected authenticated state")
	}
}

func TestHandler_CreateTaskValidation(t *testing.T) {
	e, state := setupServer(t)

	tests := []struct {
		name string
		body string
		code int
	}{
		{"missing title", `{"title":"  ","scheduledTime":"10:00"}`, http.StatusBadRequest},
		{"bad time", `{"title":"Check","scheduledTime":"24:00"}`, http.StatusBadRequest},
		{"invalid json", `{"title":`, http.StatusBadRequest},
		{"valid", `{"title":" Check doors ","scheduledTime":"7:30"}`, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, http.MethodPost, "/tasks", tt.body)
			if rec.Code != tt.code {
				t.Errorf("expected %d, got %d: %s", tt.code, rec.Code, rec.Body.String())
			}
		})
	}

	tasks := state.Tasks()
	if len(tasks) != 4 {
		t.Fatalf("expected 4 tasks, got %d", len(tasks))
	}
	if tasks[3].Title != "Check doors" || tasks[3].ScheduledTime != "07:30" {
		t.Errorf("expected trimmed title and padded time, got %+v", tasks[3])
	}
}

func TestHandler_AdminGate(t *testing.T) {
	e, state := setupServer(t)
	state.SwitchUserRole(constants.RoleUser)

	rec := doRequest(e, http.MethodPost, "/tasks", `{"title":"Check","scheduledTime":"10:00"}`)
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for non-admin, got %d", rec.Code)
	}
	rec = doRequest(e, http.MethodDelete, "/tasks/1", "")
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for non-admin delete, got %d", rec.Code)
	}
	if len(state.Tasks()) != 3 {
		t.Error("non-admin request changed tasks")
	}
}

func TestHandler_CompleteTask(t *testing.T) {
	e, state := setupServer(t)

	rec := doRequest(e, http.MethodGet, "/tasks/active", "")
	var active struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &active); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if active.Count != 1 {
		t.Errorf("expected 1 active task at 10:00, got %d", active.Count)
	}

	if rec := doRequest(e, http.MethodPost, "/tasks/1/complete", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec := doRequest(e, http.MethodPost, "/tasks/1/complete", ""); rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 on repeated completion, got %d", rec.Code)
	}
	if rec := doRequest(e, http.MethodPost, "/tasks/missing/complete", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing task, got %d", rec.Code)
	}

	state.SwitchUserRole(constants.RoleViewer)
	if rec := doRequest(e, http.MethodPost, "/tasks/2/complete", ""); rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for viewer, got %d", rec.Code)
	}

	if got := len(state.CompletedHistory("")); got != 1 {
		t.Errorf("expected 1 log entry, got %d", got)
	}
}

func TestHandler_Users(t *testing.T) {
	e, state := setupServer(t)

	if rec := doRequest(e, http.MethodPost, "/users", `{"name":"Alice","password":"pass1234","role":"user"}`); rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec := doRequest(e, http.MethodPost, "/users", `{"name":"alice","password":"anything","role":"admin"}`); rec.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate, got %d", rec.Code)
	}
	if rec := doRequest(e, http.MethodPost, "/users", `{"name":"Bob","password":"abc","role":"user"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for short password, got %d", rec.Code)
	}
	if rec := doRequest(e, http.MethodPost, "/users", `{"name":"Bob","password":"abcd","role":"owner"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown role, got %d", rec.Code)
	}
	if rec := doRequest(e, http.MethodDelete, "/users/1", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 deleting default admin, got %d", rec.Code)
	}

	users := state.Users()
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if rec := doRequest(e, http.MethodPatch, "/users/"+users[1].ID, `{"name":"администратор"}`); rec.Code != http.StatusConflict {
		t.Errorf("expected 409 renaming onto an existing name, got %d", rec.Code)
	}
	if rec := doRequest(e, http.MethodDelete, "/users/"+users[1].ID, ""); rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestHandler_Assignments(t *testing.T) {
	e, _ := setupServer(t)

	if rec := doRequest(e, http.MethodPut, "/assignments", `{"date":"15-01-2024","morningResponsible":"a"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad date, got %d", rec.Code)
	}
	doRequest(e, http.MethodPut, "/assignments", `{"date":"2024-01-15","morningResponsible":"a","eveningResponsible":"b"}`)
	doRequest(e, http.MethodPut, "/assignments", `{"date":"2024-01-15","morningResponsible":"c","eveningResponsible":"d"}`)

	rec := doRequest(e, http.MethodGet, "/assignments/2024-01-15", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"morningResponsible":"c"`) {
		t.Errorf("expected replaced assignment, got %s", rec.Body.String())
	}

	if rec := doRequest(e, http.MethodGet, "/assignments/2024-02-01", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_Wipe(t *testing.T) {
	e, _ := setupServer(t)

	rec := doRequest(e, http.MethodPost, "/admin/wipe", "")
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
