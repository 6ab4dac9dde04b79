package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "checklist.com/daily-checklist/internal/data_models"
	apperrors "checklist.com/daily-checklist/internal/errors"
	"checklist.com/daily-checklist/internal/http/validators"
	"checklist.com/daily-checklist/internal/services"
	"checklist.com/daily-checklist/pkg/constants"
	model "checklist.com/daily-checklist/pkg/models"
)

type Handler struct {
	state *services.StateService
}

func NewHandler(state *services.StateService) *Handler {
	return &Handler{
		state: state,
	}
}

func httpError(err error) error {
	return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
}

func (h *Handler) GetState(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewStateResponse(h.state.Snapshot()))
}

func (h *Handler) GetStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.state.Stats())
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateLoginRequest(&req); err != nil {
		return httpError(err)
	}

	if !h.state.AuthenticateUser(req.Name, req.Password) {
		return httpError(apperrors.ErrInvalidCredentials)
	}

	return c.JSON(http.StatusOK, dto.NewUserResponse(h.state.CurrentUser()))
}

func (h *Handler) Logout(c echo.Context) error {
	h.state.Logout()
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) SwitchRole(c echo.Context) error {
	var req dto.SwitchRoleRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}
	role, err := validators.ValidateRole(req.Role)
	if err != nil {
		return httpError(err)
	}

	h.state.SwitchUserRole(role)
	return c.JSON(http.StatusOK, dto.NewUserResponse(h.state.CurrentUser()))
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks := h.state.Tasks()
	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) ListActiveTasks(c echo.Context) error {
	tasks := h.state.CurrentActiveTasks()
	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return httpError(err)
	}

	task := h.state.AddTask(model.TaskInput{
		Title:         req.Title,
		Description:   req.Description,
		ScheduledTime: req.ScheduledTime,
		AssignedUsers: req.AssignedUsers,
	})

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(apperrors.ErrTaskIDRequired)
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return httpError(err)
	}

	patch := model.TaskPatch{
		Title:         req.Title,
		Description:   req.Description,
		ScheduledTime: req.ScheduledTime,
		AssignedUsers: req.AssignedUsers,
	}
	if !h.state.UpdateTask(id, patch) {
		return httpError(apperrors.ErrTaskNotFound)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(apperrors.ErrTaskIDRequired)
	}
	if !h.state.DeleteTask(id) {
		return httpError(apperrors.ErrTaskNotFound)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CanCompleteTask(c echo.Context) error {
	id := c.Param("id")
	return c.JSON(http.StatusOK, echo.Map{
		"taskId":      id,
		"canComplete": h.state.CanUserCompleteTask(id),
	})
}

func (h *Handler) CompleteTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(apperrors.ErrTaskIDRequired)
	}

	if !h.state.CompleteTask(id) {
		if !h.taskExists(id) {
			return httpError(apperrors.ErrTaskNotFound)
		}
		return httpError(apperrors.ErrCannotCompleteTask)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) taskExists(id string) bool {
	for _, t := range h.state.Tasks() {
		if t.ID == id {
			return true
		}
	}
	return false
}

func (h *Handler) GetAssignment(c echo.Context) error {
	date := c.Param("date")
	if err := validators.ValidateDate(date); err != nil {
		return httpError(err)
	}

	assignment, ok := h.state.AssignmentFor(date)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no assignment for date")
	}
	return c.JSON(http.StatusOK, assignment)
}

func (h *Handler) SetAssignment(c echo.Context) error {
	var req dto.AssignmentRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateAssignmentRequest(&req); err != nil {
		return httpError(err)
	}

	assignment := model.DailyAssignment{
		Date:               req.Date,
		MorningResponsible: req.MorningResponsible,
		EveningResponsible: req.EveningResponsible,
	}
	h.state.SetDailyAssignment(assignment)

	return c.JSON(http.StatusOK, assignment)
}

func (h *Handler) ListHistory(c echo.Context) error {
	date := c.QueryParam("date")
	if date != "" {
		if err := validators.ValidateDate(date); err != nil {
			return httpError(err)
		}
	}

	entries := h.state.CompletedHistory(date)
	return c.JSON(http.StatusOK, echo.Map{
		"count":   len(entries),
		"dates":   h.state.CompletedDates(),
		"entries": entries,
	})
}

func (h *Handler) ListUsers(c echo.Context) error {
	users := h.state.Users()
	return c.JSON(http.StatusOK, echo.Map{
		"count": len(users),
		"users": dto.NewUserResponses(users),
	})
}

func (h *Handler) CreateUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateCreateUserRequest(&req); err != nil {
		return httpError(err)
	}

	if !h.state.AddUser(req.Name, req.Password, constants.UserRole(req.Role)) {
		return httpError(apperrors.ErrUserExists)
	}

	return c.NoContent(http.StatusCreated)
}

func (h *Handler) UpdateUser(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(apperrors.ErrUserIDRequired)
	}

	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateUpdateUserRequest(&req); err != nil {
		return httpError(err)
	}
	if req.Name != nil && h.state.UserNameTaken(*req.Name, id) {
		return httpError(apperrors.ErrUserExists)
	}

	patch := model.UserPatch{
		Name:     req.Name,
		Password: req.Password,
	}
	if req.Role != nil {
		role := constants.UserRole(*req.Role)
		patch.Role = &role
	}

	if !h.state.UpdateUser(id, patch) {
		return httpError(apperrors.ErrUserNotFound)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(apperrors.ErrUserIDRequired)
	}
	if id == constants.DefaultAdminID {
		return httpError(apperrors.ErrDefaultAdminProtected)
	}
	if !h.state.DeleteUser(id) {
		return httpError(apperrors.ErrUserNotFound)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) WipeData(c echo.Context) error {
	if err := h.state.WipeData(c.Request().Context()); err != nil {
		return httpError(apperrors.ErrWipeFailed)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "app data wiped, restart to load defaults",
	})
}
