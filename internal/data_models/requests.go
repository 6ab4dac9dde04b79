package dto

type CreateTaskRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	ScheduledTime string   `json:"scheduledTime"`
	AssignedUsers []string `json:"assignedUsers"`
}

type UpdateTaskRequest struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	ScheduledTime *string   `json:"scheduledTime"`
	AssignedUsers *[]string `json:"assignedUsers"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type SwitchRoleRequest struct {
	Role string `json:"role"`
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

type AssignmentRequest struct {
	Date               string `json:"date"`
	MorningResponsible string `json:"morningResponsible"`
	EveningResponsible string `json:"eveningResponsible"`
}
