package constants

const (
	// TimeLayout is the zero-padded 24h format of Task.ScheduledTime.
	TimeLayout = "15:04"
	DateLayout = "2006-01-02"

	DefaultResetHour = 23

	StateKey = "workflow_app_state"

	DefaultAdminID       = "1"
	DefaultAdminName     = "Администратор"
	DefaultAdminPassword = "admin123"
)
