package services

import (
	"context"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"checklist.com/daily-checklist/pkg/constants"
	model "checklist.com/daily-checklist/pkg/models"
)

type StateLoader interface {
	Load(ctx context.Context) (*model.AppState, error)
	Clear(ctx context.Context) error
}

type SnapshotSaver interface {
	Enqueue(state model.AppState) bool
	Flush(ctx context.Context) error
}

type Clock func() time.Time

// StateService owns the AppState. Every mutation goes through one of its
// methods and is followed by an asynchronous save of the full snapshot.
// SnapshotSaver.Enqueue is called with mu held and must not block.
type StateService struct {
	mu    sync.Mutex
	state model.AppState

	loader StateLoader
	saver  SnapshotSaver
	now    Clock

	// set after a data wipe; nothing is persisted again until restart
	wiped bool
}

func NewStateService(loader StateLoader, saver SnapshotSaver, now Clock) *StateService {
	if now == nil {
		now = time.Now
	}
	return &StateService{
		state:  model.BootstrapState(now()),
		loader: loader,
		saver:  saver,
		now:    now,
	}
}

// Restore replaces the bootstrap state with the last saved one. Load failures
// are logged and the bootstrap state is kept.
func (s *StateService) Restore(ctx context.Context) {
	loaded, err := s.loader.Load(ctx)
	if err != nil {
		log.Printf("failed to load app state, using defaults: %v", err)
		return
	}
	if loaded == nil {
		log.Println("no saved app state, using defaults")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = *loaded
}

func (s *StateService) persistLocked() {
	if s.wiped || s.saver == nil {
		return
	}
	s.saver.Enqueue(s.state.Clone())
}

func (s *StateService) Snapshot() model.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *StateService) CurrentUser() model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CurrentUser
}

func (s *StateService) Tasks() []model.Task {
	return s.Snapshot().Tasks
}

func (s *StateService) Users() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.Users)
}

func (s *StateService) findTaskLocked(id string) int {
	return slices.IndexFunc(s.state.Tasks, func(t model.Task) bool { return t.ID == id })
}

func (s *StateService) findUserLocked(id string) int {
	return slices.IndexFunc(s.state.Users, func(u model.User) bool { return u.ID == id })
}

func (s *StateService) canCompleteLocked(taskID string) bool {
	i := s.findTaskLocked(taskID)
	if i < 0 {
		return false
	}
	task := s.state.Tasks[i]
	current := s.state.CurrentUser

	if current.Role == constants.RoleAdmin {
		return true
	}
	if task.OpenToAll() {
		return current.Role != constants.RoleViewer
	}
	return task.AssignedTo(current.ID)
}

// CanUserCompleteTask reports whether the current user may complete the task.
func (s *StateService) CanUserCompleteTask(taskID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canCompleteLocked(taskID)
}

// CompleteTask marks the task completed and appends a log entry. It returns
// false without changing anything when the task is missing, the current user
// may not complete it, or it is already completed.
func (s *StateService) CompleteTask(taskID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findTaskLocked(taskID)
	if i < 0 {
		log.Printf("complete: task %s not found", taskID)
		return false
	}
	if !s.canCompleteLocked(taskID) {
		log.Printf("complete: user %s cannot complete task %s", s.state.CurrentUser.ID, taskID)
		return false
	}
	if s.state.Tasks[i].Completed {
		log.Printf("complete: task %s already completed", taskID)
		return false
	}

	now := s.now()
	current := s.state.CurrentUser

	task := s.state.Tasks[i].Clone()
	task.Completed = true
	task.IsActive = false
	task.CompletedAt = &now
	task.CompletedBy = current.Name
	s.state.Tasks[i] = task

	s.state.CompletedTasks = append(s.state.CompletedTasks, model.CompletedTask{
		ID:                uuid.NewString(),
		TaskID:            task.ID,
		Title:             task.Title,
		CompletedAt:       now,
		CompletedBy:       current.Name,
		CompletedByUserID: current.ID,
		Date:              model.DateString(now),
	})

	s.persistLocked()
	return true
}

// AddTask creates a pending task. Callers gate it to admins.
func (s *StateService) AddTask(input model.TaskInput) model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	assigned := slices.Clone(input.AssignedUsers)
	if assigned == nil {
		assigned = []string{}
	}

	task := model.Task{
		ID:            uuid.NewString(),
		Title:         input.Title,
		Description:   input.Description,
		ScheduledTime: input.ScheduledTime,
		AssignedUsers: assigned,
	}
	s.state.Tasks = append(s.state.Tasks, task)

	s.persistLocked()
	return task.Clone()
}

// UpdateTask merges patch into the task and recomputes its activity flag.
func (s *StateService) UpdateTask(id string, patch model.TaskPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findTaskLocked(id)
	if i < 0 {
		return false
	}
	task := s.state.Tasks[i].Apply(patch)
	task.IsActive = model.IsActiveAt(task, s.now())
	s.state.Tasks[i] = task

	s.persistLocked()
	return true
}

func (s *StateService) DeleteTask(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findTaskLocked(id)
	if i < 0 {
		return false
	}
	s.state.Tasks = slices.Delete(slices.Clone(s.state.Tasks), i, i+1)

	s.persistLocked()
	return true
}

// SetDailyAssignment replaces the assignment for the same date or appends a
// new one.
func (s *StateService) SetDailyAssignment(a model.DailyAssignment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.state.DailyAssignments, func(d model.DailyAssignment) bool {
		return d.Date == a.Date
	})
	if i >= 0 {
		s.state.DailyAssignments[i] = a
	} else {
		s.state.DailyAssignments = append(s.state.DailyAssignments, a)
	}

	s.persistLocked()
}

func (s *StateService) AssignmentFor(date string) (model.DailyAssignment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.state.DailyAssignments {
		if a.Date == date {
			return a, true
		}
	}
	return model.DailyAssignment{}, false
}

// SwitchUserRole previews another role on the current identity: role and
// display name change, the id and the authentication flag do not.
func (s *StateService) SwitchUserRole(role constants.UserRole) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.CurrentUser.Role = role
	s.state.CurrentUser.Name = role.DisplayName()

	s.persistLocked()
}

// AddUser returns false if a user with the same name, compared
// case-insensitively, already exists.
func (s *StateService) AddUser(name, password string, role constants.UserRole) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.ContainsFunc(s.state.Users, func(u model.User) bool { return u.NameMatches(name) }) {
		log.Printf("add user: %q already exists", name)
		return false
	}

	s.state.Users = append(s.state.Users, model.User{
		ID:        uuid.NewString(),
		Name:      name,
		Password:  password,
		Role:      role,
		CreatedAt: s.now(),
	})

	s.persistLocked()
	return true
}

func (s *StateService) AuthenticateUser(name, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.state.Users, func(u model.User) bool {
		return u.NameMatches(name) && u.Password == password
	})
	if i < 0 {
		return false
	}

	s.state.CurrentUser = s.state.Users[i]
	s.state.IsAuthenticated = true

	s.persistLocked()
	return true
}

func (s *StateService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin := model.DefaultAdmin(s.now())
	if i := s.findUserLocked(constants.DefaultAdminID); i >= 0 {
		admin = s.state.Users[i]
	}
	s.state.CurrentUser = admin
	s.state.IsAuthenticated = false

	s.persistLocked()
}

// DeleteUser removes a user. The default admin cannot be deleted.
func (s *StateService) DeleteUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == constants.DefaultAdminID {
		log.Println("delete user: default admin cannot be deleted")
		return false
	}
	i := s.findUserLocked(id)
	if i < 0 {
		return false
	}
	s.state.Users = slices.Delete(slices.Clone(s.state.Users), i, i+1)

	s.persistLocked()
	return true
}

func (s *StateService) UpdateUser(id string, patch model.UserPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findUserLocked(id)
	if i < 0 {
		return false
	}
	s.state.Users[i] = s.state.Users[i].Apply(patch)

	s.persistLocked()
	return true
}

// CurrentActiveTasks returns active, uncompleted tasks in list order.
func (s *StateService) CurrentActiveTasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]model.Task, 0, len(s.state.Tasks))
	for _, t := range s.state.Tasks {
		if t.IsActive && !t.Completed {
			active = append(active, t.Clone())
		}
	}
	return active
}

// RefreshActivity recomputes IsActive for every task at now. The snapshot is
// persisted only when a flag actually changed.
func (s *StateService) RefreshActivity(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	refreshed := model.RecomputeActivity(s.state.Tasks, now)
	changed := false
	for i := range refreshed {
		if refreshed[i].IsActive != s.state.Tasks[i].IsActive {
			changed = true
			break
		}
	}
	s.state.Tasks = refreshed

	if changed {
		s.persistLocked()
	}
}

// ResetIfDue runs the daily reset when now is past the cutoff hour and the
// reset has not run for today yet.
func (s *StateService) ResetIfDue(now time.Time, cutoffHour int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !model.ResetDue(now, s.state.LastResetDate, cutoffHour) {
		return false
	}

	log.Println("resetting checklist for new day")
	s.state.Tasks = model.ResetTasks(s.state.Tasks)
	s.state.LastResetDate = model.DateString(now)

	s.persistLocked()
	return true
}

// WipeData erases the persisted state. The running session keeps its
// in-memory state and stops persisting; defaults appear after a restart.
func (s *StateService) WipeData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wiped = true
	if s.saver != nil {
		if err := s.saver.Flush(ctx); err != nil {
			s.wiped = false
			log.Printf("failed to wipe app data: %v", err)
			return err
		}
	}
	if err := s.loader.Clear(ctx); err != nil {
		s.wiped = false
		log.Printf("failed to wipe app data: %v", err)
		return err
	}

	log.Println("app data wiped, restart to load defaults")
	return nil
}

// UserNameTaken reports whether a user other than exceptID has name,
// compared case-insensitively.
func (s *StateService) UserNameTaken(name, exceptID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.ContainsFunc(s.state.Users, func(u model.User) bool {
		return u.ID != exceptID && u.NameMatches(name)
	})
}
