// Package session holds the per-session state, most importantly the
// currently authenticated user, and routes commands to their handlers.
package session

import (
	"context"
	"encoding/json"
	"time"

	"fitnote/local-app/pkg/data"
	"fitnote/local-app/pkg/log"
	"fitnote/local-app/pkg/model"
)

// CommandHandler is a function type for command handlers
type CommandHandler func(*Session, model.Command) model.Outcome

// Session represents an individual user session. CurrentUser is the
// password-free projection: set on login/registration, cleared on logout,
// read-only everywhere else.
type Session struct {
	ID              string
	DataManager     *data.DataManager
	CurrentUser     *model.UserProfile
	LastActivity    time.Time
	commandHandlers map[string]map[string]CommandHandler
	logger          *log.Logger
}

// NewSession creates a new Session instance and restores the last
// authenticated user from the store, if any.
func NewSession(id string, dataManager *data.DataManager, logger *log.Logger) *Session {
	s := &Session{
		ID:           id,
		DataManager:  dataManager,
		LastActivity: time.Now(),
		logger:       logger,
	}
	s.initCommandHandlers()
	s.restoreCurrentUser()
	return s
}

// initCommandHandlers initializes the command handlers map
func (s *Session) initCommandHandlers() {
	s.commandHandlers = map[string]map[string]CommandHandler{
		"user": initUserCommandHandlers(),
		"task": initTaskCommandHandlers(),
		"bmi":  initBMICommandHandlers(),
	}
}

// CommandRun executes a command within the session context.
func (s *Session) CommandRun(cmd model.Command) model.Outcome {
	ctx := context.Background()
	s.logger.Debug(ctx, "Running command", log.Fields{"scope": cmd.Scope, "operation": cmd.Operation})

	s.LastActivity = time.Now()

	scopeHandlers, ok := s.commandHandlers[cmd.Scope]
	if !ok {
		return model.Fail(model.KindInvalidInput, "unknown command scope: "+cmd.Scope)
	}
	handler, ok := scopeHandlers[cmd.Operation]
	if !ok {
		return model.Fail(model.KindInvalidInput, "unknown operation '"+cmd.Operation+"' in scope '"+cmd.Scope+"'")
	}

	out := handler(s, cmd)
	if !out.Success {
		s.logger.Warn(ctx, "Command failed", log.Fields{"scope": cmd.Scope, "operation": cmd.Operation, "kind": out.Kind})
	}
	return out
}

// UserGet retrieves the current user projection, or nil when nobody is
// logged in.
func (s *Session) UserGet() *model.UserProfile {
	return s.CurrentUser
}

// UserSet sets the current user and persists the convenience slot used
// for auto-login on the next start.
func (s *Session) UserSet(profile model.UserProfile) {
	s.CurrentUser = &profile
	s.persistCurrentUser(profile)
}

// UserClear clears the current user and the persisted slot.
func (s *Session) UserClear() {
	s.CurrentUser = nil
	ctx := context.Background()
	if err := s.DataManager.Store.Remove(ctx, data.CurrentUserKey); err != nil {
		s.logger.Warn(ctx, "Failed to clear current-user slot", log.Fields{"error": err})
	}
}

// OwnerScope returns the partition key task operations run under: the
// logged-in user's email, or the configured guest scope.
func (s *Session) OwnerScope() string {
	if s.CurrentUser != nil {
		return s.CurrentUser.Email
	}
	return s.DataManager.Config.GuestScope
}

// persistCurrentUser writes the auto-login slot. The slot is a
// convenience: failure to write it is logged but does not fail the
// operation that triggered it.
func (s *Session) persistCurrentUser(profile model.UserProfile) {
	ctx := context.Background()
	raw, err := json.Marshal(profile)
	if err != nil {
		s.logger.Warn(ctx, "Failed to encode current-user slot", log.Fields{"error": err})
		return
	}
	if err := s.DataManager.Store.Set(ctx, data.CurrentUserKey, raw); err != nil {
		s.logger.Warn(ctx, "Failed to persist current-user slot", log.Fields{"error": err})
	}
}

// restoreCurrentUser reloads the auto-login slot, dropping it when the
// referenced record no longer exists so the session never dangles.
func (s *Session) restoreCurrentUser() {
	ctx := context.Background()

	raw, found, err := s.DataManager.Store.Get(ctx, data.CurrentUserKey)
	if err != nil || !found {
		return
	}

	var profile model.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		s.logger.Warn(ctx, "Failed to decode current-user slot", log.Fields{"error": err})
		return
	}

	_, exists, err := s.DataManager.Store.Get(ctx, data.UserKey(profile.Email))
	if err != nil || !exists {
		s.logger.Warn(ctx, "Current-user slot references a missing record", log.Fields{"email": profile.Email})
		return
	}

	s.CurrentUser = &profile
	s.logger.Info(ctx, "Restored previous session", log.Fields{"email": profile.Email})
}

// initUserCommandHandlers initializes user command handlers
func initUserCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"register": handleUserRegister,
		"login":    handleUserLogin,
		"logout":   handleUserLogout,
		"reset":    handleUserReset,
		"update":   handleUserUpdate,
		"whoami":   handleUserWhoami,
	}
}

// initTaskCommandHandlers initializes task command handlers
func initTaskCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"add":    handleTaskAdd,
		"list":   handleTaskList,
		"update": handleTaskUpdate,
		"delete": handleTaskDelete,
		"toggle": handleTaskToggle,
	}
}

// initBMICommandHandlers initializes bmi command handlers
func initBMICommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"calc": handleBMICalculate,
	}
}
