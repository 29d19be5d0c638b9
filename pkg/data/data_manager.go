// This file coordinates construction of the user and task managers and
// the cross-manager event wiring.
package data

import (
	"fmt"

	"fitnote/local-app/pkg/bmi"
	"fitnote/local-app/pkg/event"
	"fitnote/local-app/pkg/log"
	"fitnote/local-app/pkg/model"
	"fitnote/local-app/pkg/storage"
	"fitnote/local-app/pkg/validation"
)

// DataManager is the main struct that coordinates all data operations.
type DataManager struct {
	UserManager  *UserManager
	TaskManager  *TaskManager
	BMIEngine    *bmi.Engine
	EventManager *event.EventManager
	Store        storage.KeyValueStore
	Config       *model.Config
	Logger       *log.Logger
}

// NewDataManager creates a new DataManager instance wired over the given
// store.
func NewDataManager(store storage.KeyValueStore, cfg *model.Config, logger *log.Logger) (*DataManager, error) {
	eventManager := event.NewEventManager(logger)
	validator := validation.New()

	m := &DataManager{
		BMIEngine:    bmi.NewEngine(logger),
		EventManager: eventManager,
		Store:        store,
		Config:       cfg,
		Logger:       logger,
	}

	var err error
	m.UserManager, err = NewUserManager(store, validator, eventManager, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create UserManager: %w", err)
	}

	m.TaskManager, err = NewTaskManager(store, validator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create TaskManager: %w", err)
	}

	// Task scopes are keyed by the owner's email, so they must follow an
	// email change.
	eventManager.Subscribe(event.UserUpdated, m.TaskManager.handleUserUpdated)

	return m, nil
}
