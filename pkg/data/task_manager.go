// This file contains operations related to task management within an
// owner scope.
package data

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fitnote/local-app/pkg/event"
	"fitnote/local-app/pkg/log"
	"fitnote/local-app/pkg/model"
	"fitnote/local-app/pkg/storage"
	"fitnote/local-app/pkg/validation"
)

// TaskOperations defines the interface for task-list operations.
type TaskOperations interface {
	Add(ctx context.Context, owner, name, dueDate string) model.Outcome
	Update(ctx context.Context, owner string, id int, name, dueDate string) model.Outcome
	Delete(ctx context.Context, owner string, id int) model.Outcome
	ToggleDone(ctx context.Context, owner string, id int) model.Outcome
	List(ctx context.Context, owner string) ([]model.Task, error)
}

// TaskManager handles the task lists. Each owner scope persists as one
// ordered document, so listing order is insertion order and IDs stay
// creation-ordered within the scope.
type TaskManager struct {
	store     storage.KeyValueStore
	validator *validation.Validator
	logger    *log.Logger
}

// NewTaskManager creates a new TaskManager instance.
func NewTaskManager(store storage.KeyValueStore, validator *validation.Validator, logger *log.Logger) (*TaskManager, error) {
	if store == nil {
		return nil, fmt.Errorf("store not initialized")
	}
	if validator == nil {
		return nil, fmt.Errorf("validator not initialized")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}

	return &TaskManager{
		store:     store,
		validator: validator,
		logger:    logger,
	}, nil
}

// Add appends a new task to the owner scope.
func (tm *TaskManager) Add(ctx context.Context, owner, name, dueDate string) model.Outcome {
	tm.logger.Info(ctx, "Adding task", log.Fields{"owner": owner, "name": name})

	if name == "" || dueDate == "" {
		return model.Fail(model.KindMissingField, "task name and due date are required")
	}
	if !tm.validator.ValidateDate(dueDate) {
		return model.Fail(model.KindInvalidFormat, "due date must be a valid date (YYYY-MM-DD)")
	}

	doc, err := tm.loadDocument(ctx, owner)
	if err != nil {
		return tm.storageFailure(ctx, "load task list", err)
	}

	now := time.Now()
	task := model.Task{
		ID:      doc.NextID,
		Name:    name,
		DueDate: dueDate,
		Created: now,
		Updated: now,
	}
	doc.NextID++
	doc.Tasks = append(doc.Tasks, task)

	if err := tm.saveDocument(ctx, owner, doc); err != nil {
		return tm.storageFailure(ctx, "store task list", err)
	}

	tm.logger.Info(ctx, "Task added successfully", log.Fields{"owner": owner, "taskID": task.ID})
	return model.Ok("task added successfully", task)
}

// Update replaces a task's name and due date in place. The ID and done
// flag are unchanged.
func (tm *TaskManager) Update(ctx context.Context, owner string, id int, name, dueDate string) model.Outcome {
	tm.logger.Info(ctx, "Updating task", log.Fields{"owner": owner, "taskID": id})

	if name == "" || dueDate == "" {
		return model.Fail(model.KindMissingField, "task name and due date are required")
	}
	if !tm.validator.ValidateDate(dueDate) {
		return model.Fail(model.KindInvalidFormat, "due date must be a valid date (YYYY-MM-DD)")
	}

	doc, err := tm.loadDocument(ctx, owner)
	if err != nil {
		return tm.storageFailure(ctx, "load task list", err)
	}

	idx := findTask(doc.Tasks, id)
	if idx < 0 {
		tm.logger.Warn(ctx, "Task not found", log.Fields{"owner": owner, "taskID": id})
		return model.Fail(model.KindNotFound, "task not found")
	}

	doc.Tasks[idx].Name = name
	doc.Tasks[idx].DueDate = dueDate
	doc.Tasks[idx].Updated = time.Now()

	if err := tm.saveDocument(ctx, owner, doc); err != nil {
		return tm.storageFailure(ctx, "store task list", err)
	}

	tm.logger.Info(ctx, "Task updated successfully", log.Fields{"owner": owner, "taskID": id})
	return model.Ok("task updated successfully", doc.Tasks[idx])
}

// Delete removes a task. Deleting an absent ID is a no-op, not an error.
func (tm *TaskManager) Delete(ctx context.Context, owner string, id int) model.Outcome {
	tm.logger.Info(ctx, "Deleting task", log.Fields{"owner": owner, "taskID": id})

	doc, err := tm.loadDocument(ctx, owner)
	if err != nil {
		return tm.storageFailure(ctx, "load task list", err)
	}

	idx := findTask(doc.Tasks, id)
	if idx < 0 {
		return model.Ok("task deleted", nil)
	}

	doc.Tasks = append(doc.Tasks[:idx], doc.Tasks[idx+1:]...)
	if err := tm.saveDocument(ctx, owner, doc); err != nil {
		return tm.storageFailure(ctx, "store task list", err)
	}

	tm.logger.Info(ctx, "Task deleted successfully", log.Fields{"owner": owner, "taskID": id})
	return model.Ok("task deleted", nil)
}

// ToggleDone flips a task's done flag. An absent ID is a no-op.
func (tm *TaskManager) ToggleDone(ctx context.Context, owner string, id int) model.Outcome {
	tm.logger.Info(ctx, "Toggling task", log.Fields{"owner": owner, "taskID": id})

	doc, err := tm.loadDocument(ctx, owner)
	if err != nil {
		return tm.storageFailure(ctx, "load task list", err)
	}

	idx := findTask(doc.Tasks, id)
	if idx < 0 {
		return model.Ok("task status updated", nil)
	}

	doc.Tasks[idx].Done = !doc.Tasks[idx].Done
	doc.Tasks[idx].Updated = time.Now()

	if err := tm.saveDocument(ctx, owner, doc); err != nil {
		return tm.storageFailure(ctx, "store task list", err)
	}

	return model.Ok("task status updated", doc.Tasks[idx])
}

// List returns the owner scope's tasks in insertion order.
func (tm *TaskManager) List(ctx context.Context, owner string) ([]model.Task, error) {
	doc, err := tm.loadDocument(ctx, owner)
	if err != nil {
		return nil, err
	}
	return doc.Tasks, nil
}

// handleUserUpdated moves a scope's task document when its owner's email
// changes, so the list follows the account.
func (tm *TaskManager) handleUserUpdated(e event.Event) {
	change, ok := e.Data.(model.UserChange)
	if !ok {
		return
	}

	ctx := context.Background()
	tm.logger.Info(ctx, "Re-keying task scope", log.Fields{"old": change.OldEmail, "new": change.NewEmail})

	raw, found, err := tm.store.Get(ctx, TaskScopeKey(change.OldEmail))
	if err != nil {
		tm.logger.Error(ctx, "Failed to load task scope for re-keying", log.Fields{"error": err})
		return
	}
	if !found {
		return
	}
	if err := tm.store.Set(ctx, TaskScopeKey(change.NewEmail), raw); err != nil {
		tm.logger.Error(ctx, "Failed to move task scope", log.Fields{"error": err})
		return
	}
	if err := tm.store.Remove(ctx, TaskScopeKey(change.OldEmail)); err != nil {
		tm.logger.Error(ctx, "Failed to remove old task scope", log.Fields{"error": err})
	}
}

// loadDocument reads an owner scope's task document; an absent key yields
// an empty document with the ID counter at 1.
func (tm *TaskManager) loadDocument(ctx context.Context, owner string) (*model.TaskDocument, error) {
	raw, found, err := tm.store.Get(ctx, TaskScopeKey(owner))
	if err != nil {
		return nil, err
	}
	if !found {
		return &model.TaskDocument{NextID: 1}, nil
	}

	var doc model.TaskDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode task document: %v", storage.ErrStorage, err)
	}
	if doc.NextID < 1 {
		doc.NextID = 1
	}
	return &doc, nil
}

// saveDocument encodes and stores an owner scope's task document.
func (tm *TaskManager) saveDocument(ctx context.Context, owner string, doc *model.TaskDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: failed to encode task document: %v", storage.ErrStorage, err)
	}
	return tm.store.Set(ctx, TaskScopeKey(owner), raw)
}

func (tm *TaskManager) storageFailure(ctx context.Context, op string, err error) model.Outcome {
	tm.logger.Error(ctx, "Storage access failed", log.Fields{"operation": op, "error": err})
	return model.Fail(model.KindStorageFailure, "storage access failed")
}

func findTask(tasks []model.Task, id int) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
