// This file contains session handlers for task and bmi commands. Task
// commands always run against the session's owner scope.
package session

import (
	"context"
	"strconv"

	"fitnote/local-app/pkg/model"
)

// handleTaskAdd appends a task to the session's owner scope.
func handleTaskAdd(s *Session, cmd model.Command) model.Outcome {
	if len(cmd.Args) != 2 {
		return model.Fail(model.KindInvalidInput, "usage: task add <name> <due-date>")
	}
	return s.DataManager.TaskManager.Add(context.Background(), s.OwnerScope(), cmd.Args[0], cmd.Args[1])
}

// handleTaskList returns the owner scope's tasks in insertion order.
func handleTaskList(s *Session, cmd model.Command) model.Outcome {
	if len(cmd.Args) != 0 {
		return model.Fail(model.KindInvalidInput, "usage: task list")
	}

	tasks, err := s.DataManager.TaskManager.List(context.Background(), s.OwnerScope())
	if err != nil {
		return model.Fail(model.KindStorageFailure, "storage access failed")
	}
	if len(tasks) == 0 {
		return model.Ok("no tasks yet", tasks)
	}
	return model.Ok("", tasks)
}

// handleTaskUpdate replaces a task's name and due date.
func handleTaskUpdate(s *Session, cmd model.Command) model.Outcome {
	if len(cmd.Args) != 3 {
		return model.Fail(model.KindInvalidInput, "usage: task update <id> <name> <due-date>")
	}

	id, ok := parseTaskID(cmd.Args[0])
	if !ok {
		return model.Fail(model.KindInvalidInput, "task id must be a number")
	}
	return s.DataManager.TaskManager.Update(context.Background(), s.OwnerScope(), id, cmd.Args[1], cmd.Args[2])
}

// handleTaskDelete removes a task by ID.
func handleTaskDelete(s *Session, cmd model.Command) model.Outcome {
	if len(cmd.Args) != 1 {
		return model.Fail(model.KindInvalidInput, "usage: task delete <id>")
	}

	id, ok := parseTaskID(cmd.Args[0])
	if !ok {
		return model.Fail(model.KindInvalidInput, "task id must be a number")
	}
	return s.DataManager.TaskManager.Delete(context.Background(), s.OwnerScope(), id)
}

// handleTaskToggle flips a task's done flag.
func handleTaskToggle(s *Session, cmd model.Command) model.Outcome {
	if len(cmd.Args) != 1 {
		return model.Fail(model.KindInvalidInput, "usage: task toggle <id>")
	}

	id, ok := parseTaskID(cmd.Args[0])
	if !ok {
		return model.Fail(model.KindInvalidInput, "task id must be a number")
	}
	return s.DataManager.TaskManager.ToggleDone(context.Background(), s.OwnerScope(), id)
}

// handleBMICalculate computes a body mass index from height and weight.
func handleBMICalculate(s *Session, cmd model.Command) model.Outcome {
	if len(cmd.Args) != 2 {
		return model.Fail(model.KindInvalidInput, "usage: bmi calc <height-m> <weight-kg>")
	}
	return s.DataManager.BMIEngine.Calculate(cmd.Args[0], cmd.Args[1])
}

func parseTaskID(arg string) (int, bool) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, false
	}
	return id, true
}
