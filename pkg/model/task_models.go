package model

import "time"

// Task represents a single to-do item within an owner scope.
type Task struct {
	ID      int       `json:"id"`
	Name    string    `json:"name"`
	DueDate string    `json:"due_date"`
	Done    bool      `json:"done"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// TaskDocument is the persisted form of one owner scope's task list: the
// tasks in insertion order plus the counter that keeps IDs creation-ordered
// within the scope.
type TaskDocument struct {
	NextID int    `json:"next_id"`
	Tasks  []Task `json:"tasks"`
}
