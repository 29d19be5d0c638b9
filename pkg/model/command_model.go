package model

// Command represents a parsed instruction from a presentation adapter,
// addressed by scope (user, task, bmi) and operation within the scope.
type Command struct {
	Scope     string
	Operation string
	Args      []string
}
