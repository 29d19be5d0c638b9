// Package adapter translates between interface frontends and session
// commands. The CLI adapter owns one interactive session.
package adapter

import (
	"fmt"
	"strings"

	"fitnote/local-app/pkg/log"
	"fitnote/local-app/pkg/model"
	"fitnote/local-app/pkg/session"
)

// CLIAdapter parses raw input lines into commands and runs them in its
// session.
type CLIAdapter struct {
	sessionManager *session.SessionManager
	sessionID      string
	logger         *log.Logger
}

// NewCLIAdapter creates an adapter bound to a fresh session.
func NewCLIAdapter(sessionManager *session.SessionManager, logger *log.Logger) (*CLIAdapter, error) {
	if sessionManager == nil {
		return nil, fmt.Errorf("sessionManager not initialized")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}

	s, err := sessionManager.SessionAdd()
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &CLIAdapter{
		sessionManager: sessionManager,
		sessionID:      s.ID,
		logger:         logger,
	}, nil
}

// ProcessInput parses a raw line and executes the resulting command.
func (a *CLIAdapter) ProcessInput(input string) (model.Outcome, error) {
	cmd, err := parseCommand(input)
	if err != nil {
		return model.Fail(model.KindInvalidInput, err.Error()), nil
	}
	return a.sessionManager.SessionRun(a.sessionID, cmd)
}

// Session returns the adapter's session.
func (a *CLIAdapter) Session() (*session.Session, bool) {
	return a.sessionManager.SessionGet(a.sessionID)
}

// PromptGet returns the prompt reflecting the session's current user.
func (a *CLIAdapter) PromptGet() string {
	if s, ok := a.Session(); ok && s.CurrentUser != nil {
		return s.CurrentUser.Email + " > "
	}
	return "> "
}

// Close releases the adapter's session.
func (a *CLIAdapter) Close() {
	a.sessionManager.SessionDelete(a.sessionID)
}

// parseCommand splits a line into scope, operation, and arguments.
// Arguments honor single and double quotes so names may contain spaces.
func parseCommand(input string) (model.Command, error) {
	fields, err := Tokenize(input)
	if err != nil {
		return model.Command{}, err
	}
	if len(fields) < 2 {
		return model.Command{}, fmt.Errorf("expected: <scope> <operation> [args], e.g. 'task list'")
	}

	return model.Command{
		Scope:     strings.ToLower(fields[0]),
		Operation: strings.ToLower(fields[1]),
		Args:      fields[2:],
	}, nil
}

// Tokenize splits a line into tokens, treating quoted runs as single
// tokens.
func Tokenize(input string) ([]string, error) {
	var fields []string
	var current strings.Builder
	var quote rune
	inToken := false

	for _, r := range input {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inToken = true
		case r == ' ' || r == '\t':
			if inToken {
				fields = append(fields, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(r)
			inToken = true
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unclosed quote in input")
	}
	if inToken {
		fields = append(fields, current.String())
	}
	return fields, nil
}
