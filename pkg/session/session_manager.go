// This file manages the session collection and dispatches commands into
// individual sessions.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"

	"fitnote/local-app/pkg/data"
	"fitnote/local-app/pkg/log"
	"fitnote/local-app/pkg/model"
)

// SessionManager tracks active sessions. The application runs a single
// interactive session today, but adapters address sessions by ID so more
// can coexist.
type SessionManager struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	dataManager *data.DataManager
	logger      *log.Logger
}

// NewSessionManager creates a new session manager instance.
func NewSessionManager(dataManager *data.DataManager, logger *log.Logger) (*SessionManager, error) {
	if dataManager == nil {
		return nil, fmt.Errorf("dataManager not initialized")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}

	return &SessionManager{
		sessions:    make(map[string]*Session),
		dataManager: dataManager,
		logger:      logger,
	}, nil
}

// SessionAdd creates a new session and returns it.
func (sm *SessionManager) SessionAdd() (*Session, error) {
	id, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	session := NewSession(id, sm.dataManager, sm.logger)

	sm.mu.Lock()
	sm.sessions[id] = session
	sm.mu.Unlock()

	return session, nil
}

// SessionGet retrieves a session by ID.
func (sm *SessionManager) SessionGet(id string) (*Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	session, ok := sm.sessions[id]
	return session, ok
}

// SessionDelete removes a session by ID.
func (sm *SessionManager) SessionDelete(id string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, id)
}

// SessionRun executes a command in the identified session.
func (sm *SessionManager) SessionRun(sessionID string, cmd model.Command) (model.Outcome, error) {
	session, ok := sm.SessionGet(sessionID)
	if !ok {
		return model.Outcome{}, fmt.Errorf("session not found: %s", sessionID)
	}
	return session.CommandRun(cmd), nil
}

// generateSessionID creates a random session identifier.
func generateSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
