package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitnote/local-app/pkg/data"
	"fitnote/local-app/pkg/log"
	"fitnote/local-app/pkg/model"
	"fitnote/local-app/pkg/session"
	"fitnote/local-app/pkg/storage"
)

func newTestAdapter(t *testing.T) *CLIAdapter {
	t.Helper()
	store := storage.NewMemoryStore(log.NewNop())
	cfg := &model.Config{StorageDriver: "memory", GuestScope: "guest"}
	dm, err := data.NewDataManager(store, cfg, log.NewNop())
	require.NoError(t, err)
	sm, err := session.NewSessionManager(dm, log.NewNop())
	require.NoError(t, err)
	a, err := NewCLIAdapter(sm, log.NewNop())
	require.NoError(t, err)
	return a
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain fields", "task add milk 2025-07-01", []string{"task", "add", "milk", "2025-07-01"}},
		{"double quotes", `task add "buy groceries" 2025-07-01`, []string{"task", "add", "buy groceries", "2025-07-01"}},
		{"single quotes", "task add 'walk the dog' 2025-07-01", []string{"task", "add", "walk the dog", "2025-07-01"}},
		{"extra whitespace", "  task   list  ", []string{"task", "list"}},
		{"empty quotes", `user login "" pw`, []string{"user", "login", "", "pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Tokenize(`task add "unterminated 2025-07-01`)
	assert.Error(t, err)
}

func TestParseCommand(t *testing.T) {
	cmd, err := parseCommand("TASK Add 'buy groceries' 2025-07-01")
	require.NoError(t, err)
	assert.Equal(t, "task", cmd.Scope)
	assert.Equal(t, "add", cmd.Operation)
	assert.Equal(t, []string{"buy groceries", "2025-07-01"}, cmd.Args)

	_, err = parseCommand("help")
	assert.Error(t, err)
	_, err = parseCommand("")
	assert.Error(t, err)
}

func TestProcessInput(t *testing.T) {
	a := newTestAdapter(t)

	out, err := a.ProcessInput(`task add "buy groceries" 2025-07-01`)
	require.NoError(t, err)
	require.True(t, out.Success, out.Message)

	out, err = a.ProcessInput("task list")
	require.NoError(t, err)
	require.True(t, out.Success)
	tasks, ok := out.Data.([]model.Task)
	require.True(t, ok)
	require.Len(t, tasks, 1)
	assert.Equal(t, "buy groceries", tasks[0].Name)

	// A malformed line yields a failed outcome, not a transport error.
	out, err = a.ProcessInput("justoneword")
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, model.KindInvalidInput, out.Kind)
}

func TestPromptReflectsCurrentUser(t *testing.T) {
	a := newTestAdapter(t)

	assert.Equal(t, "> ", a.PromptGet())

	out, err := a.ProcessInput(`user register "Ana Silva" ana@example.com 11999990000 Secret1`)
	require.NoError(t, err)
	require.True(t, out.Success, out.Message)
	assert.Equal(t, "ana@example.com > ", a.PromptGet())

	out, err = a.ProcessInput("user logout")
	require.NoError(t, err)
	require.True(t, out.Success)
	assert.Equal(t, "> ", a.PromptGet())
}
