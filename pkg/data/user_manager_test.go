package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitnote/local-app/pkg/log"
	"fitnote/local-app/pkg/model"
	"fitnote/local-app/pkg/storage"
)

func newTestManager(t *testing.T) (*DataManager, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore(log.NewNop())
	cfg := &model.Config{StorageDriver: "memory", GuestScope: "guest"}
	dm, err := NewDataManager(store, cfg, log.NewNop())
	require.NoError(t, err)
	return dm, store
}

func registerTestUser(t *testing.T, dm *DataManager) model.UserProfile {
	t.Helper()
	out := dm.UserManager.Register(context.Background(), "Ana Silva", "ana@example.com", "11999990000", "Secret1")
	require.True(t, out.Success, out.Message)
	profile, ok := out.Data.(model.UserProfile)
	require.True(t, ok)
	return profile
}

func TestRegisterAndLogin(t *testing.T) {
	dm, _ := newTestManager(t)
	ctx := context.Background()

	profile := registerTestUser(t, dm)
	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, "Ana Silva", profile.Name)
	assert.Equal(t, "ana@example.com", profile.Email)

	out := dm.UserManager.Login(ctx, "ana@example.com", "Secret1")
	require.True(t, out.Success)
	got, ok := out.Data.(model.UserProfile)
	require.True(t, ok)
	assert.Equal(t, profile.ID, got.ID)
}

func TestRegisterValidation(t *testing.T) {
	dm, _ := newTestManager(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		email    string
		phone    string
		password string
		kind     model.OutcomeKind
	}{
		{"missing name", "", "a@b.co", "123", "Secret1", model.KindMissingField},
		{"missing password", "Ana", "a@b.co", "123", "", model.KindMissingField},
		{"bad email", "Ana", "not-an-email", "123", "Secret1", model.KindInvalidFormat},
		{"bad phone", "Ana", "a@b.co", "12-34", "Secret1", model.KindInvalidFormat},
		{"weak password", "Ana", "a@b.co", "123", "secret1", model.KindWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := dm.UserManager.Register(ctx, tt.userName, tt.email, tt.phone, tt.password)
			require.False(t, out.Success)
			assert.Equal(t, tt.kind, out.Kind)
		})
	}
}

func TestRegisterDuplicateLeavesRecordUntouched(t *testing.T) {
	dm, store := newTestManager(t)
	ctx := context.Background()

	registerTestUser(t, dm)
	before, found, err := store.Get(ctx, UserKey("ana@example.com"))
	require.NoError(t, err)
	require.True(t, found)

	out := dm.UserManager.Register(ctx, "Other Name", "ana@example.com", "11888880000", "Other1x")
	require.False(t, out.Success)
	assert.Equal(t, model.KindDuplicate, out.Kind)

	after, _, err := store.Get(ctx, UserKey("ana@example.com"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLoginDoesNotLeakAccountExistence(t *testing.T) {
	dm, _ := newTestManager(t)
	ctx := context.Background()

	registerTestUser(t, dm)

	unknown := dm.UserManager.Login(ctx, "nobody@example.com", "Secret1")
	wrongPw := dm.UserManager.Login(ctx, "ana@example.com", "Wrong1x")

	require.False(t, unknown.Success)
	require.False(t, wrongPw.Success)
	assert.Equal(t, model.KindInvalidCredentials, unknown.Kind)
	assert.Equal(t, model.KindInvalidCredentials, wrongPw.Kind)
	assert.Equal(t, unknown.Message, wrongPw.Message)
}

func TestResetPasswordMutatesNothing(t *testing.T) {
	dm, store := newTestManager(t)
	ctx := context.Background()

	registerTestUser(t, dm)
	before, _, err := store.Get(ctx, UserKey("ana@example.com"))
	require.NoError(t, err)

	out := dm.UserManager.ResetPassword(ctx, "ana@example.com")
	require.True(t, out.Success)

	after, _, err := store.Get(ctx, UserKey("ana@example.com"))
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// Old credentials still work.
	assert.True(t, dm.UserManager.Login(ctx, "ana@example.com", "Secret1").Success)

	notFound := dm.UserManager.ResetPassword(ctx, "nobody@example.com")
	require.False(t, notFound.Success)
	assert.Equal(t, model.KindNotFound, notFound.Kind)
}

func TestUpdateRequiresLogin(t *testing.T) {
	dm, _ := newTestManager(t)

	out := dm.UserManager.Update(context.Background(), nil, "Ana", "a@b.co", "123", "", "Secret1")
	require.False(t, out.Success)
	assert.Equal(t, model.KindNotLoggedIn, out.Kind)
}

func TestUpdateWrongPasswordLeavesRecordUntouched(t *testing.T) {
	dm, store := newTestManager(t)
	ctx := context.Background()

	profile := registerTestUser(t, dm)
	before, _, err := store.Get(ctx, UserKey("ana@example.com"))
	require.NoError(t, err)

	out := dm.UserManager.Update(ctx, &profile, "New Name", "ana@example.com", "11888880000", "", "Wrong1x")
	require.False(t, out.Success)
	assert.Equal(t, model.KindWrongPassword, out.Kind)

	after, _, err := store.Get(ctx, UserKey("ana@example.com"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdateBlankNameRejected(t *testing.T) {
	dm, _ := newTestManager(t)
	profile := registerTestUser(t, dm)

	out := dm.UserManager.Update(context.Background(), &profile, "   ", "ana@example.com", "11999990000", "", "Secret1")
	require.False(t, out.Success)
	assert.Equal(t, model.KindMissingField, out.Kind)
	assert.Equal(t, "name cannot be empty", out.Message)
}

func TestUpdateChangesFieldsAndPassword(t *testing.T) {
	dm, _ := newTestManager(t)
	ctx := context.Background()

	profile := registerTestUser(t, dm)

	out := dm.UserManager.Update(ctx, &profile, "Ana Souza", "ana@example.com", "11888880000", "Newpass2", "Secret1")
	require.True(t, out.Success, out.Message)
	updated, ok := out.Data.(model.UserProfile)
	require.True(t, ok)
	assert.Equal(t, "Ana Souza", updated.Name)
	assert.Equal(t, "11888880000", updated.Phone)
	assert.Equal(t, profile.ID, updated.ID)

	// Old password no longer works, new one does.
	assert.False(t, dm.UserManager.Login(ctx, "ana@example.com", "Secret1").Success)
	assert.True(t, dm.UserManager.Login(ctx, "ana@example.com", "Newpass2").Success)
}

func TestUpdateEmailChangeRekeysRecordAndTasks(t *testing.T) {
	dm, store := newTestManager(t)
	ctx := context.Background()

	profile := registerTestUser(t, dm)
	require.True(t, dm.TaskManager.Add(ctx, profile.Email, "buy groceries", "2025-07-01").Success)

	out := dm.UserManager.Update(ctx, &profile, "Ana Silva", "ana.souza@example.com", "11999990000", "", "Secret1")
	require.True(t, out.Success, out.Message)

	// The user record moved to the new key.
	_, oldFound, err := store.Get(ctx, UserKey("ana@example.com"))
	require.NoError(t, err)
	assert.False(t, oldFound)
	_, newFound, err := store.Get(ctx, UserKey("ana.souza@example.com"))
	require.NoError(t, err)
	assert.True(t, newFound)

	// The task scope followed the email change.
	tasks, err := dm.TaskManager.List(ctx, "ana.souza@example.com")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "buy groceries", tasks[0].Name)

	old, err := dm.TaskManager.List(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Empty(t, old)
}

func TestUpdateEmailTakenByAnotherAccount(t *testing.T) {
	dm, _ := newTestManager(t)
	ctx := context.Background()

	profile := registerTestUser(t, dm)
	other := dm.UserManager.Register(ctx, "Bea Costa", "bea@example.com", "11777770000", "Secret2")
	require.True(t, other.Success)

	out := dm.UserManager.Update(ctx, &profile, "Ana Silva", "bea@example.com", "11999990000", "", "Secret1")
	require.False(t, out.Success)
	assert.Equal(t, model.KindDuplicate, out.Kind)

	// Both accounts are still reachable under their own emails.
	assert.True(t, dm.UserManager.Login(ctx, "ana@example.com", "Secret1").Success)
	assert.True(t, dm.UserManager.Login(ctx, "bea@example.com", "Secret2").Success)
}

func TestUpdateWeakNewPasswordRejected(t *testing.T) {
	dm, _ := newTestManager(t)
	ctx := context.Background()

	profile := registerTestUser(t, dm)

	out := dm.UserManager.Update(ctx, &profile, "Ana Silva", "ana@example.com", "11999990000", "weak", "Secret1")
	require.False(t, out.Success)
	assert.Equal(t, model.KindWeakPassword, out.Kind)

	// The current password is untouched.
	assert.True(t, dm.UserManager.Login(ctx, "ana@example.com", "Secret1").Success)
}
