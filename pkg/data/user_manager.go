// This file contains operations related to user accounts: registration,
// credential checks, password reset, and account updates.
package data

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"fitnote/local-app/pkg/event"
	"fitnote/local-app/pkg/log"
	"fitnote/local-app/pkg/model"
	"fitnote/local-app/pkg/storage"
	"fitnote/local-app/pkg/validation"
)

// UserOperations defines the interface for user-directory operations.
type UserOperations interface {
	Register(ctx context.Context, name, email, phone, password string) model.Outcome
	Login(ctx context.Context, email, password string) model.Outcome
	ResetPassword(ctx context.Context, email string) model.Outcome
	Update(ctx context.Context, current *model.UserProfile, name, email, phone, newPassword, currentPassword string) model.Outcome
}

// UserManager handles all user-directory operations. Records are keyed by
// email, which makes email uniqueness structural.
type UserManager struct {
	store        storage.KeyValueStore
	validator    *validation.Validator
	eventManager *event.EventManager
	logger       *log.Logger
}

// NewUserManager creates a new UserManager instance.
func NewUserManager(store storage.KeyValueStore, validator *validation.Validator, eventManager *event.EventManager, logger *log.Logger) (*UserManager, error) {
	if store == nil {
		return nil, fmt.Errorf("store not initialized")
	}
	if validator == nil {
		return nil, fmt.Errorf("validator not initialized")
	}
	if eventManager == nil {
		return nil, fmt.Errorf("eventManager not initialized")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}

	return &UserManager{
		store:        store,
		validator:    validator,
		eventManager: eventManager,
		logger:       logger,
	}, nil
}

// Register creates a new user record. All checks run before any write, so
// a failed registration leaves the store untouched.
func (um *UserManager) Register(ctx context.Context, name, email, phone, password string) model.Outcome {
	um.logger.Info(ctx, "Registering user", log.Fields{"email": email})

	if name == "" || email == "" || phone == "" || password == "" {
		return model.Fail(model.KindMissingField, "all fields are required")
	}
	if !um.validator.ValidateEmail(email) {
		return model.Fail(model.KindInvalidFormat, "invalid email address")
	}
	if !um.validator.ValidatePhone(phone) {
		return model.Fail(model.KindInvalidFormat, "phone must contain only numbers")
	}
	if err := um.validator.ValidatePassword(password); err != nil {
		return model.Fail(model.KindWeakPassword, err.Error())
	}

	// Check if the email is already registered
	_, exists, err := um.store.Get(ctx, UserKey(email))
	if err != nil {
		return um.storageFailure(ctx, "check user existence", err)
	}
	if exists {
		um.logger.Warn(ctx, "Email already registered", log.Fields{"email": email})
		return model.Fail(model.KindDuplicate, "email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		um.logger.Error(ctx, "Failed to hash password", log.Fields{"error": err})
		return model.Fail(model.KindStorageFailure, "failed to process credentials")
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		Created:      now,
		Updated:      now,
	}

	if err := um.saveUser(ctx, &user); err != nil {
		return um.storageFailure(ctx, "store user", err)
	}

	profile := user.Profile()
	um.eventManager.Publish(event.Event{Type: event.UserRegistered, Data: profile})

	um.logger.Info(ctx, "User registered successfully", log.Fields{"userID": user.ID, "email": email})
	return model.Ok("account created successfully", profile)
}

// Login verifies credentials. A missing record and a wrong password yield
// the same outcome, so the response does not leak which emails exist.
func (um *UserManager) Login(ctx context.Context, email, password string) model.Outcome {
	um.logger.Info(ctx, "Authenticating user", log.Fields{"email": email})

	if email == "" || password == "" {
		return model.Fail(model.KindMissingField, "email and password are required")
	}

	user, found, err := um.loadUser(ctx, email)
	if err != nil {
		return um.storageFailure(ctx, "load user", err)
	}
	if !found {
		um.logger.Warn(ctx, "Login for unknown email", log.Fields{"email": email})
		return model.Fail(model.KindInvalidCredentials, "invalid email or password")
	}
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		um.logger.Warn(ctx, "Authentication failed", log.Fields{"email": email})
		return model.Fail(model.KindInvalidCredentials, "invalid email or password")
	}

	profile := user.Profile()
	um.eventManager.Publish(event.Event{Type: event.UserLoggedIn, Data: profile})

	um.logger.Info(ctx, "User authenticated successfully", log.Fields{"userID": user.ID})
	return model.Ok("login successful", profile)
}

// ResetPassword simulates a password-reset dispatch. It confirms the email
// exists and mutates nothing.
func (um *UserManager) ResetPassword(ctx context.Context, email string) model.Outcome {
	um.logger.Info(ctx, "Password reset requested", log.Fields{"email": email})

	if email == "" {
		return model.Fail(model.KindMissingField, "email is required")
	}

	_, found, err := um.store.Get(ctx, UserKey(email))
	if err != nil {
		return um.storageFailure(ctx, "load user", err)
	}
	if !found {
		return model.Fail(model.KindNotFound, "email not found")
	}

	return model.Ok("password reset email sent", nil)
}

// Update modifies the current user's record. Every check precedes the
// write: a failed update leaves the stored record byte-identical. When the
// email changes the record is re-keyed and a UserUpdated event lets
// owner-scoped data follow.
func (um *UserManager) Update(ctx context.Context, current *model.UserProfile, name, email, phone, newPassword, currentPassword string) model.Outcome {
	if current == nil {
		return model.Fail(model.KindNotLoggedIn, "you must be logged in to update your account")
	}

	um.logger.Info(ctx, "Updating user", log.Fields{"userID": current.ID})

	if name == "" || email == "" || phone == "" || currentPassword == "" {
		return model.Fail(model.KindMissingField, "name, email, phone and current password are required")
	}
	if strings.TrimSpace(name) == "" {
		return model.Fail(model.KindMissingField, "name cannot be empty")
	}
	if !um.validator.ValidateEmail(email) {
		return model.Fail(model.KindInvalidFormat, "invalid email address")
	}
	if !um.validator.ValidatePhone(phone) {
		return model.Fail(model.KindInvalidFormat, "phone must contain only numbers")
	}

	user, found, err := um.loadUser(ctx, current.Email)
	if err != nil {
		return um.storageFailure(ctx, "load user", err)
	}
	if !found {
		um.logger.Error(ctx, "Session user has no stored record", log.Fields{"email": current.Email})
		return model.Fail(model.KindNotFound, "user record not found")
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(currentPassword)) != nil {
		um.logger.Warn(ctx, "Wrong current password on update", log.Fields{"userID": user.ID})
		return model.Fail(model.KindWrongPassword, "current password is incorrect")
	}

	// A changed email must not collide with another account. Records are
	// keyed by email, so any record under the new key belongs to someone
	// else.
	if email != current.Email {
		_, taken, err := um.store.Get(ctx, UserKey(email))
		if err != nil {
			return um.storageFailure(ctx, "check email availability", err)
		}
		if taken {
			return model.Fail(model.KindDuplicate, "email is already in use by another user")
		}
	}

	hash := user.PasswordHash
	if strings.TrimSpace(newPassword) != "" {
		if err := um.validator.ValidatePassword(newPassword); err != nil {
			return model.Fail(model.KindWeakPassword, err.Error())
		}
		hash, err = bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			um.logger.Error(ctx, "Failed to hash password", log.Fields{"error": err})
			return model.Fail(model.KindStorageFailure, "failed to process credentials")
		}
	}

	oldEmail := user.Email
	user.Name = name
	user.Email = email
	user.Phone = phone
	user.PasswordHash = hash
	user.Updated = time.Now()

	if err := um.saveUser(ctx, user); err != nil {
		return um.storageFailure(ctx, "store user", err)
	}
	if email != oldEmail {
		if err := um.store.Remove(ctx, UserKey(oldEmail)); err != nil {
			return um.storageFailure(ctx, "remove old user key", err)
		}
		um.eventManager.Publish(event.Event{
			Type: event.UserUpdated,
			Data: model.UserChange{OldEmail: oldEmail, NewEmail: email},
		})
	}

	um.logger.Info(ctx, "User updated successfully", log.Fields{"userID": user.ID})
	return model.Ok("account updated successfully", user.Profile())
}

// loadUser reads and decodes the user record stored under email.
func (um *UserManager) loadUser(ctx context.Context, email string) (*model.User, bool, error) {
	raw, found, err := um.store.Get(ctx, UserKey(email))
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, false, fmt.Errorf("%w: failed to decode user record: %v", storage.ErrStorage, err)
	}
	return &user, true, nil
}

// saveUser encodes and stores the user record under its email key.
func (um *UserManager) saveUser(ctx context.Context, user *model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: failed to encode user record: %v", storage.ErrStorage, err)
	}
	return um.store.Set(ctx, UserKey(user.Email), raw)
}

// storageFailure logs a substrate fault and maps it to the single
// storage-failure outcome the presentation layer knows about.
func (um *UserManager) storageFailure(ctx context.Context, op string, err error) model.Outcome {
	um.logger.Error(ctx, "Storage access failed", log.Fields{"operation": op, "error": err})
	return model.Fail(model.KindStorageFailure, "storage access failed")
}
