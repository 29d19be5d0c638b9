// This file contains session handlers for user account commands.
package session

import (
	"context"

	"fitnote/local-app/pkg/event"
	"fitnote/local-app/pkg/model"
)

// handleUserRegister creates a new account and logs it in.
func handleUserRegister(s *Session, cmd model.Command) model.Outcome {
	if len(cmd.Args) != 4 {
		return model.Fail(model.KindInvalidInput, "usage: user register <name> <email> <phone> <password>")
	}

	out := s.DataManager.UserManager.Register(context.Background(), cmd.Args[0], cmd.Args[1], cmd.Args[2], cmd.Args[3])
	if out.Success {
		if profile, ok := out.Data.(model.UserProfile); ok {
			s.UserSet(profile)
		}
	}
	return out
}

// handleUserLogin authenticates and binds the user to the session.
func handleUserLogin(s *Session, cmd model.Command) model.Outcome {
	if len(cmd.Args) != 2 {
		return model.Fail(model.KindInvalidInput, "usage: user login <email> <password>")
	}

	out := s.DataManager.UserManager.Login(context.Background(), cmd.Args[0], cmd.Args[1])
	if out.Success {
		if profile, ok := out.Data.(model.UserProfile); ok {
			s.UserSet(profile)
		}
	}
	return out
}

// handleUserLogout clears the session's user.
func handleUserLogout(s *Session, cmd model.Command) model.Outcome {
	if len(cmd.Args) != 0 {
		return model.Fail(model.KindInvalidInput, "usage: user logout")
	}
	if s.CurrentUser == nil {
		return model.Fail(model.KindNotLoggedIn, "no user is logged in")
	}

	profile := *s.CurrentUser
	s.UserClear()
	s.DataManager.EventManager.Publish(event.Event{Type: event.UserLoggedOut, Data: profile})
	return model.Ok("logged out", nil)
}

// handleUserReset requests a password reset for an email.
func handleUserReset(s *Session, cmd model.Command) model.Outcome {
	if len(cmd.Args) != 1 {
		return model.Fail(model.KindInvalidInput, "usage: user reset <email>")
	}
	return s.DataManager.UserManager.ResetPassword(context.Background(), cmd.Args[0])
}

// handleUserUpdate modifies the logged-in account. The new password is
// optional; omitting it keeps the current one.
func handleUserUpdate(s *Session, cmd model.Command) model.Outcome {
	if len(cmd.Args) != 4 && len(cmd.Args) != 5 {
		return model.Fail(model.KindInvalidInput, "usage: user update <name> <email> <phone> <current-password> [new-password]")
	}

	newPassword := ""
	if len(cmd.Args) == 5 {
		newPassword = cmd.Args[4]
	}

	out := s.DataManager.UserManager.Update(context.Background(), s.CurrentUser, cmd.Args[0], cmd.Args[1], cmd.Args[2], newPassword, cmd.Args[3])
	if out.Success {
		if profile, ok := out.Data.(model.UserProfile); ok {
			s.UserSet(profile)
		}
	}
	return out
}

// handleUserWhoami reports the session's current user.
func handleUserWhoami(s *Session, cmd model.Command) model.Outcome {
	if len(cmd.Args) != 0 {
		return model.Fail(model.KindInvalidInput, "usage: user whoami")
	}
	if s.CurrentUser == nil {
		return model.Ok("not logged in (guest scope)", nil)
	}
	return model.Ok("logged in as "+s.CurrentUser.Email, *s.CurrentUser)
}
