package model

// OutcomeKind is the machine-checkable tag carried by every operation
// result, alongside the human-readable message.
type OutcomeKind string

const (
	KindOK                 OutcomeKind = "ok"
	KindMissingField       OutcomeKind = "missing_field"
	KindInvalidFormat      OutcomeKind = "invalid_format"
	KindWeakPassword       OutcomeKind = "weak_password"
	KindDuplicate          OutcomeKind = "duplicate"
	KindNotFound           OutcomeKind = "not_found"
	KindInvalidCredentials OutcomeKind = "invalid_credentials"
	KindWrongPassword      OutcomeKind = "wrong_password"
	KindNotLoggedIn        OutcomeKind = "not_logged_in"
	KindInvalidInput       OutcomeKind = "invalid_input"
	KindStorageFailure     OutcomeKind = "storage_failure"
)

// Outcome is the tagged success/failure result every public operation
// returns. The presentation layer renders Message; callers branch on
// Success and Kind, never on message text.
type Outcome struct {
	Success bool        `json:"success"`
	Kind    OutcomeKind `json:"kind"`
	Message string      `json:"message"`
	Data    any         `json:"data,omitempty"`
}

// Ok builds a successful outcome.
func Ok(message string, data any) Outcome {
	return Outcome{Success: true, Kind: KindOK, Message: message, Data: data}
}

// Fail builds a failed outcome with the given kind and display message.
func Fail(kind OutcomeKind, message string) Outcome {
	return Outcome{Success: false, Kind: kind, Message: message}
}
