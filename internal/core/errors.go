package core

// Error codes for domain errors.
const (
	ErrCodeMissingFields   = "missing_fields"
	ErrCodeUnauthorized    = "unauthorized"
	ErrCodeNotAMember      = "not_a_member"
	ErrCodeRoomNotFound    = "room_not_found"
	ErrCodeRoomExists      = "room_exists"
	ErrCodeDefaultRoom     = "default_room"
	ErrCodePrivateDisabled = "private_disabled"
)

// CoreError wraps a code and human-readable message.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

func coreError(code, msg string) *CoreError {
	return &CoreError{Code: code, Message: msg}
}
