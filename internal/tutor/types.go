package tutor

import "fmt"

// Mode selects which persona answers the student.
type Mode string

const (
	// ModeGuide is the non-subject persona that only points the student
	// at the right subject tutor.
	ModeGuide Mode = "guide"

	// ModeTutor is the subject-specific persona bound to one subject's
	// curriculum and personality.
	ModeTutor Mode = "tutor"
)

// ParseMode maps a raw mode string to a Mode, defaulting to guide for
// absent or unrecognized values.
func ParseMode(raw string) Mode {
	switch Mode(raw) {
	case ModeTutor:
		return ModeTutor
	default:
		return ModeGuide
	}
}

// ChatRequest carries one user turn into the assembler.
type ChatRequest struct {
	UserID      string
	Message     string
	Mode        string
	SubjectName string
	SubjectID   string
	Topic       string
	Grade       int
}

// ErrInvalidInput indicates a required field is missing. It is surfaced
// before any store or provider access.
type ErrInvalidInput struct {
	Field string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// ErrTutorUnavailable indicates the completion provider failed. Message
// is localized and safe to show the student; retry is left to the caller.
type ErrTutorUnavailable struct {
	Message string
	Err     error
}

func (e *ErrTutorUnavailable) Error() string {
	return e.Message
}

func (e *ErrTutorUnavailable) Unwrap() error { return e.Err }
