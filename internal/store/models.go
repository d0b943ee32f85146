package store

import "time"

// Topic completion states.
const (
	TopicLocked     = "locked"
	TopicInProgress = "in-progress"
	TopicCompleted  = "completed"
)

// Subject is one course a user is enrolled in (e.g. Fizika, grade 11).
// Read-only to the tutoring engine.
type Subject struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"index"`
	Name      string
	Grade     int
	Teacher   string
	CreatedAt time.Time
}

// Topic is a unit inside a subject with a completion status and an
// optional score (0-100). A nil score means the topic was never assessed.
type Topic struct {
	ID        string `gorm:"primaryKey"`
	SubjectID string `gorm:"index"`
	Title     string
	Status    string
	Score     *int
	CreatedAt time.Time
}

// Progress is one recorded completion percentage for a user x subject.
// Many rows may exist per subject; consumers aggregate via mean.
type Progress struct {
	ID         string `gorm:"primaryKey"`
	UserID     string `gorm:"index"`
	SubjectID  string `gorm:"index"`
	Percentage float64
	CreatedAt  time.Time
}

// ChatMessage is one completed exchange: the user's message and the
// model's response, optionally scoped to a subject.
type ChatMessage struct {
	ID        string  `gorm:"primaryKey"`
	UserID    string  `gorm:"index"`
	SubjectID *string `gorm:"index"`
	Message   string
	Response  string
	CreatedAt time.Time `gorm:"index"`
}

// CompletionEvent records one request to the completion provider.
type CompletionEvent struct {
	ID           uint `gorm:"primaryKey;autoIncrement"`
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	CreatedAt    time.Time
}
