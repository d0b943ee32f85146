package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// CompletionEventData captures the data for a single completion request event.
type CompletionEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append access to completion request events.
type EventRepo interface {
	// AppendCompletion records one completion API call.
	AppendCompletion(ctx context.Context, data CompletionEventData) error
}

type eventRepo struct {
	db *gorm.DB
}

func (r *eventRepo) AppendCompletion(ctx context.Context, data CompletionEventData) error {
	event := CompletionEvent{
		Provider:     data.Provider,
		Model:        data.Model,
		Purpose:      data.Purpose,
		InputTokens:  data.InputTokens,
		OutputTokens: data.OutputTokens,
		LatencyMs:    data.LatencyMs,
		Success:      data.Success,
		ErrorMessage: data.ErrorMessage,
	}
	if err := r.db.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("save completion event: %w", err)
	}
	return nil
}
