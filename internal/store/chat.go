package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Exchange is one stored turn pair: what the user asked and what the
// tutor answered. The role split is explicit here so that conversation
// reconstruction never has to guess from row ordering.
type Exchange struct {
	Message  string
	Response string
}

// ChatRepo provides access to stored chat exchanges.
type ChatRepo interface {
	// RecentExchanges returns up to limit exchanges for the user,
	// oldest-first. When subjectID is non-empty only exchanges scoped to
	// that subject are returned.
	RecentExchanges(ctx context.Context, userID, subjectID string, limit int) ([]Exchange, error)

	// AppendChatMessage stores one completed exchange.
	AppendChatMessage(ctx context.Context, userID, subjectID, message, response string) error
}

type chatRepo struct {
	db *gorm.DB
}

func (r *chatRepo) RecentExchanges(ctx context.Context, userID, subjectID string, limit int) ([]Exchange, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if subjectID != "" {
		q = q.Where("subject_id = ?", subjectID)
	}

	// Newest rows first so the limit keeps the most recent exchanges,
	// then reversed into conversational order.
	var rows []ChatMessage
	if err := q.Order("created_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query chat history: %w", err)
	}

	rows = lo.Reverse(rows)
	return lo.Map(rows, func(m ChatMessage, _ int) Exchange {
		return Exchange{Message: m.Message, Response: m.Response}
	}), nil
}

func (r *chatRepo) AppendChatMessage(ctx context.Context, userID, subjectID, message, response string) error {
	msg := ChatMessage{
		ID:       uuid.NewString(),
		UserID:   userID,
		Message:  message,
		Response: response,
	}
	if subjectID != "" {
		msg.SubjectID = &subjectID
	}

	if err := r.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return fmt.Errorf("save chat message: %w", err)
	}
	return nil
}
