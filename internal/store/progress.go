package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// weakAreaThreshold is the score below which a topic counts as a weak area.
const weakAreaThreshold = 70

// maxWeakAreas caps how many weak areas a summary reports.
const maxWeakAreas = 5

// SubjectProgress is the aggregated completion of one subject.
type SubjectProgress struct {
	ID                 string
	Name               string
	ProgressPercentage float64
}

// ProgressSummary aggregates a user's standing across subjects.
type ProgressSummary struct {
	Subjects        []SubjectProgress
	OverallProgress float64
	WeakAreas       []string
}

// ProgressRepo provides read access to subjects, topics and progress rows.
type ProgressRepo interface {
	// SubjectGrade returns the grade of the subject, or ok=false when the
	// subject does not exist.
	SubjectGrade(ctx context.Context, subjectID string) (grade int, ok bool, err error)

	// UserProgressSummary aggregates the user's subjects, overall progress
	// (mean of per-subject means, 0 when no subjects) and weak areas
	// (topics scored below 70, ascending by score, at most 5).
	// When subjectID is non-empty the summary is scoped to that subject.
	UserProgressSummary(ctx context.Context, userID, subjectID string) (*ProgressSummary, error)
}

type progressRepo struct {
	db *gorm.DB
}

func (r *progressRepo) SubjectGrade(ctx context.Context, subjectID string) (int, bool, error) {
	var subject Subject
	err := r.db.WithContext(ctx).First(&subject, "id = ?", subjectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query subject grade: %w", err)
	}
	return subject.Grade, true, nil
}

func (r *progressRepo) UserProgressSummary(ctx context.Context, userID, subjectID string) (*ProgressSummary, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if subjectID != "" {
		q = q.Where("id = ?", subjectID)
	}

	var subjects []Subject
	if err := q.Order("created_at ASC").Find(&subjects).Error; err != nil {
		return nil, fmt.Errorf("query subjects: %w", err)
	}

	summary := &ProgressSummary{}
	if len(subjects) == 0 {
		return summary, nil
	}

	var total float64
	for _, s := range subjects {
		pct, err := r.subjectMeanProgress(ctx, userID, s.ID)
		if err != nil {
			return nil, err
		}
		summary.Subjects = append(summary.Subjects, SubjectProgress{
			ID:                 s.ID,
			Name:               s.Name,
			ProgressPercentage: pct,
		})
		total += pct
	}
	summary.OverallProgress = total / float64(len(subjects))

	subjectIDs := lo.Map(subjects, func(s Subject, _ int) string { return s.ID })

	var weak []Topic
	err := r.db.WithContext(ctx).
		Where("subject_id IN ? AND score IS NOT NULL AND score < ?", subjectIDs, weakAreaThreshold).
		Order("score ASC").
		Limit(maxWeakAreas).
		Find(&weak).Error
	if err != nil {
		return nil, fmt.Errorf("query weak areas: %w", err)
	}
	summary.WeakAreas = lo.Map(weak, func(t Topic, _ int) string { return t.Title })

	return summary, nil
}

// subjectMeanProgress averages all progress rows for one user x subject.
// A subject with no recorded progress counts as 0.
func (r *progressRepo) subjectMeanProgress(ctx context.Context, userID, subjectID string) (float64, error) {
	var rows []Progress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND subject_id = ?", userID, subjectID).
		Find(&rows).Error
	if err != nil {
		return 0, fmt.Errorf("query progress: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	var sum float64
	for _, p := range rows {
		sum += p.Percentage
	}
	return sum / float64(len(rows)), nil
}
