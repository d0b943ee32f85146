package store

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func intPtr(v int) *int { return &v }

func seedSubject(t *testing.T, s *Store, id, userID, name string, grade int) {
	t.Helper()
	err := s.DB().Create(&Subject{
		ID: id, UserID: userID, Name: name, Grade: grade,
		CreatedAt: time.Now(),
	}).Error
	if err != nil {
		t.Fatalf("seed subject: %v", err)
	}
}

func seedProgress(t *testing.T, s *Store, userID, subjectID string, pct float64) {
	t.Helper()
	err := s.DB().Create(&Progress{
		ID:     fmt.Sprintf("p-%s-%s-%.0f", userID, subjectID, pct),
		UserID: userID, SubjectID: subjectID, Percentage: pct,
	}).Error
	if err != nil {
		t.Fatalf("seed progress: %v", err)
	}
}

func seedTopic(t *testing.T, s *Store, id, subjectID, title string, score *int) {
	t.Helper()
	err := s.DB().Create(&Topic{
		ID: id, SubjectID: subjectID, Title: title,
		Status: TopicInProgress, Score: score,
	}).Error
	if err != nil {
		t.Fatalf("seed topic: %v", err)
	}
}

func TestSubjectGrade(t *testing.T) {
	s := openTestStore(t)
	seedSubject(t, s, "s1", "u1", "Fizika", 11)

	grade, ok, err := s.ProgressRepo().SubjectGrade(context.Background(), "s1")
	if err != nil {
		t.Fatalf("subject grade: %v", err)
	}
	if !ok || grade != 11 {
		t.Errorf("expected (11, true), got (%d, %v)", grade, ok)
	}

	_, ok, err = s.ProgressRepo().SubjectGrade(context.Background(), "missing")
	if err != nil {
		t.Fatalf("subject grade (missing): %v", err)
	}
	if ok {
		t.Error("expected ok=false for missing subject")
	}
}

func TestUserProgressSummary_NoSubjects(t *testing.T) {
	s := openTestStore(t)

	summary, err := s.ProgressRepo().UserProgressSummary(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.OverallProgress != 0 {
		t.Errorf("expected overall progress 0, got %v", summary.OverallProgress)
	}
	if len(summary.Subjects) != 0 {
		t.Errorf("expected no subjects, got %d", len(summary.Subjects))
	}
}

func TestUserProgressSummary_MeanOfMeans(t *testing.T) {
	s := openTestStore(t)
	seedSubject(t, s, "s1", "u1", "Fizika", 11)
	seedSubject(t, s, "s2", "u1", "Matematika", 11)
	seedProgress(t, s, "u1", "s1", 40)
	seedProgress(t, s, "u1", "s1", 60)
	seedProgress(t, s, "u1", "s2", 80)

	summary, err := s.ProgressRepo().UserProgressSummary(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	// s1 mean = 50, s2 mean = 80, overall = 65
	if summary.OverallProgress != 65 {
		t.Errorf("expected overall progress 65, got %v", summary.OverallProgress)
	}
	if len(summary.Subjects) != 2 {
		t.Fatalf("expected 2 subjects, got %d", len(summary.Subjects))
	}
	if summary.Subjects[0].ProgressPercentage != 50 {
		t.Errorf("expected s1 progress 50, got %v", summary.Subjects[0].ProgressPercentage)
	}
}

func TestUserProgressSummary_SubjectScope(t *testing.T) {
	s := openTestStore(t)
	seedSubject(t, s, "s1", "u1", "Fizika", 11)
	seedSubject(t, s, "s2", "u1", "Matematika", 11)
	seedProgress(t, s, "u1", "s1", 30)
	seedProgress(t, s, "u1", "s2", 90)

	summary, err := s.ProgressRepo().UserProgressSummary(context.Background(), "u1", "s1")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(summary.Subjects) != 1 || summary.Subjects[0].ID != "s1" {
		t.Fatalf("expected only s1 in summary, got %+v", summary.Subjects)
	}
	if summary.OverallProgress != 30 {
		t.Errorf("expected overall progress 30, got %v", summary.OverallProgress)
	}
}

func TestUserProgressSummary_WeakAreas(t *testing.T) {
	s := openTestStore(t)
	seedSubject(t, s, "s1", "u1", "Fizika", 11)
	seedTopic(t, s, "t1", "s1", "Kinematika", intPtr(65))
	seedTopic(t, s, "t2", "s1", "Dinamika", intPtr(40))
	seedTopic(t, s, "t3", "s1", "Optika", intPtr(85))
	seedTopic(t, s, "t4", "s1", "Termodinamika", nil)
	seedTopic(t, s, "t5", "s1", "Elektra", intPtr(55))
	seedTopic(t, s, "t6", "s1", "Bangos", intPtr(10))
	seedTopic(t, s, "t7", "s1", "Atomai", intPtr(20))
	seedTopic(t, s, "t8", "s1", "Šviesa", intPtr(30))

	summary, err := s.ProgressRepo().UserProgressSummary(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	want := []string{"Bangos", "Atomai", "Šviesa", "Dinamika", "Elektra"}
	if len(summary.WeakAreas) != len(want) {
		t.Fatalf("expected %d weak areas, got %d: %v", len(want), len(summary.WeakAreas), summary.WeakAreas)
	}
	for i, w := range want {
		if summary.WeakAreas[i] != w {
			t.Errorf("weak area %d: expected %q, got %q", i, w, summary.WeakAreas[i])
		}
	}
}

func TestRecentExchanges_OldestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.ChatRepo()
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 7; i++ {
		err := s.DB().Create(&ChatMessage{
			ID:        fmt.Sprintf("m%d", i),
			UserID:    "u1",
			Message:   fmt.Sprintf("klausimas %d", i),
			Response:  fmt.Sprintf("atsakymas %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}).Error
		if err != nil {
			t.Fatalf("seed chat message: %v", err)
		}
	}

	got, err := repo.RecentExchanges(ctx, "u1", "", 5)
	if err != nil {
		t.Fatalf("recent exchanges: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 exchanges, got %d", len(got))
	}
	// Limit keeps the newest 5 (indices 2..6), returned oldest-first.
	if got[0].Message != "klausimas 2" {
		t.Errorf("expected oldest kept exchange first, got %q", got[0].Message)
	}
	if got[4].Message != "klausimas 6" {
		t.Errorf("expected newest exchange last, got %q", got[4].Message)
	}
}

func TestAppendChatMessage(t *testing.T) {
	s := openTestStore(t)
	repo := s.ChatRepo()
	ctx := context.Background()

	if err := repo.AppendChatMessage(ctx, "u1", "s1", "labas", "sveiki"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.AppendChatMessage(ctx, "u1", "", "be dalyko", "gerai"); err != nil {
		t.Fatalf("append without subject: %v", err)
	}

	scoped, err := repo.RecentExchanges(ctx, "u1", "s1", 10)
	if err != nil {
		t.Fatalf("recent exchanges: %v", err)
	}
	if len(scoped) != 1 || scoped[0].Response != "sveiki" {
		t.Fatalf("expected single scoped exchange, got %+v", scoped)
	}

	all, err := repo.RecentExchanges(ctx, "u1", "", 10)
	if err != nil {
		t.Fatalf("recent exchanges (all): %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 exchanges, got %d", len(all))
	}
}

func TestAppendCompletion(t *testing.T) {
	s := openTestStore(t)

	err := s.EventRepo().AppendCompletion(context.Background(), CompletionEventData{
		Provider:     "openrouter",
		Model:        "google/gemini-2.0-flash-exp",
		Purpose:      "chat",
		InputTokens:  120,
		OutputTokens: 300,
		LatencyMs:    900,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append completion: %v", err)
	}

	var count int64
	if err := s.DB().Model(&CompletionEvent{}).Count(&count).Error; err != nil {
		t.Fatalf("count events: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 event, got %d", count)
	}
}
