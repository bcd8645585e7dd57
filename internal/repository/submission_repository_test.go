package repository

import (
	"testing"
	"time"

	"lsv_backend/internal/model"
	"lsv_backend/internal/testutil"
	"lsv_backend/internal/util"
)

func TestFindPassedLessonIDsIgnoresDeletedQuizzes(t *testing.T) {
	db := testutil.DB(t)
	user := testutil.SeedUser(t, db, "learner@example.com", "Ada", "Lovelace")
	language := testutil.SeedLanguage(t, db, "LSV")
	stage := testutil.SeedStage(t, db, language.ID, "Basics")
	lesson := testutil.SeedLesson(t, db, language.ID, stage.ID, "Greetings")
	quiz := testutil.SeedQuiz(t, db, lesson.ID, 1)

	testutil.SeedSubmission(t, db, user.ID, quiz.ID, 95, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	repo := NewSubmissionRepository(db)
	ids, err := repo.FindPassedLessonIDs(user.ID, model.PassingScore)
	if err != nil {
		t.Fatalf("FindPassedLessonIDs() returned error: %v", err)
	}
	if len(ids) != 1 || ids[0] != lesson.ID {
		t.Fatalf("passed lessons = %v, want [%s]", ids, lesson.ID)
	}

	// Soft-deleting the quiz removes its submissions from the predicate.
	if err := db.Delete(&model.Quiz{}, "id = ?", quiz.ID).Error; err != nil {
		t.Fatalf("failed to soft-delete quiz: %v", err)
	}

	ids, err = repo.FindPassedLessonIDs(user.ID, model.PassingScore)
	if err != nil {
		t.Fatalf("FindPassedLessonIDs() after delete returned error: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("passed lessons = %v, want none after quiz deletion", ids)
	}
}

func TestLeaderboardIgnoresDeletedUsers(t *testing.T) {
	db := testutil.DB(t)
	language := testutil.SeedLanguage(t, db, "LSV")
	stage := testutil.SeedStage(t, db, language.ID, "Basics")
	lesson := testutil.SeedLesson(t, db, language.ID, stage.ID, "Greetings")
	quiz := testutil.SeedQuiz(t, db, lesson.ID, 1)

	kept := testutil.SeedUser(t, db, "kept@example.com", "Ada", "Lovelace")
	gone := testutil.SeedUser(t, db, "gone@example.com", "Grace", "Hopper")

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	testutil.SeedSubmission(t, db, kept.ID, quiz.ID, 60, base)
	testutil.SeedSubmission(t, db, gone.ID, quiz.ID, 100, base)

	if err := db.Delete(&model.User{}, "id = ?", gone.ID).Error; err != nil {
		t.Fatalf("failed to soft-delete user: %v", err)
	}

	repo := NewSubmissionRepository(db)
	pagination := util.Pagination{}
	if err := pagination.Normalize(); err != nil {
		t.Fatalf("Normalize() returned error: %v", err)
	}

	entries, _, err := repo.Leaderboard(pagination)
	if err != nil {
		t.Fatalf("Leaderboard() returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].UserID != kept.ID {
		t.Fatalf("deleted user still ranked: %+v", entries)
	}
}

func TestInsertPreservesHistory(t *testing.T) {
	db := testutil.DB(t)
	user := testutil.SeedUser(t, db, "learner@example.com", "Ada", "Lovelace")
	language := testutil.SeedLanguage(t, db, "LSV")
	stage := testutil.SeedStage(t, db, language.ID, "Basics")
	lesson := testutil.SeedLesson(t, db, language.ID, stage.ID, "Greetings")
	quiz := testutil.SeedQuiz(t, db, lesson.ID, 1)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	testutil.SeedSubmission(t, db, user.ID, quiz.ID, 10, base)
	testutil.SeedSubmission(t, db, user.ID, quiz.ID, 90, base.Add(time.Minute))

	var count int64
	if err := db.Model(&model.QuizSubmission{}).
		Where("user_id = ? AND quiz_id = ?", user.ID, quiz.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("submission rows = %d, want 2 (append-only)", count)
	}
}
