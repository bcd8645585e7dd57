package service

import (
	"testing"
	"time"

	"lsv_backend/internal/model"
	"lsv_backend/internal/repository"
	"lsv_backend/internal/testutil"
	"lsv_backend/internal/util"

	"gorm.io/gorm"
)

func newStageService(db *gorm.DB) *StageService {
	return NewStageService(
		repository.NewStageRepository(db),
		repository.NewLanguageRepository(db),
		repository.NewSubmissionRepository(db),
	)
}

func TestGetStageProgress(t *testing.T) {
	db := testutil.DB(t)
	user := testutil.SeedUser(t, db, "learner@example.com", "Ada", "Lovelace")
	language := testutil.SeedLanguage(t, db, "LSV")

	basics := testutil.SeedStage(t, db, language.ID, "Basics")
	empty := testutil.SeedStage(t, db, language.ID, "Empty")

	passed := testutil.SeedLesson(t, db, language.ID, basics.ID, "Greetings")
	failed := testutil.SeedLesson(t, db, language.ID, basics.ID, "Numbers")

	passedQuiz := testutil.SeedQuiz(t, db, passed.ID, 1)
	failedQuiz := testutil.SeedQuiz(t, db, failed.ID, 1)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	// Exactly at the threshold passes; one below does not.
	testutil.SeedSubmission(t, db, user.ID, passedQuiz.ID, model.PassingScore, base)
	testutil.SeedSubmission(t, db, user.ID, failedQuiz.ID, model.PassingScore-1, base)

	svc := newStageService(db)
	progress, err := svc.GetStageProgress(user.ID, language.ID)
	if err != nil {
		t.Fatalf("GetStageProgress() returned error: %v", err)
	}
	if len(progress) != 2 {
		t.Fatalf("stages = %d, want 2", len(progress))
	}

	byID := map[string]model.StageProgress{}
	for _, p := range progress {
		byID[p.StageID] = p
	}

	got := byID[basics.ID]
	if got.TotalLessons != 2 || got.CompletedLessons != 1 {
		t.Fatalf("basics counts = %d/%d, want 1/2", got.CompletedLessons, got.TotalLessons)
	}
	if got.Progress != 50 {
		t.Fatalf("basics progress = %v, want 50", got.Progress)
	}

	zero := byID[empty.ID]
	if zero.TotalLessons != 0 || zero.CompletedLessons != 0 || zero.Progress != 0 {
		t.Fatalf("empty stage should report zero progress, got %+v", zero)
	}
}

func TestGetStageProgressLaterAttemptCompletes(t *testing.T) {
	db := testutil.DB(t)
	user := testutil.SeedUser(t, db, "learner@example.com", "Ada", "Lovelace")
	language := testutil.SeedLanguage(t, db, "LSV")
	stage := testutil.SeedStage(t, db, language.ID, "Basics")
	lesson := testutil.SeedLesson(t, db, language.ID, stage.ID, "Greetings")
	quiz := testutil.SeedQuiz(t, db, lesson.ID, 1)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	testutil.SeedSubmission(t, db, user.ID, quiz.ID, 40, base)

	svc := newStageService(db)
	progress, err := svc.GetStageProgress(user.ID, language.ID)
	if err != nil {
		t.Fatalf("GetStageProgress() returned error: %v", err)
	}
	if progress[0].CompletedLessons != 0 {
		t.Fatalf("failing attempt should not complete the lesson: %+v", progress[0])
	}

	// A later passing attempt flips the lesson without touching the old row.
	testutil.SeedSubmission(t, db, user.ID, quiz.ID, 95, base.Add(time.Hour))

	progress, err = svc.GetStageProgress(user.ID, language.ID)
	if err != nil {
		t.Fatalf("GetStageProgress() returned error: %v", err)
	}
	if progress[0].CompletedLessons != 1 || progress[0].Progress != 100 {
		t.Fatalf("passing attempt should complete the lesson: %+v", progress[0])
	}
}

// Both progress views derive completion from the same predicate: a lesson
// counts as completed exactly when its best submission reaches PassingScore.
func TestStageProgressAgreesWithLessonMaxScores(t *testing.T) {
	db := testutil.DB(t)
	user := testutil.SeedUser(t, db, "learner@example.com", "Ada", "Lovelace")
	language := testutil.SeedLanguage(t, db, "LSV")
	stage := testutil.SeedStage(t, db, language.ID, "Basics")

	lessons := []*model.Lesson{
		testutil.SeedLesson(t, db, language.ID, stage.ID, "Greetings"),
		testutil.SeedLesson(t, db, language.ID, stage.ID, "Numbers"),
		testutil.SeedLesson(t, db, language.ID, stage.ID, "Family"),
		testutil.SeedLesson(t, db, language.ID, stage.ID, "Colors"),
	}

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	scores := map[string][]int{
		lessons[0].ID: {100},
		lessons[1].ID: {40, model.PassingScore}, // best attempt lands on the threshold
		lessons[2].ID: {model.PassingScore - 1},
		lessons[3].ID: nil, // never attempted
	}
	for _, lesson := range lessons {
		quiz := testutil.SeedQuiz(t, db, lesson.ID, 1)
		for i, score := range scores[lesson.ID] {
			testutil.SeedSubmission(t, db, user.ID, quiz.ID, score, base.Add(time.Duration(i)*time.Hour))
		}
	}

	lessonSvc := newLessonService(db)
	progress, _, err := lessonSvc.GetLessonsWithProgress(language.ID, user.ID, util.Pagination{}, "")
	if err != nil {
		t.Fatalf("GetLessonsWithProgress() returned error: %v", err)
	}

	wantPassed := map[string]bool{}
	for _, p := range progress {
		if p.MaxScore >= model.PassingScore {
			wantPassed[p.LessonID] = true
		}
	}
	if len(wantPassed) != 2 || !wantPassed[lessons[0].ID] || !wantPassed[lessons[1].ID] {
		t.Fatalf("lessons at or above the threshold = %v, want exactly Greetings and Numbers", wantPassed)
	}

	stageSvc := newStageService(db)
	passed, err := stageSvc.GetPassedLessonIDs(user.ID)
	if err != nil {
		t.Fatalf("GetPassedLessonIDs() returned error: %v", err)
	}
	gotPassed := map[string]bool{}
	for _, id := range passed {
		gotPassed[id] = true
	}
	if len(gotPassed) != len(wantPassed) {
		t.Fatalf("passed set = %v, want %v", gotPassed, wantPassed)
	}
	for id := range wantPassed {
		if !gotPassed[id] {
			t.Fatalf("lesson %s has maxScore >= %d but is missing from the passed set", id, model.PassingScore)
		}
	}

	stages, err := stageSvc.GetStageProgress(user.ID, language.ID)
	if err != nil {
		t.Fatalf("GetStageProgress() returned error: %v", err)
	}
	if stages[0].CompletedLessons != len(wantPassed) || stages[0].TotalLessons != len(lessons) {
		t.Fatalf("stage counts = %d/%d, want %d/%d", stages[0].CompletedLessons, stages[0].TotalLessons, len(wantPassed), len(lessons))
	}
}

func TestGetStageProgressIsolatedPerUser(t *testing.T) {
	db := testutil.DB(t)
	achiever := testutil.SeedUser(t, db, "achiever@example.com", "Ada", "Lovelace")
	newcomer := testutil.SeedUser(t, db, "newcomer@example.com", "Grace", "Hopper")
	language := testutil.SeedLanguage(t, db, "LSV")
	stage := testutil.SeedStage(t, db, language.ID, "Basics")
	lesson := testutil.SeedLesson(t, db, language.ID, stage.ID, "Greetings")
	quiz := testutil.SeedQuiz(t, db, lesson.ID, 1)

	testutil.SeedSubmission(t, db, achiever.ID, quiz.ID, 100, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	svc := newStageService(db)
	progress, err := svc.GetStageProgress(newcomer.ID, language.ID)
	if err != nil {
		t.Fatalf("GetStageProgress() returned error: %v", err)
	}
	if progress[0].CompletedLessons != 0 {
		t.Fatalf("other users' submissions leaked into progress: %+v", progress[0])
	}
}
