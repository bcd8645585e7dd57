package service

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"lsv_backend/internal/model"
	"lsv_backend/internal/repository"
	"lsv_backend/internal/testutil"
	"lsv_backend/internal/util"

	"gorm.io/gorm"
)

func newQuizService(db *gorm.DB) *QuizService {
	return NewQuizService(
		repository.NewQuizRepository(db),
		repository.NewLessonRepository(db),
		repository.NewSubmissionRepository(db),
		repository.NewUserRepository(db),
	)
}

func seedLessonGraph(t *testing.T, db *gorm.DB) (*model.User, *model.Lesson) {
	t.Helper()
	user := testutil.SeedUser(t, db, "learner@example.com", "Ada", "Lovelace")
	language := testutil.SeedLanguage(t, db, "LSV")
	stage := testutil.SeedStage(t, db, language.ID, "Basics")
	lesson := testutil.SeedLesson(t, db, language.ID, stage.ID, "Greetings")
	return user, lesson
}

func TestSubmissionTestFullMarks(t *testing.T) {
	db := testutil.DB(t)
	user, lesson := seedLessonGraph(t, db)
	quiz := testutil.SeedQuiz(t, db, lesson.ID, 3)
	svc := newQuizService(db)

	submission, err := svc.SubmissionTest(user.ID, quiz.ID, testutil.CorrectAnswers(quiz))
	if err != nil {
		t.Fatalf("SubmissionTest() returned error: %v", err)
	}
	if submission.Score != 100 {
		t.Fatalf("score = %d, want 100", submission.Score)
	}

	var stored model.QuizSubmission
	if err := db.First(&stored, "id = ?", submission.ID).Error; err != nil {
		t.Fatalf("submission not persisted: %v", err)
	}
	if stored.Score != 100 || stored.UserID != user.ID || stored.QuizID != quiz.ID {
		t.Fatalf("persisted submission mismatch: %+v", stored)
	}
}

func TestSubmissionTestPartialScoreRounds(t *testing.T) {
	db := testutil.DB(t)
	user, lesson := seedLessonGraph(t, db)
	quiz := testutil.SeedQuiz(t, db, lesson.ID, 3)
	svc := newQuizService(db)

	answers := testutil.CorrectAnswers(quiz)
	wrong := testutil.WrongAnswers(quiz)
	answers[2] = wrong[2] // 2 of 3 correct

	submission, err := svc.SubmissionTest(user.ID, quiz.ID, answers)
	if err != nil {
		t.Fatalf("SubmissionTest() returned error: %v", err)
	}
	if submission.Score != 67 {
		t.Fatalf("score = %d, want 67 (round of 2/3)", submission.Score)
	}
}

func TestSubmissionTestUnansweredCountsWrong(t *testing.T) {
	db := testutil.DB(t)
	user, lesson := seedLessonGraph(t, db)
	quiz := testutil.SeedQuiz(t, db, lesson.ID, 4)
	svc := newQuizService(db)

	// Answer only one of four questions.
	answers := testutil.CorrectAnswers(quiz)[:1]

	submission, err := svc.SubmissionTest(user.ID, quiz.ID, answers)
	if err != nil {
		t.Fatalf("SubmissionTest() returned error: %v", err)
	}
	if submission.Score != 25 {
		t.Fatalf("score = %d, want 25", submission.Score)
	}
}

func TestSubmissionTestAllWrong(t *testing.T) {
	db := testutil.DB(t)
	user, lesson := seedLessonGraph(t, db)
	quiz := testutil.SeedQuiz(t, db, lesson.ID, 2)
	svc := newQuizService(db)

	submission, err := svc.SubmissionTest(user.ID, quiz.ID, testutil.WrongAnswers(quiz))
	if err != nil {
		t.Fatalf("SubmissionTest() returned error: %v", err)
	}
	if submission.Score != 0 {
		t.Fatalf("score = %d, want 0", submission.Score)
	}
}

func TestSubmissionTestEmptyAnswers(t *testing.T) {
	db := testutil.DB(t)
	user, lesson := seedLessonGraph(t, db)
	quiz := testutil.SeedQuiz(t, db, lesson.ID, 1)
	svc := newQuizService(db)

	if _, err := svc.SubmissionTest(user.ID, quiz.ID, nil); !errors.Is(err, util.ErrNoAnswers) {
		t.Fatalf("SubmissionTest(nil answers) = %v, want ErrNoAnswers", err)
	}
}

func TestSubmissionTestUnknownQuiz(t *testing.T) {
	db := testutil.DB(t)
	user, _ := seedLessonGraph(t, db)
	svc := newQuizService(db)

	answers := []model.AnswerEntry{{QuestionID: "q", OptionID: "o"}}
	if _, err := svc.SubmissionTest(user.ID, model.GenerateUUID(), answers); !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("SubmissionTest(unknown quiz) = %v, want ErrQuizNotFound", err)
	}
}

func TestSubmissionTestUnknownUser(t *testing.T) {
	db := testutil.DB(t)
	_, lesson := seedLessonGraph(t, db)
	quiz := testutil.SeedQuiz(t, db, lesson.ID, 1)
	svc := newQuizService(db)

	if _, err := svc.SubmissionTest(model.GenerateUUID(), quiz.ID, testutil.CorrectAnswers(quiz)); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("SubmissionTest(unknown user) = %v, want ErrUserNotFound", err)
	}
}

func TestSubmissionTestIgnoresUnknownQuestions(t *testing.T) {
	db := testutil.DB(t)
	user, lesson := seedLessonGraph(t, db)
	quiz := testutil.SeedQuiz(t, db, lesson.ID, 2)
	svc := newQuizService(db)

	answers := append(testutil.CorrectAnswers(quiz), model.AnswerEntry{
		QuestionID: model.GenerateUUID(),
		OptionID:   model.GenerateUUID(),
	})

	submission, err := svc.SubmissionTest(user.ID, quiz.ID, answers)
	if err != nil {
		t.Fatalf("SubmissionTest() returned error: %v", err)
	}
	if submission.Score != 100 {
		t.Fatalf("score = %d, want 100 (stray answer must not dilute)", submission.Score)
	}
}

func TestSubmissionTestDuplicateAnswerCountsOnce(t *testing.T) {
	db := testutil.DB(t)
	user, lesson := seedLessonGraph(t, db)
	quiz := testutil.SeedQuiz(t, db, lesson.ID, 2)
	svc := newQuizService(db)

	correct := testutil.CorrectAnswers(quiz)
	wrong := testutil.WrongAnswers(quiz)

	// First entry for question 1 is wrong; the later correct duplicate must
	// not overwrite it.
	answers := []model.AnswerEntry{wrong[0], correct[0], correct[1]}

	submission, err := svc.SubmissionTest(user.ID, quiz.ID, answers)
	if err != nil {
		t.Fatalf("SubmissionTest() returned error: %v", err)
	}
	if submission.Score != 50 {
		t.Fatalf("score = %d, want 50 (first entry wins)", submission.Score)
	}
}

func TestSubmissionTestQuizWithoutQuestionsScoresZero(t *testing.T) {
	db := testutil.DB(t)
	user, lesson := seedLessonGraph(t, db)
	quiz := testutil.SeedQuiz(t, db, lesson.ID, 0)
	svc := newQuizService(db)

	answers := []model.AnswerEntry{{QuestionID: model.GenerateUUID(), OptionID: model.GenerateUUID()}}
	submission, err := svc.SubmissionTest(user.ID, quiz.ID, answers)
	if err != nil {
		t.Fatalf("SubmissionTest() returned error: %v", err)
	}
	if submission.Score != 0 {
		t.Fatalf("score = %d, want 0 for quiz without gradable questions", submission.Score)
	}
}

func TestGetQuizForLearnerStripsCorrectness(t *testing.T) {
	db := testutil.DB(t)
	_, lesson := seedLessonGraph(t, db)
	quiz := testutil.SeedQuiz(t, db, lesson.ID, 2)
	svc := newQuizService(db)

	public, err := svc.GetQuizForLearner(quiz.ID)
	if err != nil {
		t.Fatalf("GetQuizForLearner() returned error: %v", err)
	}
	if len(public.Questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(public.Questions))
	}
	for _, question := range public.Questions {
		if len(question.Options) != 2 {
			t.Fatalf("options = %d, want 2", len(question.Options))
		}
	}

	raw, err := json.Marshal(public)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(strings.ToLower(string(raw)), "correct") {
		t.Fatalf("public payload leaks correctness: %s", raw)
	}

	// The full model must hide the flag from JSON as well.
	rawFull, err := json.Marshal(quiz)
	if err != nil {
		t.Fatalf("marshal quiz: %v", err)
	}
	if strings.Contains(strings.ToLower(string(rawFull)), "iscorrect") {
		t.Fatalf("model payload leaks correctness: %s", rawFull)
	}
}

func TestCreateQuizRejectsAmbiguousKey(t *testing.T) {
	db := testutil.DB(t)
	_, lesson := seedLessonGraph(t, db)
	svc := newQuizService(db)

	cases := map[string][]OptionReq{
		"no correct option": {
			{Text: "a"}, {Text: "b"},
		},
		"two correct options": {
			{Text: "a", IsCorrect: true}, {Text: "b", IsCorrect: true},
		},
	}
	for name, options := range cases {
		req := QuizReq{
			LessonID:  lesson.ID,
			Questions: []QuestionReq{{Text: "q", Options: options}},
		}
		if _, err := svc.CreateQuiz(req); !errors.Is(err, util.ErrAmbiguousAnswerKey) {
			t.Fatalf("CreateQuiz(%s) = %v, want ErrAmbiguousAnswerKey", name, err)
		}
	}
}

func TestCreateQuizPersistsGraph(t *testing.T) {
	db := testutil.DB(t)
	_, lesson := seedLessonGraph(t, db)
	svc := newQuizService(db)

	req := QuizReq{
		LessonID: lesson.ID,
		Questions: []QuestionReq{
			{Text: "q1", Options: []OptionReq{{Text: "a", IsCorrect: true}, {Text: "b"}}},
			{Text: "q2", Options: []OptionReq{{Text: "c"}, {Text: "d", IsCorrect: true}}},
		},
	}
	quiz, err := svc.CreateQuiz(req)
	if err != nil {
		t.Fatalf("CreateQuiz() returned error: %v", err)
	}

	key, err := svc.Quizzes.FindAnswerKey(quiz.ID)
	if err != nil {
		t.Fatalf("FindAnswerKey() returned error: %v", err)
	}
	if len(key.CorrectOption) != 2 {
		t.Fatalf("answer key has %d entries, want 2", len(key.CorrectOption))
	}
}

func TestGetSubmissionsFromUserPagination(t *testing.T) {
	db := testutil.DB(t)
	user, lesson := seedLessonGraph(t, db)
	quiz := testutil.SeedQuiz(t, db, lesson.ID, 1)
	svc := newQuizService(db)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		testutil.SeedSubmission(t, db, user.ID, quiz.ID, i*20, base.Add(time.Duration(i)*time.Hour))
	}

	summaries, total, err := svc.GetSubmissionsFromUser(user.ID, quiz.ID, util.Pagination{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("GetSubmissionsFromUser() returned error: %v", err)
	}
	if total != 5 || len(summaries) != 2 {
		t.Fatalf("total = %d, page = %d, want 5 and 2", total, len(summaries))
	}
	// Default order is submittedAt DESC: newest attempt first.
	if summaries[0].Score != 80 || summaries[1].Score != 60 {
		t.Fatalf("unexpected page order: %+v", summaries)
	}
}
