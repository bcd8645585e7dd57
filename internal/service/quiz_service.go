package service

import (
	"encoding/json"
	"math"

	"lsv_backend/internal/model"
	"lsv_backend/internal/repository"
	"lsv_backend/internal/util"
	"lsv_backend/pkg/monitoring"
)

type QuizService struct {
	Quizzes     *repository.QuizRepository
	Lessons     *repository.LessonRepository
	Submissions *repository.SubmissionRepository
	Users       *repository.UserRepository
}

func NewQuizService(
	quizzes *repository.QuizRepository,
	lessons *repository.LessonRepository,
	submissions *repository.SubmissionRepository,
	users *repository.UserRepository,
) *QuizService {
	return &QuizService{
		Quizzes:     quizzes,
		Lessons:     lessons,
		Submissions: submissions,
		Users:       users,
	}
}

type OptionReq struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"isCorrect"`
}

type QuestionReq struct {
	Text    string      `json:"text" binding:"required"`
	Options []OptionReq `json:"options" binding:"required"`
}

type QuizReq struct {
	LessonID  string        `json:"lessonId" binding:"required"`
	Questions []QuestionReq `json:"questions" binding:"required"`
}

// CreateQuiz persists a quiz graph. The exactly-one-correct-option
// invariant is enforced here, at publish time, so the grader never meets an
// ambiguous answer key.
func (s *QuizService) CreateQuiz(req QuizReq) (*model.Quiz, error) {
	if _, err := s.Lessons.FindByID(req.LessonID); err != nil {
		return nil, err
	}

	for _, q := range req.Questions {
		correct := 0
		for _, o := range q.Options {
			if o.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return nil, util.ErrAmbiguousAnswerKey
		}
	}

	quiz := &model.Quiz{LessonID: req.LessonID}
	for _, q := range req.Questions {
		question := model.Question{Text: q.Text}
		for _, o := range q.Options {
			question.Options = append(question.Options, model.Option{
				Text:      o.Text,
				IsCorrect: o.IsCorrect,
			})
		}
		quiz.Questions = append(quiz.Questions, question)
	}

	if err := s.Quizzes.CreateWithQuestionsAndOptions(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// GetQuizForLearner returns the public projection: correctness stripped.
func (s *QuizService) GetQuizForLearner(quizID string) (*model.PublicQuiz, error) {
	quiz, err := s.Quizzes.FindByIDWithQuestions(quizID)
	if err != nil {
		return nil, err
	}
	return quiz.PublicView(), nil
}

// GetQuizForAdmin returns the quiz with correctness flags. Admin only.
func (s *QuizService) GetQuizForAdmin(quizID string) (*model.Quiz, error) {
	return s.Quizzes.FindByIDWithQuestions(quizID)
}

func (s *QuizService) ListQuizzesByLanguage(languageID string, pagination util.Pagination) ([]model.Quiz, int64, error) {
	if err := pagination.Normalize(); err != nil {
		return nil, 0, err
	}
	return s.Quizzes.ListByLanguage(languageID, pagination)
}

func (s *QuizService) DeleteQuiz(quizID string) error {
	if _, err := s.Quizzes.FindByID(quizID); err != nil {
		return err
	}
	return s.Quizzes.Delete(quizID)
}

// SubmissionTest grades one attempt and appends the submission row.
//
// Scoring: score = round(correct / gradableQuestions * 100), an integer in
// [0,100], frozen at grading time. Unanswered questions count as wrong;
// answers for questions outside the quiz are ignored; a duplicate answer
// for the same question only counts once (first entry wins).
func (s *QuizService) SubmissionTest(userID, quizID string, answers []model.AnswerEntry) (*model.QuizSubmission, error) {
	if len(answers) == 0 {
		return nil, util.ErrNoAnswers
	}

	if _, err := s.Users.FindByID(userID); err != nil {
		return nil, err
	}

	key, err := s.Quizzes.FindAnswerKey(quizID)
	if err != nil {
		return nil, err
	}

	correct := 0
	seen := make(map[string]bool, len(answers))
	for _, answer := range answers {
		if seen[answer.QuestionID] {
			continue
		}
		seen[answer.QuestionID] = true
		if key.CorrectOption[answer.QuestionID] == answer.OptionID {
			correct++
		}
	}

	total := len(key.CorrectOption)
	score := 0
	if total > 0 {
		score = int(math.Round(float64(correct) / float64(total) * 100))
	}

	raw, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}

	submission := &model.QuizSubmission{
		UserID:  userID,
		QuizID:  quizID,
		Answers: raw,
		Score:   score,
	}
	if err := s.Submissions.Insert(submission); err != nil {
		return nil, err
	}

	monitoring.SubmissionsGraded.Inc()
	monitoring.SubmissionScore.Observe(float64(score))

	return submission, nil
}

// GetSubmissionsFromUser pages a user's attempt history for one quiz.
func (s *QuizService) GetSubmissionsFromUser(userID, quizID string, pagination util.Pagination) ([]model.SubmissionSummary, int64, error) {
	if err := pagination.Normalize(); err != nil {
		return nil, 0, err
	}
	if _, err := s.Users.FindByID(userID); err != nil {
		return nil, 0, err
	}
	if _, err := s.Quizzes.FindByID(quizID); err != nil {
		return nil, 0, err
	}

	submissions, total, err := s.Submissions.FindByUserAndQuiz(userID, quizID, pagination)
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]model.SubmissionSummary, 0, len(submissions))
	for i := range submissions {
		entries, err := submissions[i].DecodedAnswers()
		if err != nil {
			return nil, 0, err
		}
		summaries = append(summaries, model.SubmissionSummary{
			SubmissionID: submissions[i].ID,
			Score:        submissions[i].Score,
			SubmittedAt:  submissions[i].SubmittedAt,
			Answers:      entries,
		})
	}
	return summaries, total, nil
}
