package service

import (
	"sort"
	"time"

	"lsv_backend/internal/model"
	"lsv_backend/internal/repository"
	"lsv_backend/internal/util"
)

type LessonService struct {
	Lessons     *repository.LessonRepository
	Languages   *repository.LanguageRepository
	Stages      *repository.StageRepository
	Submissions *repository.SubmissionRepository
}

func NewLessonService(
	lessons *repository.LessonRepository,
	languages *repository.LanguageRepository,
	stages *repository.StageRepository,
	submissions *repository.SubmissionRepository,
) *LessonService {
	return &LessonService{
		Lessons:     lessons,
		Languages:   languages,
		Stages:      stages,
		Submissions: submissions,
	}
}

type LessonReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`
	LanguageID  string `json:"languageId" binding:"required"`
	StageID     string `json:"stageId"`
}

func (s *LessonService) CreateLesson(req LessonReq) (*model.Lesson, error) {
	if _, err := s.Languages.FindByID(req.LanguageID); err != nil {
		return nil, err
	}
	if req.StageID != "" {
		if _, err := s.Stages.FindByID(req.StageID); err != nil {
			return nil, err
		}
	}

	lesson := &model.Lesson{
		Name:        req.Name,
		Description: req.Description,
		Content:     req.Content,
		LanguageID:  req.LanguageID,
		StageID:     req.StageID,
	}
	if err := s.Lessons.Create(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) UpdateLesson(id string, req LessonReq) (*model.Lesson, error) {
	lesson, err := s.Lessons.FindByID(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.Languages.FindByID(req.LanguageID); err != nil {
		return nil, err
	}
	if req.StageID != "" {
		if _, err := s.Stages.FindByID(req.StageID); err != nil {
			return nil, err
		}
	}

	lesson.Name = req.Name
	lesson.Description = req.Description
	lesson.Content = req.Content
	lesson.LanguageID = req.LanguageID
	lesson.StageID = req.StageID

	if err := s.Lessons.Update(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) DeleteLesson(id string) error {
	if _, err := s.Lessons.FindByID(id); err != nil {
		return err
	}
	return s.Lessons.Delete(id)
}

func (s *LessonService) GetLessonByID(id string) (*model.Lesson, error) {
	return s.Lessons.FindByID(id)
}

// GetQuizzesByLesson returns the lesson's quizzes through the public
// projection: no correctness flag ever leaves this method.
func (s *LessonService) GetQuizzesByLesson(lessonID string) ([]*model.PublicQuiz, error) {
	lesson, err := s.Lessons.FindByIDWithQuizzes(lessonID)
	if err != nil {
		return nil, err
	}
	quizzes := make([]*model.PublicQuiz, 0, len(lesson.Quizzes))
	for i := range lesson.Quizzes {
		quizzes = append(quizzes, lesson.Quizzes[i].PublicView())
	}
	return quizzes, nil
}

func (s *LessonService) GetLessonsByLanguage(languageID, stageID string, pagination util.Pagination) ([]model.Lesson, int64, error) {
	if err := pagination.Normalize(); err != nil {
		return nil, 0, err
	}
	return s.Lessons.FindByLanguage(languageID, stageID, pagination)
}

// GetLessonsWithProgress builds one LessonProgress per lesson of the page.
//
// Pagination and the total are at the lesson level; the joined data is
// fetched for the page only and folded in two passes (lessons first, then
// submissions into a keyed accumulator) so the output never depends on map
// iteration order. Lessons with equal primary sort values surface in order
// of most recent submission. An unknown language or stage yields an empty
// page, not an error.
func (s *LessonService) GetLessonsWithProgress(languageID, userID string, pagination util.Pagination, stageID string) ([]model.LessonProgress, int64, error) {
	if err := pagination.Normalize(); err != nil {
		return nil, 0, err
	}

	lessons, total, err := s.Lessons.FindByLanguage(languageID, stageID, pagination)
	if err != nil {
		return nil, 0, err
	}
	if len(lessons) == 0 {
		return []model.LessonProgress{}, total, nil
	}

	lessonIDs := make([]string, 0, len(lessons))
	for i := range lessons {
		lessonIDs = append(lessonIDs, lessons[i].ID)
	}

	quizzes, err := s.Lessons.FindQuizzesByLessonIDs(lessonIDs)
	if err != nil {
		return nil, 0, err
	}
	lessonByQuiz := make(map[string]string, len(quizzes))
	quizIDs := make([]string, 0, len(quizzes))
	for i := range quizzes {
		lessonByQuiz[quizzes[i].ID] = quizzes[i].LessonID
		quizIDs = append(quizIDs, quizzes[i].ID)
	}

	submissions, err := s.Submissions.FindByUserAndQuizzes(userID, quizIDs)
	if err != nil {
		return nil, 0, err
	}

	// First pass: one accumulator per lesson, in page order.
	progress := make([]model.LessonProgress, 0, len(lessons))
	index := make(map[string]int, len(lessons))
	for i := range lessons {
		index[lessons[i].ID] = len(progress)
		progress = append(progress, model.LessonProgress{
			LessonID:    lessons[i].ID,
			Name:        lessons[i].Name,
			Description: lessons[i].Description,
			CreatedAt:   lessons[i].CreatedAt,
			UpdatedAt:   lessons[i].UpdatedAt,
			Submissions: []model.SubmissionSummary{},
		})
	}

	// Second pass: fold submissions into their lesson, de-duplicated.
	latest := make(map[string]time.Time, len(lessons))
	seen := make(map[string]bool, len(submissions))
	for i := range submissions {
		sub := &submissions[i]
		lessonID, ok := lessonByQuiz[sub.QuizID]
		if !ok {
			continue
		}
		if seen[sub.ID] {
			continue
		}
		seen[sub.ID] = true

		at := index[lessonID]
		entries, err := sub.DecodedAnswers()
		if err != nil {
			return nil, 0, err
		}
		progress[at].Submissions = append(progress[at].Submissions, model.SubmissionSummary{
			SubmissionID: sub.ID,
			Score:        sub.Score,
			SubmittedAt:  sub.SubmittedAt,
			Answers:      entries,
		})
		if sub.Score > progress[at].MaxScore {
			progress[at].MaxScore = sub.Score
		}
		if sub.SubmittedAt.After(latest[lessonID]) {
			latest[lessonID] = sub.SubmittedAt
		}
	}

	// Tie-break: among lessons with an equal primary sort value, the most
	// recently attempted one first. Stable, so the SQL order is otherwise
	// preserved.
	sort.SliceStable(progress, func(i, j int) bool {
		if !primarySortEqual(&progress[i], &progress[j], pagination.OrderBy) {
			return false
		}
		return latest[progress[i].LessonID].After(latest[progress[j].LessonID])
	})

	return progress, total, nil
}

func primarySortEqual(a, b *model.LessonProgress, orderBy string) bool {
	switch orderBy {
	case "name":
		return a.Name == b.Name
	case "updatedAt":
		return a.UpdatedAt.Equal(b.UpdatedAt)
	default: // createdAt
		return a.CreatedAt.Equal(b.CreatedAt)
	}
}
