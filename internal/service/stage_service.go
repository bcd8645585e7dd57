package service

import (
	"fmt"

	"lsv_backend/internal/model"
	"lsv_backend/internal/repository"
	"lsv_backend/internal/util"
)

type StageService struct {
	Stages      *repository.StageRepository
	Languages   *repository.LanguageRepository
	Submissions *repository.SubmissionRepository
}

func NewStageService(
	stages *repository.StageRepository,
	languages *repository.LanguageRepository,
	submissions *repository.SubmissionRepository,
) *StageService {
	return &StageService{
		Stages:      stages,
		Languages:   languages,
		Submissions: submissions,
	}
}

type StageReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	LanguageID  string `json:"languageId" binding:"required"`
}

func (s *StageService) CreateStage(req StageReq) (*model.Stage, error) {
	if _, err := s.Languages.FindByID(req.LanguageID); err != nil {
		return nil, err
	}

	stage := &model.Stage{
		Name:        req.Name,
		Description: req.Description,
		LanguageID:  req.LanguageID,
	}
	if err := s.Stages.Create(stage); err != nil {
		return nil, err
	}
	return stage, nil
}

func (s *StageService) UpdateStage(id string, req StageReq) (*model.Stage, error) {
	stage, err := s.Stages.FindByID(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.Languages.FindByID(req.LanguageID); err != nil {
		return nil, err
	}

	stage.Name = req.Name
	stage.Description = req.Description
	stage.LanguageID = req.LanguageID

	if err := s.Stages.Update(stage); err != nil {
		return nil, err
	}
	return stage, nil
}

func (s *StageService) DeleteStage(id string) error {
	if _, err := s.Stages.FindByID(id); err != nil {
		return err
	}
	return s.Stages.Delete(id)
}

func (s *StageService) GetStagesByLanguage(languageID string, pagination util.Pagination) ([]model.Stage, int64, error) {
	if err := pagination.Normalize(); err != nil {
		return nil, 0, err
	}
	return s.Stages.FindByLanguage(languageID, pagination)
}

// GetStageProgress rolls lesson completion up into a per-stage percentage.
//
// The passed-lesson set (any submission with score >= model.PassingScore)
// is computed once for the user and reused across every stage of the
// language, so this view can never disagree with the maxScore-based lesson
// view: both derive from the same predicate. A stage without lessons
// reports 0 progress.
func (s *StageService) GetStageProgress(userID, languageID string) ([]model.StageProgress, error) {
	stages, err := s.Stages.FindByLanguageWithLessons(languageID)
	if err != nil {
		return nil, err
	}

	passedIDs, err := s.Submissions.FindPassedLessonIDs(userID, model.PassingScore)
	if err != nil {
		return nil, err
	}
	passed := make(map[string]bool, len(passedIDs))
	for _, id := range passedIDs {
		passed[id] = true
	}

	result := make([]model.StageProgress, 0, len(stages))
	for i := range stages {
		stage := &stages[i]
		total := len(stage.Lessons)
		completed := 0
		for j := range stage.Lessons {
			if passed[stage.Lessons[j].ID] {
				completed++
			}
		}

		if completed > total {
			return nil, fmt.Errorf("%w: stage %s has %d completed of %d lessons",
				util.ErrInvariantViolation, stage.ID, completed, total)
		}

		progress := 0.0
		if total > 0 {
			progress = float64(completed) / float64(total) * 100
		}

		result = append(result, model.StageProgress{
			StageID:          stage.ID,
			Name:             stage.Name,
			Description:      stage.Description,
			TotalLessons:     total,
			CompletedLessons: completed,
			Progress:         progress,
		})
	}
	return result, nil
}

// GetPassedLessonIDs exposes the raw passed-lesson set.
func (s *StageService) GetPassedLessonIDs(userID string) ([]string, error) {
	return s.Submissions.FindPassedLessonIDs(userID, model.PassingScore)
}
