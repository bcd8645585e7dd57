package service

import (
	"lsv_backend/internal/model"
	"lsv_backend/internal/repository"
	"lsv_backend/internal/util"
)

type LeaderboardService struct {
	Submissions *repository.SubmissionRepository
	Languages   *repository.LanguageRepository
}

func NewLeaderboardService(
	submissions *repository.SubmissionRepository,
	languages *repository.LanguageRepository,
) *LeaderboardService {
	return &LeaderboardService{Submissions: submissions, Languages: languages}
}

// GetLeaderboard ranks all users by the sum of every submission score.
//
// Every submission counts, not just each quiz's best attempt; repeated
// attempts therefore inflate the total. Ordering is totalScore with the
// requested direction, ties broken by user id, so pagination windows are
// gap-free and duplicate-free over a fixed snapshot. Rank numbers are left
// to the consumer: ((page-1)*limit)+index+1.
func (s *LeaderboardService) GetLeaderboard(pagination util.Pagination) ([]model.LeaderboardEntry, int64, error) {
	if err := pagination.Normalize(); err != nil {
		return nil, 0, err
	}
	if pagination.OrderBy != "" && pagination.OrderBy != "totalScore" {
		return nil, 0, util.ErrInvalidOrderBy
	}
	return s.Submissions.Leaderboard(pagination)
}

// GetLeaderboardByLanguage restricts the sum to submissions for quizzes
// under the given language.
func (s *LeaderboardService) GetLeaderboardByLanguage(languageID string, pagination util.Pagination) ([]model.LeaderboardEntry, int64, error) {
	if err := pagination.Normalize(); err != nil {
		return nil, 0, err
	}
	if pagination.OrderBy != "" && pagination.OrderBy != "totalScore" {
		return nil, 0, util.ErrInvalidOrderBy
	}
	if _, err := s.Languages.FindByID(languageID); err != nil {
		return nil, 0, err
	}
	return s.Submissions.LeaderboardByLanguage(languageID, pagination)
}
