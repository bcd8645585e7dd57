package repository

import (
	"lsv_backend/internal/model"
	"lsv_backend/internal/util"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

// Insert appends a submission. Submissions are never updated or deleted;
// two concurrent submissions for the same quiz are both kept and reconciled
// at read time by the aggregators.
func (r *SubmissionRepository) Insert(submission *model.QuizSubmission) error {
	return r.DB.Create(submission).Error
}

func (r *SubmissionRepository) FindByUserAndQuiz(userID, quizID string, pagination util.Pagination) ([]model.QuizSubmission, int64, error) {
	var submissions []model.QuizSubmission
	var total int64

	base := r.DB.Model(&model.QuizSubmission{}).Where("user_id = ? AND quiz_id = ?", userID, quizID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, err := pagination.OrderClause(map[string]string{
		"score":       "score",
		"submittedAt": "submitted_at",
	}, "submitted_at")
	if err != nil {
		return nil, 0, err
	}

	err = r.DB.Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order(order).
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&submissions).Error
	return submissions, total, err
}

// FindByUserAndQuizzes returns every submission the user has for the given
// quizzes, most recent first.
func (r *SubmissionRepository) FindByUserAndQuizzes(userID string, quizIDs []string) ([]model.QuizSubmission, error) {
	if len(quizIDs) == 0 {
		return nil, nil
	}
	var submissions []model.QuizSubmission
	err := r.DB.Where("user_id = ? AND quiz_id IN ?", userID, quizIDs).
		Order("submitted_at DESC").
		Find(&submissions).Error
	return submissions, err
}

// FindPassedLessonIDs returns the distinct lessons for which the user has
// at least one submission scoring minScore or better. This is the single
// predicate behind both stage progress and lesson completion.
func (r *SubmissionRepository) FindPassedLessonIDs(userID string, minScore int) ([]string, error) {
	var lessonIDs []string
	err := r.DB.Table("quiz_submissions AS qs").
		Joins("JOIN quizzes q ON q.id = qs.quiz_id AND q.deleted_at IS NULL").
		Where("qs.user_id = ? AND qs.score >= ?", userID, minScore).
		Distinct("q.lesson_id").
		Pluck("q.lesson_id", &lessonIDs).Error
	return lessonIDs, err
}

// Leaderboard sums every submission score per user. The secondary order on
// user id keeps pagination windows stable across identical snapshots.
func (r *SubmissionRepository) Leaderboard(pagination util.Pagination) ([]model.LeaderboardEntry, int64, error) {
	var total int64
	err := r.DB.Table("quiz_submissions AS qs").
		Joins("JOIN users u ON u.id = qs.user_id AND u.deleted_at IS NULL").
		Distinct("qs.user_id").
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var entries []model.LeaderboardEntry
	err = r.DB.Table("quiz_submissions AS qs").
		Select("u.id AS user_id, u.first_name, u.last_name, SUM(qs.score) AS total_score").
		Joins("JOIN users u ON u.id = qs.user_id AND u.deleted_at IS NULL").
		Group("u.id, u.first_name, u.last_name").
		Order("total_score " + pagination.SortOrder + ", u.id ASC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Scan(&entries).Error
	return entries, total, err
}

// LeaderboardByLanguage is the per-language variant: only submissions whose
// quiz belongs to a lesson of the language are summed.
func (r *SubmissionRepository) LeaderboardByLanguage(languageID string, pagination util.Pagination) ([]model.LeaderboardEntry, int64, error) {
	scoped := func(db *gorm.DB) *gorm.DB {
		return db.Table("quiz_submissions AS qs").
			Joins("JOIN quizzes q ON q.id = qs.quiz_id AND q.deleted_at IS NULL").
			Joins("JOIN lessons l ON l.id = q.lesson_id AND l.deleted_at IS NULL").
			Where("l.language_id = ?", languageID)
	}

	var total int64
	err := scoped(r.DB).
		Joins("JOIN users u ON u.id = qs.user_id AND u.deleted_at IS NULL").
		Distinct("qs.user_id").
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var entries []model.LeaderboardEntry
	err = scoped(r.DB).
		Select("u.id AS user_id, u.first_name, u.last_name, SUM(qs.score) AS total_score").
		Joins("JOIN users u ON u.id = qs.user_id AND u.deleted_at IS NULL").
		Group("u.id, u.first_name, u.last_name").
		Order("total_score " + pagination.SortOrder + ", u.id ASC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Scan(&entries).Error
	return entries, total, err
}
