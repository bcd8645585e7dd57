package controller

import (
	"lsv_backend/internal/model"
	"lsv_backend/internal/service"
	"lsv_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// SubmitQuizRequest carries one graded attempt.
type SubmitQuizRequest struct {
	Answers []model.AnswerEntry `json:"answers" binding:"required"`
}

// GetQuiz godoc
// @Summary Get a quiz, learner view
// @Description Correct answers are never included
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz id"
// @Success 200 {object} util.Response{data=model.PublicQuiz}
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	quiz, err := c.QuizService.GetQuizForLearner(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// SubmitQuiz godoc
// @Summary Submit an attempt for grading
// @Description Grades the answers against the stored key and appends an immutable submission
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Quiz id"
// @Param body body SubmitQuizRequest true "Selected option per question"
// @Success 201 {object} util.Response{data=model.QuizSubmission}
// @Failure 400 {object} util.Response "Empty answers"
// @Failure 404 {object} util.Response "Unknown quiz"
// @Router /api/quizzes/{id}/submissions [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.QuizService.SubmissionTest(claims.UserID, ctx.Param("id"), req.Answers)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, submission)
}

// GetMySubmissions godoc
// @Summary Current user's attempt history for a quiz
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Quiz id"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/quizzes/{id}/submissions [get]
func (c *QuizController) GetMySubmissions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	pagination, ok := bindPagination(ctx)
	if !ok {
		return
	}

	summaries, total, err := c.QuizService.GetSubmissionsFromUser(claims.UserID, ctx.Param("id"), pagination)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, util.NewPageResponse(summaries, total, pagination))
}

// ListQuizzes godoc
// @Summary List quizzes under a language
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param languageId path string true "Language id"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/languages/{languageId}/quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	pagination, ok := bindPagination(ctx)
	if !ok {
		return
	}

	quizzes, total, err := c.QuizService.ListQuizzesByLanguage(ctx.Param("languageId"), pagination)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, util.NewPageResponse(quizzes, total, pagination))
}

// GetQuizWithAnswers godoc
// @Summary Get a quiz with correctness flags
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Quiz id"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response
// @Router /api/admin/quizzes/{id} [get]
func (c *QuizController) GetQuizWithAnswers(ctx *gin.Context) {
	quiz, err := c.QuizService.GetQuizForAdmin(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Description Every question must have exactly one correct option
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.QuizReq true "Quiz payload"
// @Success 201 {object} util.Response{data=model.Quiz}
// @Failure 400 {object} util.Response "Ambiguous answer key"
// @Failure 404 {object} util.Response "Unknown lesson"
// @Router /api/admin/quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req service.QuizReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.CreateQuiz(req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, quiz)
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Quiz id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/quizzes/{id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	if err := c.QuizService.DeleteQuiz(ctx.Param("id")); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
