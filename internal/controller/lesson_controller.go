package controller

import (
	"lsv_backend/internal/service"
	"lsv_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService *service.LessonService
}

func NewLessonController(lessonService *service.LessonService) *LessonController {
	return &LessonController{LessonService: lessonService}
}

// GetLessonsWithProgress godoc
// @Summary Lessons of a language with the current user's progress
// @Description Each lesson of the page carries its submission history and best score
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param languageId path string true "Language id"
// @Param stageId query string false "Restrict to one stage"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param orderBy query string false "name | createdAt | updatedAt"
// @Param sortOrder query string false "ASC | DESC"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Failure 400 {object} util.Response
// @Router /api/languages/{languageId}/lessons/progress [get]
func (c *LessonController) GetLessonsWithProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	pagination, ok := bindPagination(ctx)
	if !ok {
		return
	}

	progress, total, err := c.LessonService.GetLessonsWithProgress(
		ctx.Param("languageId"), claims.UserID, pagination, ctx.Query("stageId"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, util.NewPageResponse(progress, total, pagination))
}

// GetLessons godoc
// @Summary List lessons of a language
// @Tags lessons
// @Produce json
// @Param languageId path string true "Language id"
// @Param stageId query string false "Restrict to one stage"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/languages/{languageId}/lessons [get]
func (c *LessonController) GetLessons(ctx *gin.Context) {
	pagination, ok := bindPagination(ctx)
	if !ok {
		return
	}

	lessons, total, err := c.LessonService.GetLessonsByLanguage(
		ctx.Param("languageId"), ctx.Query("stageId"), pagination)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, util.NewPageResponse(lessons, total, pagination))
}

// GetLesson godoc
// @Summary Get one lesson
// @Tags lessons
// @Produce json
// @Param id path string true "Lesson id"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id} [get]
func (c *LessonController) GetLesson(ctx *gin.Context) {
	lesson, err := c.LessonService.GetLessonByID(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

// GetLessonQuizzes godoc
// @Summary Quizzes of a lesson, learner view
// @Description Correct answers are never included
// @Tags lessons
// @Produce json
// @Param id path string true "Lesson id"
// @Success 200 {object} util.Response{data=[]model.PublicQuiz}
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id}/quizzes [get]
func (c *LessonController) GetLessonQuizzes(ctx *gin.Context) {
	quizzes, err := c.LessonService.GetQuizzesByLesson(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// CreateLesson godoc
// @Summary Create a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.LessonReq true "Lesson payload"
// @Success 201 {object} util.Response{data=model.Lesson}
// @Failure 404 {object} util.Response "Unknown language or stage"
// @Router /api/admin/lessons [post]
func (c *LessonController) CreateLesson(ctx *gin.Context) {
	var req service.LessonReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.CreateLesson(req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}

// UpdateLesson godoc
// @Summary Update a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Lesson id"
// @Param body body service.LessonReq true "Lesson payload"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Failure 404 {object} util.Response
// @Router /api/admin/lessons/{id} [put]
func (c *LessonController) UpdateLesson(ctx *gin.Context) {
	var req service.LessonReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.UpdateLesson(ctx.Param("id"), req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

// DeleteLesson godoc
// @Summary Delete a lesson
// @Tags lessons
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Lesson id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/lessons/{id} [delete]
func (c *LessonController) DeleteLesson(ctx *gin.Context) {
	if err := c.LessonService.DeleteLesson(ctx.Param("id")); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
