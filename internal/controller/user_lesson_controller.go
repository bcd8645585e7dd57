package controller

import (
	"lsv_backend/internal/service"
	"lsv_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserLessonController struct {
	UserLessonService *service.UserLessonService
}

func NewUserLessonController(userLessonService *service.UserLessonService) *UserLessonController {
	return &UserLessonController{UserLessonService: userLessonService}
}

// CompletionRequest toggles a lesson's completion state.
type CompletionRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// StartLesson godoc
// @Summary Record that the current user opened a lesson
// @Description Idempotent; a repeated start returns the existing record
// @Tags user-lessons
// @Produce json
// @Security ApiKeyAuth
// @Param lessonId path string true "Lesson id"
// @Success 201 {object} util.Response{data=model.UserLesson}
// @Failure 404 {object} util.Response "Unknown lesson"
// @Router /api/user-lessons/{lessonId}/start [post]
func (c *UserLessonController) StartLesson(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	userLesson, err := c.UserLessonService.StartLesson(claims.UserID, ctx.Param("lessonId"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, userLesson)
}

// SetCompletion godoc
// @Summary Mark a lesson complete or reopen it
// @Tags user-lessons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lessonId path string true "Lesson id"
// @Param body body CompletionRequest true "Completion flag"
// @Success 200 {object} util.Response{data=model.UserLesson}
// @Failure 404 {object} util.Response "Lesson never started"
// @Router /api/user-lessons/{lessonId}/completion [put]
func (c *UserLessonController) SetCompletion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CompletionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	userLesson, err := c.UserLessonService.SetLessonCompletion(claims.UserID, ctx.Param("lessonId"), *req.Completed)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, userLesson)
}

// GetMyLessons godoc
// @Summary Lessons the current user has started
// @Tags user-lessons
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/user-lessons [get]
func (c *UserLessonController) GetMyLessons(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	pagination, ok := bindPagination(ctx)
	if !ok {
		return
	}

	userLessons, total, err := c.UserLessonService.GetUserLessons(claims.UserID, pagination)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, util.NewPageResponse(userLessons, total, pagination))
}
