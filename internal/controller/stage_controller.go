package controller

import (
	"lsv_backend/internal/service"
	"lsv_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StageController struct {
	StageService *service.StageService
}

func NewStageController(stageService *service.StageService) *StageController {
	return &StageController{StageService: stageService}
}

// GetStages godoc
// @Summary List stages of a language
// @Tags stages
// @Produce json
// @Param languageId path string true "Language id"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/languages/{languageId}/stages [get]
func (c *StageController) GetStages(ctx *gin.Context) {
	pagination, ok := bindPagination(ctx)
	if !ok {
		return
	}

	stages, total, err := c.StageService.GetStagesByLanguage(ctx.Param("languageId"), pagination)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, util.NewPageResponse(stages, total, pagination))
}

// GetStageProgress godoc
// @Summary Per-stage progress for the current user
// @Description One entry per stage of the language with completion counts and percentage
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param languageId path string true "Language id"
// @Success 200 {object} util.Response{data=[]model.StageProgress}
// @Failure 401 {object} util.Response
// @Router /api/languages/{languageId}/stages/progress [get]
func (c *StageController) GetStageProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.StageService.GetStageProgress(claims.UserID, ctx.Param("languageId"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// CreateStage godoc
// @Summary Create a stage
// @Tags stages
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.StageReq true "Stage payload"
// @Success 201 {object} util.Response{data=model.Stage}
// @Failure 404 {object} util.Response "Unknown language"
// @Router /api/admin/stages [post]
func (c *StageController) CreateStage(ctx *gin.Context) {
	var req service.StageReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	stage, err := c.StageService.CreateStage(req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, stage)
}

// UpdateStage godoc
// @Summary Update a stage
// @Tags stages
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Stage id"
// @Param body body service.StageReq true "Stage payload"
// @Success 200 {object} util.Response{data=model.Stage}
// @Failure 404 {object} util.Response
// @Router /api/admin/stages/{id} [put]
func (c *StageController) UpdateStage(ctx *gin.Context) {
	var req service.StageReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	stage, err := c.StageService.UpdateStage(ctx.Param("id"), req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, stage)
}

// DeleteStage godoc
// @Summary Delete a stage
// @Tags stages
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Stage id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/stages/{id} [delete]
func (c *StageController) DeleteStage(ctx *gin.Context) {
	if err := c.StageService.DeleteStage(ctx.Param("id")); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
