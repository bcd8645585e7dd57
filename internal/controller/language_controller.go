package controller

import (
	"lsv_backend/internal/service"
	"lsv_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LanguageController struct {
	LanguageService *service.LanguageService
}

func NewLanguageController(languageService *service.LanguageService) *LanguageController {
	return &LanguageController{LanguageService: languageService}
}

// GetLanguages godoc
// @Summary List languages
// @Description Paginated public catalog of sign languages
// @Tags languages
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param orderBy query string false "name | createdAt | updatedAt"
// @Param sortOrder query string false "ASC | DESC"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Failure 400 {object} util.Response
// @Router /api/languages [get]
func (c *LanguageController) GetLanguages(ctx *gin.Context) {
	pagination, ok := bindPagination(ctx)
	if !ok {
		return
	}

	languages, total, err := c.LanguageService.GetLanguages(ctx.Request.Context(), pagination)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, util.NewPageResponse(languages, total, pagination))
}

// GetLanguage godoc
// @Summary Get one language
// @Tags languages
// @Produce json
// @Param languageId path string true "Language id"
// @Success 200 {object} util.Response{data=model.Language}
// @Failure 404 {object} util.Response
// @Router /api/languages/{languageId} [get]
func (c *LanguageController) GetLanguage(ctx *gin.Context) {
	language, err := c.LanguageService.GetLanguageByID(ctx.Param("languageId"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, language)
}

// CreateLanguage godoc
// @Summary Create a language
// @Tags languages
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.LanguageReq true "Language payload"
// @Success 201 {object} util.Response{data=model.Language}
// @Failure 400 {object} util.Response
// @Router /api/admin/languages [post]
func (c *LanguageController) CreateLanguage(ctx *gin.Context) {
	var req service.LanguageReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	language, err := c.LanguageService.CreateLanguage(req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, language)
}

// UpdateLanguage godoc
// @Summary Update a language
// @Tags languages
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param languageId path string true "Language id"
// @Param body body service.LanguageReq true "Language payload"
// @Success 200 {object} util.Response{data=model.Language}
// @Failure 404 {object} util.Response
// @Router /api/admin/languages/{languageId} [put]
func (c *LanguageController) UpdateLanguage(ctx *gin.Context) {
	var req service.LanguageReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	language, err := c.LanguageService.UpdateLanguage(ctx.Param("languageId"), req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, language)
}

// DeleteLanguage godoc
// @Summary Delete a language
// @Tags languages
// @Produce json
// @Security ApiKeyAuth
// @Param languageId path string true "Language id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/languages/{languageId} [delete]
func (c *LanguageController) DeleteLanguage(ctx *gin.Context) {
	if err := c.LanguageService.DeleteLanguage(ctx.Param("languageId")); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
