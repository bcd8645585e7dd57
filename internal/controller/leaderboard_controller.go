package controller

import (
	"lsv_backend/internal/service"
	"lsv_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	LeaderboardService *service.LeaderboardService
}

func NewLeaderboardController(leaderboardService *service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{LeaderboardService: leaderboardService}
}

// GetLeaderboard godoc
// @Summary Global leaderboard
// @Description Users ranked by the sum of all their submission scores
// @Tags leaderboard
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param sortOrder query string false "ASC | DESC (default DESC)"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Failure 400 {object} util.Response
// @Router /api/leaderboard [get]
func (c *LeaderboardController) GetLeaderboard(ctx *gin.Context) {
	pagination, ok := bindPagination(ctx)
	if !ok {
		return
	}

	entries, total, err := c.LeaderboardService.GetLeaderboard(pagination)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, util.NewPageResponse(entries, total, pagination))
}

// GetLeaderboardByLanguage godoc
// @Summary Leaderboard scoped to one language
// @Tags leaderboard
// @Produce json
// @Security ApiKeyAuth
// @Param languageId path string true "Language id"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Failure 404 {object} util.Response "Unknown language"
// @Router /api/languages/{languageId}/leaderboard [get]
func (c *LeaderboardController) GetLeaderboardByLanguage(ctx *gin.Context) {
	pagination, ok := bindPagination(ctx)
	if !ok {
		return
	}

	entries, total, err := c.LeaderboardService.GetLeaderboardByLanguage(ctx.Param("languageId"), pagination)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, util.NewPageResponse(entries, total, pagination))
}
