package controller

import (
	"errors"
	"net/http"

	"lsv_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the service error families onto HTTP statuses.
// Anything unrecognized is logged and reported as a 500.
func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrLanguageNotFound),
		errors.Is(err, util.ErrStageNotFound),
		errors.Is(err, util.ErrLessonNotFound),
		errors.Is(err, util.ErrQuizNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrInvalidPagination),
		errors.Is(err, util.ErrInvalidOrderBy),
		errors.Is(err, util.ErrNoAnswers),
		errors.Is(err, util.ErrAmbiguousAnswerKey):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrEmailRegistered):
		util.Error(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Unauthorized(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

func bindPagination(ctx *gin.Context) (util.Pagination, bool) {
	var pagination util.Pagination
	if err := ctx.ShouldBindQuery(&pagination); err != nil {
		util.BadRequest(ctx, err.Error())
		return pagination, false
	}
	return pagination, true
}
