package apperr

import (
	"context"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/crashstats/pkg/domain/model"
)

// StatusCode maps a tagged error onto the HTTP status the dashboard answers with
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case goerr.HasTag(err, model.ErrTagBadRequest):
		return http.StatusBadRequest
	case goerr.HasTag(err, model.ErrTagNotFound):
		return http.StatusNotFound
	case goerr.HasTag(err, model.ErrTagUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Handle logs err. Client errors are logged at info, everything else at error.
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)
	if StatusCode(err) < http.StatusInternalServerError {
		logger.Info("request rejected", "error", err)
		return
	}
	logger.Error("application error", "error", err)
}
