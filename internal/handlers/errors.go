package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/apperrors"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/dto"
)

const msgInternalError = "internal server error"

// writeError maps a service error onto the response. AppErrors below 500
// carry their own status and client message; anything else is logged and
// answered with a generic 500.
func writeError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError {
		logger.Warn(msg, slog.Int("status", appErr.Code), slog.String("error", err.Error()))
		c.JSON(appErr.Code, dto.ErrorResponse{Error: appErr.Message})
		return
	}
	logger.Error(msg, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgInternalError})
}

// parseID reads a positive integer path parameter. Anything else answers
// 404 with notFoundMsg, the same as an unknown ID.
func parseID(c *gin.Context, param, notFoundMsg string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: notFoundMsg})
		return 0, false
	}
	return id, true
}
