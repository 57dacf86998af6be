package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pathly/run-planner/internal/domain"
	"pathly/run-planner/internal/logger"
	"pathly/run-planner/internal/service"
)

// respondWithServiceError maps service errors onto HTTP statuses. Anything
// unrecognised is logged and reported as a 500 without internal detail.
func respondWithServiceError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidProfile),
		errors.Is(err, domain.ErrInvalidGoal),
		errors.Is(err, domain.ErrInvalidFrequency),
		errors.Is(err, domain.ErrInvalidExperience):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		log.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
