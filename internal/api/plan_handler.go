package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pathly/run-planner/internal/logger"
	"pathly/run-planner/internal/service"
)

// PlanHandler serves the caller's plan and its workouts.
type PlanHandler struct {
	plans    service.PlanService
	profiles service.ProfileService
	media    service.MediaService
	log      *logger.Logger
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(plans service.PlanService, profiles service.ProfileService, media service.MediaService, log *logger.Logger) *PlanHandler {
	return &PlanHandler{plans: plans, profiles: profiles, media: media, log: log}
}

// GetPlan godoc
// @Summary Get the current plan
// @Tags Plan
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PlanResponse
// @Failure 404 {object} gin.H "No plan for this owner"
// @Router /plan [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get owner ID from token")
		return
	}
	plan, err := h.plans.GetPlan(c.Request.Context(), ownerID)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapPlanToResponse(plan))
}

// RegeneratePlan godoc
// @Summary Replace the plan with a freshly generated one
// @Description Builds a new four-week plan from the stored profile, starting today.
// @Tags Plan
// @Produce json
// @Security BearerAuth
// @Success 201 {object} PlanResponse
// @Failure 404 {object} gin.H "No profile for this owner"
// @Router /plan/regenerate [post]
func (h *PlanHandler) RegeneratePlan(c *gin.Context) {
	profile, ok := ownedProfile(c, h.profiles, h.log)
	if !ok {
		return
	}
	plan, err := h.plans.GeneratePlan(c.Request.Context(), profile)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, MapPlanToResponse(plan))
}

// GetWorkout godoc
// @Summary Get one workout with its exercises
// @Tags Plan
// @Produce json
// @Security BearerAuth
// @Param workoutId path string true "Workout ID"
// @Success 200 {object} WorkoutResponse
// @Failure 400 {object} gin.H "Invalid workout ID"
// @Failure 404 {object} gin.H "Plan or workout not found"
// @Router /plan/workouts/{workoutId} [get]
func (h *PlanHandler) GetWorkout(c *gin.Context) {
	ownerID, workoutID, ok := h.workoutParams(c)
	if !ok {
		return
	}
	plan, err := h.plans.GetPlan(c.Request.Context(), ownerID)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}
	workout, week, found := plan.FindWorkout(workoutID)
	if !found {
		respondWithServiceError(c, h.log, service.ErrWorkoutNotFound)
		return
	}
	c.JSON(http.StatusOK, MapWorkoutToResponse(c.Request.Context(), h.media, workout, week.WeekNumber))
}

// UpdateWorkout godoc
// @Summary Mark a workout completed or not completed
// @Tags Plan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workoutId path string true "Workout ID"
// @Param body body UpdateWorkoutRequest true "Completion flag"
// @Success 200 {object} WorkoutResponse
// @Router /plan/workouts/{workoutId} [patch]
func (h *PlanHandler) UpdateWorkout(c *gin.Context) {
	ownerID, workoutID, ok := h.workoutParams(c)
	if !ok {
		return
	}
	var req UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	workout, err := h.plans.SetWorkoutCompleted(c.Request.Context(), ownerID, workoutID, *req.Completed)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}
	plan, err := h.plans.GetPlan(c.Request.Context(), ownerID)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}
	weekNumber := 0
	if _, week, found := plan.FindWorkout(workoutID); found {
		weekNumber = week.WeekNumber
	}
	c.JSON(http.StatusOK, MapWorkoutToResponse(c.Request.Context(), h.media, workout, weekNumber))
}

func (h *PlanHandler) workoutParams(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get owner ID from token")
		return uuid.Nil, uuid.Nil, false
	}
	workoutID, err := uuid.Parse(c.Param("workoutId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format")
		return uuid.Nil, uuid.Nil, false
	}
	return ownerID, workoutID, true
}
