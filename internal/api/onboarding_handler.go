package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pathly/run-planner/internal/domain"
	"pathly/run-planner/internal/logger"
	"pathly/run-planner/internal/service"
)

// OnboardingHandler serves the onboarding questionnaire and its completion.
type OnboardingHandler struct {
	onboarding service.OnboardingService
	tokens     service.TokenService
	log        *logger.Logger
}

// NewOnboardingHandler creates a new OnboardingHandler.
func NewOnboardingHandler(onboarding service.OnboardingService, tokens service.TokenService, log *logger.Logger) *OnboardingHandler {
	return &OnboardingHandler{onboarding: onboarding, tokens: tokens, log: log}
}

// GetOptions godoc
// @Summary List onboarding choices
// @Description Returns every goal, frequency and experience level with its display name.
// @Tags Onboarding
// @Produce json
// @Success 200 {object} OptionsResponse
// @Router /options [get]
func (h *OnboardingHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, buildOptionsResponse())
}

// Complete godoc
// @Summary Complete onboarding
// @Description Stores the profile, generates its first plan and returns an owner token.
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param answers body OnboardingRequest true "Onboarding answers"
// @Success 201 {object} OnboardingResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /onboarding [post]
func (h *OnboardingHandler) Complete(c *gin.Context) {
	var req OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	goal, err := domain.ParseGoal(req.Goal)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	frequency, err := domain.ParseFrequency(req.Frequency)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	experience, err := domain.ParseExperience(req.Experience)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	profile, plan, err := h.onboarding.Complete(c.Request.Context(), goal, frequency, experience)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}

	token, err := h.tokens.Issue(profile)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, OnboardingResponse{
		Token:   token,
		Profile: MapProfileToResponse(profile),
		Plan:    MapPlanToResponse(plan),
	})
}
