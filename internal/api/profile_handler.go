package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pathly/run-planner/internal/domain"
	"pathly/run-planner/internal/logger"
	"pathly/run-planner/internal/service"
)

type ProfileHandler struct {
	profiles service.ProfileService
	log      *logger.Logger
}

func NewProfileHandler(profiles service.ProfileService, log *logger.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, log: log}
}

// ownedProfile loads the current profile and checks that the caller's token
// was issued for it. A token for any other profile sees no profile at all.
func ownedProfile(c *gin.Context, profiles service.ProfileService, log *logger.Logger) (*domain.UserProfile, bool) {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get owner ID from token")
		return nil, false
	}
	profile, err := profiles.GetCurrentProfile(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, log, err)
		return nil, false
	}
	if profile.ID != ownerID {
		respondWithServiceError(c, log, service.ErrProfileNotFound)
		return nil, false
	}
	return profile, true
}

// GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, ok := ownedProfile(c, h.profiles, h.log)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, MapProfileToResponse(profile))
}

// DELETE /api/v1/profile removes the profile and its plan.
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	if _, ok := ownedProfile(c, h.profiles, h.log); !ok {
		return
	}
	if err := h.profiles.Reset(c.Request.Context()); err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
