package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/blogging_platform_app/internal/core/ports/services"
	"github.com/SscSPs/blogging_platform_app/internal/dto"
	"github.com/SscSPs/blogging_platform_app/internal/middleware"
)

// profileHandler serves the caller's own account.
type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newProfileHandler(ps portssvc.ProfileSvcFacade) *profileHandler {
	return &profileHandler{profileService: ps}
}

// registerProfileRoutes wires the profile routes. Reading the profile, logging out
// and recovering stay reachable for soft-deleted accounts.
func registerProfileRoutes(groups routeGroups, profileService portssvc.ProfileSvcFacade) {
	h := newProfileHandler(profileService)

	groups.authed.GET("/profile/", h.getProfile)
	groups.authed.POST("/logout/", h.logout)
	groups.authed.POST("/recover-soft-deleted-user/", h.recoverSoftDeletedUser)

	groups.live.PUT("/update-username/", h.updateUsername)
	groups.live.POST("/soft-delete-user/", h.softDeleteUser)
}

// getProfile godoc
// @Summary Get the current user's profile
// @Tags profile
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.UserResponse}
// @Failure 401 {object} dto.Envelope
// @Security BearerAuth
// @Router /profile/ [get]
func (h *profileHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := currentUser(c, logger)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.Success("User profile", dto.ToUserResponse(user)))
}

// updateUsername godoc
// @Summary Change the username
// @Tags profile
// @Accept json
// @Produce json
// @Param username body dto.UpdateUsernameRequest true "New username"
// @Success 200 {object} dto.Envelope{data=dto.UpdateUsernameResponse}
// @Failure 400 {object} dto.Envelope "Missing or taken username"
// @Failure 401 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope "User account has been soft-deleted."
// @Security BearerAuth
// @Router /update-username/ [put]
func (h *profileHandler) updateUsername(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := currentUser(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateUsernameRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	updated, err := h.profileService.UpdateUsername(c.Request.Context(), *user, req.NewUsername)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Username updated", slog.String("username", updated.Username))
	c.JSON(http.StatusOK, dto.Success("Username updated successfully.", dto.UpdateUsernameResponse{NewUsername: updated.Username}))
}

// softDeleteUser godoc
// @Summary Soft-delete the current account
// @Tags profile
// @Produce json
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope "User Account has already been soft-deleted."
// @Failure 401 {object} dto.Envelope
// @Security BearerAuth
// @Router /soft-delete-user/ [post]
func (h *profileHandler) softDeleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := currentUser(c, logger)
	if !ok {
		return
	}

	if err := h.profileService.SoftDeleteUser(c.Request.Context(), *user); err != nil {
		respondError(c, logger, err)
		return
	}
	logger.Info("Account soft deleted")
	c.JSON(http.StatusOK, dto.Success("Account soft deleted successfully.", nil))
}

// logout godoc
// @Summary Log out
// @Description Deletes the caller's token.
// @Tags profile
// @Produce json
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Security BearerAuth
// @Router /logout/ [post]
func (h *profileHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := currentUser(c, logger)
	if !ok {
		return
	}

	if err := h.profileService.Logout(c.Request.Context(), *user); err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("User logged out successfully.", nil))
}

// recoverSoftDeletedUser godoc
// @Summary Recover a soft-deleted account
// @Tags profile
// @Accept json
// @Produce json
// @Param password body dto.RecoverAccountRequest true "Current password"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope "Missing password or account not deleted"
// @Failure 401 {object} dto.Envelope "Old password is incorrect."
// @Security BearerAuth
// @Router /recover-soft-deleted-user/ [post]
func (h *profileHandler) recoverSoftDeletedUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := currentUser(c, logger)
	if !ok {
		return
	}
	var req dto.RecoverAccountRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	if err := h.profileService.RecoverSoftDeletedUser(c.Request.Context(), *user, req.OldPassword); err != nil {
		respondError(c, logger, err)
		return
	}
	logger.Info("Account recovered")
	c.JSON(http.StatusOK, dto.Success("Account recovery successful.", nil))
}
