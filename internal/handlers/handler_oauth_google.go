package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/blogging_platform_app/internal/core/ports/services"
	"github.com/SscSPs/blogging_platform_app/internal/dto"
	"github.com/SscSPs/blogging_platform_app/internal/middleware"
)

// googleOAuthHandler signs users in with a Google authorization code obtained by the frontend.
type googleOAuthHandler struct {
	loginService portssvc.LoginSvc
}

func newGoogleOAuthHandler(ls portssvc.LoginSvc) *googleOAuthHandler {
	return &googleOAuthHandler{loginService: ls}
}

func registerGoogleOAuthRoutes(groups routeGroups, loginService portssvc.LoginSvc) {
	h := newGoogleOAuthHandler(loginService)
	groups.public.POST("/google-login/", groups.loginLimit, h.googleLogin)
}

// googleLogin godoc
// @Summary Log in with Google
// @Description Exchanges the authorization code with Google, validates the ID token,
// @Description links or creates the account for the verified email and returns a token.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body dto.GoogleLoginRequest true "Authorization code"
// @Success 200 {object} dto.Envelope{data=dto.TokenResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 429 {object} dto.Envelope
// @Failure 503 {object} dto.Envelope "Google sign-in is not configured"
// @Router /google-login/ [post]
func (h *googleOAuthHandler) googleLogin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GoogleLoginRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	token, err := h.loginService.GoogleLogin(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("User Login successfully", dto.TokenResponse{Token: token}))
}
