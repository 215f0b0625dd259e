package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/blogging_platform_app/internal/core/ports/services"
	"github.com/SscSPs/blogging_platform_app/internal/dto"
	"github.com/SscSPs/blogging_platform_app/internal/middleware"
)

// authHandler serves sign up, activation, login and password reset.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the account lifecycle routes. Login and every
// OTP endpoint sit behind their rate limiters.
func registerAuthRoutes(groups routeGroups, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)

	groups.public.POST("/register/", h.register)
	groups.public.POST("/verify-activationotp/", groups.otpLimit, h.verifyActivationOTP)
	groups.public.POST("/sendotp-activation/", groups.otpLimit, h.sendActivationOTP)
	groups.public.POST("/email-login/", groups.loginLimit, h.emailLogin)
	groups.public.POST("/sendotp-forget/", groups.otpLimit, h.sendForgetOTP)
	groups.public.POST("/verify-forgetotp/", groups.otpLimit, h.verifyForgetOTP)

	groups.live.POST("/update-password/", h.updatePassword)
}

// register godoc
// @Summary Register a new user
// @Description Creates an inactive account and emails an activation code.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "Account details"
// @Success 201 {object} dto.Envelope{data=dto.RegisterResponse}
// @Failure 400 {object} dto.Envelope "Invalid input, email or username taken"
// @Failure 500 {object} dto.Envelope
// @Router /register/ [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.Success("User created successfully", dto.ToRegisterResponse(user)))
}

// verifyActivationOTP godoc
// @Summary Activate an account
// @Description Consumes an activation code, activates its owner and returns a fresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Param otp body dto.OTPRequest true "Activation code"
// @Success 200 {object} dto.Envelope{data=dto.TokenResponse}
// @Failure 400 {object} dto.Envelope "OTP is required field."
// @Failure 401 {object} dto.Envelope "OTP Verification failed"
// @Router /verify-activationotp/ [post]
func (h *authHandler) verifyActivationOTP(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OTPRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	token, err := h.authService.VerifyActivationOTP(c.Request.Context(), req.OTP)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("OTP is Verified Successfully.", dto.TokenResponse{Token: token}))
}

// sendActivationOTP godoc
// @Summary Resend the activation code
// @Tags auth
// @Accept json
// @Produce json
// @Param email body dto.EmailRequest true "Account email"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope "User account is already active"
// @Failure 404 {object} dto.Envelope "User does not exist"
// @Router /sendotp-activation/ [post]
func (h *authHandler) sendActivationOTP(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EmailRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	if err := h.authService.ResendActivationOTP(c.Request.Context(), req.Email); err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("OTP sent successfully", nil))
}

// emailLogin godoc
// @Summary Log in with email and password
// @Description Rotates the caller's token. Soft-deleted accounts may log in to reach recovery.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.EmailLoginRequest true "Login credentials"
// @Success 200 {object} dto.Envelope{data=dto.TokenResponse}
// @Failure 400 {object} dto.Envelope "Missing email or password field"
// @Failure 401 {object} dto.Envelope "Invalid email or password"
// @Failure 403 {object} dto.Envelope "User account is not active"
// @Failure 404 {object} dto.Envelope "User does not exist"
// @Failure 429 {object} dto.Envelope
// @Router /email-login/ [post]
func (h *authHandler) emailLogin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EmailLoginRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	token, err := h.authService.EmailLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("User Login successfully", dto.TokenResponse{Token: token}))
}

// sendForgetOTP godoc
// @Summary Send a password reset code
// @Tags auth
// @Accept json
// @Produce json
// @Param email body dto.EmailRequest true "Account email"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope "User does not exist"
// @Failure 429 {object} dto.Envelope
// @Router /sendotp-forget/ [post]
func (h *authHandler) sendForgetOTP(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EmailRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	if err := h.authService.SendForgetOTP(c.Request.Context(), req.Email); err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("OTP sent successfully", nil))
}

// verifyForgetOTP godoc
// @Summary Verify a password reset code
// @Description Consumes a reset code and returns a token for setting the new password.
// @Tags auth
// @Accept json
// @Produce json
// @Param otp body dto.OTPRequest true "Reset code"
// @Success 200 {object} dto.Envelope{data=dto.TokenResponse}
// @Failure 400 {object} dto.Envelope "OTP is required field."
// @Failure 401 {object} dto.Envelope "OTP Verification failed"
// @Failure 429 {object} dto.Envelope
// @Router /verify-forgetotp/ [post]
func (h *authHandler) verifyForgetOTP(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OTPRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	token, err := h.authService.VerifyForgetOTP(c.Request.Context(), req.OTP)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("OTP is Verified Successfully.", dto.TokenResponse{Token: token}))
}

// updatePassword godoc
// @Summary Set a new password
// @Description Stores the new password and rotates the caller's token.
// @Tags auth
// @Accept json
// @Produce json
// @Param password body dto.UpdatePasswordRequest true "New password"
// @Success 200 {object} dto.Envelope{data=dto.TokenResponse}
// @Failure 400 {object} dto.Envelope "Please provide a new password."
// @Failure 401 {object} dto.Envelope
// @Security BearerAuth
// @Router /update-password/ [post]
func (h *authHandler) updatePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := currentUser(c, logger)
	if !ok {
		return
	}
	var req dto.UpdatePasswordRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	token, err := h.authService.UpdatePassword(c.Request.Context(), *user, req.NewPassword)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	logger.Info("Password updated")
	c.JSON(http.StatusOK, dto.Success("Password updated successfully.", dto.TokenResponse{Token: token}))
}
