package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/blogging_platform_app/internal/apperrors"
	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
	"github.com/SscSPs/blogging_platform_app/internal/dto"
)

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) IssueToken(ctx context.Context, user domain.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Authenticate(ctx context.Context, bearer string) (*domain.User, error) {
	args := m.Called(ctx, bearer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockTokenService) RevokeTokens(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type AuthMiddlewareTestSuite struct {
	suite.Suite
	tokens *mockTokenService
	router *gin.Engine
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.tokens = new(mockTokenService)
	s.router = gin.New()

	whoami := func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			userID = "anonymous"
		}
		c.JSON(http.StatusOK, dto.Success("ok", gin.H{"user_id": userID}))
	}

	s.router.GET("/private", AuthMiddleware(s.tokens), whoami)
	s.router.GET("/live", AuthMiddleware(s.tokens), RequireLiveAccount(), whoami)
	s.router.GET("/public", OptionalAuthMiddleware(s.tokens), whoami)
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) do(path, authHeader string) (*httptest.ResponseRecorder, dto.Envelope) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env dto.Envelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func (s *AuthMiddlewareTestSuite) TestMissingHeader() {
	w, env := s.do("/private", "")

	s.Equal(http.StatusUnauthorized, w.Code)
	s.False(env.Status)
	s.Equal("Authentication credentials were not provided.", env.Message)
	s.tokens.AssertNotCalled(s.T(), "Authenticate", mock.Anything, mock.Anything)
}

func (s *AuthMiddlewareTestSuite) TestMalformedHeader() {
	w, _ := s.do("/private", "Basic abc")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestInvalidToken() {
	s.tokens.On("Authenticate", mock.Anything, "bad").
		Return(nil, apperrors.NewUnauthorizedError("Invalid token.")).Once()

	w, env := s.do("/private", "Bearer bad")

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Invalid token.", env.Message)
	s.tokens.AssertExpectations(s.T())
}

func (s *AuthMiddlewareTestSuite) TestValidTokenSetsUser() {
	s.tokens.On("Authenticate", mock.Anything, "good").
		Return(&domain.User{UserID: "u-1", IsActive: true}, nil).Once()

	w, env := s.do("/private", "Bearer good")

	s.Equal(http.StatusOK, w.Code)
	s.Equal("u-1", env.Data.(map[string]any)["user_id"])
}

func (s *AuthMiddlewareTestSuite) TestTokenKeywordIsAccepted() {
	s.tokens.On("Authenticate", mock.Anything, "good").
		Return(&domain.User{UserID: "u-1"}, nil).Once()

	w, _ := s.do("/private", "Token good")
	s.Equal(http.StatusOK, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestSoftDeletedUserIsForbidden() {
	deletedAt := time.Now()
	s.tokens.On("Authenticate", mock.Anything, "good").
		Return(&domain.User{UserID: "u-1", DeletedAt: &deletedAt}, nil).Once()

	w, env := s.do("/live", "Bearer good")

	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("User account has been soft-deleted.", env.Message)
}

func (s *AuthMiddlewareTestSuite) TestOptionalAuthIgnoresInvalidToken() {
	s.tokens.On("Authenticate", mock.Anything, "stale").
		Return(nil, apperrors.NewUnauthorizedError("Invalid token.")).Once()

	w, env := s.do("/public", "Bearer stale")

	s.Equal(http.StatusOK, w.Code)
	s.Equal("anonymous", env.Data.(map[string]any)["user_id"])
}

func (s *AuthMiddlewareTestSuite) TestOptionalAuthIdentifiesCaller() {
	s.tokens.On("Authenticate", mock.Anything, "good").
		Return(&domain.User{UserID: "u-2"}, nil).Once()

	_, env := s.do("/public", "Bearer good")
	s.Equal("u-2", env.Data.(map[string]any)["user_id"])
}
