package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/blogging_platform_app/internal/apperrors"
	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
	portssvc "github.com/SscSPs/blogging_platform_app/internal/core/ports/services"
	"github.com/SscSPs/blogging_platform_app/internal/dto"
	"github.com/SscSPs/blogging_platform_app/internal/handlers"
	"github.com/SscSPs/blogging_platform_app/internal/platform/config"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAuthService) ResendActivationOTP(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}
func (m *MockAuthService) VerifyActivationOTP(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}
func (m *MockAuthService) EmailLogin(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}
func (m *MockAuthService) GoogleLogin(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}
func (m *MockAuthService) SendForgetOTP(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}
func (m *MockAuthService) VerifyForgetOTP(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}
func (m *MockAuthService) UpdatePassword(ctx context.Context, user domain.User, newPassword string) (string, error) {
	args := m.Called(ctx, user, newPassword)
	return args.String(0), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock ProfileService ---
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) UpdateUsername(ctx context.Context, user domain.User, newUsername string) (*domain.User, error) {
	args := m.Called(ctx, user, newUsername)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockProfileService) SoftDeleteUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockProfileService) RecoverSoftDeletedUser(ctx context.Context, user domain.User, oldPassword string) error {
	return m.Called(ctx, user, oldPassword).Error(0)
}
func (m *MockProfileService) Logout(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

var _ portssvc.ProfileSvcFacade = (*MockProfileService)(nil)

// --- Mock BlogService ---
type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) ListPublishedPosts(ctx context.Context, params dto.ListPostsParams) (*dto.ListPostsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPostsResponse), args.Error(1)
}
func (m *MockBlogService) GetPost(ctx context.Context, postID string, viewerID string) (*domain.BlogPost, error) {
	args := m.Called(ctx, postID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}
func (m *MockBlogService) ListMyPosts(ctx context.Context, authorID string, params dto.PageParams) ([]domain.BlogPost, error) {
	args := m.Called(ctx, authorID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlogPost), args.Error(1)
}
func (m *MockBlogService) SearchPosts(ctx context.Context, params dto.SearchPostsParams) ([]domain.BlogPost, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlogPost), args.Error(1)
}
func (m *MockBlogService) ListComments(ctx context.Context, postID string, viewerID string, params dto.PageParams) ([]domain.Comment, error) {
	args := m.Called(ctx, postID, viewerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}
func (m *MockBlogService) CreatePost(ctx context.Context, author domain.User, req dto.CreatePostRequest, image *domain.ImageUpload) (*domain.BlogPost, error) {
	args := m.Called(ctx, author, req, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}
func (m *MockBlogService) UpdatePost(ctx context.Context, user domain.User, postID string, req dto.UpdatePostRequest, image *domain.ImageUpload) (*domain.BlogPost, error) {
	args := m.Called(ctx, user, postID, req, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}
func (m *MockBlogService) SoftDeletePost(ctx context.Context, user domain.User, postID string) error {
	return m.Called(ctx, user, postID).Error(0)
}
func (m *MockBlogService) CommentOnPost(ctx context.Context, user domain.User, postID string, content string) (*domain.Comment, error) {
	args := m.Called(ctx, user, postID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

var _ portssvc.BlogSvcFacade = (*MockBlogService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) IssueToken(ctx context.Context, user domain.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}
func (m *MockTokenService) Authenticate(ctx context.Context, bearer string) (*domain.User, error) {
	args := m.Called(ctx, bearer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockTokenService) RevokeTokens(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

const (
	liveToken    = "live-token"
	deletedToken = "deleted-token"
)

// HandlerSuite routes requests through RegisterRoutes with every service mocked.
// liveToken authenticates liveUser and deletedToken authenticates deletedUser.
type HandlerSuite struct {
	suite.Suite
	router  *gin.Engine
	auth    *MockAuthService
	profile *MockProfileService
	blog    *MockBlogService
	tokens  *MockTokenService

	liveUser    domain.User
	deletedUser domain.User
}

func (s *HandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.auth = new(MockAuthService)
	s.profile = new(MockProfileService)
	s.blog = new(MockBlogService)
	s.tokens = new(MockTokenService)

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s.liveUser = domain.User{
		UserID:    "8c1f7d0e-6a43-4b8a-9d1e-2f0c9b6b1a01",
		Username:  "alice",
		Email:     "alice@example.com",
		IsActive:  true,
		CreatedAt: now,
	}
	deletedAt := now.Add(time.Hour)
	s.deletedUser = domain.User{
		UserID:    "5b2e9a4c-1d77-4e0f-8c3a-7a6d2e9f4b02",
		Username:  "bob",
		Email:     "bob@example.com",
		IsActive:  true,
		CreatedAt: now,
		DeletedAt: &deletedAt,
	}
	s.tokens.On("Authenticate", mock.Anything, liveToken).Return(&s.liveUser, nil).Maybe()
	s.tokens.On("Authenticate", mock.Anything, deletedToken).Return(&s.deletedUser, nil).Maybe()
	s.tokens.On("Authenticate", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewUnauthorizedError("Invalid token.")).Maybe()

	s.router = s.newRouter("1000-M", "1000-M")
}

// newRouter registers every route with the given login and OTP rate limits.
func (s *HandlerSuite) newRouter(loginLimit, otpLimit string) *gin.Engine {
	cfg := &config.Config{
		IsProduction:   true,
		LoginRateLimit: loginLimit,
		OTPRateLimit:   otpLimit,
	}
	r := gin.New()
	s.Require().NoError(handlers.RegisterRoutes(r, cfg, &portssvc.ServiceContainer{
		Auth:    s.auth,
		Profile: s.profile,
		Blog:    s.blog,
		Tokens:  s.tokens,
	}))
	return r
}

func (s *HandlerSuite) TearDownTest() {
	s.auth.AssertExpectations(s.T())
	s.profile.AssertExpectations(s.T())
	s.blog.AssertExpectations(s.T())
}

// do sends a request with an optional JSON body and bearer token and decodes the envelope.
func (s *HandlerSuite) do(method, path string, body any, token string) (*httptest.ResponseRecorder, dto.Envelope) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return s.serve(req, token)
}

func (s *HandlerSuite) serve(req *http.Request, token string) (*httptest.ResponseRecorder, dto.Envelope) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env dto.Envelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

// dataMap returns the envelope data as a JSON object.
func (s *HandlerSuite) dataMap(env dto.Envelope) map[string]any {
	data, ok := env.Data.(map[string]any)
	s.Require().True(ok, "data is %T", env.Data)
	return data
}
