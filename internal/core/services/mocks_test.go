package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
)

// --- Repositories ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error {
	args := m.Called(ctx, userID, deletedAt)
	return args.Error(0)
}

func (m *MockUserRepository) ClearUserDeleted(ctx context.Context, userID string, restoredAt time.Time) error {
	args := m.Called(ctx, userID, restoredAt)
	return args.Error(0)
}

type MockOTPRepository struct {
	mock.Mock
}

func (m *MockOTPRepository) SaveOTP(ctx context.Context, otp domain.OTP) error {
	args := m.Called(ctx, otp)
	return args.Error(0)
}

func (m *MockOTPRepository) FindOTPByCode(ctx context.Context, purpose domain.OTPPurpose, code string) (*domain.OTP, error) {
	args := m.Called(ctx, purpose, code)
	var otp *domain.OTP
	if args.Get(0) != nil {
		otp = args.Get(0).(*domain.OTP)
	}
	return otp, args.Error(1)
}

func (m *MockOTPRepository) DeleteOTPsForUser(ctx context.Context, purpose domain.OTPPurpose, userID string) error {
	args := m.Called(ctx, purpose, userID)
	return args.Error(0)
}

func (m *MockOTPRepository) DeleteOTP(ctx context.Context, purpose domain.OTPPurpose, otpID string) error {
	args := m.Called(ctx, purpose, otpID)
	return args.Error(0)
}

type MockAuthTokenRepository struct {
	mock.Mock
}

func (m *MockAuthTokenRepository) ReplaceTokenForUser(ctx context.Context, token domain.AuthToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthTokenRepository) FindTokenByKeyHash(ctx context.Context, keyHash string) (*domain.AuthToken, error) {
	args := m.Called(ctx, keyHash)
	var token *domain.AuthToken
	if args.Get(0) != nil {
		token = args.Get(0).(*domain.AuthToken)
	}
	return token, args.Error(1)
}

func (m *MockAuthTokenRepository) DeleteTokensForUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockAuthTokenRepository) TouchToken(ctx context.Context, tokenID string, usedAt time.Time) error {
	args := m.Called(ctx, tokenID, usedAt)
	return args.Error(0)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetOrCreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

type MockBlogPostRepository struct {
	mock.Mock
}

func (m *MockBlogPostRepository) FindPostByID(ctx context.Context, postID string) (*domain.BlogPost, error) {
	args := m.Called(ctx, postID)
	var post *domain.BlogPost
	if args.Get(0) != nil {
		post = args.Get(0).(*domain.BlogPost)
	}
	return post, args.Error(1)
}

func (m *MockBlogPostRepository) ListPublishedPosts(ctx context.Context, limit int, after *domain.PostCursor) ([]domain.BlogPost, error) {
	args := m.Called(ctx, limit, after)
	var posts []domain.BlogPost
	if args.Get(0) != nil {
		posts = args.Get(0).([]domain.BlogPost)
	}
	return posts, args.Error(1)
}

func (m *MockBlogPostRepository) ListPostsByAuthor(ctx context.Context, authorID string, limit int, offset int) ([]domain.BlogPost, error) {
	args := m.Called(ctx, authorID, limit, offset)
	var posts []domain.BlogPost
	if args.Get(0) != nil {
		posts = args.Get(0).([]domain.BlogPost)
	}
	return posts, args.Error(1)
}

func (m *MockBlogPostRepository) SearchPublishedPosts(ctx context.Context, query string, limit int, offset int) ([]domain.BlogPost, error) {
	args := m.Called(ctx, query, limit, offset)
	var posts []domain.BlogPost
	if args.Get(0) != nil {
		posts = args.Get(0).([]domain.BlogPost)
	}
	return posts, args.Error(1)
}

func (m *MockBlogPostRepository) SavePost(ctx context.Context, post domain.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockBlogPostRepository) UpdatePost(ctx context.Context, post domain.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockBlogPostRepository) MarkPostDeleted(ctx context.Context, postID string, deletedAt time.Time) error {
	args := m.Called(ctx, postID, deletedAt)
	return args.Error(0)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) ListCommentsForPost(ctx context.Context, postID string, limit int, offset int) ([]domain.Comment, error) {
	args := m.Called(ctx, postID, limit, offset)
	var comments []domain.Comment
	if args.Get(0) != nil {
		comments = args.Get(0).([]domain.Comment)
	}
	return comments, args.Error(1)
}

// fakeTxManager runs the callback inline and counts the transactions it was asked for.
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

// --- Services and gateways ---

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) IssueToken(ctx context.Context, user domain.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Authenticate(ctx context.Context, bearer string) (*domain.User, error) {
	args := m.Called(ctx, bearer)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockTokenService) RevokeTokens(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockGoogleOAuth struct {
	mock.Mock
}

func (m *MockGoogleOAuth) ExchangeCodeForIdentity(ctx context.Context, code string) (*domain.GoogleIdentity, error) {
	args := m.Called(ctx, code)
	var identity *domain.GoogleIdentity
	if args.Get(0) != nil {
		identity = args.Get(0).(*domain.GoogleIdentity)
	}
	return identity, args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendActivationOTP(ctx context.Context, user domain.User, code string) error {
	args := m.Called(ctx, user, code)
	return args.Error(0)
}

func (m *MockNotifier) SendForgetPasswordOTP(ctx context.Context, user domain.User, code string) error {
	args := m.Called(ctx, user, code)
	return args.Error(0)
}

func (m *MockNotifier) SendCommentNotification(ctx context.Context, author domain.User, post domain.BlogPost, comment domain.Comment) error {
	args := m.Called(ctx, author, post, comment)
	return args.Error(0)
}

type MockImageStorage struct {
	mock.Mock
}

func (m *MockImageStorage) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockImageStorage) UploadImage(ctx context.Context, upload domain.ImageUpload) (string, error) {
	args := m.Called(ctx, upload)
	return args.String(0), args.Error(1)
}

func (m *MockImageStorage) DeleteImage(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func strPtr(s string) *string {
	return &s
}
