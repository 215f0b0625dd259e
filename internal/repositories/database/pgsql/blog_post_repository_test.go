package pgsql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/blogging_platform_app/internal/apperrors"
	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
)

var (
	publicFilterSQL = regexp.QuoteMeta(`WHERE p.status = 'published' AND p.deleted_at IS NULL AND u.deleted_at IS NULL`)
	newestFirstSQL  = regexp.QuoteMeta(`ORDER BY p.created_at DESC, p.post_id DESC`)
)

var blogPostColumns = []string{
	"post_id", "author_id", "author_username", "title", "content",
	"category_id", "category_name", "image_url", "status",
	"created_at", "updated_at", "deleted_at",
}

func newBlogPostRepo(t *testing.T) (pgxmock.PgxPoolIface, *PgxBlogPostRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, newPgxBlogPostRepository(mock).(*PgxBlogPostRepository)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "golang", escapeLike("golang"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `snake\_case`, escapeLike("snake_case"))
	assert.Equal(t, `back\\slash`, escapeLike(`back\slash`))
}

func TestOTPTableIsFixedPerPurpose(t *testing.T) {
	table, err := otpTable("activation")
	assert.NoError(t, err)
	assert.Equal(t, "activation_otps", table)

	table, err = otpTable("password_reset")
	assert.NoError(t, err)
	assert.Equal(t, "forget_password_otps", table)

	_, err = otpTable("users; DROP TABLE users")
	assert.Error(t, err)
}

func TestListPublishedPosts_FirstPage(t *testing.T) {
	mock, repo := newBlogPostRepo(t)

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	image := "https://cdn.example.com/cover.png"
	mock.ExpectQuery(publicFilterSQL+`.*`+newestFirstSQL+`\s+LIMIT \$1`).
		WithArgs(3, (*time.Time)(nil), (*string)(nil)).
		WillReturnRows(pgxmock.NewRows(blogPostColumns).AddRow(
			"post-1", "user-1", "alice", "Hello", "First post",
			"cat-1", "go", &image, "published",
			created, created, (*time.Time)(nil),
		))

	posts, err := repo.ListPublishedPosts(context.Background(), 3, nil)

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "post-1", posts[0].PostID)
	assert.Equal(t, "alice", posts[0].AuthorUsername)
	assert.Equal(t, "go", posts[0].Category.Name)
	assert.Equal(t, domain.PostStatusPublished, posts[0].Status)
	assert.Equal(t, &image, posts[0].ImageURL)
	assert.Nil(t, posts[0].DeletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPublishedPosts_AfterCursor(t *testing.T) {
	mock, repo := newBlogPostRepo(t)

	cursor := domain.PostCursor{CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), PostID: "post-9"}
	createdAt, postID := cursor.CreatedAt, cursor.PostID
	mock.ExpectQuery(publicFilterSQL + `.*` + regexp.QuoteMeta(`(p.created_at, p.post_id) < ($2::timestamptz, $3::uuid)`) + `.*` + newestFirstSQL).
		WithArgs(3, &createdAt, &postID).
		WillReturnRows(pgxmock.NewRows(blogPostColumns))

	posts, err := repo.ListPublishedPosts(context.Background(), 3, &cursor)

	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchPublishedPosts_MatchesTitleOrCategory(t *testing.T) {
	mock, repo := newBlogPostRepo(t)

	mock.ExpectQuery(publicFilterSQL + `.*` + regexp.QuoteMeta(`AND (p.title ILIKE $1 OR c.name ILIKE $1)`) + `.*` + newestFirstSQL).
		WithArgs(`%go\_lang%`, 10, 20).
		WillReturnRows(pgxmock.NewRows(blogPostColumns))

	posts, err := repo.SearchPublishedPosts(context.Background(), "go_lang", 10, 20)

	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPostsByAuthor_IncludesDrafts(t *testing.T) {
	mock, repo := newBlogPostRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE p.author_id = $1 AND p.deleted_at IS NULL ORDER BY`)).
		WithArgs("user-1", 10, 0).
		WillReturnRows(pgxmock.NewRows(blogPostColumns))

	_, err := repo.ListPostsByAuthor(context.Background(), "user-1", 10, 0)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPostDeleted_AlreadyDeleted(t *testing.T) {
	mock, repo := newBlogPostRepo(t)

	deletedAt := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(`WHERE post_id = $1 AND deleted_at IS NULL`)).
		WithArgs("post-1", deletedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.MarkPostDeleted(context.Background(), "post-1", deletedAt)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
