package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
	portssvc "github.com/SscSPs/blogging_platform_app/internal/core/ports/services"
	"github.com/SscSPs/blogging_platform_app/internal/dto"
	"github.com/SscSPs/blogging_platform_app/internal/middleware"
)

// blogHandler serves posts and comments.
type blogHandler struct {
	blogService portssvc.BlogSvcFacade
}

func newBlogHandler(bs portssvc.BlogSvcFacade) *blogHandler {
	return &blogHandler{blogService: bs}
}

func registerBlogRoutes(groups routeGroups, blogService portssvc.BlogSvcFacade) {
	h := newBlogHandler(blogService)

	groups.public.GET("/blog-api-set1/", h.listPublishedPosts)
	groups.public.GET("/search-blogs/", h.searchPosts)
	groups.optional.GET("/blogs/:id/", h.getPost)
	groups.optional.GET("/blogs/:id/comments/", h.listComments)

	groups.live.POST("/create-blog/", h.createPost)
	groups.live.POST("/blog-api-set1/", h.createPost)
	groups.live.GET("/my-blogs/", h.listMyPosts)
	groups.live.PUT("/update-blog/:id/", h.updatePost)
	groups.live.PATCH("/update-blog/:id/", h.updatePost)
	groups.live.DELETE("/soft-delete-blog/:id/", h.softDeletePost)
	groups.live.POST("/implement-comment/:id/", h.commentOnPost)

	// Combined per-post route.
	groups.live.PUT("/blog-api-set2/:id/", h.updatePost)
	groups.live.PATCH("/blog-api-set2/:id/", h.updatePost)
	groups.live.DELETE("/blog-api-set2/:id/", h.softDeletePost)
	groups.live.POST("/blog-api-set2/:id/", h.commentOnPost)
}

// bindPostBody binds a JSON or multipart body into obj. For multipart bodies the
// optional "image" file is opened; the caller must run the returned cleanup.
func bindPostBody(c *gin.Context, logger *slog.Logger, obj any) (*domain.ImageUpload, func(), bool) {
	noop := func() {}
	if c.ContentType() != binding.MIMEMultipartPOSTForm {
		return nil, noop, bindJSON(c, logger, obj)
	}
	if !bindForm(c, logger, obj) {
		return nil, noop, false
	}

	header, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, true
	}
	if err != nil {
		respondBindError(c, logger, err)
		return nil, noop, false
	}
	file, err := header.Open()
	if err != nil {
		logger.Error("Failed to open uploaded image", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Failure(msgInternalError))
		return nil, noop, false
	}

	image := &domain.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}
	return image, func() { _ = file.Close() }, true
}

// viewerID is the authenticated caller's id, or empty for anonymous requests.
func viewerID(c *gin.Context) string {
	id, _ := middleware.GetUserIDFromContext(c)
	return id
}

// createPost godoc
// @Summary Create a blog post
// @Description Accepts JSON, or multipart form data with an optional "image" file.
// @Description The category is created on first use and the status defaults to draft.
// @Tags blogs
// @Accept json,mpfd
// @Produce json
// @Param post body dto.CreatePostRequest true "Post details"
// @Success 201 {object} dto.Envelope{data=dto.BlogPostResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope "User account has been soft-deleted."
// @Security BearerAuth
// @Router /create-blog/ [post]
// @Router /blog-api-set1/ [post]
func (h *blogHandler) createPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := currentUser(c, logger)
	if !ok {
		return
	}
	var req dto.CreatePostRequest
	image, cleanup, ok := bindPostBody(c, logger, &req)
	defer cleanup()
	if !ok {
		return
	}

	post, err := h.blogService.CreatePost(c.Request.Context(), *user, req, image)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Blog post created", slog.String("post_id", post.PostID))
	c.JSON(http.StatusCreated, dto.Success("Blog Created Successfully.", dto.ToBlogPostResponse(post)))
}

// listPublishedPosts godoc
// @Summary List published posts
// @Description Newest first. Pass the returned next_token to fetch the following page.
// @Tags blogs
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param next_token query string false "Opaque cursor from the previous page"
// @Success 200 {object} dto.Envelope{data=dto.ListPostsResponse}
// @Failure 400 {object} dto.Envelope "Invalid next_token."
// @Router /blog-api-set1/ [get]
func (h *blogHandler) listPublishedPosts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPostsParams
	if !bindQuery(c, logger, &params) {
		return
	}

	page, err := h.blogService.ListPublishedPosts(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("All Published Post Are listed below", page))
}

// getPost godoc
// @Summary Get a blog post
// @Description Published posts are public; drafts are visible to their author only.
// @Tags blogs
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.Envelope{data=dto.BlogPostResponse}
// @Failure 404 {object} dto.Envelope "Blog Post Does Not Exist."
// @Router /blogs/{id}/ [get]
func (h *blogHandler) getPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	post, err := h.blogService.GetPost(c.Request.Context(), c.Param("id"), viewerID(c))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Blog Post Details", dto.ToBlogPostResponse(post)))
}

// listMyPosts godoc
// @Summary List the caller's posts
// @Description Includes drafts; soft-deleted posts are omitted.
// @Tags blogs
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.Envelope{data=[]dto.BlogPostResponse}
// @Failure 401 {object} dto.Envelope
// @Security BearerAuth
// @Router /my-blogs/ [get]
func (h *blogHandler) listMyPosts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := currentUser(c, logger)
	if !ok {
		return
	}
	var params dto.PageParams
	if !bindQuery(c, logger, &params) {
		return
	}

	posts, err := h.blogService.ListMyPosts(c.Request.Context(), user.UserID, params)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Your Posts Are listed below", dto.ToBlogPostResponses(posts)))
}

// updatePost godoc
// @Summary Update a blog post
// @Description Partial update; only the author may edit. Accepts JSON or multipart form data.
// @Tags blogs
// @Accept json,mpfd
// @Produce json
// @Param id path string true "Post ID"
// @Param post body dto.UpdatePostRequest true "Fields to change"
// @Success 200 {object} dto.Envelope{data=dto.BlogPostResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope "You Have No Rights to Update.[OnlyAuthor]"
// @Failure 404 {object} dto.Envelope "Blog Post Does Not Exist."
// @Security BearerAuth
// @Router /update-blog/{id}/ [put]
// @Router /update-blog/{id}/ [patch]
func (h *blogHandler) updatePost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := currentUser(c, logger)
	if !ok {
		return
	}
	var req dto.UpdatePostRequest
	image, cleanup, ok := bindPostBody(c, logger, &req)
	defer cleanup()
	if !ok {
		return
	}

	post, err := h.blogService.UpdatePost(c.Request.Context(), *user, c.Param("id"), req, image)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Blog post updated", slog.String("post_id", post.PostID))
	c.JSON(http.StatusOK, dto.Success("Blog Post updated successfully.", dto.ToBlogPostResponse(post)))
}

// softDeletePost godoc
// @Summary Soft-delete a blog post
// @Tags blogs
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope "Blog post has already been soft-deleted."
// @Failure 401 {object} dto.Envelope "You Have No Rights to Delete.[OnlyAuthor]"
// @Failure 404 {object} dto.Envelope "Blog Post Does Not Exist."
// @Security BearerAuth
// @Router /soft-delete-blog/{id}/ [delete]
func (h *blogHandler) softDeletePost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := currentUser(c, logger)
	if !ok {
		return
	}
	postID := c.Param("id")

	if err := h.blogService.SoftDeletePost(c.Request.Context(), *user, postID); err != nil {
		respondError(c, logger, err)
		return
	}
	logger.Info("Blog post soft deleted", slog.String("post_id", postID))
	c.JSON(http.StatusOK, dto.Success("Blog post soft-deleted successfully.", nil))
}

// commentOnPost godoc
// @Summary Comment on a blog post
// @Description Records the caller's name and email and notifies the post author by email.
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param comment body dto.CommentRequest true "Comment"
// @Success 201 {object} dto.Envelope{data=dto.CommentResponse}
// @Failure 400 {object} dto.Envelope "Please provide a comment."
// @Failure 404 {object} dto.Envelope "Blog Post Does Not Exist."
// @Security BearerAuth
// @Router /implement-comment/{id}/ [post]
func (h *blogHandler) commentOnPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := currentUser(c, logger)
	if !ok {
		return
	}
	var req dto.CommentRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	comment, err := h.blogService.CommentOnPost(c.Request.Context(), *user, c.Param("id"), req.Comment)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Success("Comment posted successfully.", dto.ToCommentResponse(comment)))
}

// listComments godoc
// @Summary List the comments of a post
// @Description Oldest first.
// @Tags blogs
// @Produce json
// @Param id path string true "Post ID"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.Envelope{data=[]dto.CommentResponse}
// @Failure 404 {object} dto.Envelope "Blog Post Does Not Exist."
// @Router /blogs/{id}/comments/ [get]
func (h *blogHandler) listComments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.PageParams
	if !bindQuery(c, logger, &params) {
		return
	}

	comments, err := h.blogService.ListComments(c.Request.Context(), c.Param("id"), viewerID(c), params)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("All Comments Are listed below", dto.ToCommentResponses(comments)))
}

// searchPosts godoc
// @Summary Search published posts
// @Description Case-insensitive match on the title or the category name.
// @Tags blogs
// @Produce json
// @Param search query string true "Search text"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.Envelope{data=[]dto.BlogPostResponse}
// @Failure 400 {object} dto.Envelope "Please provide a search query."
// @Router /search-blogs/ [get]
func (h *blogHandler) searchPosts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SearchPostsParams
	if !bindQuery(c, logger, &params) {
		return
	}

	posts, err := h.blogService.SearchPosts(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Search Results Are listed below", dto.ToBlogPostResponses(posts)))
}
