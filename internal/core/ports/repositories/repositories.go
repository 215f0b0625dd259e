package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo      UserRepositoryFacade
	OTPRepo       OTPRepositoryFacade
	AuthTokenRepo AuthTokenRepositoryFacade
	CategoryRepo  CategoryRepositoryFacade
	BlogPostRepo  BlogPostRepositoryFacade
	CommentRepo   CommentRepositoryFacade
	TxManager     TransactionManager
}
