package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/SscSPs/blogging_platform_app/cmd/docs"
	portssvc "github.com/SscSPs/blogging_platform_app/internal/core/ports/services"
	"github.com/SscSPs/blogging_platform_app/internal/middleware"
	"github.com/SscSPs/blogging_platform_app/internal/platform/config"
)

// routeGroups are the middleware stacks routes are registered on.
type routeGroups struct {
	public   *gin.RouterGroup
	optional *gin.RouterGroup // bearer token read when present
	authed   *gin.RouterGroup // bearer token required
	live     *gin.RouterGroup // bearer token required, account not soft-deleted

	loginLimit gin.HandlerFunc
	otpLimit   gin.HandlerFunc
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if err := RegisterValidators(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	groups, err := newRouteGroups(r, cfg, services.Tokens)
	if err != nil {
		return err
	}

	registerAuthRoutes(groups, services.Auth)
	registerGoogleOAuthRoutes(groups, services.Auth)
	registerProfileRoutes(groups, services.Profile)
	registerBlogRoutes(groups, services.Blog)

	setupSwaggerRoutes(r, cfg)
	return nil
}

func newRouteGroups(r *gin.Engine, cfg *config.Config, tokens portssvc.TokenSvcFacade) (routeGroups, error) {
	loginLimit, err := middleware.NewRateLimitMiddleware(cfg.LoginRateLimit)
	if err != nil {
		return routeGroups{}, fmt.Errorf("invalid LOGIN_RATE_LIMIT: %w", err)
	}
	otpLimit, err := middleware.NewRateLimitMiddleware(cfg.OTPRateLimit)
	if err != nil {
		return routeGroups{}, fmt.Errorf("invalid OTP_RATE_LIMIT: %w", err)
	}

	authed := r.Group("", middleware.AuthMiddleware(tokens))
	return routeGroups{
		public:     r.Group(""),
		optional:   r.Group("", middleware.OptionalAuthMiddleware(tokens)),
		authed:     authed,
		live:       authed.Group("", middleware.RequireLiveAccount()),
		loginLimit: loginLimit,
		otpLimit:   otpLimit,
	}, nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
