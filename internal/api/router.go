package api

import (
	"net/http"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/yatube/config"
	"github.com/d60-Lab/yatube/internal/api/handler"
	"github.com/d60-Lab/yatube/internal/api/middleware"
	"github.com/d60-Lab/yatube/pkg/response"

	_ "github.com/d60-Lab/yatube/docs"
)

// Options 路由可选项
type Options struct {
	// RateLimiter 为空时不限流
	RateLimiter *middleware.RateLimiter
	Tracing     bool
	Sentry      bool
}

// SetupRouter 注册全部路由
func SetupRouter(cfg *config.Config, h *handler.Handler, opts Options) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), middleware.Recovery())
	if opts.Sentry {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	if opts.Tracing {
		r.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}
	r.Use(middleware.Metrics(), gzip.Gzip(gzip.DefaultCompression))
	if opts.RateLimiter != nil {
		r.Use(opts.RateLimiter.Middleware())
	}
	r.Use(middleware.Authenticate(cfg.JWT.Secret))

	r.NoRoute(func(c *gin.Context) { response.NotFound(c, "not found") })
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, response.Response{Code: http.StatusMethodNotAllowed, Message: "method not allowed"})
	})
	r.HandleMethodNotAllowed = true

	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/auth")
	{
		auth.POST("/signup/", h.Signup)
		auth.POST("/login/", h.Login)
		auth.GET("/logout/", h.Logout)
	}

	required := middleware.RequireAuth()

	r.GET("/", h.Index)
	r.GET("/group/:slug/", h.GroupPosts)
	r.GET("/new/", required, h.NewPostForm)
	r.POST("/new/", required, h.CreatePost)
	r.GET("/follow/", required, h.Feed)

	user := r.Group("/:username")
	{
		user.GET("/", h.Profile)
		user.GET("/follow/", required, h.Follow)
		user.GET("/unfollow/", required, h.Unfollow)
		user.GET("/following/", h.ListFollowing)
		user.GET("/:post_id/", h.PostView)
		user.GET("/:post_id/edit/", required, h.EditForm)
		user.POST("/:post_id/edit/", required, h.UpdatePost)
		user.POST("/:post_id/comment/", required, h.AddComment)
	}

	return r
}
