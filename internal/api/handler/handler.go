package handler

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/internal/api/middleware"
	"github.com/d60-Lab/yatube/internal/service"
	"github.com/d60-Lab/yatube/pkg/response"
	"github.com/d60-Lab/yatube/pkg/validator"
)

// Pinger 健康检查依赖
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	postService service.PostService
	userService service.UserService
	relService  service.RelationshipService
	db          Pinger

	tokenTTL     time.Duration
	secureCookie bool
}

type Options struct {
	TokenTTL     time.Duration
	SecureCookie bool
}

func NewHandler(
	postService service.PostService,
	userService service.UserService,
	relService service.RelationshipService,
	db Pinger,
	opts Options,
) *Handler {
	return &Handler{
		postService:  postService,
		userService:  userService,
		relService:   relService,
		db:           db,
		tokenTTL:     opts.TokenTTL,
		secureCookie: opts.SecureCookie,
	}
}

// bind 解析 JSON 请求体；失败时已写出 400
func bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.ValidationFailed(c, validator.Translate(err))
		return false
	}
	return true
}

// fail 把 service 层错误映射为 HTTP 响应
func fail(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		response.ValidationFailed(c, verr.Fields)
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, "not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}

// currentUser RequireAuth 之后调用，一定有值
func currentUser(c *gin.Context) uint {
	id, _ := middleware.CurrentUserID(c)
	return id
}

// postID 非法的 post_id 与不存在的帖子一样是 404
func postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || id == 0 {
		response.NotFound(c, "not found")
		return 0, false
	}
	return uint(id), true
}

func profileURL(username string) string {
	return fmt.Sprintf("/%s/", url.PathEscape(username))
}

func postURL(username string, id uint) string {
	return fmt.Sprintf("/%s/%d/", url.PathEscape(username), id)
}
