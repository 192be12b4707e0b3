package middleware

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/pkg/response"
	"github.com/d60-Lab/yatube/pkg/token"
)

const (
	// TokenCookie 登录成功后下发的 cookie 名
	TokenCookie = "token"
	// LoginPath 未登录访问受保护页面时跳转的地址
	LoginPath = "/auth/login/"

	userIDKey   = "user_id"
	usernameKey = "username"
)

// Authenticate 解析 Authorization: Bearer 或 token cookie。
// 令牌缺失或无效时按匿名处理，不拦截请求。
func Authenticate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			raw, _ = c.Cookie(TokenCookie)
		}
		if raw != "" {
			if claims, err := token.ParseToken(raw, secret); err == nil {
				c.Set(userIDKey, claims.UserID)
				c.Set(usernameKey, claims.Username)
			}
		}
		c.Next()
	}
}

// RequireAuth 匿名用户 302 到登录页，next 带上原始地址
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserID(c); !ok {
			response.Redirect(c, LoginURL(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoginURL /auth/login/?next=<next>
func LoginURL(next string) string {
	return LoginPath + "?" + url.Values{"next": {next}}.Encode()
}

// CurrentUserID 当前登录用户；匿名时 ok 为 false
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

func CurrentUsername(c *gin.Context) string {
	return c.GetString(usernameKey)
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
		return strings.TrimSpace(h[len(prefix):])
	}
	return ""
}
