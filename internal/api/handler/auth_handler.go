package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/internal/api/middleware"
	"github.com/d60-Lab/yatube/internal/dto"
	"github.com/d60-Lab/yatube/pkg/response"
)

// Signup 注册
// @Summary 注册
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "用户名与密码"
// @Success 201 {object} response.Response{data=dto.User}
// @Failure 400 {object} response.Response{data=response.ValidationData}
// @Router /auth/signup/ [post]
func (h *Handler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !bind(c, &req) {
		return
	}
	user, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, user)
}

// Login 登录，令牌同时写入 cookie
// @Summary 登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "用户名与密码"
// @Success 200 {object} response.Response{data=dto.Token}
// @Failure 400 {object} response.Response{data=response.ValidationData}
// @Failure 401 {object} response.Response
// @Router /auth/login/ [post]
func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bind(c, &req) {
		return
	}
	tok, err := h.userService.Login(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, tok.Token, int(h.tokenTTL.Seconds()), "/", "", h.secureCookie, true)
	response.Success(c, tok)
}

// Logout 清除登录 cookie
// @Summary 退出登录
// @Tags 认证
// @Success 200 {object} response.Response
// @Router /auth/logout/ [get]
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", h.secureCookie, true)
	response.Success(c, nil)
}
