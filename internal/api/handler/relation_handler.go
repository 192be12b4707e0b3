package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/internal/api/middleware"
	"github.com/d60-Lab/yatube/pkg/response"
)

// Profile 作者主页
// @Summary 作者主页
// @Tags 关系链
// @Produce json
// @Param username path string true "作者"
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response{data=dto.Profile}
// @Failure 404 {object} response.Response
// @Router /{username}/ [get]
func (h *Handler) Profile(c *gin.Context) {
	viewer, _ := middleware.CurrentUserID(c)
	profile, err := h.postService.Profile(c.Request.Context(), viewer, c.Param("username"), c.Query("page"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, profile)
}

// Follow 关注作者，重复关注与关注自己都是无操作
// @Summary 关注作者
// @Tags 关系链
// @Security BearerAuth
// @Param username path string true "作者"
// @Success 302 "跳转到作者主页"
// @Failure 404 {object} response.Response
// @Router /{username}/follow/ [get]
func (h *Handler) Follow(c *gin.Context) {
	username := c.Param("username")
	author, err := h.userService.GetByUsername(c.Request.Context(), username)
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.relService.Follow(c.Request.Context(), currentUser(c), author.ID); err != nil {
		fail(c, err)
		return
	}
	response.Redirect(c, profileURL(author.Username))
}

// Unfollow 取消关注，未关注时是无操作
// @Summary 取消关注
// @Tags 关系链
// @Security BearerAuth
// @Param username path string true "作者"
// @Success 302 "跳转到作者主页"
// @Failure 404 {object} response.Response
// @Router /{username}/unfollow/ [get]
func (h *Handler) Unfollow(c *gin.Context) {
	username := c.Param("username")
	author, err := h.userService.GetByUsername(c.Request.Context(), username)
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.relService.Unfollow(c.Request.Context(), currentUser(c), author.ID); err != nil {
		fail(c, err)
		return
	}
	response.Redirect(c, profileURL(author.Username))
}

// ListFollowing 查询某用户关注的作者 ID
// @Summary 查询关注列表
// @Tags 关系链
// @Produce json
// @Param username path string true "用户名"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 404 {object} response.Response
// @Router /{username}/following/ [get]
func (h *Handler) ListFollowing(c *gin.Context) {
	user, err := h.userService.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		fail(c, err)
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	list, err := h.relService.ListFollowing(c.Request.Context(), user.ID, page, pageSize)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": list})
}
