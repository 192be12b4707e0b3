package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/internal/dto"
	"github.com/d60-Lab/yatube/internal/service"
	"github.com/d60-Lab/yatube/pkg/response"
)

// Index 首页：全部帖子
// @Summary 全部帖子
// @Tags 帖子
// @Produce json
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response{data=dto.PostPage}
// @Router / [get]
func (h *Handler) Index(c *gin.Context) {
	page, err := h.postService.AllPosts(c.Request.Context(), c.Query("page"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, page)
}

// GroupPosts 社区页
// @Summary 社区帖子
// @Tags 帖子
// @Produce json
// @Param slug path string true "社区 slug"
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response{data=dto.GroupPage}
// @Failure 404 {object} response.Response
// @Router /group/{slug}/ [get]
func (h *Handler) GroupPosts(c *gin.Context) {
	page, err := h.postService.PostsByGroup(c.Request.Context(), c.Param("slug"), c.Query("page"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, page)
}

// Feed 关注的作者的帖子
// @Summary 关注流
// @Tags 帖子
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response{data=dto.PostPage}
// @Failure 302 "未登录跳转登录页"
// @Router /follow/ [get]
func (h *Handler) Feed(c *gin.Context) {
	page, err := h.postService.FeedForUser(c.Request.Context(), currentUser(c), c.Query("page"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, page)
}

// NewPostForm 新建帖子表单
// @Summary 新建帖子表单
// @Tags 帖子
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.PostForm}
// @Router /new/ [get]
func (h *Handler) NewPostForm(c *gin.Context) {
	form, err := h.postService.NewPostForm(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, form)
}

// CreatePost 发帖
// @Summary 发帖
// @Tags 帖子
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PostRequest true "帖子"
// @Success 201 {object} response.Response{data=dto.Post}
// @Failure 400 {object} response.Response{data=response.ValidationData}
// @Router /new/ [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var req dto.PostRequest
	if !bind(c, &req) {
		return
	}
	post, err := h.postService.Create(c.Request.Context(), currentUser(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, post)
}

// PostView 帖子详情
// @Summary 帖子详情
// @Tags 帖子
// @Produce json
// @Param username path string true "作者"
// @Param post_id path int true "帖子 ID"
// @Success 200 {object} response.Response{data=dto.PostDetail}
// @Failure 404 {object} response.Response
// @Router /{username}/{post_id}/ [get]
func (h *Handler) PostView(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	detail, err := h.postService.Detail(c.Request.Context(), c.Param("username"), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, detail)
}

// EditForm 编辑表单（仅作者）
// @Summary 编辑表单
// @Tags 帖子
// @Produce json
// @Security BearerAuth
// @Param username path string true "作者"
// @Param post_id path int true "帖子 ID"
// @Success 200 {object} response.Response{data=dto.PostForm}
// @Failure 302 "非作者跳转到帖子页"
// @Failure 404 {object} response.Response
// @Router /{username}/{post_id}/edit/ [get]
func (h *Handler) EditForm(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	username := c.Param("username")
	form, err := h.postService.EditForm(c.Request.Context(), currentUser(c), username, id)
	if err != nil {
		h.editFailed(c, err, username, id)
		return
	}
	response.Success(c, form)
}

// UpdatePost 编辑帖子（仅作者），pub_date 不变
// @Summary 编辑帖子
// @Tags 帖子
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param username path string true "作者"
// @Param post_id path int true "帖子 ID"
// @Param request body dto.PostRequest true "帖子"
// @Success 200 {object} response.Response{data=dto.Post}
// @Failure 302 "非作者跳转到帖子页"
// @Failure 400 {object} response.Response{data=response.ValidationData}
// @Failure 404 {object} response.Response
// @Router /{username}/{post_id}/edit/ [post]
func (h *Handler) UpdatePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	var req dto.PostRequest
	if !bind(c, &req) {
		return
	}
	username := c.Param("username")
	post, err := h.postService.Update(c.Request.Context(), currentUser(c), username, id, &req)
	if err != nil {
		h.editFailed(c, err, username, id)
		return
	}
	response.Success(c, post)
}

func (h *Handler) editFailed(c *gin.Context, err error, username string, id uint) {
	if errors.Is(err, service.ErrForbidden) {
		response.Redirect(c, postURL(username, id))
		return
	}
	fail(c, err)
}
