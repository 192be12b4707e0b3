package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/internal/dto"
	"github.com/d60-Lab/yatube/pkg/response"
)

// AddComment 评论帖子
// @Summary 评论帖子
// @Tags 评论
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param username path string true "作者"
// @Param post_id path int true "帖子 ID"
// @Param request body dto.CommentRequest true "评论"
// @Success 201 {object} response.Response{data=dto.Comment}
// @Failure 400 {object} response.Response{data=response.ValidationData}
// @Failure 404 {object} response.Response
// @Router /{username}/{post_id}/comment/ [post]
func (h *Handler) AddComment(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	var req dto.CommentRequest
	if !bind(c, &req) {
		return
	}
	comment, err := h.postService.AddComment(c.Request.Context(), currentUser(c), c.Param("username"), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, comment)
}
