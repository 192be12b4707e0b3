package dto

import (
	"time"

	"github.com/d60-Lab/yatube/internal/model"
)

type CommentRequest struct {
	Text string `json:"text" validate:"notblank"`
}

type Comment struct {
	ID      uint      `json:"id"`
	PostID  uint      `json:"post_id"`
	Text    string    `json:"text"`
	Created time.Time `json:"created"`
	Author  User      `json:"author"`
}

func FromComment(c *model.Comment) Comment {
	return Comment{ID: c.ID, PostID: c.PostID, Text: c.Text, Created: c.Created, Author: FromUser(&c.Author)}
}

func FromComments(comments []*model.Comment) []Comment {
	out := make([]Comment, len(comments))
	for i, c := range comments {
		out[i] = FromComment(c)
	}
	return out
}
