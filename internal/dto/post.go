// Package dto 请求/响应结构体，与持久化模型解耦
package dto

import (
	"time"

	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/pkg/pagination"
)

// PostRequest 新建/编辑帖子
type PostRequest struct {
	Text  string  `json:"text" validate:"notblank"`
	Group *uint   `json:"group"`
	Image *string `json:"image" validate:"omitempty,max=255"`
}

type Post struct {
	ID      uint      `json:"id"`
	Text    string    `json:"text"`
	PubDate time.Time `json:"pub_date"`
	Author  User      `json:"author"`
	Group   *Group    `json:"group,omitempty"`
	Image   *string   `json:"image,omitempty"`
}

// PostPage 一页帖子（按 pub_date 正序）
type PostPage struct {
	Page  pagination.Page `json:"page"`
	Posts []Post          `json:"posts"`
}

// GroupPage 社区页
type GroupPage struct {
	Group Group `json:"group"`
	PostPage
}

// Profile 作者主页
type Profile struct {
	Author     User  `json:"author"`
	PostCount  int64 `json:"post_count"`
	Followers  int64 `json:"followers"`
	Followings int64 `json:"followings"`
	Following  bool  `json:"following"`
	PostPage
}

// PostDetail 帖子详情页
type PostDetail struct {
	Post       Post      `json:"post"`
	Comments   []Comment `json:"comments"`
	PostCount  int64     `json:"post_count"`
	Followers  int64     `json:"followers"`
	Followings int64     `json:"followings"`
}

// PostForm 新建帖子表单可选的社区
type PostForm struct {
	Groups []Group `json:"groups"`
	Post   *Post   `json:"post,omitempty"`
}

func FromPost(p *model.Post) Post {
	out := Post{
		ID:      p.ID,
		Text:    p.Text,
		PubDate: p.PubDate,
		Author:  FromUser(&p.Author),
		Image:   p.Image,
	}
	if p.Group != nil {
		g := FromGroup(p.Group)
		out.Group = &g
	}
	return out
}

func FromPosts(posts []*model.Post) []Post {
	out := make([]Post, len(posts))
	for i, p := range posts {
		out[i] = FromPost(p)
	}
	return out
}
