package model

import "time"

// Comment 评论，随 Post 或作者级联删除
type Comment struct {
	ID       uint      `gorm:"primaryKey"`
	PostID   uint      `gorm:"not null;index:idx_comment_post"`
	Post     Post      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	AuthorID uint      `gorm:"not null;index"`
	Author   User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Text     string    `gorm:"type:text;not null"`
	Created  time.Time `gorm:"<-:create;autoCreateTime;index"`
}

func (Comment) TableName() string { return "comments" }
