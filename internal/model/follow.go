package model

import "time"

// Follow 关注关系（Follower 关注 Author）
type Follow struct {
	ID         string `gorm:"primaryKey;type:varchar(36)"`
	FollowerID uint   `gorm:"not null;index:idx_follow_follower;uniqueIndex:idx_follow_pair,priority:1"`
	AuthorID   uint   `gorm:"not null;index:idx_follow_author;uniqueIndex:idx_follow_pair,priority:2"`
	// 复合唯一键，避免重复关注
	// idx_follow_pair = (follower_id, author_id)
	Follower  User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Author    User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

func (Follow) TableName() string { return "follows" }
