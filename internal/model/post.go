package model

import "time"

// Post 帖子。PubDate 只在创建时写入，之后任何更新都不会改动它
type Post struct {
	ID       uint      `gorm:"primaryKey"`
	Text     string    `gorm:"type:text;not null"`
	PubDate  time.Time `gorm:"<-:create;autoCreateTime;not null;index:idx_post_pub_date"`
	AuthorID uint      `gorm:"not null;index:idx_post_author"`
	Author   User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	GroupID  *uint     `gorm:"index:idx_post_group"`
	Group    *Group    `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
	Image    *string   `gorm:"type:varchar(255)"`
}

func (Post) TableName() string { return "posts" }

// String 前 15 个字符
func (p Post) String() string {
	r := []rune(p.Text)
	if len(r) > 15 {
		r = r[:15]
	}
	return string(r)
}
