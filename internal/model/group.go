package model

// Group 社区
type Group struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"type:varchar(200);not null"`
	Slug        string `gorm:"type:varchar(50);uniqueIndex;not null;check:slug <> ''"`
	Description string `gorm:"type:text"`
}

func (Group) TableName() string { return "post_groups" }

func (g Group) String() string { return g.Title }
