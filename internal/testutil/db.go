// Package testutil 测试用的内存数据库与种子数据
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/yatube/config"
	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/pkg/database"
)

// NewDB 每个测试一个独立的内存 SQLite，外键开启
func NewDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	db, err := database.Open(config.DatabaseConfig{
		Driver:       "sqlite",
		DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		MaxOpenConns: 1,
		LogLevel:     "silent",
	})
	if err != nil {
		tb.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	tb.Cleanup(func() { _ = database.Close(db) })
	return db
}

// CreateUser 直接落库一个用户（密码哈希占位）
func CreateUser(tb testing.TB, db *gorm.DB, username string) *model.User {
	tb.Helper()
	u := &model.User{Username: username, PasswordHash: "x"}
	if err := db.Create(u).Error; err != nil {
		tb.Fatalf("create user %s: %v", username, err)
	}
	return u
}

func CreateGroup(tb testing.TB, db *gorm.DB, slug string) *model.Group {
	tb.Helper()
	g := &model.Group{Title: "Группа " + slug, Slug: slug, Description: "описание"}
	if err := db.Create(g).Error; err != nil {
		tb.Fatalf("create group %s: %v", slug, err)
	}
	return g
}

func CreatePost(tb testing.TB, db *gorm.DB, author *model.User, group *model.Group, text string) *model.Post {
	tb.Helper()
	p := &model.Post{Text: text, AuthorID: author.ID}
	if group != nil {
		p.GroupID = &group.ID
	}
	if err := db.Omit("Author", "Group").Create(p).Error; err != nil {
		tb.Fatalf("create post: %v", err)
	}
	return p
}
