// Package model 持久化实体
package model

// All 需要自动迁移的实体，顺序即建表顺序
func All() []interface{} {
	return []interface{}{&User{}, &Group{}, &Post{}, &Comment{}, &Follow{}}
}
