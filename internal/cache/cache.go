// Package cache caches rendered post pages.
//
// The cache is best effort: a lookup failure is reported as a miss and a
// write failure is only logged, so a broken cache never fails a request.
package cache

import (
	"context"
	"fmt"
)

// Cache stores JSON-encodable page payloads under string keys.
type Cache interface {
	Load(ctx context.Context, key string, dst interface{}) bool
	Store(ctx context.Context, key string, v interface{})
}

// IndexKey is the key of one page of the all-posts listing.
func IndexKey(page, perPage int) string {
	return fmt.Sprintf("posts:index:%d:%d", page, perPage)
}

// Nop never hits. Used when Redis is disabled.
type Nop struct{}

func (Nop) Load(context.Context, string, interface{}) bool { return false }
func (Nop) Store(context.Context, string, interface{})     {}
