// cachebench 对比首页在无缓存与 Redis 缓存下的延迟分布。
//
// 数据库取自配置；REDIS_ADDR 覆盖配置里的 Redis 地址。帖子不足 POSTS（默认 2000）条时先补齐。
package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/d60-Lab/yatube/config"
	"github.com/d60-Lab/yatube/internal/cache"
	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/repository"
	"github.com/d60-Lab/yatube/internal/service"
	"github.com/d60-Lab/yatube/pkg/database"
)

func main() {
	ctx := context.Background()
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))

	postCount := 2000
	if s := os.Getenv("POSTS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			postCount = n
		}
	}

	var existing int64
	mustDo(db.Model(&model.Post{}).Count(&existing).Error)
	if missing := postCount - int(existing); missing > 0 {
		fmt.Printf("Seeding %d posts...\n", missing)
		author := model.User{Username: "cachebench", PasswordHash: "!"}
		mustDo(db.Where("username = ?", author.Username).FirstOrCreate(&author).Error)
		posts := make([]model.Post, missing)
		for i := range posts {
			posts[i] = model.Post{Text: fmt.Sprintf("cachebench post %d", i), AuthorID: author.ID}
		}
		mustDo(db.Omit("Author", "Group").CreateInBatches(&posts, 500).Error)
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = cfg.Redis.Addr
	}
	client, err := cache.NewRedisClient(ctx, redisAddr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis at %s: %v", redisAddr, err))
	}
	defer client.Close()

	newService := func(c cache.Cache) service.PostService {
		return service.NewPostService(service.PostServiceDeps{
			Posts:         repository.NewPostRepository(db),
			Groups:        repository.NewGroupRepository(db),
			Users:         repository.NewUserRepository(db),
			Comments:      repository.NewCommentRepository(db),
			Relationships: service.NewRelationshipService(repository.NewFollowRepository(db)),
			IndexCache:    c,
			PerPage:       cfg.Pagination.PostsPerPage,
		})
	}

	reqs := makeRequests(3000, postCount/cfg.Pagination.PostsPerPage)

	noCache := runScenario(ctx, newService(cache.Nop{}), reqs, false, client)
	cached := runScenario(ctx, newService(cache.NewRedisCache(client, "cachebench", cfg.Cache.IndexTTL)), reqs, true, client)

	fmt.Printf("\nIndex page latency (%d req, %d posts, %s + Redis)\n", len(reqs), postCount, cfg.Database.Driver)
	for _, r := range []struct {
		name string
		res  scenarioResult
	}{{"No cache", noCache}, {"Redis index cache", cached}} {
		fmt.Printf("%-18s avg=%v p95=%v p99=%v cache_keys=%d mem=%s\n",
			r.name, avg(r.res.durations), pct(r.res.durations, 0.95), pct(r.res.durations, 0.99),
			r.res.cacheKeys, formatBytes(r.res.memoryBytes))
	}
}

type scenarioResult struct {
	durations   []time.Duration
	cacheKeys   int
	memoryBytes int64
}

func runScenario(ctx context.Context, svc service.PostService, reqs []string, warm bool, client *redis.Client) scenarioResult {
	client.FlushDB(ctx)

	if warm {
		fmt.Print("  Warming cache...")
		for _, page := range reqs {
			must(svc.AllPosts(ctx, page))
		}
		fmt.Println(" done")
	}

	fmt.Print("  Running benchmark...")
	out := make([]time.Duration, 0, len(reqs))
	for _, page := range reqs {
		start := time.Now()
		must(svc.AllPosts(ctx, page))
		out = append(out, time.Since(start))
	}
	fmt.Println(" done")

	keys, _ := client.Keys(ctx, "posts:index:*").Result()
	var memBytes int64
	if info, err := client.Info(ctx, "memory").Result(); err == nil {
		memBytes = parseRedisMemory(info)
	}
	return scenarioResult{durations: out, cacheKeys: len(keys), memoryBytes: memBytes}
}

// parseRedisMemory 取 INFO memory 中的 used_memory
func parseRedisMemory(info string) int64 {
	for _, line := range strings.Split(info, "\n") {
		if v, ok := strings.CutPrefix(strings.TrimSpace(line), "used_memory:"); ok {
			n, _ := strconv.ParseInt(v, 10, 64)
			return n
		}
	}
	return 0
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// makeRequests 大部分请求落在前几页，少量深翻页
func makeRequests(n, lastPage int) []string {
	if lastPage < 1 {
		lastPage = 1
	}
	out := make([]string, n)
	rnd := rand.New(rand.NewSource(42))
	for i := range out {
		page := 1 + rnd.Intn(3)
		if rnd.Float64() > 0.72 {
			page = 1 + rnd.Intn(lastPage)
		}
		out[i] = strconv.Itoa(page)
	}
	return out
}

func avg(vs []time.Duration) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range vs {
		sum += v
	}
	return sum / time.Duration(len(vs))
}

func pct(vs []time.Duration, p float64) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	sorted := append([]time.Duration(nil), vs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	idx := int(math.Ceil(p*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func mustDo(err error) {
	if err != nil {
		panic(err)
	}
}
