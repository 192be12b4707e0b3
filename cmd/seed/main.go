// seed 填充演示数据：用户、社区、帖子与关注关系，并打印关注写入与关注流查询的耗时分布。
//
// 环境变量：N 用户数（默认 1000），CONC 并发写关注的 worker 数（默认 4），
// POSTS 每个用户的帖子数（默认 3），PAGE 关注流页大小（默认 10）。
// 所有用户的密码都是 password123。
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/d60-Lab/yatube/config"
	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/repository"
	"github.com/d60-Lab/yatube/internal/service"
	"github.com/d60-Lab/yatube/pkg/database"
	"github.com/d60-Lab/yatube/pkg/logger"
)

const demoPassword = "password123"

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func envInt(name string, def int) int {
	if s := os.Getenv(name); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func main() {
	cfg := must(config.Load())
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		panic(err)
	}
	defer logger.Sync()
	db := must(database.InitDB(cfg))
	ctx := context.Background()

	N := envInt("N", 1000)
	CONC := envInt("CONC", 4)
	POSTS := envInt("POSTS", 3)
	PAGE := envInt("PAGE", 10)

	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	postRepo := repository.NewPostRepository(db)
	relSvc := service.NewRelationshipService(repository.NewFollowRepository(db))
	postSvc := service.NewPostService(service.PostServiceDeps{
		Posts:         postRepo,
		Groups:        groupRepo,
		Users:         userRepo,
		Comments:      repository.NewCommentRepository(db),
		Relationships: relSvc,
		PerPage:       PAGE,
	})

	hash := string(must(bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.MinCost)))

	// u0 是热门作者，其余用户都关注它
	celeb := model.User{Username: "u0", PasswordHash: hash}
	check(db.Where("username = ?", celeb.Username).FirstOrCreate(&celeb).Error)
	users := make([]model.User, N)
	for i := range users {
		users[i] = model.User{Username: fmt.Sprintf("seed_%d_%d", time.Now().Unix(), i+1), PasswordHash: hash}
	}
	check(db.CreateInBatches(&users, 500).Error)

	groups := []*model.Group{
		{Title: "Котики", Slug: "cats", Description: "Всё о котиках"},
		{Title: "Книги", Slug: "books", Description: "Что почитать"},
		{Title: "Путешествия", Slug: "travel", Description: "Куда поехать"},
	}
	for _, g := range groups {
		check(db.Where("slug = ?", g.Slug).FirstOrCreate(g).Error)
	}

	for p := 0; p < POSTS; p++ {
		check(postRepo.Create(ctx, &model.Post{Text: fmt.Sprintf("Пост %d от u0", p+1), AuthorID: celeb.ID, GroupID: &groups[p%len(groups)].ID}))
	}
	for i := range users {
		for p := 0; p < POSTS; p++ {
			post := &model.Post{Text: fmt.Sprintf("Пост %d от %s", p+1, users[i].Username), AuthorID: users[i].ID}
			if (i+p)%2 == 0 {
				post.GroupID = &groups[(i+p)%len(groups)].ID
			}
			check(postRepo.Create(ctx, post))
		}
	}

	// 并发写关注边
	followRecs := make([]time.Duration, 0, N)
	recCh := make(chan time.Duration, N)
	feed := make(chan int, N)
	for i := 0; i < N; i++ {
		feed <- i
	}
	close(feed)
	workers := CONC
	if workers > N {
		workers = N
	}
	done := make(chan struct{}, workers)
	t0 := time.Now()
	for w := 0; w < workers; w++ {
		go func() {
			for i := range feed {
				st := time.Now()
				if err := relSvc.Follow(ctx, users[i].ID, celeb.ID); err != nil {
					logger.Warn("seed follow failed", zap.Uint("follower", users[i].ID), zap.Error(err))
				}
				// 每个用户再关注下一个用户，让关注流里有多位作者
				_ = relSvc.Follow(ctx, users[i].ID, users[(i+1)%N].ID)
				recCh <- time.Since(st)
			}
			done <- struct{}{}
		}()
	}
	for w := 0; w < workers; w++ {
		<-done
	}
	close(recCh)
	for d := range recCh {
		followRecs = append(followRecs, d)
	}
	followDur := time.Since(t0)

	q0 := time.Now()
	page := must(postSvc.FeedForUser(ctx, users[0].ID, "1"))
	feedDur := time.Since(q0)

	q1 := time.Now()
	followers := must(relSvc.FollowerCount(ctx, celeb.ID))
	countDur := time.Since(q1)

	pct := func(vs []time.Duration, p float64) time.Duration {
		if len(vs) == 0 {
			return 0
		}
		xs := append([]time.Duration(nil), vs...)
		sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
		k := int(math.Ceil(p*float64(len(xs)))) - 1
		if k < 0 {
			k = 0
		}
		if k >= len(xs) {
			k = len(xs) - 1
		}
		return xs[k]
	}

	fmt.Printf("N=%d, CONC=%d, POSTS=%d, PAGE=%d\n", N, CONC, POSTS, PAGE)
	fmt.Printf("Follow latency total: %v, per user: %v, p50: %v, p95: %v, p99: %v\n",
		followDur, followDur/time.Duration(N), pct(followRecs, 0.50), pct(followRecs, 0.95), pct(followRecs, 0.99))
	fmt.Printf("Feed page 1 (%d of %d posts) latency: %v\n", len(page.Posts), page.Page.Count, feedDur)
	fmt.Printf("Follower count of u0 = %d, latency: %v\n", followers, countDur)
	fmt.Printf("Log in as u0 / %s\n", demoPassword)
}
