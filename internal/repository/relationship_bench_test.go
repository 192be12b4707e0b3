package repository

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/testutil"
)

func seedUsers(b *testing.B, repo UserRepository, n int) []*model.User {
	b.Helper()
	ctx := context.Background()
	users := make([]*model.User, n)
	for i := range users {
		users[i] = &model.User{Username: fmt.Sprintf("u%04d", i), PasswordHash: "p"}
		if err := repo.Create(ctx, users[i]); err != nil {
			b.Fatalf("seed users: %v", err)
		}
	}
	return users
}

func BenchmarkFollowWrite(b *testing.B) {
	db := testutil.NewDB(b)
	followRepo := NewFollowRepository(db)
	users := seedUsers(b, NewUserRepository(db), 1000)
	ctx := context.Background()
	rnd := rand.New(rand.NewSource(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		from := users[rnd.Intn(len(users))].ID
		to := users[rnd.Intn(len(users))].ID
		if from == to {
			continue
		}
		_, _ = followRepo.Create(ctx, from, to)
	}
}

func BenchmarkFeedQuery(b *testing.B) {
	db := testutil.NewDB(b)
	followRepo := NewFollowRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	// 构造：u0 关注 N 个作者，每个作者 5 条帖子
	const N = 200
	users := seedUsers(b, NewUserRepository(db), N+1)
	reader := users[0]
	for _, author := range users[1:] {
		_, _ = followRepo.Create(ctx, reader.ID, author.ID)
		for j := 0; j < 5; j++ {
			_ = postRepo.Create(ctx, &model.Post{Text: fmt.Sprintf("%s #%d", author.Username, j), AuthorID: author.ID})
		}
	}
	f := PostFilter{FollowerID: &reader.ID}

	b.ResetTimer()
	b.Run("Count", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = postRepo.Count(ctx, f)
		}
	})
	b.Run("FirstPage", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = postRepo.Find(ctx, f, 0, 10)
		}
	})
	b.Run("ListFollowing", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = followRepo.ListFollowings(ctx, reader.ID, 0, 50)
		}
	})
}
