package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/testutil"
)

func TestFollowRepository_CreateIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	a := testutil.CreateUser(t, db, "alice")
	b := testutil.CreateUser(t, db, "bob")

	created, err := repo.Create(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Create(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, created)

	var cnt int64
	require.NoError(t, db.Model(&model.Follow{}).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func TestFollowRepository_ConcurrentCreateLeavesOneEdge(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewFollowRepository(db)
	a := testutil.CreateUser(t, db, "alice")
	b := testutil.CreateUser(t, db, "bob")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(context.Background(), a.ID, b.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	n, err := repo.CountFollowers(context.Background(), b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestFollowRepository_CountsAndDelete(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	a := testutil.CreateUser(t, db, "alice")
	b := testutil.CreateUser(t, db, "bob")
	c := testutil.CreateUser(t, db, "carol")

	_, _ = repo.Create(ctx, a.ID, c.ID)
	_, _ = repo.Create(ctx, b.ID, c.ID)
	_, _ = repo.Create(ctx, c.ID, a.ID)

	followers, err := repo.CountFollowers(ctx, c.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, followers)

	followings, err := repo.CountFollowings(ctx, c.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, followings)

	ok, err := repo.Exists(ctx, a.ID, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	deleted, err := repo.Delete(ctx, a.ID, c.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, a.ID, c.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	ok, err = repo.Exists(ctx, a.ID, c.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFollowRepository_ListFollowings(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	a := testutil.CreateUser(t, db, "alice")
	b := testutil.CreateUser(t, db, "bob")
	c := testutil.CreateUser(t, db, "carol")
	_, _ = repo.Create(ctx, a.ID, b.ID)
	_, _ = repo.Create(ctx, a.ID, c.ID)

	items, err := repo.ListFollowings(ctx, a.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)

	items, err = repo.ListFollowings(ctx, a.ID, 1, 10)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestFollowRepository_UnknownUserViolatesForeignKey(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewFollowRepository(db)
	a := testutil.CreateUser(t, db, "alice")

	_, err := repo.Create(context.Background(), a.ID, 9999)
	assert.Error(t, err)
}
