package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/testutil"
)

func TestGroupDelete_NullsPostGroup(t *testing.T) {
	db := testutil.NewDB(t)
	groups := NewGroupRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()
	u := testutil.CreateUser(t, db, "leo")
	g := testutil.CreateGroup(t, db, "test-slug")
	p := testutil.CreatePost(t, db, u, g, "tagged")

	require.NoError(t, groups.Delete(ctx, g.ID))

	got, err := posts.GetByID(ctx, p.ID)
	require.NoError(t, err, "post survives group deletion")
	assert.Nil(t, got.GroupID)
	assert.Nil(t, got.Group)

	assert.ErrorIs(t, groups.Delete(ctx, g.ID), ErrNotFound)
}

func TestPostDelete_CascadesComments(t *testing.T) {
	db := testutil.NewDB(t)
	posts := NewPostRepository(db)
	comments := NewCommentRepository(db)
	ctx := context.Background()
	u := testutil.CreateUser(t, db, "leo")
	p := testutil.CreatePost(t, db, u, nil, "post")
	require.NoError(t, comments.Create(ctx, &model.Comment{PostID: p.ID, AuthorID: u.ID, Text: "first!"}))
	require.NoError(t, comments.Create(ctx, &model.Comment{PostID: p.ID, AuthorID: u.ID, Text: "second"}))

	list, err := comments.ListByPost(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first!", list[0].Text)
	assert.Equal(t, "leo", list[0].Author.Username)

	require.NoError(t, posts.Delete(ctx, p.ID))

	var n int64
	require.NoError(t, db.Model(&model.Comment{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestUserDelete_CascadesEverything(t *testing.T) {
	db := testutil.NewDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	comments := NewCommentRepository(db)
	ctx := context.Background()
	a := testutil.CreateUser(t, db, "alice")
	b := testutil.CreateUser(t, db, "bob")
	p := testutil.CreatePost(t, db, b, nil, "bob's post")
	require.NoError(t, comments.Create(ctx, &model.Comment{PostID: p.ID, AuthorID: a.ID, Text: "hi"}))
	_, _ = follows.Create(ctx, a.ID, b.ID)
	_, _ = follows.Create(ctx, b.ID, a.ID)

	require.NoError(t, users.Delete(ctx, a.ID))

	var n int64
	require.NoError(t, db.Model(&model.Follow{}).Count(&n).Error)
	assert.Zero(t, n, "edges in both directions are removed")
	require.NoError(t, db.Model(&model.Comment{}).Count(&n).Error)
	assert.Zero(t, n)

	require.NoError(t, users.Delete(ctx, b.ID))
	require.NoError(t, db.Model(&model.Post{}).Count(&n).Error)
	assert.Zero(t, n)

	assert.ErrorIs(t, users.Delete(ctx, b.ID), ErrNotFound)
}

func TestUniqueConstraints(t *testing.T) {
	db := testutil.NewDB(t)
	users := NewUserRepository(db)
	groups := NewGroupRepository(db)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &model.User{Username: "leo", PasswordHash: "x"}))
	assert.ErrorIs(t, users.Create(ctx, &model.User{Username: "leo", PasswordHash: "y"}), ErrDuplicate)

	require.NoError(t, groups.Create(ctx, &model.Group{Title: "A", Slug: "a"}))
	assert.ErrorIs(t, groups.Create(ctx, &model.Group{Title: "B", Slug: "a"}), ErrDuplicate)
	assert.Error(t, groups.Create(ctx, &model.Group{Title: "C", Slug: ""}), "empty slug rejected")
}

func TestLookups(t *testing.T) {
	db := testutil.NewDB(t)
	users := NewUserRepository(db)
	groups := NewGroupRepository(db)
	ctx := context.Background()
	u := testutil.CreateUser(t, db, "leo")
	testutil.CreateGroup(t, db, "b-slug")
	testutil.CreateGroup(t, db, "a-slug")
	testutil.CreatePost(t, db, u, nil, "one")
	testutil.CreatePost(t, db, u, nil, "two")

	got, err := users.GetByUsername(ctx, "leo")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	_, err = users.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = users.GetByID(ctx, 12345)
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := users.CountPosts(ctx, u.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	_, err = groups.GetBySlug(ctx, "unknown")
	assert.ErrorIs(t, err, ErrNotFound)
	list, err := groups.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
