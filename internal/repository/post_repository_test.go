package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/testutil"
)

func texts(posts []*model.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Text
	}
	return out
}

func TestPostRepository_FindOrdersOldestFirst(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	u := testutil.CreateUser(t, db, "leo")
	for _, txt := range []string{"first", "second", "third"} {
		testutil.CreatePost(t, db, u, nil, txt)
	}

	posts, err := repo.Find(ctx, PostFilter{}, 0, 10)
	require.NoError(t, err)
	// Ascending pub_date is deliberate: the feed is oldest-first.
	assert.Equal(t, []string{"first", "second", "third"}, texts(posts))
	assert.Equal(t, "leo", posts[0].Author.Username)
}

func TestPostRepository_Filters(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPostRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	a := testutil.CreateUser(t, db, "alice")
	b := testutil.CreateUser(t, db, "bob")
	reader := testutil.CreateUser(t, db, "reader")
	g := testutil.CreateGroup(t, db, "test-slug")

	testutil.CreatePost(t, db, a, g, "alice in group")
	testutil.CreatePost(t, db, a, nil, "alice solo")
	testutil.CreatePost(t, db, b, g, "bob in group")

	inGroup, err := repo.Find(ctx, PostFilter{GroupID: &g.ID}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice in group", "bob in group"}, texts(inGroup))
	for _, p := range inGroup {
		require.NotNil(t, p.Group)
		assert.Equal(t, "test-slug", p.Group.Slug)
	}

	byAlice, err := repo.Find(ctx, PostFilter{AuthorID: &a.ID}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice in group", "alice solo"}, texts(byAlice))

	feed, err := repo.Find(ctx, PostFilter{FollowerID: &reader.ID}, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, feed)

	_, err = follows.Create(ctx, reader.ID, b.ID)
	require.NoError(t, err)
	feed, err = repo.Find(ctx, PostFilter{FollowerID: &reader.ID}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob in group"}, texts(feed))

	n, err := repo.Count(ctx, PostFilter{FollowerID: &reader.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.Count(ctx, PostFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestPostRepository_OffsetLimit(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPostRepository(db)
	u := testutil.CreateUser(t, db, "leo")
	for i := 0; i < 25; i++ {
		testutil.CreatePost(t, db, u, nil, "p")
	}
	posts, err := repo.Find(context.Background(), PostFilter{}, 20, 10)
	require.NoError(t, err)
	assert.Len(t, posts, 5)
}

func TestPostRepository_UpdateKeepsPubDate(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	u := testutil.CreateUser(t, db, "leo")
	g := testutil.CreateGroup(t, db, "cats")
	p := testutil.CreatePost(t, db, u, nil, "before")

	orig, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)

	img := "posts/cat.gif"
	edited := &model.Post{ID: p.ID, Text: "after", GroupID: &g.ID, Image: &img, PubDate: time.Now().Add(48 * time.Hour)}
	require.NoError(t, repo.Update(ctx, edited))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Text)
	require.NotNil(t, got.Group)
	assert.Equal(t, "cats", got.Group.Slug)
	require.NotNil(t, got.Image)
	assert.Equal(t, img, *got.Image)
	assert.True(t, orig.PubDate.Equal(got.PubDate), "pub_date must not change on update")

	assert.ErrorIs(t, repo.Update(ctx, &model.Post{ID: 9999, Text: "x"}), ErrNotFound)
}

func TestPostRepository_GetByAuthorAndID(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	a := testutil.CreateUser(t, db, "alice")
	testutil.CreateUser(t, db, "bob")
	p := testutil.CreatePost(t, db, a, nil, "hello")

	got, err := repo.GetByAuthorAndID(ctx, "alice", p.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Text)

	_, err = repo.GetByAuthorAndID(ctx, "bob", p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostRepository_AuthorRequired(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPostRepository(db)
	err := repo.Create(context.Background(), &model.Post{Text: "orphan", AuthorID: 42})
	assert.Error(t, err)
}
