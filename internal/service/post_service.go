package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/d60-Lab/yatube/internal/cache"
	"github.com/d60-Lab/yatube/internal/dto"
	"github.com/d60-Lab/yatube/internal/metrics"
	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/repository"
	"github.com/d60-Lab/yatube/pkg/pagination"
)

// PostService 帖子的查询流与写操作。所有列表都按 pub_date 正序分页。
type PostService interface {
	AllPosts(ctx context.Context, rawPage string) (*dto.PostPage, error)
	PostsByGroup(ctx context.Context, slug, rawPage string) (*dto.GroupPage, error)
	PostsByAuthor(ctx context.Context, username, rawPage string) (*model.User, *dto.PostPage, error)
	FeedForUser(ctx context.Context, userID uint, rawPage string) (*dto.PostPage, error)
	// Profile viewerID 为 0 表示匿名访问，Following 恒为 false
	Profile(ctx context.Context, viewerID uint, username, rawPage string) (*dto.Profile, error)

	Detail(ctx context.Context, username string, postID uint) (*dto.PostDetail, error)
	NewPostForm(ctx context.Context) (*dto.PostForm, error)
	Create(ctx context.Context, authorID uint, req *dto.PostRequest) (*dto.Post, error)
	EditForm(ctx context.Context, editorID uint, username string, postID uint) (*dto.PostForm, error)
	Update(ctx context.Context, editorID uint, username string, postID uint, req *dto.PostRequest) (*dto.Post, error)
	AddComment(ctx context.Context, authorID uint, username string, postID uint, req *dto.CommentRequest) (*dto.Comment, error)
}

type postService struct {
	postRepo    repository.PostRepository
	groupRepo   repository.GroupRepository
	userRepo    repository.UserRepository
	commentRepo repository.CommentRepository
	relService  RelationshipService
	indexCache  cache.Cache
	perPage     int
}

// PostServiceDeps 构造依赖；IndexCache 为空时不缓存首页
type PostServiceDeps struct {
	Posts         repository.PostRepository
	Groups        repository.GroupRepository
	Users         repository.UserRepository
	Comments      repository.CommentRepository
	Relationships RelationshipService
	IndexCache    cache.Cache
	PerPage       int
}

func NewPostService(d PostServiceDeps) PostService {
	if d.IndexCache == nil {
		d.IndexCache = cache.Nop{}
	}
	if d.PerPage < 1 {
		d.PerPage = pagination.DefaultPerPage
	}
	return &postService{
		postRepo:    d.Posts,
		groupRepo:   d.Groups,
		userRepo:    d.Users,
		commentRepo: d.Comments,
		relService:  d.Relationships,
		indexCache:  d.IndexCache,
		perPage:     d.PerPage,
	}
}

// AllPosts 首页，按请求的页码缓存固定 TTL，不做失效
func (s *postService) AllPosts(ctx context.Context, rawPage string) (*dto.PostPage, error) {
	key := cache.IndexKey(pagination.ParseNumber(rawPage), s.perPage)
	var cached dto.PostPage
	if s.indexCache.Load(ctx, key, &cached) {
		return &cached, nil
	}
	page, err := s.page(ctx, repository.PostFilter{}, rawPage)
	if err != nil {
		return nil, err
	}
	s.indexCache.Store(ctx, key, page)
	return page, nil
}

func (s *postService) PostsByGroup(ctx context.Context, slug, rawPage string) (*dto.GroupPage, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("group %q: %w", slug, err)
	}
	page, err := s.page(ctx, repository.PostFilter{GroupID: &group.ID}, rawPage)
	if err != nil {
		return nil, err
	}
	return &dto.GroupPage{Group: dto.FromGroup(group), PostPage: *page}, nil
}

func (s *postService) PostsByAuthor(ctx context.Context, username, rawPage string) (*model.User, *dto.PostPage, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, fmt.Errorf("user %q: %w", username, err)
	}
	page, err := s.page(ctx, repository.PostFilter{AuthorID: &author.ID}, rawPage)
	if err != nil {
		return nil, nil, err
	}
	return author, page, nil
}

// FeedForUser 关注的作者的帖子；没有关注任何人时返回空页
func (s *postService) FeedForUser(ctx context.Context, userID uint, rawPage string) (*dto.PostPage, error) {
	return s.page(ctx, repository.PostFilter{FollowerID: &userID}, rawPage)
}

func (s *postService) Profile(ctx context.Context, viewerID uint, username, rawPage string) (*dto.Profile, error) {
	author, page, err := s.PostsByAuthor(ctx, username, rawPage)
	if err != nil {
		return nil, err
	}
	followers, err := s.relService.FollowerCount(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	followings, err := s.relService.FollowingCount(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	following := false
	if viewerID != 0 {
		if following, err = s.relService.IsFollowing(ctx, viewerID, author.ID); err != nil {
			return nil, err
		}
	}
	return &dto.Profile{
		Author:     dto.FromUser(author),
		PostCount:  page.Page.Count,
		Followers:  followers,
		Followings: followings,
		Following:  following,
		PostPage:   *page,
	}, nil
}

func (s *postService) page(ctx context.Context, f repository.PostFilter, rawPage string) (*dto.PostPage, error) {
	total, err := s.postRepo.Count(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}
	pg := pagination.New(total, s.perPage).GetPage(rawPage)
	posts, err := s.postRepo.Find(ctx, f, pg.Offset(), pg.Limit())
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	return &dto.PostPage{Page: pg, Posts: dto.FromPosts(posts)}, nil
}

func (s *postService) Detail(ctx context.Context, username string, postID uint) (*dto.PostDetail, error) {
	post, err := s.postRepo.GetByAuthorAndID(ctx, username, postID)
	if err != nil {
		return nil, fmt.Errorf("post %s/%d: %w", username, postID, err)
	}
	comments, err := s.commentRepo.ListByPost(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	postCount, err := s.userRepo.CountPosts(ctx, post.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("count author posts: %w", err)
	}
	followers, err := s.relService.FollowerCount(ctx, post.AuthorID)
	if err != nil {
		return nil, err
	}
	followings, err := s.relService.FollowingCount(ctx, post.AuthorID)
	if err != nil {
		return nil, err
	}
	return &dto.PostDetail{
		Post:       dto.FromPost(post),
		Comments:   dto.FromComments(comments),
		PostCount:  postCount,
		Followers:  followers,
		Followings: followings,
	}, nil
}

func (s *postService) NewPostForm(ctx context.Context) (*dto.PostForm, error) {
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return &dto.PostForm{Groups: dto.FromGroups(groups)}, nil
}

func (s *postService) Create(ctx context.Context, authorID uint, req *dto.PostRequest) (*dto.Post, error) {
	if err := s.validatePost(ctx, req); err != nil {
		return nil, err
	}
	post := &model.Post{Text: req.Text, AuthorID: authorID, GroupID: req.Group, Image: req.Image}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	metrics.PostsCreated.Inc()
	return s.reload(ctx, post.ID)
}

// EditForm 只有作者能拿到编辑表单
func (s *postService) EditForm(ctx context.Context, editorID uint, username string, postID uint) (*dto.PostForm, error) {
	post, err := s.editable(ctx, editorID, username, postID)
	if err != nil {
		return nil, err
	}
	form, err := s.NewPostForm(ctx)
	if err != nil {
		return nil, err
	}
	p := dto.FromPost(post)
	form.Post = &p
	return form, nil
}

func (s *postService) Update(ctx context.Context, editorID uint, username string, postID uint, req *dto.PostRequest) (*dto.Post, error) {
	post, err := s.editable(ctx, editorID, username, postID)
	if err != nil {
		return nil, err
	}
	if err := s.validatePost(ctx, req); err != nil {
		return nil, err
	}
	post.Text, post.GroupID, post.Image = req.Text, req.Group, req.Image
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return s.reload(ctx, post.ID)
}

func (s *postService) AddComment(ctx context.Context, authorID uint, username string, postID uint, req *dto.CommentRequest) (*dto.Comment, error) {
	post, err := s.postRepo.GetByAuthorAndID(ctx, username, postID)
	if err != nil {
		return nil, fmt.Errorf("post %s/%d: %w", username, postID, err)
	}
	if err := validate(req); err != nil {
		return nil, err
	}
	comment := &model.Comment{PostID: post.ID, AuthorID: authorID, Text: req.Text}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("comment author: %w", err)
	}
	comment.Author = *author
	out := dto.FromComment(comment)
	return &out, nil
}

func (s *postService) editable(ctx context.Context, editorID uint, username string, postID uint) (*model.Post, error) {
	post, err := s.postRepo.GetByAuthorAndID(ctx, username, postID)
	if err != nil {
		return nil, fmt.Errorf("post %s/%d: %w", username, postID, err)
	}
	if post.AuthorID != editorID {
		return nil, ErrForbidden
	}
	return post, nil
}

// validatePost 字段校验 + 社区必须存在
func (s *postService) validatePost(ctx context.Context, req *dto.PostRequest) error {
	if err := validate(req); err != nil {
		return err
	}
	if req.Group == nil {
		return nil
	}
	if _, err := s.groupRepo.GetByID(ctx, *req.Group); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return invalid("group", "select a valid choice")
		}
		return fmt.Errorf("lookup group: %w", err)
	}
	return nil
}

func (s *postService) reload(ctx context.Context, id uint) (*dto.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload post: %w", err)
	}
	out := dto.FromPost(post)
	return &out, nil
}
