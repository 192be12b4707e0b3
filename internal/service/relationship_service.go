package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/d60-Lab/yatube/internal/metrics"
	"github.com/d60-Lab/yatube/internal/repository"
	"github.com/d60-Lab/yatube/pkg/logger"
)

// RelationshipService 关系链服务
//
// 每对 (follower, author) 只有 absent/present 两种状态；Follow/Unfollow
// 在已处于目标状态时是无操作。
type RelationshipService interface {
	Follow(ctx context.Context, followerID, authorID uint) error
	Unfollow(ctx context.Context, followerID, authorID uint) error
	IsFollowing(ctx context.Context, followerID, authorID uint) (bool, error)
	FollowerCount(ctx context.Context, userID uint) (int64, error)
	FollowingCount(ctx context.Context, userID uint) (int64, error)
	ListFollowing(ctx context.Context, userID uint, page, pageSize int) ([]uint, error)
}

type relationshipService struct {
	followRepo repository.FollowRepository
}

func NewRelationshipService(followRepo repository.FollowRepository) RelationshipService {
	return &relationshipService{followRepo: followRepo}
}

// Follow 自己关注自己静默忽略；重复关注由唯一索引吸收
func (s *relationshipService) Follow(ctx context.Context, followerID, authorID uint) error {
	if followerID == authorID {
		logger.Debug("self follow ignored", zap.Uint("user", followerID))
		return nil
	}
	created, err := s.followRepo.Create(ctx, followerID, authorID)
	if err != nil {
		return err
	}
	if created {
		metrics.FollowEdgeChanges.WithLabelValues("created").Inc()
	}
	return nil
}

func (s *relationshipService) Unfollow(ctx context.Context, followerID, authorID uint) error {
	removed, err := s.followRepo.Delete(ctx, followerID, authorID)
	if err != nil {
		return err
	}
	if removed {
		metrics.FollowEdgeChanges.WithLabelValues("removed").Inc()
	}
	return nil
}

func (s *relationshipService) IsFollowing(ctx context.Context, followerID, authorID uint) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, authorID)
}

func (s *relationshipService) FollowerCount(ctx context.Context, userID uint) (int64, error) {
	return s.followRepo.CountFollowers(ctx, userID)
}

func (s *relationshipService) FollowingCount(ctx context.Context, userID uint) (int64, error) {
	return s.followRepo.CountFollowings(ctx, userID)
}

func (s *relationshipService) ListFollowing(ctx context.Context, userID uint, page, pageSize int) ([]uint, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize
	items, err := s.followRepo.ListFollowings(ctx, userID, offset, pageSize)
	if err != nil {
		return nil, err
	}
	res := make([]uint, len(items))
	for i, it := range items {
		res[i] = it.AuthorID
	}
	return res, nil
}
