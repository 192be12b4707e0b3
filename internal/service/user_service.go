package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/d60-Lab/yatube/internal/dto"
	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/repository"
	"github.com/d60-Lab/yatube/pkg/logger"
	"github.com/d60-Lab/yatube/pkg/token"
)

type UserService interface {
	Register(ctx context.Context, req *dto.SignupRequest) (*dto.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.Token, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

type userService struct {
	userRepo  repository.UserRepository
	jwtSecret string
	jwtExpire time.Duration
}

func NewUserService(userRepo repository.UserRepository, jwtSecret string, jwtExpire time.Duration) UserService {
	return &userService{userRepo: userRepo, jwtSecret: jwtSecret, jwtExpire: jwtExpire}
}

func (s *userService) Register(ctx context.Context, req *dto.SignupRequest) (*dto.User, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &model.User{Username: req.Username, PasswordHash: string(hash)}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, invalid("username", "a user with that username already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	logger.Info("user registered", zap.Uint("user_id", user.ID), zap.String("username", user.Username))
	out := dto.FromUser(user)
	return &out, nil
}

// Login 用户不存在与密码错误返回同一个错误
func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.Token, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	signed, err := token.GenerateToken(user.ID, user.Username, s.jwtSecret, s.jwtExpire)
	if err != nil {
		return nil, err
	}
	return &dto.Token{
		Token:     signed,
		ExpiresIn: int64(s.jwtExpire.Seconds()),
		User:      dto.FromUser(user),
	}, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("user %q: %w", username, err)
	}
	return user, nil
}
