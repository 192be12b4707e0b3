package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/yatube/internal/dto"
	"github.com/d60-Lab/yatube/internal/repository"
	"github.com/d60-Lab/yatube/internal/testutil"
	"github.com/d60-Lab/yatube/pkg/token"
)

const testSecret = "test-secret"

func TestRegisterAndLogin(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewUserService(repository.NewUserRepository(db), testSecret, time.Hour)
	ctx := context.Background()

	u, err := svc.Register(ctx, &dto.SignupRequest{Username: "leo", Password: "war-and-peace"})
	require.NoError(t, err)
	assert.Equal(t, "leo", u.Username)

	tok, err := svc.Login(ctx, &dto.LoginRequest{Username: "leo", Password: "war-and-peace"})
	require.NoError(t, err)
	assert.EqualValues(t, 3600, tok.ExpiresIn)

	claims, err := token.ParseToken(tok.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "leo", claims.Username)
}

func TestRegister_Rejects(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewUserService(repository.NewUserRepository(db), testSecret, time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.SignupRequest{Username: "leo", Password: "war-and-peace"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		req   dto.SignupRequest
		field string
	}{
		{"duplicate", dto.SignupRequest{Username: "leo", Password: "anna-karenina"}, "username"},
		{"bad chars", dto.SignupRequest{Username: "leo tolstoy", Password: "anna-karenina"}, "username"},
		{"short password", dto.SignupRequest{Username: "anna", Password: "short"}, "password"},
		{"empty username", dto.SignupRequest{Password: "anna-karenina"}, "username"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, &tt.req)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewUserService(repository.NewUserRepository(db), testSecret, time.Hour)
	ctx := context.Background()
	_, err := svc.Register(ctx, &dto.SignupRequest{Username: "leo", Password: "war-and-peace"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "leo", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "ghost", Password: "war-and-peace"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetByUsername(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewUserService(repository.NewUserRepository(db), testSecret, time.Hour)
	testutil.CreateUser(t, db, "leo")

	u, err := svc.GetByUsername(context.Background(), "leo")
	require.NoError(t, err)
	assert.Equal(t, "leo", u.Username)

	_, err = svc.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
