package service

import (
	"context"
	"testing"
	"time"

	"github.com/ACX0S/Spatioo-sub001/internal/domain"
	"github.com/ACX0S/Spatioo-sub001/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, "secret", time.Hour)

	var created *domain.User
	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, u *domain.User) {
		created = u
	}).Return(nil)

	user, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "hunter2hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleDriver, user.Role)
	assert.NotEmpty(t, user.ID)
	require.NotNil(t, created)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hunter2hunter2")))
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, "secret", time.Hour)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "short",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Register_UnknownRole(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, "secret", time.Hour)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "hunter2hunter2",
		Role:     "admin",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, "secret", time.Hour)

	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "hunter2hunter2",
	})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Login_And_ValidateToken(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, "secret", time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{ID: "u1", Email: "ana@example.com", PasswordHash: string(hash), Role: domain.RoleOwner}
	userRepo.EXPECT().GetByEmail(mock.Anything, "ana@example.com").Return(user, nil)

	token, got, err := svc.Login(context.Background(), "ana@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, user, got)
	require.NotEmpty(t, token)

	sub, role, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", sub)
	assert.Equal(t, domain.RoleOwner, role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, "secret", time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{ID: "u1", PasswordHash: string(hash)}
	userRepo.EXPECT().GetByEmail(mock.Anything, "ana@example.com").Return(user, nil)

	_, _, err = svc.Login(context.Background(), "ana@example.com", "wrong")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, "secret", time.Hour)

	userRepo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	issuer := NewAuthService(userRepo, "secret-a", time.Hour)
	verifier := NewAuthService(userRepo, "secret-b", time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	userRepo.EXPECT().GetByEmail(mock.Anything, "ana@example.com").Return(&domain.User{ID: "u1", PasswordHash: string(hash)}, nil)

	token, _, err := issuer.Login(context.Background(), "ana@example.com", "hunter2hunter2")
	require.NoError(t, err)

	_, _, err = verifier.ValidateToken(token)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	svc := NewAuthService(mocks.NewMockUserRepo(t), "secret", time.Hour)

	_, _, err := svc.ValidateToken("not-a-jwt")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
