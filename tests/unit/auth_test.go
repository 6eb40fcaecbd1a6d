package unit

import (
	"context"
	"testing"

	"github.com/MysticHqra/Rydio/internal/domain"
	"github.com/MysticHqra/Rydio/internal/security"
	"github.com/MysticHqra/Rydio/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", 60)
	ctx := context.Background()

	input := service.RegisterInput{
		Username: "hqra",
		Email:    "hqra@example.com",
		Password: "s3cret-pass",
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByUsername", ctx, "hqra").Return(nil, domain.ErrNotFound)
		userRepo.On("GetByEmail", ctx, "hqra@example.com").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.Register(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.NotEqual(t, input.Password, user.PasswordHash, "password must be hashed")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)))
	})

	t.Run("Duplicate Username", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByUsername", ctx, "hqra").Return(&domain.User{ID: 1, Username: "hqra"}, nil)

		_, err := svc.Register(ctx, input)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already taken")
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByUsername", ctx, "hqra").Return(nil, domain.ErrNotFound)
		userRepo.On("GetByEmail", ctx, "hqra@example.com").Return(&domain.User{ID: 2}, nil)

		_, err := svc.Register(ctx, input)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})
}

func TestAuthService_Login(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", 60)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.User{
		ID: 7, Username: "hqra", PasswordHash: string(hash), Role: domain.RoleUser,
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)
		userRepo.On("GetByUsername", ctx, "hqra").Return(stored, nil)

		user, token, err := svc.Login(ctx, "hqra", "s3cret-pass")
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		require.NotEmpty(t, token)

		claims, err := tokens.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, domain.RoleUser, claims.Role)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)
		userRepo.On("GetByUsername", ctx, "hqra").Return(stored, nil)

		_, _, err := svc.Login(ctx, "hqra", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Unknown User", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)
		userRepo.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrNotFound)

		_, _, err := svc.Login(ctx, "ghost", "whatever")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", 60)
	user := &domain.User{ID: 7, Username: "hqra", Role: domain.RoleAdmin}

	token, err := tokens.GenerateToken(user)
	require.NoError(t, err)

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "hqra", claims.Username)
	assert.Equal(t, domain.RoleAdmin, claims.Role)

	t.Run("Wrong Secret", func(t *testing.T) {
		other := security.NewTokenManager("different-secret", 60)
		_, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		_, err := tokens.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})
}
