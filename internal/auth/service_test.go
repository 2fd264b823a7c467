package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/partydrop/partydrop/internal/shared"
)

type mockRepository struct {
	usersByEmail map[string]*User
	nextID       int
	createErr    error
	findErr      error
}

func newMockRepository() *mockRepository {
	return &mockRepository{usersByEmail: make(map[string]*User), nextID: 1}
}

func (m *mockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	user, ok := m.usersByEmail[email]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return user, nil
}

func (m *mockRepository) Create(ctx context.Context, email, passwordHash, role string) (*User, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	if _, exists := m.usersByEmail[email]; exists {
		return nil, shared.ErrEmailInUse
	}
	user := &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}
	m.nextID++
	m.usersByEmail[email] = user
	return user, nil
}

func TestRegisterNormalizesEmail(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	user, err := service.Register(context.Background(), "  Tester@Mail.COM ", "password123")
	require.NoError(t, err)
	assert.Equal(t, "tester@mail.com", user.Email)
	assert.Equal(t, DefaultRole, user.Role)
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	user, err := service.Register(context.Background(), "tester@mail.com", "password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	_, err := service.Register(context.Background(), "tester@mail.com", "password123")
	require.NoError(t, err)

	// Casing and whitespace variants collapse to the same stored email.
	for _, variant := range []string{"tester@mail.com", "TESTER@mail.com", " tester@mail.com \t"} {
		_, err = service.Register(context.Background(), variant, "password123")
		assert.ErrorIs(t, err, shared.ErrEmailInUse, "variant %q", variant)
	}
}

func TestAuthenticate(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	_, err := service.Register(context.Background(), "tester@mail.com", "password123")
	require.NoError(t, err)

	user, err := service.Authenticate(context.Background(), "Tester@Mail.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "tester@mail.com", user.Email)
}

func TestAuthenticateFailuresIndistinguishable(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	_, err := service.Register(context.Background(), "tester@mail.com", "password123")
	require.NoError(t, err)

	_, wrongPass := service.Authenticate(context.Background(), "tester@mail.com", "wrongpass")
	_, unknownEmail := service.Authenticate(context.Background(), "nobody@mail.com", "password123")

	assert.ErrorIs(t, wrongPass, shared.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, shared.ErrInvalidCredentials)
	assert.Equal(t, wrongPass.Error(), unknownEmail.Error())
}

func TestAuthenticateStoreFailure(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	repo.findErr = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

	// An unreachable store must not look like a bad password.
	_, err := service.Authenticate(context.Background(), "tester@mail.com", "password123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, shared.ErrInvalidCredentials)
	assert.ErrorIs(t, err, repo.findErr)
}
