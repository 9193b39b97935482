package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polesense/polesense-be/internal/models"
	"github.com/polesense/polesense-be/internal/storage"
)

type fakeUserStore struct {
	nextID int64
	users  map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1, users: map[string]models.User{}}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	if _, exists := f.users[user.Email]; exists {
		return models.User{}, storage.ErrAlreadyExists
	}
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id int64) (models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func newTestService() (*Service, *fakeUserStore) {
	store := newFakeUserStore()
	tokens := NewTokenManager("test-secret", "polesense", 6*time.Hour)
	return NewService(store, tokens), store
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Register(ctx, "Alice", "a@x.com", "555-0100", "pw123", "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleTechnician, created.Role)
	assert.NotEqual(t, "pw123", created.PasswordHash)
	assert.NotEmpty(t, created.PasswordHash)

	token, user, err := svc.Authenticate(ctx, "a@x.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	userID, role, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, models.RoleTechnician, role)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "a@x.com", "555-0100", "pw123", "")
	require.NoError(t, err)

	_, _, wrongPassword := svc.Authenticate(ctx, "a@x.com", "wrong")
	_, _, unknownEmail := svc.Authenticate(ctx, "nobody@x.com", "pw123")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestRegisterValidation(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	tests := []struct {
		name, email, phone, password string
	}{
		{"", "a@x.com", "555-0100", "pw123"},
		{"Alice", "", "555-0100", "pw123"},
		{"Alice", "a@x.com", "", "pw123"},
		{"Alice", "a@x.com", "555-0100", ""},
		{"  ", "a@x.com", "555-0100", "pw123"},
	}
	for _, tt := range tests {
		_, err := svc.Register(ctx, tt.name, tt.email, tt.phone, tt.password, "")
		assert.ErrorIs(t, err, ErrMissingFields)
	}
	assert.Empty(t, store.users)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "a@x.com", "555-0100", "pw123", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Alice Again", "a@x.com", "555-0199", "other", "")
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)
	assert.Len(t, store.users, 1)
}

func TestGetUserInfo(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Register(ctx, "Alice", "a@x.com", "555-0100", "pw123", "")
	require.NoError(t, err)

	user, err := svc.GetUserInfo(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, models.RoleTechnician, user.Role)

	_, err = svc.GetUserInfo(ctx, 9999)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestTokenExpiry(t *testing.T) {
	user := models.User{ID: 42, Role: models.RoleTechnician}

	expired := NewTokenManager("test-secret", "polesense", -time.Second)
	token, err := expired.Generate(user)
	require.NoError(t, err)
	_, _, err = expired.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)

	valid := NewTokenManager("test-secret", "polesense", 6*time.Hour)
	token, err = valid.Generate(user)
	require.NoError(t, err)
	userID, role, err := valid.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, models.RoleTechnician, role)
}

func TestTokenInvalid(t *testing.T) {
	tokens := NewTokenManager("test-secret", "polesense", 6*time.Hour)
	other := NewTokenManager("other-secret", "polesense", 6*time.Hour)

	token, err := other.Generate(models.User{ID: 1, Role: models.RoleTechnician})
	require.NoError(t, err)

	for _, bad := range []string{token, "not-a-jwt", ""} {
		_, _, err := tokens.Verify(bad)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	}
}
