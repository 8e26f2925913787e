// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/pocketdiary/diary-server/internal/logger"
	"github.com/pocketdiary/diary-server/internal/store"
	"github.com/pocketdiary/diary-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(users *mockUserRepository) AuthService {
	return NewAuthService(users, testCipher, testAppKey, logger.Nop())
}

func intPtr(v int) *int { return &v }

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	var created models.User
	users := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			created = user
			return user, nil
		},
	}
	svc := newAuthService(users)

	err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    testEmail,
		Password: testPassword,
		Name:     testName,
		Theme:    intPtr(1),
	})

	require.NoError(t, err)
	assert.Equal(t, encryptedEmail(t), created.EmailEnc)
	assert.Equal(t, 1, created.Theme)

	// identity fields are stored encrypted, never as plaintext
	assert.NotContains(t, created.NameEnc, testName)
	name, err := testCipher.Decrypt(testAppKey, created.NameEnc)
	require.NoError(t, err)
	assert.Equal(t, testName, name)

	// password is stored as a salted digest that verifies round-trip
	assert.NotEqual(t, testPassword, created.PasswordHash)
	assert.Len(t, created.PasswordSalt, 32)
	ok, err := testCipher.VerifyPassword(testPassword, created.PasswordSalt, created.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)

	// a fresh per-account key is issued
	assert.Len(t, created.UserKey, 64)
	assert.NotEqual(t, testAppKey, created.UserKey)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newAuthService(&mockUserRepository{})

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"no email", models.RegisterRequest{Password: testPassword, Name: testName, Theme: intPtr(0)}},
		{"no password", models.RegisterRequest{Email: testEmail, Name: testName, Theme: intPtr(0)}},
		{"no name", models.RegisterRequest{Email: testEmail, Password: testPassword, Theme: intPtr(0)}},
		{"no theme", models.RegisterRequest{Email: testEmail, Password: testPassword, Name: testName}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Register_FieldTooLong(t *testing.T) {
	svc := newAuthService(&mockUserRepository{})

	err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    testEmail,
		Password: testPassword,
		Name:     strings.Repeat("x", maxFieldLength+1),
		Theme:    intPtr(0),
	})

	assert.ErrorIs(t, err, ErrFieldTooLong)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	users := &mockUserRepository{
		createFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyRegistered
		},
	}
	svc := newAuthService(users)

	err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    testEmail,
		Password: testPassword,
		Name:     testName,
		Theme:    intPtr(0),
	})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyRegistered)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	stored := seedUser(t)
	users := &mockUserRepository{
		findByEmailFn: func(_ context.Context, emailEnc string) (models.User, error) {
			assert.Equal(t, stored.EmailEnc, emailEnc)
			return stored, nil
		},
	}
	svc := newAuthService(users)

	session, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    testEmail,
		Password: testPassword,
	})

	require.NoError(t, err)
	assert.Equal(t, testUserKey, session.Key)
	assert.Equal(t, testName, session.Name)
	assert.Equal(t, stored.Theme, session.Theme)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	users := &mockUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newAuthService(users)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@example.com",
		Password: testPassword,
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	stored := seedUser(t)
	users := &mockUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return stored, nil
		},
	}
	svc := newAuthService(users)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    testEmail,
		Password: "wrong-password",
	})

	// indistinguishable from an unknown email
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := newAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: testEmail})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(context.Background(), models.LoginRequest{Password: testPassword})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Login_StorageError(t *testing.T) {
	users := &mockUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, errStorage
		},
	}
	svc := newAuthService(users)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    testEmail,
		Password: testPassword,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
