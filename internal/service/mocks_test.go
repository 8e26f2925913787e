// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pocketdiary/diary-server/internal/crypto"
	"github.com/pocketdiary/diary-server/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn         func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn    func(ctx context.Context, emailEnc string) (models.User, error)
	findByKeyEmailFn func(ctx context.Context, userKey, emailEnc string) (models.User, error)
	updateFn         func(ctx context.Context, userKey, emailEnc, passwordHash string, update models.UserUpdate) error
	deleteFn         func(ctx context.Context, userKey, emailEnc, passwordHash string) (int64, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, emailEnc string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, emailEnc)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByKeyAndEmail(ctx context.Context, userKey, emailEnc string) (models.User, error) {
	if m.findByKeyEmailFn != nil {
		return m.findByKeyEmailFn(ctx, userKey, emailEnc)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, userKey, emailEnc, passwordHash string, update models.UserUpdate) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, userKey, emailEnc, passwordHash, update)
	}
	return nil
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, userKey, emailEnc, passwordHash string) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userKey, emailEnc, passwordHash)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Mock: store.NoteRepository
// ─────────────────────────────────────────────

type mockNoteRepository struct {
	createFn     func(ctx context.Context, note models.Note, userKey string) error
	findByDateFn func(ctx context.Context, emailEnc string, date time.Time) ([]models.Note, error)
	deleteFn     func(ctx context.Context, userKey, emailEnc, noteID string) (int64, error)
}

func (m *mockNoteRepository) CreateNote(ctx context.Context, note models.Note, userKey string) error {
	if m.createFn != nil {
		return m.createFn(ctx, note, userKey)
	}
	return nil
}

func (m *mockNoteRepository) FindNotesByDate(ctx context.Context, emailEnc string, date time.Time) ([]models.Note, error) {
	if m.findByDateFn != nil {
		return m.findByDateFn(ctx, emailEnc, date)
	}
	return nil, nil
}

func (m *mockNoteRepository) DeleteNote(ctx context.Context, userKey, emailEnc, noteID string) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userKey, emailEnc, noteID)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Shared fixtures
// ─────────────────────────────────────────────

var (
	testAppKey  = strings.Repeat("1", 64)
	testUserKey = strings.Repeat("3", 64)

	errStorage = errors.New("storage error")
)

const (
	testEmail    = "alice@example.com"
	testPassword = "s3cret-pass"
	testName     = "Alice"
)

// testCipher is the real cipher implementation shared by all service tests:
// the services contract with the store in terms of its deterministic
// encrypted values, so mocking it would test nothing.
var testCipher = crypto.NewCipherService()

// seedUser builds the stored representation of the canonical test account:
// email and name encrypted under the application key, password salted and
// hashed for real.
func seedUser(t *testing.T) models.User {
	t.Helper()

	emailEnc, err := testCipher.Encrypt(testAppKey, testEmail)
	require.NoError(t, err)
	nameEnc, err := testCipher.Encrypt(testAppKey, testName)
	require.NoError(t, err)
	salt, err := testCipher.GenerateSalt()
	require.NoError(t, err)
	hash, err := testCipher.HashPassword(testPassword, salt)
	require.NoError(t, err)

	return models.User{
		UserID:       1,
		EmailEnc:     emailEnc,
		PasswordHash: hash,
		PasswordSalt: salt,
		UserKey:      testUserKey,
		NameEnc:      nameEnc,
		Theme:        2,
	}
}

// encryptedEmail returns testEmail encrypted under the application key, the
// value the services are expected to hand to the repositories.
func encryptedEmail(t *testing.T) string {
	t.Helper()
	emailEnc, err := testCipher.Encrypt(testAppKey, testEmail)
	require.NoError(t, err)
	return emailEnc
}

func validCredentials() models.Credentials {
	return models.Credentials{
		Key:      testUserKey,
		Email:    testEmail,
		Password: testPassword,
	}
}
