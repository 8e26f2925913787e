package store

import (
	"context"
	"time"

	"github.com/pocketdiary/diary-server/models"
)

// UserRepository is the persistence boundary for account records. All
// email parameters are encrypted values: the caller (service layer) performs
// the deterministic application-key encryption before touching the store, so
// plaintext identities never reach this package.
type UserRepository interface {
	// CreateUser persists a new account record and returns the canonical
	// database representation. Fails with ErrEmailAlreadyRegistered when
	// the unique constraint on the encrypted email collides.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the account whose encrypted email matches
	// emailEnc. Used by login; the password digest is verified by the
	// caller against the record's stored salt.
	FindUserByEmail(ctx context.Context, emailEnc string) (models.User, error)

	// FindUserByKeyAndEmail is the capability check: it resolves the
	// presented (per-account key, encrypted email) pair to exactly one
	// record or fails with ErrNoUserWasFound.
	FindUserByKeyAndEmail(ctx context.Context, userKey, emailEnc string) (models.User, error)

	// UpdateUser applies a partial update guarded by the full credential
	// triple in the same statement, so the check and the mutation cannot
	// be interleaved by a concurrent request. Fails with ErrNoUserWasFound
	// when no record matches all three credentials.
	UpdateUser(ctx context.Context, userKey, emailEnc, passwordHash string, update models.UserUpdate) error

	// DeleteUser removes the account matching all three credentials and
	// reports how many records were removed. Zero is not an error:
	// account deletion is idempotent by policy.
	DeleteUser(ctx context.Context, userKey, emailEnc, passwordHash string) (int64, error)
}

// NoteRepository is the persistence boundary for diary notes. Notes join to
// their owner by value through the owner's encrypted email.
type NoteRepository interface {
	// CreateNote inserts a note guarded by an EXISTS subquery on the
	// owner's (key, encrypted email) credentials, authorising and
	// inserting in a single statement. Fails with ErrNoUserWasFound when
	// the credentials match no account.
	CreateNote(ctx context.Context, note models.Note, userKey string) error

	// FindNotesByDate returns the owner's notes scheduled for the given
	// calendar date, oldest first.
	FindNotesByDate(ctx context.Context, emailEnc string, date time.Time) ([]models.Note, error)

	// DeleteNote removes the note with the given id if it belongs to the
	// account matching the (key, encrypted email) credentials, and
	// reports how many records were removed.
	DeleteNote(ctx context.Context, userKey, emailEnc, noteID string) (int64, error)
}
