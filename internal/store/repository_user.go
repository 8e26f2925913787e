package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/pocketdiary/diary-server/internal/logger"
	"github.com/pocketdiary/diary-server/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, credential lookups and credential-guarded
// mutations against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyRegistered].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.EmailEnc, user.PasswordHash, user.PasswordSalt, user.UserKey, user.NameEnc, user.Theme)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyRegistered
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&user.UserID, &user.EmailEnc, &user.PasswordHash, &user.PasswordSalt,
		&user.UserKey, &user.NameEnc, &user.Theme, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return user, nil
}

// FindUserByEmail retrieves the account whose encrypted email matches
// emailEnc.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, emailEnc string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, emailEnc)
}

// FindUserByKeyAndEmail resolves a presented (per-account key, encrypted
// email) pair to exactly one account record. This is the capability check
// run before every note and profile operation.
//
// Error handling mirrors [userRepository.FindUserByEmail]; a wrong key with
// a correct email and a correct key with a wrong email are indistinguishable
// in the returned error.
func (r *userRepository) FindUserByKeyAndEmail(ctx context.Context, userKey, emailEnc string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByKeyAndEmail", findUserByKeyAndEmail, userKey, emailEnc)
}

// findOne executes a single-row account query and scans the result.
func (r *userRepository) findOne(ctx context.Context, caller, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", caller).Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&foundUser.UserID, &foundUser.EmailEnc, &foundUser.PasswordHash,
		&foundUser.PasswordSalt, &foundUser.UserKey, &foundUser.NameEnc, &foundUser.Theme,
		&foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", caller).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}

// UpdateUser applies a partial update to the account matching the full
// credential triple. The guard lives in the WHERE clause of the single
// UPDATE statement, so no concurrent request can slip between a check and
// the write.
//
// Error handling:
//   - Empty update → [ErrBuildingSQLQuery].
//   - Statement failure → wrapped [ErrExecutingStatement].
//   - Zero rows affected → [ErrNoUserWasFound].
func (r *userRepository) UpdateUser(ctx context.Context, userKey, emailEnc, passwordHash string, update models.UserUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(userKey, emailEnc, passwordHash, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("failed to execute update statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// DeleteUser removes the account matching all three credentials. Notes
// belonging to the account are removed by the ON DELETE CASCADE constraint.
//
// Zero rows affected is reported back to the caller, not as an error:
// deleting an account that does not match is idempotent by policy.
func (r *userRepository) DeleteUser(ctx context.Context, userKey, emailEnc, passwordHash string) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, userKey, emailEnc, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("failed to execute delete statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
