package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pocketdiary/diary-server/internal/crypto"
	"github.com/pocketdiary/diary-server/internal/logger"
	"github.com/pocketdiary/diary-server/internal/store"
	"github.com/pocketdiary/diary-server/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration and login using a UserRepository for persistence,
// the cipher service for field encryption and the Argon2id password scheme.
type authService struct {
	// userRepository is the data-access layer used to create and look up
	// accounts.
	userRepository store.UserRepository

	// cipher performs all encryption, key generation and password hashing.
	cipher crypto.CipherService

	// appKey is the process-wide application key under which email and
	// name fields are encrypted. Must stay identical across restarts or
	// stored records become unreachable.
	appKey string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and cipher service, holding the application key from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cipher crypto.CipherService, appKey string, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		cipher:         cipher,
		appKey:         appKey,
		logger:         logger,
	}
}

// Register creates a new diary account.
//
// It validates the request fields, encrypts email and name with the
// application key, derives a salted Argon2id digest of the password, issues
// a fresh per-account key, and delegates persistence to the UserRepository.
//
// Returns:
//   - ErrInvalidDataProvided if any field is missing or the theme is absent.
//   - ErrFieldTooLong if any field exceeds the length limit.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyRegistered).
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	log := logger.FromContext(ctx)

	if !fieldsPresent(req.Email, req.Password, req.Name) || req.Theme == nil {
		log.Error().Msg("invalid registration data provided")
		return ErrInvalidDataProvided
	}
	if !fieldsWithinLimit(req.Email, req.Password, req.Name) {
		log.Error().Msg("registration field exceeds maximum length")
		return ErrFieldTooLong
	}

	emailEnc, err := a.cipher.Encrypt(a.appKey, req.Email)
	if err != nil {
		log.Err(err).Msg("email encryption failed")
		return fmt.Errorf("email encryption failed: %w", err)
	}

	nameEnc, err := a.cipher.Encrypt(a.appKey, req.Name)
	if err != nil {
		log.Err(err).Msg("name encryption failed")
		return fmt.Errorf("name encryption failed: %w", err)
	}

	salt, err := a.cipher.GenerateSalt()
	if err != nil {
		log.Err(err).Msg("salt generation failed")
		return fmt.Errorf("salt generation failed: %w", err)
	}

	passwordHash, err := a.cipher.HashPassword(req.Password, salt)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	userKey, err := a.cipher.GenerateKey()
	if err != nil {
		log.Err(err).Msg("per-account key generation failed")
		return fmt.Errorf("per-account key generation failed: %w", err)
	}

	user := models.User{
		EmailEnc:     emailEnc,
		PasswordHash: passwordHash,
		PasswordSalt: salt,
		UserKey:      userKey,
		NameEnc:      nameEnc,
		Theme:        *req.Theme,
	}

	if _, err := a.userRepository.CreateUser(ctx, user); err != nil {
		log.Err(err).Msg("user creation ended with error")
		return fmt.Errorf("user creation ended with error: %w", err)
	}

	return nil
}

// Login authenticates an existing account.
//
// It encrypts the submitted email with the application key, looks the
// account up by the encrypted value, and verifies the submitted password
// against the stored salted digest. On success the stored name is decrypted
// and returned together with the per-account key, which doubles as the
// bearer credential for all future requests from this client.
//
// Returns:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials for both an unknown email and a wrong
//     password, so the caller cannot learn which of the two failed.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.SessionResponse, error) {
	log := logger.FromContext(ctx)

	if !fieldsPresent(req.Email, req.Password) {
		log.Error().Msg("invalid login data provided")
		return models.SessionResponse{}, ErrInvalidDataProvided
	}

	emailEnc, err := a.cipher.Encrypt(a.appKey, req.Email)
	if err != nil {
		log.Err(err).Msg("email encryption failed")
		return models.SessionResponse{}, fmt.Errorf("email encryption failed: %w", err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, emailEnc)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Msg("login attempt for unknown email")
			return models.SessionResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by email failed")
		return models.SessionResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.cipher.VerifyPassword(req.Password, foundUser.PasswordSalt, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Msg("password verification failed")
		return models.SessionResponse{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Error().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.SessionResponse{}, ErrInvalidCredentials
	}

	name, err := a.cipher.Decrypt(a.appKey, foundUser.NameEnc)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("name decryption failed")
		return models.SessionResponse{}, fmt.Errorf("name decryption failed: %w", err)
	}

	return models.SessionResponse{
		Key:   foundUser.UserKey,
		Name:  name,
		Theme: foundUser.Theme,
	}, nil
}
