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

// profileService is the concrete implementation of ProfileService. Every
// mutation re-verifies the full (key, email, password) credential triple:
// the capability pair resolves the account, the password is checked against
// the stored salted digest, and the storage-layer statement guards on the
// same triple again so the check and the write cannot be interleaved.
type profileService struct {
	userRepository store.UserRepository
	cipher         crypto.CipherService
	appKey         string
	logger         *logger.Logger
}

// NewProfileService constructs a ProfileService over the given repository
// and cipher service.
func NewProfileService(userRepository store.UserRepository, cipher crypto.CipherService, appKey string, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		cipher:         cipher,
		appKey:         appKey,
		logger:         logger,
	}
}

// UpdateName replaces the account's display name, stored encrypted under
// the application key.
func (p *profileService) UpdateName(ctx context.Context, req models.UpdateNameRequest) error {
	if !fieldsPresent(req.Key, req.Email, req.Password, req.Name) {
		return ErrInvalidDataProvided
	}
	if !fieldsWithinLimit(req.Name) {
		return ErrFieldTooLong
	}

	user, emailEnc, err := p.verifyCredentialTriple(ctx, req.Credentials)
	if err != nil {
		return err
	}

	nameEnc, err := p.cipher.Encrypt(p.appKey, req.Name)
	if err != nil {
		return fmt.Errorf("name encryption failed: %w", err)
	}

	return p.userRepository.UpdateUser(ctx, req.Key, emailEnc, user.PasswordHash, models.UserUpdate{
		NameEnc: &nameEnc,
	})
}

// UpdatePassword re-salts and re-hashes the new password and swaps both
// digest and salt in one guarded statement. The guard still matches the old
// digest, so a concurrent password change loses cleanly with "no user found"
// instead of clobbering.
func (p *profileService) UpdatePassword(ctx context.Context, req models.UpdatePasswordRequest) error {
	if !fieldsPresent(req.Key, req.Email, req.Password, req.NewPassword) {
		return ErrInvalidDataProvided
	}
	if !fieldsWithinLimit(req.NewPassword) {
		return ErrFieldTooLong
	}

	user, emailEnc, err := p.verifyCredentialTriple(ctx, req.Credentials)
	if err != nil {
		return err
	}

	newSalt, err := p.cipher.GenerateSalt()
	if err != nil {
		return fmt.Errorf("salt generation failed: %w", err)
	}

	newHash, err := p.cipher.HashPassword(req.NewPassword, newSalt)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	return p.userRepository.UpdateUser(ctx, req.Key, emailEnc, user.PasswordHash, models.UserUpdate{
		PasswordHash: &newHash,
		PasswordSalt: &newSalt,
	})
}

// UpdateTheme stores the new theme preference.
func (p *profileService) UpdateTheme(ctx context.Context, req models.UpdateThemeRequest) error {
	if !fieldsPresent(req.Key, req.Email, req.Password) || req.Theme == nil {
		return ErrInvalidDataProvided
	}

	user, emailEnc, err := p.verifyCredentialTriple(ctx, req.Credentials)
	if err != nil {
		return err
	}

	return p.userRepository.UpdateUser(ctx, req.Key, emailEnc, user.PasswordHash, models.UserUpdate{
		Theme: req.Theme,
	})
}

// DeleteAccount removes the account matching the full credential triple,
// cascading to its notes. A triple that matches nothing — wrong key, wrong
// password or unknown email alike — reports found=false without an error:
// account deletion is idempotent by policy.
func (p *profileService) DeleteAccount(ctx context.Context, req models.Credentials) (bool, error) {
	log := logger.FromContext(ctx)

	if !fieldsPresent(req.Key, req.Email, req.Password) {
		return false, ErrInvalidDataProvided
	}

	user, emailEnc, err := p.verifyCredentialTriple(ctx, req)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return false, nil
		}
		return false, err
	}

	affected, err := p.userRepository.DeleteUser(ctx, req.Key, emailEnc, user.PasswordHash)
	if err != nil {
		log.Err(err).Msg("account deletion failed")
		return false, fmt.Errorf("account deletion failed: %w", err)
	}

	return affected > 0, nil
}

// verifyCredentialTriple resolves the capability pair to an account and
// verifies the password against its stored salted digest. A failed password
// check is reported as store.ErrNoUserWasFound, indistinguishable from a
// wrong key or email.
func (p *profileService) verifyCredentialTriple(ctx context.Context, creds models.Credentials) (models.User, string, error) {
	log := logger.FromContext(ctx)

	emailEnc, err := p.cipher.Encrypt(p.appKey, creds.Email)
	if err != nil {
		log.Err(err).Msg("email encryption failed")
		return models.User{}, "", fmt.Errorf("email encryption failed: %w", err)
	}

	user, err := p.userRepository.FindUserByKeyAndEmail(ctx, creds.Key, emailEnc)
	if err != nil {
		return models.User{}, "", err
	}

	ok, err := p.cipher.VerifyPassword(creds.Password, user.PasswordSalt, user.PasswordHash)
	if err != nil {
		log.Err(err).Msg("password verification failed")
		return models.User{}, "", fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		return models.User{}, "", store.ErrNoUserWasFound
	}

	return user, emailEnc, nil
}
