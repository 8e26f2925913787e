package service

import (
	"context"
	"fmt"

	"github.com/pocketdiary/diary-server/internal/adapter"
	"github.com/pocketdiary/diary-server/internal/crypto"
	"github.com/pocketdiary/diary-server/internal/logger"
	"github.com/pocketdiary/diary-server/internal/store"
	"github.com/pocketdiary/diary-server/models"
)

// chatService is the concrete implementation of ChatService. It is a
// stateless pass-through: after the capability check succeeds, the prompt
// goes straight to the upstream completion API and the reply straight back.
// Nothing about the conversation is persisted.
type chatService struct {
	userRepository store.UserRepository
	cipher         crypto.CipherService
	completer      adapter.ChatCompleter
	appKey         string
	logger         *logger.Logger
}

// NewChatService constructs a ChatService over the given repository and
// upstream completion adapter.
func NewChatService(userRepository store.UserRepository, cipher crypto.CipherService, completer adapter.ChatCompleter, appKey string, logger *logger.Logger) ChatService {
	return &chatService{
		userRepository: userRepository,
		cipher:         cipher,
		completer:      completer,
		appKey:         appKey,
		logger:         logger,
	}
}

// Chat verifies the caller's capability pair and forwards the message to
// the completion API.
//
// Returns:
//   - ErrInvalidDataProvided if any field is missing.
//   - store.ErrNoUserWasFound if the (key, email) pair resolves to no account.
//   - adapter.ErrUpstream (wrapped) if the completion API round trip fails.
func (c *chatService) Chat(ctx context.Context, req models.ChatRequest) (string, error) {
	log := logger.FromContext(ctx)

	if !fieldsPresent(req.Key, req.Email, req.Message) {
		return "", ErrInvalidDataProvided
	}

	emailEnc, err := c.cipher.Encrypt(c.appKey, req.Email)
	if err != nil {
		log.Err(err).Msg("email encryption failed")
		return "", fmt.Errorf("email encryption failed: %w", err)
	}

	if _, err := c.userRepository.FindUserByKeyAndEmail(ctx, req.Key, emailEnc); err != nil {
		return "", err
	}

	reply, err := c.completer.Complete(ctx, req.Message)
	if err != nil {
		log.Err(err).Msg("completion request failed")
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	return reply, nil
}
