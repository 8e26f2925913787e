package service

import (
	"github.com/pocketdiary/diary-server/internal/adapter"
	"github.com/pocketdiary/diary-server/internal/config"
	"github.com/pocketdiary/diary-server/internal/crypto"
	"github.com/pocketdiary/diary-server/internal/logger"
	"github.com/pocketdiary/diary-server/internal/store"
)

type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	NotesService   NotesService
	ChatService    ChatService
}

func NewServices(repos *store.Repositories, cipher crypto.CipherService, completer adapter.ChatCompleter, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	appKey := cfg.App.EncryptionKey
	return &Services{
		AuthService:    NewAuthService(repos.UserRepository, cipher, appKey, logger),
		ProfileService: NewProfileService(repos.UserRepository, cipher, appKey, logger),
		NotesService:   NewNotesService(repos.UserRepository, repos.NoteRepository, cipher, appKey, logger),
		ChatService:    NewChatService(repos.UserRepository, cipher, completer, appKey, logger),
	}
}
