package store

import (
	"context"

	"github.com/pocketdiary/diary-server/internal/config"
	"github.com/pocketdiary/diary-server/internal/logger"
)

// Repositories bundles all persistence-layer implementations handed to the
// service layer.
type Repositories struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
}

// NewRepositories connects to PostgreSQL, applies migrations and constructs
// all repositories over the shared connection pool.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Repositories{
		UserRepository: NewUserRepository(db, log),
		NoteRepository: NewNoteRepository(db, log),
	}, nil
}
