package service

import (
	"context"

	"github.com/pocketdiary/diary-server/models"
)

// AuthService handles account registration and credential verification.
type AuthService interface {
	// Register creates a new account: it encrypts the identity fields with
	// the application key, salts and hashes the password, and issues the
	// per-account encryption key.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login verifies the submitted credentials and, on success, returns
	// the stored per-account key together with the decrypted profile.
	// Unknown email and wrong password fail identically.
	Login(ctx context.Context, req models.LoginRequest) (models.SessionResponse, error)
}

// ProfileService handles mutations of an existing account. Every operation
// verifies the full (key, email, password) credential triple before acting.
type ProfileService interface {
	UpdateName(ctx context.Context, req models.UpdateNameRequest) error
	UpdatePassword(ctx context.Context, req models.UpdatePasswordRequest) error
	UpdateTheme(ctx context.Context, req models.UpdateThemeRequest) error

	// DeleteAccount removes the account and, by cascade, its notes.
	// It reports whether an account actually matched: a non-matching
	// credential triple is not an error, by the idempotent-delete policy.
	DeleteAccount(ctx context.Context, req models.Credentials) (bool, error)
}

// NotesService handles diary note operations. Every operation verifies the
// presented (key, email) capability pair before touching note records.
type NotesService interface {
	AddNote(ctx context.Context, req models.AddNoteRequest) error
	GetNotes(ctx context.Context, req models.NotesQueryRequest) ([]models.NoteView, error)
	GetTodayNotes(ctx context.Context, req models.Credentials) ([]models.NoteView, error)
	DeleteNote(ctx context.Context, req models.DeleteNoteRequest) error
}

// ChatService forwards diary-assistant prompts to the upstream completion
// API after verifying the caller's capability pair. It keeps no state.
type ChatService interface {
	Chat(ctx context.Context, req models.ChatRequest) (string, error)
}
