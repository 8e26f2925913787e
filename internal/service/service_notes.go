package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pocketdiary/diary-server/internal/crypto"
	"github.com/pocketdiary/diary-server/internal/logger"
	"github.com/pocketdiary/diary-server/internal/store"
	"github.com/pocketdiary/diary-server/models"
)

// notesService is the concrete implementation of NotesService. Note content
// is encrypted and decrypted with the key the caller presents: possession of
// a key that resolves (together with the email) to an account record is the
// entire authorization model, so the service never stores or caches keys.
type notesService struct {
	userRepository store.UserRepository
	noteRepository store.NoteRepository
	cipher         crypto.CipherService
	appKey         string
	logger         *logger.Logger
}

// NewNotesService constructs a NotesService over the given repositories and
// cipher service.
func NewNotesService(userRepository store.UserRepository, noteRepository store.NoteRepository, cipher crypto.CipherService, appKey string, logger *logger.Logger) NotesService {
	return &notesService{
		userRepository: userRepository,
		noteRepository: noteRepository,
		cipher:         cipher,
		appKey:         appKey,
		logger:         logger,
	}
}

// AddNote validates the request, encrypts title and body under the caller's
// per-account key and inserts the note. Authorization happens inside the
// storage statement itself: the insert is guarded by the (key, email)
// credentials, so a pair that matches no account yields
// store.ErrNoUserWasFound and nothing is written.
func (n *notesService) AddNote(ctx context.Context, req models.AddNoteRequest) error {
	log := logger.FromContext(ctx)

	if !fieldsPresent(req.Key, req.Email, req.Title, req.Description, req.Date) {
		return ErrInvalidDataProvided
	}
	if !fieldsWithinLimit(req.Title) {
		return ErrFieldTooLong
	}

	scheduledDate, err := parseScheduledDate(req.Date, time.Now())
	if err != nil {
		return err
	}

	emailEnc, err := n.cipher.Encrypt(n.appKey, req.Email)
	if err != nil {
		log.Err(err).Msg("email encryption failed")
		return fmt.Errorf("email encryption failed: %w", err)
	}

	titleEnc, err := n.cipher.Encrypt(req.Key, req.Title)
	if err != nil {
		return fmt.Errorf("title encryption failed: %w", err)
	}

	descriptionEnc, err := n.cipher.Encrypt(req.Key, req.Description)
	if err != nil {
		return fmt.Errorf("description encryption failed: %w", err)
	}

	note := models.Note{
		ID:             uuid.NewString(),
		OwnerEmailEnc:  emailEnc,
		TitleEnc:       titleEnc,
		DescriptionEnc: descriptionEnc,
		ScheduledDate:  scheduledDate,
	}

	if err := n.noteRepository.CreateNote(ctx, note, req.Key); err != nil {
		log.Err(err).Str("note_id", note.ID).Msg("note creation ended with error")
		return fmt.Errorf("note creation ended with error: %w", err)
	}

	return nil
}

// GetNotes returns the caller's notes scheduled for the requested date,
// decrypted with the presented key. The capability check short-circuits
// before the note query runs.
func (n *notesService) GetNotes(ctx context.Context, req models.NotesQueryRequest) ([]models.NoteView, error) {
	if !fieldsPresent(req.Key, req.Email, req.Date) {
		return nil, ErrInvalidDataProvided
	}

	date, err := parseQueryDate(req.Date)
	if err != nil {
		return nil, err
	}

	return n.notesForDate(ctx, req.Credentials, date)
}

// GetTodayNotes returns the caller's notes scheduled for the current
// server-local calendar date.
func (n *notesService) GetTodayNotes(ctx context.Context, req models.Credentials) ([]models.NoteView, error) {
	if !fieldsPresent(req.Key, req.Email) {
		return nil, ErrInvalidDataProvided
	}

	return n.notesForDate(ctx, req, today(time.Now()))
}

// DeleteNote removes a single note by id. The delete statement is guarded
// by the capability credentials; deleting an already-absent note after a
// successful capability check is a no-op, not an error.
func (n *notesService) DeleteNote(ctx context.Context, req models.DeleteNoteRequest) error {
	log := logger.FromContext(ctx)

	if !fieldsPresent(req.Key, req.Email, req.ID) {
		return ErrInvalidDataProvided
	}

	emailEnc, err := n.authorize(ctx, req.Credentials)
	if err != nil {
		return err
	}

	if _, err := n.noteRepository.DeleteNote(ctx, req.Key, emailEnc, req.ID); err != nil {
		log.Err(err).Str("note_id", req.ID).Msg("note deletion failed")
		return fmt.Errorf("note deletion failed: %w", err)
	}

	return nil
}

// notesForDate runs the capability check, queries the owner's notes for the
// given date and decrypts them with the presented key.
func (n *notesService) notesForDate(ctx context.Context, creds models.Credentials, date time.Time) ([]models.NoteView, error) {
	log := logger.FromContext(ctx)

	emailEnc, err := n.authorize(ctx, creds)
	if err != nil {
		return nil, err
	}

	notes, err := n.noteRepository.FindNotesByDate(ctx, emailEnc, date)
	if err != nil {
		log.Err(err).Msg("note lookup failed")
		return nil, fmt.Errorf("note lookup failed: %w", err)
	}

	views := make([]models.NoteView, 0, len(notes))
	for _, note := range notes {
		title, err := n.cipher.Decrypt(creds.Key, note.TitleEnc)
		if err != nil {
			log.Err(err).Str("note_id", note.ID).Msg("title decryption failed")
			return nil, fmt.Errorf("title decryption failed: %w", err)
		}

		description, err := n.cipher.Decrypt(creds.Key, note.DescriptionEnc)
		if err != nil {
			log.Err(err).Str("note_id", note.ID).Msg("description decryption failed")
			return nil, fmt.Errorf("description decryption failed: %w", err)
		}

		views = append(views, models.NoteView{
			ID:            note.ID,
			Title:         title,
			Description:   description,
			ScheduledDate: note.ScheduledDate.Format(dateLayout),
		})
	}

	return views, nil
}

// authorize runs the capability check: it encrypts the claimed email with
// the application key and resolves the (key, encrypted email) pair to an
// account record. Failure short-circuits the calling operation before any
// note data is touched.
func (n *notesService) authorize(ctx context.Context, creds models.Credentials) (string, error) {
	log := logger.FromContext(ctx)

	emailEnc, err := n.cipher.Encrypt(n.appKey, creds.Email)
	if err != nil {
		log.Err(err).Msg("email encryption failed")
		return "", fmt.Errorf("email encryption failed: %w", err)
	}

	if _, err := n.userRepository.FindUserByKeyAndEmail(ctx, creds.Key, emailEnc); err != nil {
		return "", err
	}

	return emailEnc, nil
}
