package store

import (
	"context"
	"fmt"
	"time"

	"github.com/pocketdiary/diary-server/internal/logger"
	"github.com/pocketdiary/diary-server/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// It executes all note CRUD operations against the "notes" table using the
// embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (note id, scheduled date, etc.). Plaintext titles and
// bodies never reach this package: the service layer encrypts them under the
// owner's per-account key first.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNote inserts a note through the credential-guarded [createNote]
// statement. The INSERT … SELECT … WHERE EXISTS form authorises the owner's
// (key, encrypted email) pair and writes the row in one statement, so a
// concurrent account deletion cannot interleave between check and write.
//
// Error handling:
//   - Statement failure → wrapped [ErrExecutingStatement].
//   - Zero rows affected (credentials matched no account) → [ErrNoUserWasFound].
func (n *noteRepository) CreateNote(ctx context.Context, note models.Note, userKey string) error {
	log := logger.FromContext(ctx)

	result, err := n.DB.ExecContext(ctx, createNote,
		note.ID, note.OwnerEmailEnc, note.TitleEnc, note.DescriptionEnc, note.ScheduledDate, userKey)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.CreateNote").
			Str("note_id", note.ID).
			Msg("failed to execute insert statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.CreateNote").
			Str("note_id", note.ID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// FindNotesByDate retrieves the notes owned by emailEnc and scheduled for
// the given calendar date, oldest first.
//
// Returns an empty slice when no records match. The caller is expected to
// have verified the capability credentials beforehand.
func (n *noteRepository) FindNotesByDate(ctx context.Context, emailEnc string, date time.Time) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := n.DB.QueryContext(ctx, findNotesByDate, emailEnc, date)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.FindNotesByDate").
			Time("scheduled_date", date).
			Msg("failed to execute query for notes by date")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Note, 0, 10)

	for rows.Next() {
		var note models.Note

		if scanErr := rows.Scan(
			&note.ID,
			&note.OwnerEmailEnc,
			&note.TitleEnc,
			&note.DescriptionEnc,
			&note.ScheduledDate,
			&note.CreatedAt,
		); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*noteRepository.FindNotesByDate").
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*noteRepository.FindNotesByDate").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// DeleteNote removes the note with the given id through the
// credential-guarded [deleteNote] statement and reports how many records
// were removed. Zero means the note did not exist, belonged to a different
// account, or the credentials matched no account; the caller decides how to
// interpret that.
func (n *noteRepository) DeleteNote(ctx context.Context, userKey, emailEnc, noteID string) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := n.DB.ExecContext(ctx, deleteNote, noteID, emailEnc, userKey)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.DeleteNote").
			Str("note_id", noteID).
			Msg("failed to execute delete statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.DeleteNote").
			Str("note_id", noteID).
			Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
