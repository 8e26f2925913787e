package store

import (
	"github.com/Masterminds/squirrel"

	"github.com/pocketdiary/diary-server/models"
)

const (
	createUser = `INSERT INTO users (email_enc, password_hash, password_salt, user_key, name_enc, theme)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING user_id, email_enc, password_hash, password_salt, user_key, name_enc, theme, created_at;`

	findUserByEmail = `SELECT user_id, email_enc, password_hash, password_salt, user_key, name_enc, theme, created_at
    FROM users
    WHERE email_enc = $1;`

	findUserByKeyAndEmail = `SELECT user_id, email_enc, password_hash, password_salt, user_key, name_enc, theme, created_at
    FROM users
    WHERE user_key = $1 AND email_enc = $2;`

	deleteUser = `DELETE FROM users
    WHERE user_key = $1 AND email_enc = $2 AND password_hash = $3;`

	// The EXISTS guard authorises and inserts in one statement: no separate
	// credential check precedes the write, so there is no race window.
	createNote = `INSERT INTO notes (id, owner_email_enc, title_enc, description_enc, scheduled_date)
    SELECT $1, $2, $3, $4, $5
    WHERE EXISTS (SELECT 1 FROM users WHERE user_key = $6 AND email_enc = $2);`

	findNotesByDate = `SELECT id, owner_email_enc, title_enc, description_enc, scheduled_date, created_at
    FROM notes
    WHERE owner_email_enc = $1 AND scheduled_date = $2
    ORDER BY created_at;`

	deleteNote = `DELETE FROM notes
    WHERE id = $1
      AND owner_email_enc = $2
      AND EXISTS (SELECT 1 FROM users WHERE user_key = $3 AND email_enc = $2);`
)

// buildUpdateUserQuery builds the credential-guarded partial UPDATE for an
// account record. The WHERE clause matches the full credential triple, so
// the authorization check and the mutation execute as a single statement.
func buildUpdateUserQuery(userKey, emailEnc, passwordHash string, update models.UserUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrBuildingSQLQuery
	}

	builder := squirrel.Update("users").PlaceholderFormat(squirrel.Dollar)

	if update.NameEnc != nil {
		builder = builder.Set("name_enc", *update.NameEnc)
	}
	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
	}
	if update.PasswordSalt != nil {
		builder = builder.Set("password_salt", *update.PasswordSalt)
	}
	if update.Theme != nil {
		builder = builder.Set("theme", *update.Theme)
	}

	builder = builder.Where(squirrel.Eq{
		"user_key":      userKey,
		"email_enc":     emailEnc,
		"password_hash": passwordHash,
	})

	return builder.ToSql()
}
