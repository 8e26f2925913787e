package models

import "time"

// User represents a diary account as it is persisted. All sensitive profile
// fields are stored encrypted; the struct never carries plaintext email or
// name outside the service layer.
type User struct {
	// UserID is the internal surrogate identifier of the account.
	// It is used only at the persistence layer and never exposed via JSON.
	UserID int64 `json:"-"`

	// EmailEnc is the account email encrypted with the application key,
	// hex-encoded. Encryption is deterministic, so this column doubles as
	// the unique lookup key for the account.
	EmailEnc string `json:"-"`

	// PasswordHash is the hex-encoded Argon2id digest of the account
	// password. Never plaintext.
	PasswordHash string `json:"-"`

	// PasswordSalt is the hex-encoded per-account salt used when the
	// password hash was computed.
	PasswordSalt string `json:"-"`

	// UserKey is the per-account 256-bit encryption key, hex-encoded.
	// It is generated server-side at registration, handed to the client,
	// and presented back as the capability credential on every note and
	// profile operation. Note content is encrypted under this key.
	UserKey string `json:"-"`

	// NameEnc is the display name encrypted with the application key.
	NameEnc string `json:"-"`

	// Theme is the numeric UI theme preference. Non-sensitive, stored
	// in plaintext.
	Theme int `json:"theme"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
