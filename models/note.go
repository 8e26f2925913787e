package models

import "time"

// Note represents a single diary entry as it is persisted. Title and
// description are stored encrypted under the owner's per-account key, so a
// database dump (or a leaked application key) does not expose note content.
type Note struct {
	// ID is the surrogate identifier of the note, used for deletion.
	ID string `json:"id"`

	// OwnerEmailEnc links the note to its owner by value: it holds the
	// owner's encrypted email, the same value stored in users.email_enc.
	OwnerEmailEnc string `json:"-"`

	// TitleEnc is the note title encrypted with the owner's per-account
	// key, hex-encoded.
	TitleEnc string `json:"-"`

	// DescriptionEnc is the note body encrypted with the owner's
	// per-account key, hex-encoded.
	DescriptionEnc string `json:"-"`

	// ScheduledDate is the plaintext calendar date the note is scheduled
	// for. Kept unencrypted so the store can run equality queries
	// ("notes for today", "notes for a given date").
	ScheduledDate time.Time `json:"scheduled_date"`

	// CreatedAt is the timestamp when the note was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
