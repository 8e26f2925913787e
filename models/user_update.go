package models

// UserUpdate describes a partial update of an account record. Nil fields are
// left untouched; PasswordHash and PasswordSalt are always set together.
type UserUpdate struct {
	NameEnc      *string
	PasswordHash *string
	PasswordSalt *string
	Theme        *int
}

// IsEmpty reports whether the update would change nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.NameEnc == nil && u.PasswordHash == nil && u.PasswordSalt == nil && u.Theme == nil
}
