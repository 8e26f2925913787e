package models

// RegisterRequest is the JSON body of POST /api/user/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Theme    *int   `json:"theme"`
}

// LoginRequest is the JSON body of POST /api/user/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials is the capability triple presented on profile mutations:
// the per-account key, the account email and the account password.
// Note operations use only Key and Email.
type Credentials struct {
	Key      string `json:"key"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// UpdateNameRequest is the JSON body of POST /api/user/name.
type UpdateNameRequest struct {
	Credentials
	Name string `json:"name"`
}

// UpdatePasswordRequest is the JSON body of POST /api/user/password.
type UpdatePasswordRequest struct {
	Credentials
	NewPassword string `json:"newPassword"`
}

// UpdateThemeRequest is the JSON body of POST /api/user/theme.
type UpdateThemeRequest struct {
	Credentials
	Theme *int `json:"theme"`
}

// AddNoteRequest is the JSON body of POST /api/notes/add.
type AddNoteRequest struct {
	Credentials
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// NotesQueryRequest is the JSON body of POST /api/notes/get. Date is a
// calendar date in YYYY-MM-DD form; POST /api/notes/today uses the same
// body without Date.
type NotesQueryRequest struct {
	Credentials
	Date string `json:"date"`
}

// DeleteNoteRequest is the JSON body of POST /api/notes/delete.
type DeleteNoteRequest struct {
	Credentials
	ID string `json:"id"`
}

// ChatRequest is the JSON body of POST /api/chat.
type ChatRequest struct {
	Credentials
	Message string `json:"message"`
}
