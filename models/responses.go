package models

// MessageResponse is the generic acknowledgement body returned by mutating
// endpoints, e.g. {"message":"OK"}.
type MessageResponse struct {
	Message string `json:"message"`
}

// SessionResponse is returned by a successful login. Key is the per-account
// encryption key the client must present on every subsequent request; there
// is no separate session token.
type SessionResponse struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Theme int    `json:"theme"`
}

// NoteView is a single decrypted note as returned to its owner.
type NoteView struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	ScheduledDate string `json:"scheduledDate"`
}

// NotesResponse wraps the note list returned by the query endpoints.
type NotesResponse struct {
	Notes []NoteView `json:"notes"`
}

// ChatResponse carries the upstream completion returned by the chat proxy.
type ChatResponse struct {
	Reply string `json:"reply"`
}
