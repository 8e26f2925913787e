// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pocketdiary/diary-server/internal/logger"
	"github.com/pocketdiary/diary-server/internal/service"
	"github.com/pocketdiary/diary-server/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// Each mock implements its service interface with per-test overridable
// function fields.

type mockAuthService struct {
	registerFn func(ctx context.Context, req models.RegisterRequest) error
	loginFn    func(ctx context.Context, req models.LoginRequest) (models.SessionResponse, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) error {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.SessionResponse, error) {
	return m.loginFn(ctx, req)
}

type mockProfileService struct {
	updateNameFn     func(ctx context.Context, req models.UpdateNameRequest) error
	updatePasswordFn func(ctx context.Context, req models.UpdatePasswordRequest) error
	updateThemeFn    func(ctx context.Context, req models.UpdateThemeRequest) error
	deleteAccountFn  func(ctx context.Context, req models.Credentials) (bool, error)
}

func (m *mockProfileService) UpdateName(ctx context.Context, req models.UpdateNameRequest) error {
	return m.updateNameFn(ctx, req)
}

func (m *mockProfileService) UpdatePassword(ctx context.Context, req models.UpdatePasswordRequest) error {
	return m.updatePasswordFn(ctx, req)
}

func (m *mockProfileService) UpdateTheme(ctx context.Context, req models.UpdateThemeRequest) error {
	return m.updateThemeFn(ctx, req)
}

func (m *mockProfileService) DeleteAccount(ctx context.Context, req models.Credentials) (bool, error) {
	return m.deleteAccountFn(ctx, req)
}

type mockNotesService struct {
	addNoteFn       func(ctx context.Context, req models.AddNoteRequest) error
	getNotesFn      func(ctx context.Context, req models.NotesQueryRequest) ([]models.NoteView, error)
	getTodayNotesFn func(ctx context.Context, req models.Credentials) ([]models.NoteView, error)
	deleteNoteFn    func(ctx context.Context, req models.DeleteNoteRequest) error
}

func (m *mockNotesService) AddNote(ctx context.Context, req models.AddNoteRequest) error {
	return m.addNoteFn(ctx, req)
}

func (m *mockNotesService) GetNotes(ctx context.Context, req models.NotesQueryRequest) ([]models.NoteView, error) {
	return m.getNotesFn(ctx, req)
}

func (m *mockNotesService) GetTodayNotes(ctx context.Context, req models.Credentials) ([]models.NoteView, error) {
	return m.getTodayNotesFn(ctx, req)
}

func (m *mockNotesService) DeleteNote(ctx context.Context, req models.DeleteNoteRequest) error {
	return m.deleteNoteFn(ctx, req)
}

type mockChatService struct {
	chatFn func(ctx context.Context, req models.ChatRequest) (string, error)
}

func (m *mockChatService) Chat(ctx context.Context, req models.ChatRequest) (string, error) {
	return m.chatFn(ctx, req)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestRouter wires the given mocks into a fully routed handler. Nil mocks
// are fine for endpoints the test never hits.
func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()
	return NewHandler(svcs, logger.Nop()).Init()
}

// doJSON performs a request with a JSON body against the router and returns
// the recorded response.
func doJSON(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeMessage decodes a MessageResponse from the recorded body.
func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) models.MessageResponse {
	t.Helper()
	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	return msg
}

var testCredentials = models.Credentials{
	Key:      "3333333333333333333333333333333333333333333333333333333333333333",
	Email:    "alice@example.com",
	Password: "s3cret-pass",
}
