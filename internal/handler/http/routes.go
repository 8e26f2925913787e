package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/api/ping", h.ping)

	// account lifecycle
	router.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/delete", h.deleteAccount)
		r.Post("/name", h.updateName)
		r.Post("/password", h.updatePassword)
		r.Post("/theme", h.updateTheme)
	})

	// diary notes; credentials travel in the body, so everything is a POST
	router.Route("/api/notes", func(r chi.Router) {
		r.Post("/add", h.addNote)
		r.Post("/get", h.getNotes)
		r.Post("/today", h.getTodayNotes)
		r.Post("/delete", h.deleteNote)
	})

	router.Post("/api/chat", h.chat)

	return router
}
