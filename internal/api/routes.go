package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(s.serializeMiddleware)

		r.Get("/state", s.handleState)
		r.Get("/decks", s.handleListDecks)
		r.Post("/decks", s.handleCreateDeck)
		r.Route("/decks/{deckID}", func(r chi.Router) {
			r.Delete("/", s.handleDeleteDeck)
			r.Post("/select", s.handleSelectDeck)
			r.Post("/shuffle", s.handleShuffleDeck)
			r.Post("/cards", s.handleCreateCard)
			r.Delete("/cards/{cardID}", s.handleDeleteCard)
		})
		r.Post("/navigation/advance", s.handleAdvance)
		r.Get("/current", s.handleCurrentCard)
		r.Post("/current/copy", s.handleCopyCurrent)
	})

	return r
}
