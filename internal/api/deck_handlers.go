package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/dialoguedeck/internal/logger"
)

type createDeckRequest struct {
	Name string `json:"name"`
}

type createCardRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, s.Session.State(r.Context()), nil)
}

func (s *Server) handleListDecks(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, s.Session.Decks(r.Context()), nil)
}

func (s *Server) handleCreateDeck(w http.ResponseWriter, r *http.Request) {
	var req createDeckRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	d, err := s.Session.CreateDeck(r.Context(), req.Name)
	respond(w, r, http.StatusCreated, d, err)
}

func (s *Server) handleDeleteDeck(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "deckID")
	logger.FromContext(r.Context()).WithField("deck_id", deckID).Debug("deleting deck")

	err := s.Session.DeleteDeck(r.Context(), deckID)
	respond(w, r, http.StatusOK, s.Session.State(r.Context()), err)
}

func (s *Server) handleSelectDeck(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "deckID")

	if err := s.Session.SelectDeck(r.Context(), deckID); err != nil {
		handleError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, s.Session.State(r.Context()), nil)
}

func (s *Server) handleShuffleDeck(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "deckID")

	d, err := s.Session.Shuffle(r.Context(), deckID)
	respond(w, r, http.StatusOK, d, err)
}

func (s *Server) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "deckID")
	var req createCardRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	c, err := s.Session.CreateCard(r.Context(), deckID, req.Text)
	respond(w, r, http.StatusCreated, c, err)
}

func (s *Server) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "deckID")
	cardID := chi.URLParam(r, "cardID")
	logger.FromContext(r.Context()).WithFields(map[string]any{
		"deck_id": deckID,
		"card_id": cardID,
	}).Debug("deleting card")

	err := s.Session.DeleteCard(r.Context(), deckID, cardID)
	respond(w, r, http.StatusOK, s.Session.State(r.Context()), err)
}
