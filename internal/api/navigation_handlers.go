package api

import (
	"net/http"

	"github.com/vytor/dialoguedeck/internal/models"
)

type advanceRequest struct {
	Direction int `json:"direction"`
}

type advanceResponse struct {
	Card  *models.Card        `json:"card"`
	State models.SessionState `json:"state"`
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	req := advanceRequest{Direction: int(models.Forward)}
	if err := decodeOptionalJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	card, err := s.Session.Advance(r.Context(), models.Direction(req.Direction))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, advanceResponse{Card: card, State: s.Session.State(r.Context())}, nil)
}

func (s *Server) handleCurrentCard(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, s.Session.CurrentCard(r.Context()), nil)
}

func (s *Server) handleCopyCurrent(w http.ResponseWriter, r *http.Request) {
	card, err := s.Session.CopyCurrent(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, card, nil)
}

