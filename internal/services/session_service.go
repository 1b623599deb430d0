package services

import (
	"context"
	"time"

	"github.com/vytor/dialoguedeck/internal/clipboard"
	"github.com/vytor/dialoguedeck/internal/codec"
	"github.com/vytor/dialoguedeck/internal/deck"
	"github.com/vytor/dialoguedeck/internal/errors"
	"github.com/vytor/dialoguedeck/internal/logger"
	"github.com/vytor/dialoguedeck/internal/models"
	"github.com/vytor/dialoguedeck/internal/shuffle"
	"github.com/vytor/dialoguedeck/internal/store"
)

const DefaultSaveTimeout = 2 * time.Second

// SessionService is the single controller for decks, cards and the
// carousel position. Every mutation is written through to the store before
// returning. A failed write is reported with an error for which
// errors.IsWarning is true; the mutation itself stays applied.
//
// Implementations are not safe for concurrent use.
type SessionService interface {
	CreateDeck(ctx context.Context, name string) (models.Deck, error)
	DeleteDeck(ctx context.Context, id string) error
	CreateCard(ctx context.Context, deckID, text string) (models.Card, error)
	DeleteCard(ctx context.Context, deckID, cardID string) error
	Shuffle(ctx context.Context, deckID string) (models.Deck, error)
	SelectDeck(ctx context.Context, id string) error
	Advance(ctx context.Context, dir models.Direction) (*models.Card, error)
	CurrentCard(ctx context.Context) *models.Card
	CopyCurrent(ctx context.Context) (models.Card, error)
	Decks(ctx context.Context) []models.Deck
	State(ctx context.Context) models.SessionState
}

// Shuffler reorders a card sequence without adding or dropping cards.
type Shuffler interface {
	Permute(cards []models.Card) []models.Card
}

// Deps are the collaborators a session is built from. Only Store is
// required.
type Deps struct {
	Store       store.Store
	IDs         deck.IDGenerator
	Shuffler    Shuffler
	Clipboard   clipboard.Sink
	SaveTimeout time.Duration
}

type sessionService struct {
	repo        *deck.Repository
	nav         *deck.Navigator
	codec       *codec.Codec
	store       store.Store
	shuffler    Shuffler
	clipboard   clipboard.Sink
	saveTimeout time.Duration
}

func newSessionService(deps Deps) *sessionService {
	ids := deps.IDs
	if ids == nil {
		ids = deck.UUIDGenerator{}
	}
	shuffler := deps.Shuffler
	if shuffler == nil {
		shuffler = shuffle.New(nil)
	}
	sink := deps.Clipboard
	if sink == nil {
		sink = clipboard.Discard{}
	}
	timeout := deps.SaveTimeout
	if timeout <= 0 {
		timeout = DefaultSaveTimeout
	}
	repo := deck.NewRepository(ids)
	return &sessionService{
		repo:        repo,
		nav:         deck.NewNavigator(repo),
		codec:       codec.New(ids),
		store:       deps.Store,
		shuffler:    shuffler,
		clipboard:   sink,
		saveTimeout: timeout,
	}
}

func (s *sessionService) CreateDeck(ctx context.Context, name string) (models.Deck, error) {
	log := logger.FromContext(ctx).WithPrefix("session")

	d, err := s.repo.CreateDeck(name)
	if err != nil {
		log.Debug("create deck rejected: %v", err)
		return models.Deck{}, err
	}
	if err := s.nav.Select(d.ID); err != nil {
		return models.Deck{}, errors.NewInternalError(err)
	}
	log.Info("deck created: id=%s, name=%q", d.ID, d.Name)
	return d, s.persist(ctx, "create deck")
}

func (s *sessionService) DeleteDeck(ctx context.Context, id string) error {
	log := logger.FromContext(ctx).WithPrefix("session")

	wasActive := s.nav.ActiveDeckID() == id
	if err := s.repo.DeleteDeck(id); err != nil {
		log.Debug("delete deck rejected: %v", err)
		return err
	}
	if wasActive {
		if first, ok := s.repo.First(); ok {
			_ = s.nav.Select(first.ID)
			log.Debug("active deck deleted, selected %s", first.ID)
		} else {
			s.nav.Clear()
			log.Debug("active deck deleted, collection is empty")
		}
	}
	log.Info("deck deleted: id=%s", id)
	return s.persist(ctx, "delete deck")
}

func (s *sessionService) CreateCard(ctx context.Context, deckID, text string) (models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("session")

	c, err := s.repo.CreateCard(deckID, text)
	if err != nil {
		log.Debug("create card rejected: %v", err)
		return models.Card{}, err
	}
	s.rewindIfActive(deckID)
	log.Info("card created: deck_id=%s, card_id=%s", deckID, c.ID)
	return c, s.persist(ctx, "create card")
}

func (s *sessionService) DeleteCard(ctx context.Context, deckID, cardID string) error {
	log := logger.FromContext(ctx).WithPrefix("session")

	if err := s.repo.DeleteCard(deckID, cardID); err != nil {
		log.Debug("delete card rejected: %v", err)
		return err
	}
	s.rewindIfActive(deckID)
	log.Info("card deleted: deck_id=%s, card_id=%s", deckID, cardID)
	return s.persist(ctx, "delete card")
}

func (s *sessionService) Shuffle(ctx context.Context, deckID string) (models.Deck, error) {
	log := logger.FromContext(ctx).WithPrefix("session")

	d, ok := s.repo.Deck(deckID)
	if !ok {
		log.Debug("shuffle rejected: unknown deck %s", deckID)
		return models.Deck{}, errors.NewNotFoundError("deck", deckID)
	}
	if err := s.repo.ReplaceCards(deckID, s.shuffler.Permute(d.Cards)); err != nil {
		log.Error("shuffler returned a non-permutation: %v", err)
		return models.Deck{}, errors.NewInternalError(err)
	}
	s.rewindIfActive(deckID)
	d, _ = s.repo.Deck(deckID)
	log.Info("deck shuffled: id=%s, cards=%d", deckID, len(d.Cards))
	return d, s.persist(ctx, "shuffle")
}

func (s *sessionService) SelectDeck(ctx context.Context, id string) error {
	log := logger.FromContext(ctx).WithPrefix("session")
	if err := s.nav.Select(id); err != nil {
		log.Debug("select rejected: %v", err)
		return err
	}
	log.Debug("deck selected: id=%s", id)
	return nil
}

// Advance moves the carousel and returns the card now shown, or nil when
// the active deck is empty or nothing is selected.
func (s *sessionService) Advance(ctx context.Context, dir models.Direction) (*models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("session")
	if err := s.nav.Advance(dir); err != nil {
		log.Debug("advance rejected: %v", err)
		return nil, err
	}
	idx, total := s.nav.Position()
	log.Debug("advanced %s: index=%d/%d", dir, idx, total)
	return s.CurrentCard(ctx), nil
}

func (s *sessionService) CurrentCard(ctx context.Context) *models.Card {
	c, ok := s.nav.Current()
	if !ok {
		return nil
	}
	return &c
}

// CopyCurrent hands the current card's text to the clipboard sink.
func (s *sessionService) CopyCurrent(ctx context.Context) (models.Card, error) {
	c, ok := s.nav.Current()
	if !ok {
		return models.Card{}, errors.NewNotFoundError("card", "current")
	}
	s.clipboard.Write(c.Text)
	logger.FromContext(ctx).WithPrefix("session").Debug("copied card %s", c.ID)
	return c, nil
}

func (s *sessionService) Decks(ctx context.Context) []models.Deck {
	return s.repo.Decks()
}

func (s *sessionService) State(ctx context.Context) models.SessionState {
	active := s.nav.ActiveDeckID()
	decks := s.repo.Decks()
	summaries := make([]models.DeckSummary, len(decks))
	for i, d := range decks {
		summaries[i] = models.DeckSummary{
			ID:        d.ID,
			Name:      d.Name,
			CardCount: len(d.Cards),
			Active:    d.ID == active,
		}
	}
	idx, total := s.nav.Position()
	return models.SessionState{
		Decks:        summaries,
		ActiveDeckID: active,
		CurrentIndex: idx,
		Total:        total,
		Direction:    s.nav.Direction().String(),
		CurrentCard:  s.CurrentCard(ctx),
	}
}

func (s *sessionService) rewindIfActive(deckID string) {
	if s.nav.ActiveDeckID() == deckID {
		s.nav.Reset()
	}
}

// persist writes the whole collection. It never rolls back memory.
func (s *sessionService) persist(ctx context.Context, op string) error {
	log := logger.FromContext(ctx).WithPrefix("session")

	data, err := s.codec.Encode(s.repo.Decks())
	if err != nil {
		log.Error("failed to encode collection after %s: %v", op, err)
		return errors.NewPersistenceWarning(err)
	}

	saveCtx, cancel := context.WithTimeout(ctx, s.saveTimeout)
	defer cancel()
	if err := s.store.Save(saveCtx, data); err != nil {
		log.Warn("failed to save collection after %s: %v", op, err)
		return errors.NewPersistenceWarning(err)
	}
	log.Debug("collection saved after %s: %d bytes", op, len(data))
	return nil
}
