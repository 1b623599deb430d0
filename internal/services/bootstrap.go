package services

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/vytor/dialoguedeck/internal/codec"
	"github.com/vytor/dialoguedeck/internal/logger"
	"github.com/vytor/dialoguedeck/internal/models"
	"github.com/vytor/dialoguedeck/internal/store"
)

// Bootstrap builds a session primed from the store. A missing, unreadable,
// corrupt or empty stored collection is replaced by the seed deck. The first
// deck becomes active.
//
// The seed is written through only when the store held nothing usable to
// lose: no value at all, or a valid empty collection. After a read error or
// unparsable content the stored bytes are left alone until the first
// mutation, so a transient failure cannot overwrite the user's decks.
//
// Only invalid arguments produce an error; storage problems are logged and
// recovered from.
func Bootstrap(ctx context.Context, deps Deps, seed Seed) (SessionService, error) {
	log := logger.FromContext(ctx).WithPrefix("bootstrap")

	if deps.Store == nil {
		return nil, fmt.Errorf("bootstrap: store is required")
	}
	if err := seed.Validate(); err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	s := newSessionService(deps)

	decks, outcome := s.loadStored(ctx)
	if outcome == loadRestored {
		s.repo.Load(decks)
		first, _ := s.repo.First()
		_ = s.nav.Select(first.ID)
		log.Info("restored %d decks, active=%s", len(decks), first.ID)
		return s, nil
	}

	d, err := s.plant(seed)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: seed: %w", err)
	}
	log.Info("seeded starter deck: id=%s, name=%q, cards=%d", d.ID, d.Name, len(seed.Cards))

	if outcome == loadUnusable {
		log.Warn("stored collection left untouched; it is replaced on the next change")
		return s, nil
	}
	// persist logs its own failure; an unsaved seed is still usable.
	_ = s.persist(ctx, "seed")
	return s, nil
}

type loadOutcome int

const (
	loadRestored loadOutcome = iota
	// loadAbsent means nothing worth keeping is stored.
	loadAbsent
	// loadUnusable means something is stored but could not be read or parsed.
	loadUnusable
)

func (s *sessionService) loadStored(ctx context.Context) ([]models.Deck, loadOutcome) {
	log := logger.FromContext(ctx).WithPrefix("bootstrap")

	loadCtx, cancel := context.WithTimeout(ctx, s.saveTimeout)
	defer cancel()

	data, err := s.store.Load(loadCtx)
	switch {
	case stderrors.Is(err, store.ErrNotFound):
		log.Info("no stored collection, first run")
		return nil, loadAbsent
	case err != nil:
		log.Warn("failed to read stored collection, falling back to seed: %v", err)
		return nil, loadUnusable
	}

	decks, err := s.codec.Decode(data)
	if err != nil {
		if stderrors.Is(err, codec.ErrCorrupt) {
			log.Warn("stored collection is unusable, falling back to seed: %v", err)
		} else {
			log.Warn("failed to decode stored collection, falling back to seed: %v", err)
		}
		return nil, loadUnusable
	}
	if len(decks) == 0 {
		log.Info("stored collection is empty, seeding")
		return nil, loadAbsent
	}
	return decks, loadRestored
}

func (s *sessionService) plant(seed Seed) (models.Deck, error) {
	d, err := s.repo.CreateDeck(seed.Name)
	if err != nil {
		return models.Deck{}, err
	}
	for _, text := range seed.Cards {
		if _, err := s.repo.CreateCard(d.ID, text); err != nil {
			return models.Deck{}, err
		}
	}
	if err := s.nav.Select(d.ID); err != nil {
		return models.Deck{}, err
	}
	d, _ = s.repo.Deck(d.ID)
	return d, nil
}
