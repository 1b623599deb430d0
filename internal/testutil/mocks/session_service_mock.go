package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/dialoguedeck/internal/models"
)

// MockSessionService is a mock implementation of services.SessionService
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateDeck(ctx context.Context, name string) (models.Deck, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(models.Deck), args.Error(1)
}

func (m *MockSessionService) DeleteDeck(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionService) CreateCard(ctx context.Context, deckID, text string) (models.Card, error) {
	args := m.Called(ctx, deckID, text)
	return args.Get(0).(models.Card), args.Error(1)
}

func (m *MockSessionService) DeleteCard(ctx context.Context, deckID, cardID string) error {
	args := m.Called(ctx, deckID, cardID)
	return args.Error(0)
}

func (m *MockSessionService) Shuffle(ctx context.Context, deckID string) (models.Deck, error) {
	args := m.Called(ctx, deckID)
	return args.Get(0).(models.Deck), args.Error(1)
}

func (m *MockSessionService) SelectDeck(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionService) Advance(ctx context.Context, dir models.Direction) (*models.Card, error) {
	args := m.Called(ctx, dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *MockSessionService) CurrentCard(ctx context.Context) *models.Card {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*models.Card)
}

func (m *MockSessionService) CopyCurrent(ctx context.Context) (models.Card, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Card), args.Error(1)
}

func (m *MockSessionService) Decks(ctx context.Context) []models.Deck {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Deck)
}

func (m *MockSessionService) State(ctx context.Context) models.SessionState {
	args := m.Called(ctx)
	return args.Get(0).(models.SessionState)
}
