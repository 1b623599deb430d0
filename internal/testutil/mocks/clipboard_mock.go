package mocks

import "github.com/stretchr/testify/mock"

// MockClipboard is a mock implementation of clipboard.Sink
type MockClipboard struct {
	mock.Mock
}

func (m *MockClipboard) Write(text string) {
	m.Called(text)
}
