package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"harvester/internal/port"
)

// MockSuggestionOracle is a mock implementation of port.SuggestionOracle.
type MockSuggestionOracle struct {
	mock.Mock
}

func (m *MockSuggestionOracle) Suggest(ctx context.Context, input port.SuggestInput) (*port.SuggestOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.SuggestOutput), args.Error(1)
}
