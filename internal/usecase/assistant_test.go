package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"flightwarehouse-service/internal/domain/entity"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *entity.Flight) (*entity.Flight, error) {
	args := m.Called(ctx, flight)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByNK(ctx context.Context, flightNK string) (*entity.Flight, error) {
	args := m.Called(ctx, flightNK)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Flight), args.Error(1)
}

func (m *MockFlightRepository) List(ctx context.Context, filter entity.FlightFilter, limit, offset int) ([]entity.Flight, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Flight), args.Get(1).(int64), args.Error(2)
}

func (m *MockFlightRepository) Update(ctx context.Context, flightNK string, update *entity.FlightUpdate) (*entity.Flight, error) {
	args := m.Called(ctx, flightNK, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Flight), args.Error(1)
}

func (m *MockFlightRepository) Delete(ctx context.Context, flightNK string) error {
	args := m.Called(ctx, flightNK)
	return args.Error(0)
}

func (m *MockFlightRepository) ListRecent(ctx context.Context, limit int) ([]entity.Flight, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Flight), args.Error(1)
}

type MockAssistantModel struct {
	mock.Mock
}

func (m *MockAssistantModel) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockAssistantModel) ModelName() string {
	args := m.Called()
	return args.String(0)
}

func TestAssistantAsk_EmptyQuestionRejected(t *testing.T) {
	flights := new(MockFlightRepository)
	model := new(MockAssistantModel)
	svc := NewAssistantService(flights, model, noopLogger{})

	_, _, err := svc.Ask(context.Background(), "")

	assert.ErrorIs(t, err, entity.ErrValidation)
	flights.AssertNotCalled(t, "ListRecent")
	model.AssertNotCalled(t, "Generate")
}

func TestAssistantAsk_GroundsPromptOnRecentFlights(t *testing.T) {
	status := "landed"
	flights := new(MockFlightRepository)
	flights.On("ListRecent", mock.Anything, 50).Return([]entity.Flight{
		{FlightNK: "UA100:2024-01-01", FlightDate: "2024-01-01", FlightIATA: "UA100", FlightStatus: &status},
	}, nil)

	model := new(MockAssistantModel)
	model.On("Generate", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Did UA100 land?") &&
			strings.Contains(prompt, "UA100:2024-01-01")
	})).Return("Yes, UA100 landed.", nil)
	model.On("ModelName").Return("gemini-1.5-flash")

	svc := NewAssistantService(flights, model, noopLogger{})
	answer, modelName, err := svc.Ask(context.Background(), "Did UA100 land?")

	require.NoError(t, err)
	assert.Equal(t, "Yes, UA100 landed.", answer)
	assert.Equal(t, "gemini-1.5-flash", modelName)
	flights.AssertExpectations(t)
	model.AssertExpectations(t)
}

func TestAssistantAsk_ModelErrorPropagates(t *testing.T) {
	flights := new(MockFlightRepository)
	flights.On("ListRecent", mock.Anything, 50).Return([]entity.Flight{}, nil)

	model := new(MockAssistantModel)
	model.On("Generate", mock.Anything, mock.Anything).Return("", entity.ErrRateLimited)

	svc := NewAssistantService(flights, model, noopLogger{})
	_, _, err := svc.Ask(context.Background(), "anything")

	assert.ErrorIs(t, err, entity.ErrRateLimited)
}
