package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"flightwarehouse-service/internal/domain/entity"
	"flightwarehouse-service/internal/domain/repository"
	"flightwarehouse-service/pkg/logger"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Fatal(msg string, keysAndValues ...interface{}) {}
func (l noopLogger) With(keysAndValues ...interface{}) logger.Logger {
	return l
}

type MockFlightProvider struct {
	mock.Mock
}

func (m *MockFlightProvider) FetchFlights(ctx context.Context, depIATA, arrIATA string, limit int) ([]entity.ProviderFlightRecord, error) {
	args := m.Called(ctx, depIATA, arrIATA, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ProviderFlightRecord), args.Error(1)
}

// fakeIngestStore records every write the batch attempts and whether the
// batch committed, so tests can assert atomicity without a database.
type fakeIngestStore struct {
	tx        fakeIngestTx
	batches   int
	committed bool
}

func (s *fakeIngestStore) RunBatch(ctx context.Context, fn func(tx repository.IngestTx) error) error {
	s.batches++
	if err := fn(&s.tx); err != nil {
		return err
	}
	s.committed = true
	return nil
}

type fakeIngestTx struct {
	raws     []entity.RawRecord
	flights  []entity.Flight
	airports []entity.Airport
	airlines []entity.Airline

	flightErr  error
	airlineErr error
}

func (t *fakeIngestTx) ArchiveRaw(ctx context.Context, raw *entity.RawRecord) error {
	t.raws = append(t.raws, *raw)
	return nil
}

func (t *fakeIngestTx) UpsertFlight(ctx context.Context, flight *entity.Flight) error {
	if t.flightErr != nil {
		return t.flightErr
	}
	t.flights = append(t.flights, *flight)
	return nil
}

func (t *fakeIngestTx) UpsertAirport(ctx context.Context, airport *entity.Airport) error {
	t.airports = append(t.airports, *airport)
	return nil
}

func (t *fakeIngestTx) UpsertAirline(ctx context.Context, airline *entity.Airline) error {
	if t.airlineErr != nil {
		return t.airlineErr
	}
	t.airlines = append(t.airlines, *airline)
	return nil
}

func sampleRecord(flightIATA, date, status string) entity.ProviderFlightRecord {
	return entity.ProviderFlightRecord{
		FlightDate:   date,
		FlightStatus: status,
		Departure: entity.ProviderEndpoint{
			Airport:   "John F Kennedy",
			Timezone:  "America/New_York",
			IATA:      "JFK",
			Scheduled: "2024-01-01T10:00:00+02:00",
		},
		Arrival: entity.ProviderEndpoint{
			Airport: "Los Angeles Intl",
			IATA:    "LAX",
		},
		Airline: entity.ProviderAirline{Name: "United", IATA: "UA"},
		Flight:  entity.ProviderIdent{Number: "100", IATA: flightIATA},
		Raw:     json.RawMessage(`{"flight_date":"` + date + `"}`),
	}
}

func TestIngest_ValidationRejectsBeforeFetch(t *testing.T) {
	provider := new(MockFlightProvider)
	store := &fakeIngestStore{}
	orch := NewIngestOrchestrator(provider, store, noopLogger{}, nil)

	_, err := orch.Ingest(context.Background(), "", "", 50)
	assert.ErrorIs(t, err, entity.ErrValidation)

	_, err = orch.Ingest(context.Background(), "JFK", "", 0)
	assert.ErrorIs(t, err, entity.ErrValidation)

	_, err = orch.Ingest(context.Background(), "JFK", "", 101)
	assert.ErrorIs(t, err, entity.ErrValidation)

	provider.AssertNotCalled(t, "FetchFlights")
	assert.Zero(t, store.batches)
}

func TestIngest_FetchFailureLeavesZeroWrites(t *testing.T) {
	provider := new(MockFlightProvider)
	provider.On("FetchFlights", mock.Anything, "JFK", "", 50).
		Return(nil, entity.ErrUpstream)
	store := &fakeIngestStore{}
	orch := NewIngestOrchestrator(provider, store, noopLogger{}, nil)

	summary, err := orch.Ingest(context.Background(), "JFK", "", 50)

	assert.ErrorIs(t, err, entity.ErrUpstream)
	assert.Nil(t, summary)
	assert.Zero(t, store.batches)
	provider.AssertExpectations(t)
}

func TestIngest_HappyPathCommitsOneBatch(t *testing.T) {
	records := []entity.ProviderFlightRecord{
		sampleRecord("UA100", "2024-01-01", "scheduled"),
		sampleRecord("UA200", "2024-01-01", "active"),
	}
	provider := new(MockFlightProvider)
	provider.On("FetchFlights", mock.Anything, "JFK", "LAX", 50).
		Return(records, nil)
	store := &fakeIngestStore{}
	orch := NewIngestOrchestrator(provider, store, noopLogger{}, nil)

	summary, err := orch.Ingest(context.Background(), "JFK", "LAX", 50)

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.NotEmpty(t, summary.IngestID)
	assert.Equal(t, 2, summary.RawInserted)
	assert.Equal(t, 2, summary.FlightsUpdated)
	assert.Equal(t, 0, summary.FlightsInserted)
	assert.Equal(t, 2, summary.AirportsUpserted)
	assert.Equal(t, 1, summary.AirlinesUpserted)

	assert.True(t, store.committed)
	assert.Equal(t, 1, store.batches)

	require.Len(t, store.tx.flights, 2)
	first := store.tx.flights[0]
	assert.Equal(t, "UA100:2024-01-01", first.FlightNK)
	assert.Equal(t, entity.SourceAviationstack, first.Source)
	require.NotNil(t, first.DepScheduledUTC)
	assert.Equal(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), *first.DepScheduledUTC)
	assert.Nil(t, first.DepActualUTC)

	require.Len(t, store.tx.raws, 2)
	assert.Equal(t, summary.IngestID, store.tx.raws[0].IngestID)
	assert.JSONEq(t, `{"flight_date":"2024-01-01"}`, string(store.tx.raws[0].Record))
}

func TestIngest_UnkeyableRecordArchivedButSkipped(t *testing.T) {
	records := []entity.ProviderFlightRecord{
		sampleRecord("", "2024-01-01", "scheduled"),
		sampleRecord("UA100", "2024-01-01", "scheduled"),
	}
	provider := new(MockFlightProvider)
	provider.On("FetchFlights", mock.Anything, "JFK", "", 10).
		Return(records, nil)
	store := &fakeIngestStore{}
	orch := NewIngestOrchestrator(provider, store, noopLogger{}, nil)

	summary, err := orch.Ingest(context.Background(), "JFK", "", 10)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.RawInserted)
	assert.Equal(t, 1, summary.FlightsUpdated)
	require.Len(t, store.tx.flights, 1)
	assert.Equal(t, "UA100:2024-01-01", store.tx.flights[0].FlightNK)
	// the skipped record still contributes to the dimensions
	assert.Equal(t, 2, summary.AirportsUpserted)
}

func TestIngest_SameKeyUpsertedTwiceLastWins(t *testing.T) {
	records := []entity.ProviderFlightRecord{
		sampleRecord("UA100", "2024-01-01", "scheduled"),
		sampleRecord("UA100", "2024-01-01", "landed"),
	}
	provider := new(MockFlightProvider)
	provider.On("FetchFlights", mock.Anything, "JFK", "", 10).
		Return(records, nil)
	store := &fakeIngestStore{}
	orch := NewIngestOrchestrator(provider, store, noopLogger{}, nil)

	summary, err := orch.Ingest(context.Background(), "JFK", "", 10)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.FlightsUpdated)
	require.Len(t, store.tx.flights, 2)
	assert.Equal(t, store.tx.flights[0].FlightNK, store.tx.flights[1].FlightNK)
	require.NotNil(t, store.tx.flights[1].FlightStatus)
	assert.Equal(t, "landed", *store.tx.flights[1].FlightStatus)
}

func TestIngest_PersistenceFailureRollsBackWholeBatch(t *testing.T) {
	records := []entity.ProviderFlightRecord{
		sampleRecord("UA100", "2024-01-01", "scheduled"),
	}
	provider := new(MockFlightProvider)
	provider.On("FetchFlights", mock.Anything, "JFK", "", 10).
		Return(records, nil)
	store := &fakeIngestStore{}
	store.tx.airlineErr = errors.New("deadlock detected")
	orch := NewIngestOrchestrator(provider, store, noopLogger{}, nil)

	summary, err := orch.Ingest(context.Background(), "JFK", "", 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ingest batch")
	assert.Nil(t, summary)
	assert.False(t, store.committed)
}
