package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"flightwarehouse-service/internal/domain/entity"
	"flightwarehouse-service/internal/domain/repository"
	"flightwarehouse-service/internal/infrastructure/auth"
	"flightwarehouse-service/internal/infrastructure/oauth"
	"flightwarehouse-service/internal/usecase"
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

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetOrCreateByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

type MockAirportRepository struct {
	mock.Mock
}

func (m *MockAirportRepository) Create(ctx context.Context, airport *entity.Airport) (*entity.Airport, error) {
	args := m.Called(ctx, airport)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Airport), args.Error(1)
}

func (m *MockAirportRepository) GetByIATA(ctx context.Context, iata string) (*entity.Airport, error) {
	args := m.Called(ctx, iata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Airport), args.Error(1)
}

func (m *MockAirportRepository) List(ctx context.Context, limit, offset int) ([]entity.Airport, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Airport), args.Get(1).(int64), args.Error(2)
}

func (m *MockAirportRepository) Update(ctx context.Context, iata string, update *entity.AirportUpdate) (*entity.Airport, error) {
	args := m.Called(ctx, iata, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Airport), args.Error(1)
}

func (m *MockAirportRepository) Delete(ctx context.Context, iata string) error {
	args := m.Called(ctx, iata)
	return args.Error(0)
}

type stubProvider struct {
	records []entity.ProviderFlightRecord
	err     error
}

func (p *stubProvider) FetchFlights(ctx context.Context, depIATA, arrIATA string, limit int) ([]entity.ProviderFlightRecord, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.records, nil
}

type stubIngestStore struct{}

func (stubIngestStore) RunBatch(ctx context.Context, fn func(tx repository.IngestTx) error) error {
	return fn(stubIngestTx{})
}

type stubIngestTx struct{}

func (stubIngestTx) ArchiveRaw(ctx context.Context, raw *entity.RawRecord) error      { return nil }
func (stubIngestTx) UpsertFlight(ctx context.Context, flight *entity.Flight) error    { return nil }
func (stubIngestTx) UpsertAirport(ctx context.Context, airport *entity.Airport) error { return nil }
func (stubIngestTx) UpsertAirline(ctx context.Context, airline *entity.Airline) error { return nil }

type serverFixture struct {
	users    *MockUserRepository
	airports *MockAirportRepository
	tokens   *auth.TokenService
	server   *Server
}

func newServerFixture(t *testing.T, provider repository.FlightProvider) *serverFixture {
	t.Helper()

	users := new(MockUserRepository)
	airports := new(MockAirportRepository)
	tokens := auth.NewTokenService("test-secret", time.Hour)
	google := oauth.NewGoogleOAuth("", "", "", noopLogger{})

	authSvc := usecase.NewAuthService(users, tokens, google, noopLogger{})
	ingest := usecase.NewIngestOrchestrator(provider, stubIngestStore{}, noopLogger{}, nil)

	return &serverFixture{
		users:    users,
		airports: airports,
		tokens:   tokens,
		server:   NewServer(authSvc, ingest, nil, airports, nil, nil, "", noopLogger{}),
	}
}

func (f *serverFixture) authedRequest(t *testing.T, method, target string, body string) *http.Request {
	t.Helper()

	f.users.On("FindByEmail", mock.Anything, "user@example.com").
		Return(&entity.User{ID: "u1", Email: "user@example.com"}, nil)

	token, err := f.tokens.CreateAccessToken("user@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestHealthEndpointIsPublic(t *testing.T) {
	f := newServerFixture(t, &stubProvider{})
	rec := httptest.NewRecorder()

	f.server.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGuardedRoutesRejectMissingToken(t *testing.T) {
	f := newServerFixture(t, &stubProvider{})
	rec := httptest.NewRecorder()

	f.server.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/api/airports/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "detail")
}

func TestGuardedRoutesRejectForgedToken(t *testing.T) {
	f := newServerFixture(t, &stubProvider{})
	other := auth.NewTokenService("other-secret", time.Hour)
	token, err := other.CreateAccessToken("user@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/airports/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	f.server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListAirportsWithValidToken(t *testing.T) {
	f := newServerFixture(t, &stubProvider{})
	name := "John F Kennedy"
	f.airports.On("List", mock.Anything, 50, 0).
		Return([]entity.Airport{{AirportIATA: "JFK", AirportName: &name}}, int64(1), nil)

	rec := httptest.NewRecorder()
	f.server.Router().ServeHTTP(rec, f.authedRequest(t, "GET", "/api/airports/", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"JFK"`)
	assert.Contains(t, rec.Body.String(), `"total":1`)
}

func TestIngestRejectsBadIATALength(t *testing.T) {
	f := newServerFixture(t, &stubProvider{})
	rec := httptest.NewRecorder()

	f.server.Router().ServeHTTP(rec, f.authedRequest(t, "POST", "/api/ingest/flights?dep_iata=TOOLONG", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "dep_iata")
}

func TestIngestRejectsOutOfRangeLimit(t *testing.T) {
	f := newServerFixture(t, &stubProvider{})
	rec := httptest.NewRecorder()

	f.server.Router().ServeHTTP(rec, f.authedRequest(t, "POST", "/api/ingest/flights?dep_iata=JFK&limit=500", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIngestMapsRateLimitTo429(t *testing.T) {
	f := newServerFixture(t, &stubProvider{err: entity.ErrRateLimited})
	rec := httptest.NewRecorder()

	f.server.Router().ServeHTTP(rec, f.authedRequest(t, "POST", "/api/ingest/flights?dep_iata=JFK", ""))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestIngestReturnsSummary(t *testing.T) {
	f := newServerFixture(t, &stubProvider{records: []entity.ProviderFlightRecord{
		{
			FlightDate: "2024-01-01",
			Departure:  entity.ProviderEndpoint{IATA: "JFK"},
			Arrival:    entity.ProviderEndpoint{IATA: "LAX"},
			Flight:     entity.ProviderIdent{IATA: "UA100"},
			Raw:        []byte(`{}`),
		},
	}})
	rec := httptest.NewRecorder()

	f.server.Router().ServeHTTP(rec, f.authedRequest(t, "POST", "/api/ingest/flights?dep_iata=JFK", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"raw_inserted":1`)
	assert.Contains(t, rec.Body.String(), `"flights_updated":1`)
	assert.Contains(t, rec.Body.String(), `"flights_inserted":0`)
}

func TestLoginIssuesTokenForValidCredentials(t *testing.T) {
	f := newServerFixture(t, &stubProvider{})
	hashBytes, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	hash := string(hashBytes)
	f.users.On("FindByEmail", mock.Anything, "user@example.com").
		Return(&entity.User{ID: "u1", Email: "user@example.com", PasswordHash: &hash}, nil)

	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"email":"user@example.com","password":"s3cret"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	f.server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access_token")
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	f := newServerFixture(t, &stubProvider{})
	hashBytes, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	hash := string(hashBytes)
	f.users.On("FindByEmail", mock.Anything, "user@example.com").
		Return(&entity.User{ID: "u1", Email: "user@example.com", PasswordHash: &hash}, nil)

	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"email":"user@example.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	f.server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
