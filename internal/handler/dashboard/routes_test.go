package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airdash/airdash/internal/adapter"
	"github.com/airdash/airdash/internal/bus"
	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/internal/service"
	"github.com/airdash/airdash/internal/store"
	"github.com/airdash/airdash/models"
)

// ---- Mock: service.SyncEngine ----

type mockEngine struct {
	collection string

	mu      sync.Mutex
	records map[string]models.Record

	refreshErr error
	drainErr   error
	drained    int
}

func newMockEngine(collection string) *mockEngine {
	return &mockEngine{collection: collection, records: make(map[string]models.Record)}
}

func (m *mockEngine) Put(_ context.Context, record models.Record) error {
	if err := record.Validate(); err != nil {
		return service.ErrInvalidRecord
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.Key] = record
	return nil
}

func (m *mockEngine) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, key)
	return nil
}

func (m *mockEngine) Get(_ context.Context, key string) (models.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[key]
	if !ok {
		return models.Record{}, store.ErrRecordNotFound
	}
	return record, nil
}

func (m *mockEngine) All(context.Context) map[string]models.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]models.Record, len(m.records))
	for k, v := range m.records {
		out[k] = v
	}
	return out
}

func (m *mockEngine) Refresh(context.Context) error { return m.refreshErr }

func (m *mockEngine) Drain(context.Context) (models.DrainReport, error) {
	if m.drainErr != nil {
		return models.DrainReport{}, m.drainErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drained++
	return models.DrainReport{Collection: m.collection}, nil
}

func (m *mockEngine) TryDrainAsync() {}

func (m *mockEngine) Restore(context.Context) error { return nil }

func (m *mockEngine) PendingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

func (m *mockEngine) Collection() string { return m.collection }

// ---- Mock: service.SessionService ----

type mockSession struct {
	registerErr error
	loginErr    error
	signedOut   bool
}

func (m *mockSession) Register(_ context.Context, login, _ string) (models.Session, error) {
	if m.registerErr != nil {
		return models.Session{}, m.registerErr
	}
	return models.Session{Identity: "1", Token: "token-" + login}, nil
}

func (m *mockSession) Login(_ context.Context, login, _ string) (models.Session, error) {
	if m.loginErr != nil {
		return models.Session{}, m.loginErr
	}
	return models.Session{Identity: "1", Token: "token-" + login}, nil
}

func (m *mockSession) Restore(context.Context) (models.Session, error) {
	return models.Session{}, service.ErrNoSession
}

func (m *mockSession) SignOut(context.Context) error {
	m.signedOut = true
	return nil
}

// ---- Helpers ----

type dashboardFixture struct {
	router  http.Handler
	bills   *mockEngine
	session *mockSession
	monitor *service.SyncMonitor
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()

	f := &dashboardFixture{
		bills:   newMockEngine(models.CollectionBills),
		session: &mockSession{},
	}
	f.monitor = service.NewSyncMonitor(bus.New(logger.Nop()), logger.Nop())

	services := &service.ClientServices{
		Monitor: f.monitor,
		Session: f.session,
		Engines: map[string]service.SyncEngine{models.CollectionBills: f.bills},
	}
	f.router = NewHandler(services, logger.Nop()).Init()

	return f
}

func doJSON(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ---- Records ----

func TestPutRecord_StoresLocally(t *testing.T) {
	f := newDashboardFixture(t)

	rr := doJSON(f.router, http.MethodPut, "/api/collections/bills/2024-03",
		`{"fields":{"amount":42.5},"last_modified":1000}`)

	require.Equal(t, http.StatusOK, rr.Code)

	record, err := f.bills.Get(context.Background(), "2024-03")
	require.NoError(t, err)
	assert.Equal(t, 42.5, record.Fields["amount"])
}

func TestPutRecord_KeyMismatch(t *testing.T) {
	f := newDashboardFixture(t)

	rr := doJSON(f.router, http.MethodPut, "/api/collections/bills/2024-03",
		`{"key":"2024-04","fields":{"amount":1}}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPutRecord_InvalidRecord(t *testing.T) {
	f := newDashboardFixture(t)

	rr := doJSON(f.router, http.MethodPut, "/api/collections/bills/2024-03", `{"fields":{}}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetRecord_RoundTrip(t *testing.T) {
	f := newDashboardFixture(t)
	require.NoError(t, f.bills.Put(context.Background(), models.Record{
		Key: "2024-03", Fields: map[string]any{"amount": 42.5}, LastModified: 1000,
	}))

	rr := doJSON(f.router, http.MethodGet, "/api/collections/bills/2024-03", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"key":"2024-03","fields":{"amount":42.5},"last_modified":1000}`, rr.Body.String())
}

func TestGetRecord_NotFound(t *testing.T) {
	f := newDashboardFixture(t)

	rr := doJSON(f.router, http.MethodGet, "/api/collections/bills/missing", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListRecords(t *testing.T) {
	f := newDashboardFixture(t)
	require.NoError(t, f.bills.Put(context.Background(), models.Record{
		Key: "2024-03", Fields: map[string]any{"amount": 1.0},
	}))

	rr := doJSON(f.router, http.MethodGet, "/api/collections/bills/", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"length":1`)
}

func TestUnknownCollection(t *testing.T) {
	f := newDashboardFixture(t)

	rr := doJSON(f.router, http.MethodGet, "/api/collections/thermostat/", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteRecord(t *testing.T) {
	f := newDashboardFixture(t)
	require.NoError(t, f.bills.Put(context.Background(), models.Record{
		Key: "2024-03", Fields: map[string]any{"amount": 1.0},
	}))

	rr := doJSON(f.router, http.MethodDelete, "/api/collections/bills/2024-03", "")

	require.Equal(t, http.StatusOK, rr.Code)
	_, err := f.bills.Get(context.Background(), "2024-03")
	assert.Error(t, err)
}

// ---- Session ----

func TestLogin_ReturnsIdentity(t *testing.T) {
	f := newDashboardFixture(t)

	rr := doJSON(f.router, http.MethodPost, "/api/session/login", `{"login":"resident","password":"secret"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"identity":"1"}`, rr.Body.String())
}

func TestLogin_Unauthorized(t *testing.T) {
	f := newDashboardFixture(t)
	f.session.loginErr = adapter.ErrUnauthorized

	rr := doJSON(f.router, http.MethodPost, "/api/session/login", `{"login":"resident","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRegister_Conflict(t *testing.T) {
	f := newDashboardFixture(t)
	f.session.registerErr = adapter.ErrConflict

	rr := doJSON(f.router, http.MethodPost, "/api/session/register", `{"login":"resident","password":"secret"}`)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestRegister_ServerDown(t *testing.T) {
	f := newDashboardFixture(t)
	f.session.registerErr = adapter.ErrServerUnavailable

	rr := doJSON(f.router, http.MethodPost, "/api/session/register", `{"login":"resident","password":"secret"}`)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestLogout(t *testing.T) {
	f := newDashboardFixture(t)

	rr := doJSON(f.router, http.MethodPost, "/api/session/logout", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, f.session.signedOut)
}

// ---- Status / sync ----

func TestStatus_ReportsStateAndBacklog(t *testing.T) {
	f := newDashboardFixture(t)
	f.monitor.SetConnectivity(true)
	f.monitor.SetIdentity("1")
	require.NoError(t, f.bills.Put(context.Background(), models.Record{
		Key: "2024-03", Fields: map[string]any{"amount": 1.0},
	}))

	rr := doJSON(f.router, http.MethodGet, "/api/status", "")

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `"online":true`)
	assert.Contains(t, body, `"identity":"1"`)
	assert.Contains(t, body, `"pending_count":1`)
	assert.Contains(t, body, `"bills":1`)
}

func TestSyncNow_DrainsEveryEngine(t *testing.T) {
	f := newDashboardFixture(t)

	rr := doJSON(f.router, http.MethodPost, "/api/sync", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, f.bills.drained)
}

func TestSyncNow_NotSyncable(t *testing.T) {
	f := newDashboardFixture(t)
	f.bills.refreshErr = service.ErrNotSyncable

	rr := doJSON(f.router, http.MethodPost, "/api/sync", "")

	assert.Equal(t, http.StatusConflict, rr.Code)
}
