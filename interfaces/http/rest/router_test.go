package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stocks-api/domain/stock"
	"stocks-api/infrastructure/di"
	"stocks-api/infrastructure/messaging"
	"stocks-api/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, repo *mocks.StockRepository) http.Handler {
	t.Helper()

	logger := zap.NewNop()
	commandBus, err := di.ProvideCommandBus(repo, messaging.NewNoopEventBus(), logger)
	require.NoError(t, err)
	queryBus, err := di.ProvideQueryBus(repo, logger)
	require.NoError(t, err)

	return NewRouter(commandBus, queryBus, logger).Setup()
}

func TestPreflightShortCircuit(t *testing.T) {
	handler := newTestHandler(t, new(mocks.StockRepository))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("OPTIONS", "/stocks/AAPL", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET,POST,PUT,DELETE,OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
	assert.Empty(t, w.Body.String())
}

func TestPreflightOnUnknownRoute(t *testing.T) {
	handler := newTestHandler(t, new(mocks.StockRepository))

	// Preflight applies to every path, known or not.
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("OPTIONS", "/nowhere", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "GET,POST,PUT,DELETE,OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
}

func TestUnknownRouteEnvelope(t *testing.T) {
	handler := newTestHandler(t, new(mocks.StockRepository))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	errInfo := body["error"].(map[string]interface{})
	assert.Equal(t, "Route not found", errInfo["message"])
	assert.NotContains(t, body, "data")

	metadata := body["metadata"].(map[string]interface{})
	assert.NotEmpty(t, metadata["requestId"])
	assert.NotEmpty(t, metadata["timestamp"])
}

func TestMethodNotAllowed(t *testing.T) {
	handler := newTestHandler(t, new(mocks.StockRepository))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("PATCH", "/stocks/AAPL", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	errInfo := body["error"].(map[string]interface{})
	assert.Equal(t, "METHOD_NOT_ALLOWED", errInfo["code"])
}

func TestRequestIDHonoredAndEchoed(t *testing.T) {
	repo := new(mocks.StockRepository)
	repo.On("Get", mock.Anything, "AAPL").
		Return(stock.Record{stock.AttrCode: "AAPL"}, nil)
	handler := newTestHandler(t, repo)

	req := httptest.NewRequest("GET", "/stocks/AAPL", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "client-supplied-id", w.Header().Get("X-Request-ID"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	metadata := body["metadata"].(map[string]interface{})
	assert.Equal(t, "client-supplied-id", metadata["requestId"])
}

func TestRequestIDGeneratedWhenAbsent(t *testing.T) {
	repo := new(mocks.StockRepository)
	repo.On("Get", mock.Anything, "AAPL").
		Return(stock.Record{stock.AttrCode: "AAPL"}, nil)
	handler := newTestHandler(t, repo)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/stocks/AAPL", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCORSHeaderOnNormalResponse(t *testing.T) {
	repo := new(mocks.StockRepository)
	repo.On("Get", mock.Anything, "AAPL").
		Return(stock.Record{stock.AttrCode: "AAPL"}, nil)
	handler := newTestHandler(t, repo)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/stocks/AAPL", nil))

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealthAndReady(t *testing.T) {
	handler := newTestHandler(t, new(mocks.StockRepository))

	for _, path := range []string{"/health", "/ready"} {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestPanicRecovery(t *testing.T) {
	repo := new(mocks.StockRepository)
	repo.On("Get", mock.Anything, "BOOM").Run(func(mock.Arguments) {
		panic("store exploded")
	}).Return(nil, nil)
	handler := newTestHandler(t, repo)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/stocks/BOOM", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	errInfo := body["error"].(map[string]interface{})
	assert.Equal(t, "Internal server error", errInfo["message"])
}
