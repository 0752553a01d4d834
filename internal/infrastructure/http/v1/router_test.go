package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcnursery/internal/app"
	v1 "tcnursery/internal/infrastructure/http/v1"
	"tcnursery/internal/infrastructure/http/v1/middleware"
	numeratorimpl "tcnursery/internal/infrastructure/numerator"
	"tcnursery/internal/infrastructure/storage/memory"
	"tcnursery/internal/seed"
	"tcnursery/pkg/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gen := numeratorimpl.New()
	journal, err := memory.NewJournal(0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = journal.Close() })

	set := app.NewRegisters(gen, journal)
	_, err = seed.Load(context.Background(), set, gen)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	return v1.NewRouter(v1.RouterConfig{
		Logger:    logger.NewNop(),
		Registers: set,
		Journal:   journal,
		Metrics:   middleware.NewMetrics(reg),
		Gatherer:  reg,
		Env:       "test",
	})
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))

	w = do(t, r, http.MethodGet, "/health/info", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "test", decode(t, w)["env"])
}

func TestFilterBar(t *testing.T) {
	r := newTestRouter(t)

	t.Run("unfiltered shows everything", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/api/v1/registers/media/filter", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode(t, w)
		assert.EqualValues(t, 6, body["count"])
		assert.Equal(t, false, body["state"].(map[string]any)["isFiltered"])
		assert.Len(t, body["field1Options"], 4)
		assert.Equal(t, "mediaName", body["fields"].(map[string]any)["field1"])
	})

	t.Run("field1 narrows options and rows", func(t *testing.T) {
		q := url.Values{"field1": {"MS Basal"}, "search": {"true"}}
		w := do(t, r, http.MethodGet, "/api/v1/registers/media/filter?"+q.Encode(), nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode(t, w)
		assert.EqualValues(t, 2, body["count"])
		assert.Equal(t, true, body["state"].(map[string]any)["isFiltered"])

		opts := body["field2Options"].([]any)
		require.Len(t, opts, 2)
		assert.Equal(t, "MB-2024-00001", opts[0].(map[string]any)["value"])
		assert.Equal(t, "MB-2024-00003", opts[1].(map[string]any)["value"])
	})

	t.Run("search without selection is a no-op", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/api/v1/registers/media/filter?search=true", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode(t, w)
		assert.Equal(t, false, body["state"].(map[string]any)["isFiltered"])
		assert.EqualValues(t, 6, body["count"])
	})

	t.Run("no match yields empty items", func(t *testing.T) {
		q := url.Values{"field1": {"MS Basal"}, "field2": {"MB-2024-00002"}, "search": {"true"}}
		w := do(t, r, http.MethodGet, "/api/v1/registers/media/filter?"+q.Encode(), nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode(t, w)
		assert.EqualValues(t, 0, body["count"])
		assert.Empty(t, body["items"])
	})
}

func TestRecordSelector(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/registers/media/select?date=2024-01-08", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["hasRecords"])
	assert.Equal(t, []any{"MB-2024-00001", "MB-2024-00002"}, body["identifiers"])
	assert.Nil(t, body["record"])

	w = do(t, r, http.MethodGet, "/api/v1/registers/media/select?date=2024-01-08&identifier=MB-2024-00002", nil)
	require.Equal(t, http.StatusOK, w.Code)
	record := decode(t, w)["record"].(map[string]any)
	assert.Equal(t, "MS + BAP 4mg", record["mediaName"])

	w = do(t, r, http.MethodGet, "/api/v1/registers/media/select?date=1999-01-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, false, body["hasRecords"])
	assert.Empty(t, body["identifiers"])
}

func TestRegisterCRUD(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/registers/media", map[string]any{
		"date":         "2024-03-01",
		"mediaCode":    "MS-01",
		"mediaName":    "MS Basal",
		"volumeLiters": "12",
		"ph":           "5.8",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	assert.Equal(t, "MB-2024-00007", created["batchNumber"])
	assert.EqualValues(t, 1, created["version"])
	recordID := created["id"].(string)

	w = do(t, r, http.MethodGet, "/api/v1/registers/media/"+recordID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	update := map[string]any{
		"date":         "2024-03-01",
		"mediaCode":    "MS-01",
		"mediaName":    "MS Basal",
		"batchNumber":  "MB-2024-00007",
		"volumeLiters": "14",
		"ph":           "5.8",
		"version":      1,
	}
	w = do(t, r, http.MethodPut, "/api/v1/registers/media/"+recordID, update)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 2, decode(t, w)["version"])

	w = do(t, r, http.MethodPut, "/api/v1/registers/media/"+recordID, update)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/registers/media/audit?recordId="+recordID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	entries := decode(t, w)["items"].([]any)
	require.Len(t, entries, 2)
	assert.Equal(t, "update", entries[0].(map[string]any)["action"])
	assert.Equal(t, "create", entries[1].(map[string]any)["action"])

	w = do(t, r, http.MethodDelete, "/api/v1/registers/media/"+recordID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/registers/media/"+recordID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decode(t, w)["code"])
}

func TestRegisterErrors(t *testing.T) {
	r := newTestRouter(t)

	t.Run("invalid id", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/api/v1/registers/incubation/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing required field", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/api/v1/registers/media", map[string]any{"mediaName": "MS Basal"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed list filter", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/api/v1/registers/media?filter=nope", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("issue above stock", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/api/v1/registers/inventory", map[string]any{
			"date":      "2024-03-01",
			"itemName":  "Agar",
			"category":  "Chemicals",
			"direction": "out",
			"quantity":  "100000",
			"unit":      "kg",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestListWithAdvancedFilter(t *testing.T) {
	r := newTestRouter(t)

	items := `[{"field":"mediaName","operator":"eq","value":"MS Basal"}]`
	w := do(t, r, http.MethodGet, "/api/v1/registers/media?filter="+url.QueryEscape(items), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.EqualValues(t, 2, body["totalCount"])
}

func TestReports(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/registers/inventory/balances", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode(t, w)["items"])

	w = do(t, r, http.MethodGet, "/api/v1/registers/hardening/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode(t, w)["items"])
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	do(t, r, http.MethodGet, "/health/live", nil)

	w := do(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tcnursery_http_requests_total")
	assert.Contains(t, w.Body.String(), `route="/health/live"`)
}
