package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthspec/synthspec/internal/application/spectra"
	"github.com/synthspec/synthspec/internal/domain/catalog"
	"github.com/synthspec/synthspec/internal/domain/spectrum"
	"github.com/synthspec/synthspec/internal/infrastructure/monitoring/logging"
	"github.com/synthspec/synthspec/internal/interfaces/http/handlers"
	stypes "github.com/synthspec/synthspec/pkg/types/spectrum"
)

func newTestRouter() *gin.Engine {
	svc := spectra.NewService(spectrum.NewSynthesizer(), catalog.Default(), logging.NewNopLogger())
	return NewRouter(RouterConfig{
		SpectraHandler: handlers.NewSpectraHandler(svc),
		CatalogHandler: handlers.NewCatalogHandler(svc),
		HealthHandler:  handlers.NewHealthHandler(nil, nil),
		Mode:           gin.TestMode,
	})
}

func postJSON(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool `json:"success"`
	Data    struct {
		Modality string               `json:"modality"`
		Flags    stypes.FeatureFlags  `json:"flags"`
		Curve    []stypes.Point       `json:"curve"`
		Peaks    []stypes.LabeledPeak `json:"peaks"`
		NMRPeaks []stypes.NMRPeak     `json:"nmr_peaks"`
	} `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	RequestID string `json:"request_id"`
}

func TestSynthesizeEndpoint_IR(t *testing.T) {
	r := newTestRouter()
	rec := postJSON(t, r, "/api/v1/spectra/synthesize", gin.H{
		"descriptor": "CC(=O)C",
		"modality":   "ir",
		"seed":       42,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "IR", env.Data.Modality)
	assert.Len(t, env.Data.Curve, 1801)
	assert.NotEmpty(t, env.Data.Peaks)
	assert.NotEmpty(t, env.RequestID)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestSynthesizeEndpoint_NMRNeedsNucleus(t *testing.T) {
	r := newTestRouter()

	rec := postJSON(t, r, "/api/v1/spectra/synthesize", gin.H{
		"descriptor": "CC(=O)C",
		"modality":   "nmr",
		"nucleus":    "proton",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Len(t, env.Data.NMRPeaks, 1)
	assert.Equal(t, "CH3", env.Data.NMRPeaks[0].Label)

	rec = postJSON(t, r, "/api/v1/spectra/synthesize", gin.H{
		"descriptor": "CC(=O)C",
		"modality":   "nmr",
		"nucleus":    "19F",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.Error)
	assert.Equal(t, "SPC_002", env.Error.Code)
}

func TestSynthesizeEndpoint_BadModality(t *testing.T) {
	r := newTestRouter()
	rec := postJSON(t, r, "/api/v1/spectra/synthesize", gin.H{
		"descriptor": "CCO",
		"modality":   "raman",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.Error)
	assert.Equal(t, "SPC_001", env.Error.Code)
}

func TestSynthesizeEndpoint_MissingModality(t *testing.T) {
	r := newTestRouter()
	rec := postJSON(t, r, "/api/v1/spectra/synthesize", gin.H{"descriptor": "CCO"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSynthesizeEndpoint_SeededIsStable(t *testing.T) {
	r := newTestRouter()
	body := gin.H{"descriptor": "c1ccccc1", "modality": "uv-vis", "seed": 7}

	rec1 := postJSON(t, r, "/api/v1/spectra/synthesize", body)
	rec2 := postJSON(t, r, "/api/v1/spectra/synthesize", body)
	require.Equal(t, http.StatusOK, rec1.Code)

	var e1, e2 envelope
	require.NoError(t, json.Unmarshal(rec1.Body.Bytes(), &e1))
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &e2))
	assert.Equal(t, e1.Data.Curve, e2.Data.Curve)
}

func TestDetectEndpoint(t *testing.T) {
	r := newTestRouter()

	rec := postJSON(t, r, "/api/v1/spectra/detect", gin.H{"descriptor": "CC(=O)O"})
	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Data.Flags.CarboxylicAcid)
	assert.False(t, env.Data.Flags.Hydroxyl)

	rec = postJSON(t, r, "/api/v1/spectra/detect", gin.H{"descriptor": ""})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.Error)
	assert.Equal(t, "SPC_003", env.Error.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	r := newTestRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/molecules", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "acetone")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/molecules/benzene", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "c1ccccc1")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/molecules/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CAT_001")
}

func TestHealthEndpoints(t *testing.T) {
	r := newTestRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyz_FailingDependency(t *testing.T) {
	svc := spectra.NewService(spectrum.NewSynthesizer(), catalog.Default(), logging.NewNopLogger())
	r := NewRouter(RouterConfig{
		SpectraHandler: handlers.NewSpectraHandler(svc),
		HealthHandler: handlers.NewHealthHandler(nil, map[string]handlers.Pinger{
			"redis": pingFunc(func(context.Context) error {
				return assert.AnError
			}),
		}),
		Mode: gin.TestMode,
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "unavailable")
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }
