package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/facturx/internal/server"
)

func newTestServer() *server.Server {
	config := &server.Config{
		Address: ":8080",
		Debug:   true,
	}
	return server.NewServer(config)
}

func minimumInvoice(t *testing.T) []byte {
	t.Helper()
	content, err := os.ReadFile(filepath.Join("..", "cii", "testdata", "zugferd_21_minimum.xml"))
	require.NoError(t, err)
	return content
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "ok", response["status"])
	assert.NotEmpty(t, response["time"])
}

func TestParseEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/parse", bytes.NewReader(minimumInvoice(t)))
	req.Header.Set("Content-Type", "application/xml")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.ParseResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	require.NotNil(t, response.Invoice)
	assert.Equal(t, "471102", response.Invoice.InvoiceNo)
	assert.Equal(t, "471102", response.Summary.InvoiceNo)
	assert.Equal(t, "MINIMUM", response.Summary.Profile)
	assert.Equal(t, "Lieferant GmbH", response.Summary.Seller)
	assert.Equal(t, 0, response.Summary.LineCount)
}

func TestParseEndpoint_EmptyBody(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/parse", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseEndpoint_UnknownDocument(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/parse",
		bytes.NewReader([]byte("<unrelated/>")))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestConvertEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/convert", bytes.NewReader(minimumInvoice(t)))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, w.Body.String(), "urn:factur-x.eu:1p0:minimum")
	assert.Contains(t, w.Body.String(), "471102")
}

func TestConvertEndpoint_TargetProfile(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/invoices/convert?profile=urn:cen.eu:en16931:2017",
		bytes.NewReader(minimumInvoice(t)))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "urn:cen.eu:en16931:2017")
}

func TestConvertEndpoint_UnknownProfile(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/invoices/convert?profile=urn:nope",
		bytes.NewReader(minimumInvoice(t)))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDetectEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/detect", bytes.NewReader(minimumInvoice(t)))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.DetectResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "2.1", response.Version)
	assert.Equal(t, "MINIMUM", response.Profile)
}
