package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/countrydex/countrydex/countries"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	dir := countries.NewDirectory([]countries.Country{
		countries.New("Canada", "CA", "+1").WithNationalSignificantNumber(10),
		countries.New("Germany", "DE", "+49"),
		countries.New("São Tomé and Príncipe", "ST", "+239"),
	})
	return NewRouter(dir)
}

// doRequest serves an enveloped endpoint and decodes the response body.
func doRequest(t *testing.T, router *gin.Engine, target string) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)

	var body APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestGetByISOCode(t *testing.T) {
	router := testRouter()

	w, body := doRequest(t, router, "/api/v1/countries/iso/de")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
	require.NotNil(t, body.Meta)
	assert.NotEmpty(t, body.Meta.RequestID)

	data, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Germany", data["name"])
	assert.Equal(t, "DE", data["iso_code"])
	assert.Equal(t, "+49", data["dial_code"])
	assert.Equal(t, "flags/de.png", data["flag_path"])
	assert.Equal(t, "🇩🇪", data["flag_emoji"])
	assert.NotContains(t, data, "national_significant_number")
}

func TestGetByISOCodeNotFound(t *testing.T) {
	router := testRouter()

	w, body := doRequest(t, router, "/api/v1/countries/iso/zz")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, ErrCodeNotFound, body.Error.Code)
	assert.Contains(t, body.Error.Message, "zz")
}

func TestGetByDialCode(t *testing.T) {
	router := testRouter()

	tests := []struct {
		name   string
		target string
	}{
		{name: "with plus", target: "/api/v1/countries/dial/+1"},
		{name: "without plus", target: "/api/v1/countries/dial/1"},
		{name: "escaped plus", target: "/api/v1/countries/dial/%2B1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := doRequest(t, router, tt.target)

			assert.Equal(t, http.StatusOK, w.Code)
			data, ok := body.Data.(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, "Canada", data["name"])
			assert.EqualValues(t, 10, data["national_significant_number"])
		})
	}
}

func TestGetByDialCodeNotFound(t *testing.T) {
	router := testRouter()

	w, body := doRequest(t, router, "/api/v1/countries/dial/+999")

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, ErrCodeNotFound, body.Error.Code)
}

func TestGetByName(t *testing.T) {
	router := testRouter()

	w, body := doRequest(t, router, "/api/v1/countries/name/germany")

	assert.Equal(t, http.StatusOK, w.Code)
	data, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "DE", data["iso_code"])
}

func TestGetByNameWithAccents(t *testing.T) {
	router := testRouter()

	target := "/api/v1/countries/name/" + url.PathEscape("São Tomé and Príncipe")
	w, body := doRequest(t, router, target)

	assert.Equal(t, http.StatusOK, w.Code)
	data, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ST", data["iso_code"])

	// The exact-name endpoint does not strip accents
	w, _ = doRequest(t, router, "/api/v1/countries/name/"+url.PathEscape("Sao Tome and Principe"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCountries(t *testing.T) {
	router := testRouter()

	w, body := doRequest(t, router, "/api/v1/countries")

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, body.Meta)
	assert.Equal(t, 3, body.Meta.Count)

	data, ok := body.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, data, 3)

	first, ok := data[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Canada", first["name"])
}

func TestListCountriesSearch(t *testing.T) {
	router := testRouter()

	tests := []struct {
		name      string
		query     string
		wantCount int
		wantISO   string
	}{
		{name: "accent-insensitive", query: "sao", wantCount: 1, wantISO: "ST"},
		{name: "uppercase accents", query: "SÃO", wantCount: 1, wantISO: "ST"},
		{name: "iso code", query: "de", wantCount: 1, wantISO: "DE"},
		{name: "no matches", query: "xyzzy", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := doRequest(t, router, "/api/v1/countries?q="+url.QueryEscape(tt.query))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.True(t, body.Success)

			data, ok := body.Data.([]interface{})
			require.True(t, ok)
			require.Len(t, data, tt.wantCount)

			if tt.wantCount > 0 {
				first, ok := data[0].(map[string]interface{})
				require.True(t, ok)
				assert.Equal(t, tt.wantISO, first["iso_code"])
			}
		})
	}
}

func TestHealthz(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 3, body["countries"])
}

func TestRequestIDIsGenerated(t *testing.T) {
	router := testRouter()

	w, body := doRequest(t, router, "/api/v1/countries")

	header := w.Header().Get("X-Request-ID")
	_, err := uuid.Parse(header)
	assert.NoError(t, err)
	require.NotNil(t, body.Meta)
	assert.Equal(t, header, body.Meta.RequestID)
}

func TestRequestIDIsPreserved(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/countries/iso/ca", nil)
	req.Header.Set("X-Request-ID", "caller-supplied-id")
	router.ServeHTTP(w, req)

	assert.Equal(t, "caller-supplied-id", w.Header().Get("X-Request-ID"))

	var body APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Meta)
	assert.Equal(t, "caller-supplied-id", body.Meta.RequestID)
}

func TestCORSPreflight(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/v1/countries", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
