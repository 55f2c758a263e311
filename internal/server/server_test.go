package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/vatsync/internal/rates"
	"github.com/sells-group/vatsync/internal/taxdb"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	db := taxdb.New(map[string]rates.Record{
		"DE": {Type: "vat", Currency: "EUR", StandardRate: 0.19},
		"US": {Type: "none", Currency: "USD", StandardRate: 0,
			States: map[string]rates.StateRecord{
				"CA": {StandardRate: 0.0725, Type: "sales_tax"},
			}},
	})
	srv := httptest.NewServer(New(db))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]any
	status := getJSON(t, srv.URL+"/health", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(2), body["countries"])
}

func TestListRates(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Countries []string `json:"countries"`
	}
	status := getJSON(t, srv.URL+"/rates", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"DE", "US"}, body.Countries)
}

func TestGetCountry(t *testing.T) {
	srv := newTestServer(t)

	var rec rates.Record
	status := getJSON(t, srv.URL+"/rates/DE", &rec)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "vat", rec.Type)
	assert.Equal(t, 0.19, rec.StandardRate)
}

func TestGetCountry_NotFound(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]string
	status := getJSON(t, srv.URL+"/rates/ZZ", &body)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body["error"], "ZZ")
}

func TestGetCountry_StateOverride(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Country      string  `json:"country"`
		State        string  `json:"state"`
		StandardRate float64 `json:"standard_rate"`
	}
	status := getJSON(t, srv.URL+"/rates/US?state=CA", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0.0725, body.StandardRate)
}

func TestGetCountry_UnknownState(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]string
	status := getJSON(t, srv.URL+"/rates/US?state=ZZ", &body)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body["error"], "ZZ")
}
