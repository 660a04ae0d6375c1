package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPServerAllowsCrossOriginRequests(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/session/state", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := NewHTTPServer(":0", mux)

	req := httptest.NewRequest(http.MethodGet, "/api/session/state", nil)
	req.Header.Set("Origin", "http://display.local")
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
