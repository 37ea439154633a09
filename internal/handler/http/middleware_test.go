package http

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, nil))
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	h := Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("created"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/data?verbose=1", nil))

	out := buf.String()
	assert.Contains(t, out, `"method":"POST"`)
	assert.Contains(t, out, `"path":"/data"`)
	assert.Contains(t, out, `"query":"verbose=1"`)
	assert.Contains(t, out, `"status":201`)
	assert.Contains(t, out, `"bytes":7`)
}

func TestRecoverMiddleware(t *testing.T) {
	var buf bytes.Buffer
	h := Recover(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest("GET", "/data", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "boom")
}

func TestLimitRequestBody(t *testing.T) {
	h := LimitRequestBody(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		if _, err := r.Body.Read(buf); err != nil {
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/data", strings.NewReader(strings.Repeat("x", 100)))
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRateLimiterRejectsAfterBurst(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	h := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/data", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{200, 200, 429}, codes)
}

func TestRateLimiterIsPerIP(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	h := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	first := httptest.NewRequest("GET", "/data", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	rec1 := httptest.NewRecorder()
	h.ServeHTTP(rec1, first)

	second := httptest.NewRequest("GET", "/data", nil)
	second.RemoteAddr = "10.0.0.2:1234"
	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, second)

	assert.Equal(t, http.StatusOK, rec1.Code)
	assert.Equal(t, http.StatusOK, rec2.Code)
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"remote addr", "192.168.1.10:5555", nil, "192.168.1.10"},
		{"x-forwarded-for", "10.0.0.1:80",
			map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "203.0.113.7"},
		{"x-real-ip", "10.0.0.1:80",
			map[string]string{"X-Real-IP": "203.0.113.9"}, "203.0.113.9"},
		{"malformed xff falls back", "192.168.1.10:5555",
			map[string]string{"X-Forwarded-For": "not-an-ip"}, "192.168.1.10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, extractIP(req))
		})
	}
}
