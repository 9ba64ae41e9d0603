package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/pkg/metrics"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestAuth(t *testing.T) {
	var got domain.Actor
	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := GetActor(r.Context())
		require.True(t, ok)
		got = actor
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name   string
		userID string
		role   string
		want   int
	}{
		{"client", "client-1", "client", http.StatusOK},
		{"professional", "pro-1", "professional", http.StatusOK},
		{"missing user", "", "client", http.StatusUnauthorized},
		{"missing role", "client-1", "", http.StatusUnauthorized},
		{"unknown role", "client-1", "owner", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Header.Set(HeaderUserID, tt.userID)
			r.Header.Set(HeaderUserRole, tt.role)
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, r)
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, tt.userID, got.UserID)
				assert.Equal(t, domain.Role(tt.role), got.Role)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(HeaderRequestID, "req-42")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", rec.Header().Get(HeaderRequestID))
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	h := rl.Middleware(http.HandlerFunc(okHandler))

	do := func(userID string) int {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if userID != "" {
			r.Header.Set(HeaderUserID, userID)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("client-1"))
	assert.Equal(t, http.StatusOK, do("client-1"))
	assert.Equal(t, http.StatusTooManyRequests, do("client-1"))

	// у другого клиента свой лимит
	assert.Equal(t, http.StatusOK, do("client-2"))
	assert.Equal(t, http.StatusOK, do(""))
}

func TestRateLimiter_SweepsStaleClients(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1)
	rl.now = func() time.Time { return now }

	rl.get("user:a")
	require.Len(t, rl.clients, 1)

	now = now.Add(staleAfter + time.Second)
	rl.get("user:b")
	assert.Len(t, rl.clients, 1)
	assert.Contains(t, rl.clients, "user:b")
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), "test")

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m, "test"))
	r.HandleFunc("/bookings/{bookingId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	for i := 0; i < 2; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bookings/abc", nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues("test", http.MethodGet, "/bookings/{bookingId}", "404")))
}

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) record(level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+" "+fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Info(format string, v ...interface{})  { l.record("INFO", format, v...) }
func (l *recordingLogger) Warn(format string, v ...interface{})  { l.record("WARN", format, v...) }
func (l *recordingLogger) Error(format string, v ...interface{}) { l.record("ERROR", format, v...) }

func TestLogging(t *testing.T) {
	log := &recordingLogger{}

	r := mux.NewRouter()
	r.Use(RequestID)
	r.Use(Logging(log))
	r.HandleFunc("/bookings/{bookingId}", okHandler).Methods(http.MethodGet)
	r.HandleFunc("/bookings", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}).Methods(http.MethodPost)
	r.HandleFunc("/boom", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/bookings/abc", nil)
	req.Header.Set(HeaderRequestID, "req-7")
	r.ServeHTTP(httptest.NewRecorder(), req)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/bookings", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Len(t, log.lines, 3)
	assert.Contains(t, log.lines[0], "INFO GET /bookings/{bookingId} - status=200")
	assert.Contains(t, log.lines[0], "request_id=req-7")
	assert.Contains(t, log.lines[1], "WARN POST /bookings - status=409")
	assert.Contains(t, log.lines[2], "ERROR GET /boom - status=500")
}
