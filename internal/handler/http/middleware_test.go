package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/vero/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedWindowLimiter(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	l := newFixedWindowLimiter(2, time.Minute)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))

	// keys are independent
	assert.True(t, l.Allow("10.0.0.2"))

	now = now.Add(59 * time.Second)
	assert.False(t, l.Allow("10.0.0.1"))

	now = now.Add(time.Second)
	assert.True(t, l.Allow("10.0.0.1"))
}

func TestFixedWindowLimiter_SweepsExpiredBuckets(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	l := newFixedWindowLimiter(5, time.Minute)
	l.now = func() time.Time { return now }

	for _, ip := range []string{"a", "b", "c"} {
		l.Allow(ip)
	}
	assert.Len(t, l.buckets, 3)

	now = now.Add(2 * time.Minute)
	l.Allow("d")

	assert.Len(t, l.buckets, 1)
	assert.Contains(t, l.buckets, "d")
}

func TestValidTraceID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"abc-123", true},
		{"0190d7f2-4a1b-7c3e-9d2f-1a2b3c4d5e6f", true},
		{"", false},
		{"has space", false},
		{"line\nbreak", false},
		{"ünïcode", false},
		{strings.Repeat("a", maxTraceIDLength), true},
		{strings.Repeat("a", maxTraceIDLength+1), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, validTraceID(tt.id), "%q", tt.id)
	}
}

func TestWithTraceID_GeneratesWhenMissing(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = w.Header().Get(traceIDHeader)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "bad id\twith tab")
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	id := rr.Header().Get(traceIDHeader)
	assert.Len(t, id, 36)
	assert.Equal(t, id, seen)
}

func TestWithLogging_WritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/chats?limit=3", nil)
	req.Header.Set(traceIDHeader, "trace-log")
	rr := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rr, req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), buf.String())
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/api/chats?limit=3", line["uri"])
	assert.Equal(t, "192.0.2.1", line["ip"])
	assert.EqualValues(t, http.StatusTeapot, line["status"])
	assert.EqualValues(t, len("short and stout"), line["size"])
	assert.Equal(t, "trace-log", line["trace_id"])
}

func TestWithGZip_InflatesRequestBody(t *testing.T) {
	var compressed bytes.Buffer
	gz := gzip.NewWriter(&compressed)
	_, err := gz.Write([]byte(`{"text":"zipped"}`))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		got = string(body)
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, `{"text":"zipped"}`, got)
}

func TestWithGZip_RejectsCorruptBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestWithGZip_Response(t *testing.T) {
	tests := []struct {
		name         string
		handler      http.HandlerFunc
		wantStatus   int
		wantEncoding string
		wantBody     string
	}{
		{
			name: "implicit 200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("hello"))
			},
			wantStatus:   http.StatusOK,
			wantEncoding: "gzip",
			wantBody:     "hello",
		},
		{
			name: "explicit status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte("created"))
			},
			wantStatus:   http.StatusCreated,
			wantEncoding: "gzip",
			wantBody:     "created",
		},
		{
			name: "no content passes through",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Accept-Encoding", "gzip, deflate")
			rr := httptest.NewRecorder()
			withGZip(tt.handler).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantEncoding, rr.Header().Get("Content-Encoding"))
			assert.Contains(t, rr.Header().Values("Vary"), "Accept-Encoding")

			if tt.wantEncoding == "" {
				assert.Empty(t, rr.Body.Bytes())
				return
			}

			gz, err := gzip.NewReader(rr.Body)
			require.NoError(t, err)
			plain, err := io.ReadAll(gz)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, string(plain))
		})
	}
}

func TestWithGZip_PlainWhenNotAccepted(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain"))
	})

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rr.Body.String())
}
