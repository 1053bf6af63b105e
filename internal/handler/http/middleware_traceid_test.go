package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/internal/service"
	"github.com/MKhiriev/go-logistics/internal/utils"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBufferedHandler returns a Handler whose logger writes JSON into buf.
func newBufferedHandler(buf *bytes.Buffer) *Handler {
	return NewHandler(&service.Services{}, &logger.Logger{Logger: zerolog.New(buf)})
}

func TestWithTraceID_KeepsClientID(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
	assert.Contains(t, buf.String(), `"trace_id":"trace-123"`)
}

func TestWithTraceID_GeneratesID(t *testing.T) {
	h := newBufferedHandler(&bytes.Buffer{})
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	tests := map[string]string{
		"missing":   "",
		"oversized": strings.Repeat("x", maxTraceIDLength+1),
	}

	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set(traceIDHeader, header)
			}
			rec := httptest.NewRecorder()

			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			assert.True(t, utils.IsValidUUID(got), got)
		})
	}
}

func TestWithTraceID_DistinctPerRequest(t *testing.T) {
	h := newBufferedHandler(&bytes.Buffer{})
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	ids := make(map[string]struct{})
	for range 5 {
		rec := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		ids[rec.Header().Get(traceIDHeader)] = struct{}{}
	}

	assert.Len(t, ids, 5)
}
