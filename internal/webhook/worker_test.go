package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestWorker - воркер без Redis, паузы между попытками только записываются
func newTestWorker(t *testing.T, url, secret string, maxRetries int) (*Worker, *[]time.Duration) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	var delays []time.Duration
	w := &Worker{
		logger:     logger,
		httpClient: &http.Client{Timeout: time.Second},
		url:        url,
		secret:     secret,
		maxRetries: maxRetries,
		baseDelay:  time.Second,
		sleep: func(_ context.Context, d time.Duration) error {
			delays = append(delays, d)
			return nil
		},
	}
	return w, &delays
}

func TestDeliver_SignsPayload(t *testing.T) {
	payload := []byte(`{"log_id":"log-1","message":"UH SOS"}`)
	var gotBody []byte
	var gotSignature, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotSignature = r.Header.Get(signatureHeader)
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()
	worker, delays := newTestWorker(t, server.URL, "top-secret", 3)

	err := worker.deliver(context.Background(), payload)

	require.NoError(t, err)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, "application/json", gotContentType)
	mac := hmac.New(sha256.New, []byte("top-secret"))
	mac.Write(payload)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), gotSignature)
	assert.Empty(t, *delays)
}

func TestDeliver_NoSecretNoSignature(t *testing.T) {
	var hasSignature atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hasSignature.Store(r.Header.Get(signatureHeader) != "")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()
	worker, _ := newTestWorker(t, server.URL, "", 1)

	require.NoError(t, worker.deliver(context.Background(), []byte(`{}`)))
	assert.False(t, hasSignature.Load())
}

func TestDeliver_RetriesWithExponentialBackoff(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()
	worker, delays := newTestWorker(t, server.URL, "", 3)

	err := worker.deliver(context.Background(), []byte(`{}`))

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *delays)
}

func TestDeliver_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()
	worker, _ := newTestWorker(t, server.URL, "", 2)

	err := worker.deliver(context.Background(), []byte(`{}`))

	require.Error(t, err)
	assert.ErrorContains(t, err, "status code 500")
	assert.Equal(t, int32(2), calls.Load())
}

func TestDeliver_StopsWhenContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()
	worker, _ := newTestWorker(t, server.URL, "", 5)
	worker.sleep = sleepCtx
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := worker.deliver(ctx, []byte(`{}`))

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProcess_SkipsWithoutURL(t *testing.T) {
	worker, delays := newTestWorker(t, "", "", 3)

	worker.process(context.Background(), []byte(`{"log_id":"log-1"}`))

	assert.Empty(t, *delays)
}

func TestProcess_MalformedPayloadIsDropped(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()
	worker, _ := newTestWorker(t, server.URL, "", 3)

	worker.process(context.Background(), []byte(`not json`))

	assert.Zero(t, calls.Load())
}
