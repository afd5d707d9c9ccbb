package email

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestResendSend(t *testing.T) {
	var got sendRequest
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewResend(srv.URL, "re_test_key", "Akli <no-reply@akli.app>", time.Second, testLogger())

	err := client.Send(context.Background(), Message{
		To:      "admin@akli.app",
		Subject: "New user signed up: maria@example.com",
		HTML:    "<h2>New user</h2>",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer re_test_key", auth)
	assert.Equal(t, "Akli <no-reply@akli.app>", got.From)
	assert.Equal(t, []string{"admin@akli.app"}, got.To)
	assert.Equal(t, "New user signed up: maria@example.com", got.Subject)
	assert.Equal(t, "<h2>New user</h2>", got.HTML)
}

func TestResendSendProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer srv.Close()

	client := NewResend(srv.URL, "re_test_key", "no-reply", time.Second, testLogger())

	err := client.Send(context.Background(), Message{To: "admin@akli.app", Subject: "s", HTML: "<p/>"})
	require.Error(t, err)

	var derr *DeliveryError
	require.True(t, errors.As(err, &derr), "non-2xx must surface as a DeliveryError")
	assert.Equal(t, http.StatusUnprocessableEntity, derr.StatusCode)
	assert.Contains(t, derr.Body, "invalid from address")
}

func TestResendSendNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewResend(srv.URL, "re_test_key", "no-reply", time.Second, testLogger())

	err := client.Send(context.Background(), Message{To: "admin@akli.app"})
	assert.Error(t, err)
}
