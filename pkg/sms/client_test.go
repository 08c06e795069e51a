package sms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admission-api/pkg/config"
)

func TestClientSend(t *testing.T) {
	var got sendRequest
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewClient(config.SMSConfig{BaseURL: server.URL, APIKey: "key", SenderID: "SCHOOL", Timeout: time.Second})

	err := client.Send(context.Background(), "9841234567", "inquiry", map[string]string{"name": "Ram Sharma"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer key", auth)
	assert.Equal(t, "9841234567", got.To)
	assert.Equal(t, "inquiry", got.Event)
	assert.Equal(t, "SCHOOL", got.SenderID)
	assert.Equal(t, "Ram Sharma", got.Params["name"])
}

func TestClientSendProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(config.SMSConfig{BaseURL: server.URL, Timeout: time.Second})

	err := client.Send(context.Background(), "9841234567", "inquiry", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestClientSendRequiresConfig(t *testing.T) {
	client := NewClient(config.SMSConfig{})
	require.Error(t, client.Send(context.Background(), "9841234567", "inquiry", nil))

	client = NewClient(config.SMSConfig{BaseURL: "http://localhost"})
	require.Error(t, client.Send(context.Background(), "", "inquiry", nil))
}
