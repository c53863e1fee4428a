package resend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
	_, err = New("   ")
	require.Error(t, err)
}

func TestSendEmail_RequestShape(t *testing.T) {
	var got Email
	var auth, contentType, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"email-1"}`))
	}))
	defer server.Close()

	client, err := New("re_test_key", WithBaseURL(server.URL))
	require.NoError(t, err)

	err = client.SendEmail(context.Background(), "Orders <orders@acme.test>", "admin@acme.test", "New Order #abc", "<p>hi</p>")
	require.NoError(t, err)

	require.Equal(t, "/emails", path)
	require.Equal(t, "Bearer re_test_key", auth)
	require.Equal(t, "application/json", contentType)
	require.Equal(t, "Orders <orders@acme.test>", got.From)
	require.Equal(t, []string{"admin@acme.test"}, got.To)
	require.Equal(t, "New Order #abc", got.Subject)
	require.Equal(t, "<p>hi</p>", got.HTML)
}

func TestSendEmail_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"name":"validation_error","message":"Invalid from address"}`))
	}))
	defer server.Close()

	client, err := New("re_test_key", WithBaseURL(server.URL))
	require.NoError(t, err)

	err = client.SendEmail(context.Background(), "bad", "admin@acme.test", "subject", "<p>hi</p>")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Invalid from address")
}

func TestSendEmail_UndecodableErrorFallsBackToStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("oops"))
	}))
	defer server.Close()

	client, err := New("re_test_key", WithBaseURL(server.URL))
	require.NoError(t, err)

	err = client.SendEmail(context.Background(), "a@b.test", "admin@acme.test", "subject", "<p>hi</p>")
	require.Error(t, err)
	require.Contains(t, err.Error(), "500")
}

func TestSend_RequiresRecipient(t *testing.T) {
	client, err := New("re_test_key")
	require.NoError(t, err)
	require.Error(t, client.Send(context.Background(), Email{From: "a@b.test"}))
}
