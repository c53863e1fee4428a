package twilio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_RequiresCredentials(t *testing.T) {
	_, err := New("", "token")
	require.Error(t, err)
	_, err = New("AC123", "")
	require.Error(t, err)
}

func TestSendSMS_RequestShape(t *testing.T) {
	var path, contentType, user, pass string
	var form map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		contentType = r.Header.Get("Content-Type")
		var ok bool
		user, pass, ok = r.BasicAuth()
		require.True(t, ok)
		require.NoError(t, r.ParseForm())
		form = map[string]string{
			"To":   r.PostForm.Get("To"),
			"From": r.PostForm.Get("From"),
			"Body": r.PostForm.Get("Body"),
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"SM123"}`))
	}))
	defer server.Close()

	client, err := New("AC123", "secret-token", WithBaseURL(server.URL))
	require.NoError(t, err)

	err = client.SendSMS(context.Background(), "+919876543210", "+15550001111", "New Order!")
	require.NoError(t, err)

	require.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", path)
	require.Equal(t, "application/x-www-form-urlencoded", contentType)
	require.Equal(t, "AC123", user)
	require.Equal(t, "secret-token", pass)
	require.Equal(t, "+919876543210", form["To"])
	require.Equal(t, "+15550001111", form["From"])
	require.Equal(t, "New Order!", form["Body"])
}

func TestSendSMS_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":21211,"message":"The 'To' number is not a valid phone number."}`))
	}))
	defer server.Close()

	client, err := New("AC123", "secret-token", WithBaseURL(server.URL))
	require.NoError(t, err)

	err = client.SendSMS(context.Background(), "+1", "+15550001111", "body")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a valid phone number")
}

func TestSendSMS_RequiresDestination(t *testing.T) {
	client, err := New("AC123", "secret-token")
	require.NoError(t, err)
	require.Error(t, client.SendSMS(context.Background(), " ", "+15550001111", "body"))
}
