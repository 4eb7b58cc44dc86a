package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) ServerAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: srv.URL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	return a
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"localhost:3000", "http://localhost:3000", false},
		{"https://auth.example.com/", "https://auth.example.com", false},
		{"  http://127.0.0.1:3000  ", "http://127.0.0.1:3000", false},
		{"", "", true},
		{"http://", "", true},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.Adapter{}, logger.Nop())

	assert.ErrorContains(t, err, "invalid adapter http address")
}

func TestSignup_PostsCredentials(t *testing.T) {
	var got models.Credentials
	var path string
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"SUCCESS","message":"User created successfully","data":{"id":"1","email":"a@b.com"}}`))
	})

	resp, err := a.Signup(context.Background(), models.Credentials{Email: "a@b.com", Password: "Valid1Pass!"})

	require.NoError(t, err)
	assert.Equal(t, "/user/signup", path)
	assert.Equal(t, models.Credentials{Email: "a@b.com", Password: "Valid1Pass!"}, got)
	assert.True(t, resp.IsSuccess())
	require.NotNil(t, resp.Data)
	assert.Equal(t, "a@b.com", resp.Data.Email)
}

func TestSignin_FailedEnvelopeIsNotAnError(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/signin", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"FAILED","error":"Invalid password"}`))
	})

	resp, err := a.Signin(context.Background(), models.Credentials{Email: "a@b.com", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, resp.Status)
	assert.Equal(t, "Invalid password", resp.Error)
}

func TestSignup_BadRequestEnvelope(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"FAILED","error":"Invalid JSON was passed"}`))
	})

	resp, err := a.Signup(context.Background(), models.Credentials{})

	require.NoError(t, err)
	assert.Equal(t, "Invalid JSON was passed", resp.Error)
}

func TestPost_MapsHTTPErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
	}

	for _, tt := range tests {
		a := newTestAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "plain text", tt.status)
		})

		_, err := a.Signin(context.Background(), models.Credentials{})
		assert.ErrorIs(t, err, tt.want, tt.status)
	}
}

func TestPost_UnexpectedBody(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Hello World!"))
	})

	_, err := a.Signup(context.Background(), models.Credentials{})

	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestPost_ContextCancelled(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"SUCCESS"}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Signup(ctx, models.Credentials{})

	assert.ErrorIs(t, err, context.Canceled)
}
