package utils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Configured(t *testing.T) {
	client := NewHTTPClient("http://localhost:3000", 3*time.Second)

	require.NotNil(t, client.Client)
	assert.Equal(t, "http://localhost:3000", client.BaseURL)
	assert.Equal(t, "application/json", client.Header.Get("Content-Type"))
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_PostsJSON(t *testing.T) {
	var gotBody, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	resp, err := client.R().SetBody(map[string]string{"email": "a@b.com"}).Post("/user/signup")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"email":"a@b.com"}`, gotBody)
	assert.Contains(t, gotContentType, "application/json")
}

func TestNewID_UniqueAndParsable(t *testing.T) {
	a, b := NewID(), NewID()

	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}
