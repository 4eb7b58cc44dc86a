package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/metrics"
	"github.com/MKhiriev/go-user-auth/internal/service"
	"github.com/MKhiriev/go-user-auth/models"
	"github.com/prometheus/client_golang/prometheus"
)

type mockAuthService struct {
	signupFn func(ctx context.Context, creds models.Credentials) (models.UserAccount, error)
	signinFn func(ctx context.Context, creds models.Credentials) (models.UserAccount, error)

	lastCreds models.Credentials
	calls     int
}

func (m *mockAuthService) Signup(ctx context.Context, creds models.Credentials) (models.UserAccount, error) {
	m.calls++
	m.lastCreds = creds
	if m.signupFn == nil {
		return models.UserAccount{ID: "id-1", Email: creds.Email, PasswordHash: "$2a$10$hash"}, nil
	}
	return m.signupFn(ctx, creds)
}

func (m *mockAuthService) Signin(ctx context.Context, creds models.Credentials) (models.UserAccount, error) {
	m.calls++
	m.lastCreds = creds
	if m.signinFn == nil {
		return models.UserAccount{ID: "id-1", Email: creds.Email, PasswordHash: "$2a$10$hash"}, nil
	}
	return m.signinFn(ctx, creds)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

func newTestHandler(auth service.AuthService) *Handler {
	services := &service.Services{
		AuthService:    auth,
		AppInfoService: &mockAppInfoService{version: "v1.2.3"},
	}
	m := metrics.NewMetrics(prometheus.NewRegistry())

	return NewHandler(services, m, config.Server{}, logger.Nop())
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func newBufferLogger(buf *bytes.Buffer) *logger.Logger {
	return logger.NewConsoleLogger("test", buf)
}
