package service

import (
	"context"

	"github.com/MKhiriev/go-user-auth/internal/metrics"
	"github.com/MKhiriev/go-user-auth/models"
)

// AuthMetricsService counts operation outcomes by envelope status and
// failure reason.
type AuthMetricsService struct {
	inner   AuthService
	metrics *metrics.Metrics
}

func NewAuthMetricsService(m *metrics.Metrics) AuthServiceWrapper {
	return &AuthMetricsService{metrics: m}
}

func (s *AuthMetricsService) Signup(ctx context.Context, creds models.Credentials) (models.UserAccount, error) {
	user, err := s.inner.Signup(ctx, creds)
	s.record(metrics.OperationSignup, err)
	return user, err
}

func (s *AuthMetricsService) Signin(ctx context.Context, creds models.Credentials) (models.UserAccount, error) {
	user, err := s.inner.Signin(ctx, creds)
	s.record(metrics.OperationSignin, err)
	return user, err
}

func (s *AuthMetricsService) Wrap(wrapper AuthService) AuthService {
	s.inner = wrapper
	return s
}

func (s *AuthMetricsService) record(operation string, err error) {
	status := models.StatusSuccess
	if err != nil {
		status = models.StatusFailed
	}
	s.metrics.RecordAuthOperation(operation, string(status), FailureReason(err))
}
