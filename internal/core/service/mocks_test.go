package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/t-tkm/rcon-resolver/internal/core/domain"
	"github.com/t-tkm/rcon-resolver/internal/core/ports"
)

// MockLogger is a mock implementation of ports.Logger
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debugf(ctx context.Context, format string, args ...any) {
	m.Called(ctx, format, args)
}

func (m *MockLogger) Infof(ctx context.Context, format string, args ...any) {
	m.Called(ctx, format, args)
}

func (m *MockLogger) Warnf(ctx context.Context, format string, args ...any) {
	m.Called(ctx, format, args)
}

func (m *MockLogger) Errorf(ctx context.Context, err error, format string, args ...any) {
	m.Called(ctx, err, format, args)
}

func (m *MockLogger) WithFields(fields map[string]any) ports.Logger {
	args := m.Called(fields)
	return args.Get(0).(ports.Logger)
}

// NewTestLogger creates a MockLogger that accepts any call.
func NewTestLogger() *MockLogger {
	mockLogger := new(MockLogger)
	mockLogger.On("WithFields", mock.Anything).Return(mockLogger)
	mockLogger.On("Debugf", mock.Anything, mock.Anything, mock.Anything).Return()
	mockLogger.On("Infof", mock.Anything, mock.Anything, mock.Anything).Return()
	mockLogger.On("Warnf", mock.Anything, mock.Anything, mock.Anything).Return()
	mockLogger.On("Errorf", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
	return mockLogger
}

// MockCloudAPI is a mock implementation of ports.CloudAPI
type MockCloudAPI struct {
	mock.Mock
}

func (m *MockCloudAPI) ListCandidates(ctx context.Context, kind domain.ResourceKind, scope domain.Scope) ([]domain.Candidate, error) {
	args := m.Called(ctx, kind, scope)
	var out []domain.Candidate
	if v := args.Get(0); v != nil {
		out = v.([]domain.Candidate)
	}
	return out, args.Error(1)
}

func (m *MockCloudAPI) ResourceTags(ctx context.Context, kind domain.ResourceKind, candidate domain.Candidate) (map[string]string, error) {
	args := m.Called(ctx, kind, candidate)
	var out map[string]string
	if v := args.Get(0); v != nil {
		out = v.(map[string]string)
	}
	return out, args.Error(1)
}

func (m *MockCloudAPI) TaskContainers(ctx context.Context, cluster string, taskARN string) ([]string, error) {
	args := m.Called(ctx, cluster, taskARN)
	var out []string
	if v := args.Get(0); v != nil {
		out = v.([]string)
	}
	return out, args.Error(1)
}
