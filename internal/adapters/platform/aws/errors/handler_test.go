package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"

	"github.com/t-tkm/rcon-resolver/internal/errors"
)

type mockAPIError struct {
	errorCode string
	errorMsg  string
}

func (m *mockAPIError) Error() string                 { return m.errorMsg }
func (m *mockAPIError) ErrorCode() string             { return m.errorCode }
func (m *mockAPIError) ErrorMessage() string          { return m.errorMsg }
func (m *mockAPIError) ErrorFault() smithy.ErrorFault { return smithy.FaultUnknown }

func TestHandleAWSError(t *testing.T) {
	canceledCtx, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name         string
		err          error
		ctx          context.Context
		expectedCode errors.Code
	}{
		{
			name:         "nil error",
			err:          nil,
			ctx:          context.Background(),
			expectedCode: errors.CodeInternal,
		},
		{
			name:         "context canceled",
			err:          context.Canceled,
			ctx:          canceledCtx,
			expectedCode: errors.CodePlatformAPIError,
		},
		{
			name:         "auth failure by message",
			err:          fmt.Errorf("operation error ECS: ListClusters, AccessDenied: not allowed"),
			ctx:          context.Background(),
			expectedCode: errors.CodePlatformAuthError,
		},
		{
			name:         "unauthorized operation",
			err:          fmt.Errorf("UnauthorizedOperation: you are not authorized"),
			ctx:          context.Background(),
			expectedCode: errors.CodePlatformAuthError,
		},
		{
			name:         "cluster not found by code",
			err:          &mockAPIError{errorCode: "ClusterNotFoundException", errorMsg: "cluster missing"},
			ctx:          context.Background(),
			expectedCode: errors.CodeResourceNotFound,
		},
		{
			name:         "instance not found by code",
			err:          &mockAPIError{errorCode: "InvalidInstanceID.NotFound", errorMsg: "no such instance"},
			ctx:          context.Background(),
			expectedCode: errors.CodeResourceNotFound,
		},
		{
			name:         "load balancer not found by code",
			err:          &mockAPIError{errorCode: "LoadBalancerNotFound", errorMsg: "no such lb"},
			ctx:          context.Background(),
			expectedCode: errors.CodeResourceNotFound,
		},
		{
			name:         "not found by message",
			err:          fmt.Errorf("requested resource not found"),
			ctx:          context.Background(),
			expectedCode: errors.CodeResourceNotFound,
		},
		{
			name:         "generic API error",
			err:          &mockAPIError{errorCode: "ThrottlingException", errorMsg: "rate exceeded"},
			ctx:          context.Background(),
			expectedCode: errors.CodePlatformAPIError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := HandleAWSError("ECS", "ListClusters", tc.err, tc.ctx)
			assert.Equal(t, tc.expectedCode, errors.GetCode(got))
		})
	}
}

func TestDefaultErrorHandlerDelegates(t *testing.T) {
	h := &DefaultErrorHandler{}
	err := h.Handle("EC2", "DescribeInstances", &mockAPIError{errorCode: "InvalidInstanceID.Malformed", errorMsg: "bad id"}, context.Background())
	assert.Equal(t, errors.CodeResourceNotFound, errors.GetCode(err))
}
