package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"

	"github.com/t-tkm/rcon-resolver/internal/errors"
)

// HandleAWSError maps an AWS SDK error onto an application error code.
// service/operation name the call site for diagnostics.
func HandleAWSError(service, operation string, err error, ctx context.Context) error {
	if err == nil {
		return errors.New(errors.CodeInternal, fmt.Sprintf("unexpected nil error in AWS error handler for %s", service))
	}

	if ctx.Err() != nil || err == context.Canceled || err == context.DeadlineExceeded {
		return errors.Wrap(err, errors.CodePlatformAPIError,
			fmt.Sprintf("context canceled during AWS %s %s call", service, operation))
	}

	errMsg := err.Error()

	if strings.Contains(errMsg, "AuthFailure") ||
		strings.Contains(errMsg, "UnauthorizedOperation") ||
		strings.Contains(errMsg, "AccessDenied") {
		return errors.Wrap(err, errors.CodePlatformAuthError,
			fmt.Sprintf("AWS authentication error calling %s %s", service, operation))
	}

	if isNotFoundError(err, errMsg) {
		return errors.Wrap(err, errors.CodeResourceNotFound,
			fmt.Sprintf("%s %s target not found", service, operation))
	}

	return errors.Wrap(err, errors.CodePlatformAPIError,
		fmt.Sprintf("AWS %s %s call failed", service, operation))
}

func isNotFoundError(err error, errMsg string) bool {
	if strings.Contains(errMsg, "NotFound") ||
		strings.Contains(errMsg, "not found") ||
		strings.Contains(errMsg, "not exist") {
		return true
	}

	if mockErr, ok := err.(interface{ ErrorCode() string }); ok && mockErr != nil {
		return isNotFoundErrorCode(mockErr.ErrorCode())
	}

	var apiErr smithy.APIError
	if stderrs.As(err, &apiErr) && apiErr != nil {
		return isNotFoundErrorCode(apiErr.ErrorCode())
	}

	return false
}

func isNotFoundErrorCode(code string) bool {
	notFoundCodes := []string{
		// ECS
		"ClusterNotFoundException",
		"ServiceNotFoundException",
		"TaskSetNotFoundException",

		// EC2
		"InvalidInstanceID.NotFound",
		"InvalidInstanceID.Malformed",

		// ELBv2
		"LoadBalancerNotFound",

		// Generic
		"ResourceNotFoundException",
		"NotFoundException",
	}

	for _, nfCode := range notFoundCodes {
		if code == nfCode {
			return true
		}
	}

	return false
}

// DefaultErrorHandler implements the shared.ErrorHandler interface.
type DefaultErrorHandler struct{}

func (d *DefaultErrorHandler) Handle(service, operation string, err error, ctx context.Context) error {
	return HandleAWSError(service, operation, err, ctx)
}
