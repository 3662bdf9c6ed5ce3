package errors

type Code string

const (
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL_ERROR"
	CodeConfigValidation Code = "CONFIG_VALIDATION_ERROR"
	CodeConfigReadError  Code = "CONFIG_READ_ERROR"
	CodeConfigParseError Code = "CONFIG_PARSE_ERROR"

	CodePlatformAPIError  Code = "PLATFORM_API_ERROR"
	CodePlatformAuthError Code = "PLATFORM_AUTH_ERROR"
	CodeResourceNotFound  Code = "RESOURCE_NOT_FOUND"

	CodeResolutionFailed Code = "RESOLUTION_FAILED"
	CodeListingFailure   Code = "LISTING_FAILURE"
	CodeTagFetchError    Code = "TAG_FETCH_ERROR"
	CodeDispatchError    Code = "DISPATCH_ERROR"
)

func (c Code) String() string {
	return string(c)
}
