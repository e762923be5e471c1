package oracle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrSuggestionFailed marks a suggestion request that failed for a reason
// other than credentials, quota or rate limiting.
var ErrSuggestionFailed = errors.New("suggestion request failed")

// CredentialError indicates the provider rejected the supplied API key.
type CredentialError struct {
	Err      error
	Provider string
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("%s API key is invalid or missing: %v", e.Provider, e.Err)
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}

// QuotaError indicates the provider reported an exhausted usage quota.
type QuotaError struct {
	Err      error
	Provider string
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("%s quota exceeded: %v", e.Provider, e.Err)
}

func (e *QuotaError) Unwrap() error {
	return e.Err
}

// RateLimitError indicates a provider returned HTTP 429.
type RateLimitError struct {
	Err        error
	RetryAfter time.Duration
	Provider   string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited (retry after %s): %v", e.Provider, e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// NewRateLimitError creates a RateLimitError. If retryAfterSecs is 0, defaults to 60s.
func NewRateLimitError(provider string, err error, retryAfterSecs int) *RateLimitError {
	if retryAfterSecs <= 0 {
		retryAfterSecs = 60
	}
	return &RateLimitError{
		Err:        err,
		RetryAfter: time.Duration(retryAfterSecs) * time.Second,
		Provider:   provider,
	}
}

// ParseRetryAfterHeader parses a Retry-After header value into seconds.
// Returns 0 if the value is empty or not a valid integer.
func ParseRetryAfterHeader(val string) int {
	if val == "" {
		return 0
	}
	secs, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return secs
}

// ClassifyAPIError converts a non-200 provider response into the most
// specific error the caller can act on. Credential and quota failures get
// their own types so the surface can show a targeted remedy; everything
// else stays a generic provider error.
func ClassifyAPIError(provider string, status int, body []byte, retryAfter string) error {
	baseErr := fmt.Errorf("%s API error (status %d): %s", provider, status, string(body))
	lower := strings.ToLower(string(body))

	switch {
	case status == 401 || status == 403,
		strings.Contains(lower, "api key not valid"),
		strings.Contains(lower, "api_key_invalid"),
		strings.Contains(lower, "invalid api key"):
		return &CredentialError{Err: baseErr, Provider: provider}
	case strings.Contains(lower, "quota"),
		strings.Contains(lower, "resource_exhausted"):
		return &QuotaError{Err: baseErr, Provider: provider}
	case status == 429:
		return NewRateLimitError(provider, baseErr, ParseRetryAfterHeader(retryAfter))
	default:
		return baseErr
	}
}
