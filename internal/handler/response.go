package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"harvester/internal/domain"
	"harvester/internal/oracle"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain and oracle errors to HTTP status codes
// and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	var (
		credErr  *oracle.CredentialError
		quotaErr *oracle.QuotaError
		rateErr  *oracle.RateLimitError
		noMatch  *domain.NoElementsMatchedError
	)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrNoSelection):
		return http.StatusBadRequest, "NO_SELECTION", "select at least one data point to extract"
	case errors.As(err, &noMatch):
		return http.StatusUnprocessableEntity, "NO_ELEMENTS_MATCHED", noMatch.Error()
	case errors.Is(err, domain.ErrDocumentParse):
		return http.StatusBadRequest, "DOCUMENT_PARSE_FAILED", "could not parse the page HTML"
	case errors.Is(err, domain.ErrFetchFailed):
		return http.StatusBadGateway, "FETCH_FAILED", "could not fetch the page"
	case errors.As(err, &credErr):
		return http.StatusUnauthorized, "ORACLE_INVALID_CREDENTIAL", "AI provider rejected the API key; check your credentials"
	case errors.As(err, &quotaErr):
		return http.StatusTooManyRequests, "ORACLE_QUOTA_EXCEEDED", "AI provider quota exhausted; try again later or supply your own API key"
	case errors.As(err, &rateErr):
		return http.StatusTooManyRequests, "ORACLE_RATE_LIMITED", "AI provider is rate limiting requests; try again shortly"
	case errors.Is(err, oracle.ErrSuggestionFailed):
		return http.StatusBadGateway, "ORACLE_FAILED", "AI suggestion request failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] %s: %v", requestID, code, err)
	}
	RespondError(c, status, code, msg)
}
