package api

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/go-faster/errors"
)

// RequestError non-2xx answer from the API, with whatever structure the body
// carried. FieldErrors is only populated for structured validation failures.
type RequestError struct {
	StatusCode  int
	Body        string
	Message     string
	FieldErrors []FieldError
}

// FieldError one entry of a structured 400 validation body
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// errorBody wire shape of an API error response
type errorBody struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

func (r *RequestError) Error() string {
	return fmt.Sprintf("einvoice API returned status %d: %s", r.StatusCode, r.Message)
}

// Canned explanations for status codes whose body content never matters.
const (
	msgUnauthorized = "Authentication failed (401): the API key was rejected. " +
		"Check that EINVOICE_API_KEY is set to a valid, active key."
	msgPaymentRequired = "Insufficient credits (402): the account behind this API key " +
		"has no credits left for this operation. Top up credits or upgrade the plan."
	msgRateLimited = "Rate limit exceeded (429): too many requests in a short period. " +
		"Wait a moment before retrying."
	msgNetwork = "Network error: the e-invoicing API could not be reached. " +
		"The request timed out or the host could not be resolved - check your " +
		"internet connection and try again."
)

// Classify turns any failure from a transport call into a single displayable
// message. Total: every error value reaches exactly one branch and the result
// is never empty.
func Classify(err error) string {
	if err == nil {
		return ""
	}

	var re *RequestError
	if errors.As(err, &re) {
		switch {
		case re.StatusCode == 400 && len(re.FieldErrors) > 0:
			var b strings.Builder
			b.WriteString("Validation failed:")
			for _, fe := range re.FieldErrors {
				b.WriteString(fmt.Sprintf("\n  %s: %s", fe.Path, fe.Message))
			}
			return b.String()
		case re.StatusCode == 401:
			return msgUnauthorized
		case re.StatusCode == 402:
			return msgPaymentRequired
		case re.StatusCode == 429:
			return msgRateLimited
		default:
			msg := re.Message
			if msg == "" {
				msg = "unexpected error"
			}
			return fmt.Sprintf("API error (%d): %s", re.StatusCode, msg)
		}
	}

	if isNetworkFailure(err) {
		return msgNetwork
	}

	return "Error: " + err.Error()
}

// isNetworkFailure matches failures where no HTTP response was ever received:
// timeouts, refused connections, unresolvable hosts.
func isNetworkFailure(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Timeout() || urlErr.Temporary()
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}
