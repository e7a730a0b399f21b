package errors

import (
	stderrors "errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"

	"github.com/louisbranch/levelup/internal/platform/errors/i18n"
)

// Domain is the error domain for level-up errors.
const Domain = "github.com/louisbranch/levelup"

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Internal message (for logs/telemetry)
	Metadata map[string]string // Additional context for templating
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithMetadata creates a domain error with metadata for i18n templating.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// GetCode returns the code of the first domain error in the chain, or
// CodeUnknown when err carries none.
func GetCode(err error) Code {
	var domainErr *Error
	if stderrors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeUnknown
}

// Codes collects the codes of every domain error reachable from err,
// including the members of joined errors, in traversal order.
func Codes(err error) []Code {
	var out []Code
	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		if domainErr, ok := e.(*Error); ok {
			out = append(out, domainErr.Code)
		}
		switch wrapped := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range wrapped.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(wrapped.Unwrap())
		}
	}
	walk(err)
	return out
}

// LocalizedMessage renders the user-facing message for err in locale.
// Errors without a domain code render the unknown-error message.
func LocalizedMessage(err error, locale string) string {
	var domainErr *Error
	if !stderrors.As(err, &domainErr) {
		return i18n.GetCatalog(locale).Format(string(CodeUnknown), nil)
	}
	return i18n.GetCatalog(locale).Format(string(domainErr.Code), domainErr.Metadata)
}

// LocalizedMessages renders every domain error reachable from err, including
// the members of joined errors. A plain error renders as the unknown-error
// message.
func LocalizedMessages(err error, locale string) []string {
	if err == nil {
		return nil
	}
	catalog := i18n.GetCatalog(locale)
	var out []string
	var walk func(error)
	walk = func(e error) {
		if domainErr, ok := e.(*Error); ok {
			out = append(out, catalog.Format(string(domainErr.Code), domainErr.Metadata))
			return
		}
		switch wrapped := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range wrapped.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			if inner := wrapped.Unwrap(); inner != nil {
				walk(inner)
			}
		}
	}
	walk(err)
	if len(out) == 0 {
		out = append(out, catalog.Format(string(CodeUnknown), nil))
	}
	return out
}

// ToGRPCStatus converts the error to a gRPC status with errdetails.
// The status message contains the internal message for logging.
// The LocalizedMessage contains the user-facing translated message.
func (e *Error) ToGRPCStatus(locale string) error {
	grpcCode := e.Code.GRPCCode()
	st := status.New(grpcCode, e.Message)
	catalog := i18n.GetCatalog(locale)

	st, err := st.WithDetails(
		&errdetails.ErrorInfo{
			Reason:   string(e.Code),
			Domain:   Domain,
			Metadata: e.Metadata,
		},
		&errdetails.LocalizedMessage{
			Locale:  catalog.Locale(),
			Message: catalog.Format(string(e.Code), e.Metadata),
		},
	)
	if err != nil {
		// If we can't attach details, return the basic status
		return status.New(grpcCode, e.Message).Err()
	}
	return st.Err()
}

// GRPCStatus returns the status of the first domain error in err. Errors
// without a domain code become codes.Unknown statuses.
func GRPCStatus(err error, locale string) *status.Status {
	if err == nil {
		return nil
	}
	var domainErr *Error
	if stderrors.As(err, &domainErr) {
		return status.Convert(domainErr.ToGRPCStatus(locale))
	}
	return status.Convert(err)
}
