package levelup

import (
	"strings"

	"google.golang.org/grpc/codes"

	apperrors "github.com/louisbranch/levelup/internal/platform/errors"
)

// FormatError lists the localized message of every domain error in err,
// one per line. Errors without a domain code print as they are.
func FormatError(err error, locale string) string {
	if err == nil {
		return ""
	}
	if len(apperrors.Codes(err)) == 0 {
		return err.Error()
	}
	return strings.Join(apperrors.LocalizedMessages(err, locale), "\n")
}

// ExitCode is the process status for err: 0 on success, the gRPC code of the
// first domain error (3 for invalid selections, 10 for version conflicts),
// or 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	code := apperrors.GRPCStatus(err, "").Code()
	if code == codes.OK || code == codes.Unknown {
		return 1
	}
	return int(code)
}
