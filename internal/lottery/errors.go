package lottery

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrAlreadyRun is returned when a runner that completed is asked to run again.
var ErrAlreadyRun = errors.New("lottery already run")

// InvariantViolation aborts a run. Nothing of the run may be applied.
type InvariantViolation struct {
	CycleId string
	Reason  string
	// Log holds the audit lines written before the abort, ending with the FATAL line.
	Log []string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("lottery %s aborted: %s", e.CycleId, e.Reason)
}

// GRPCStatus reports the violation as an internal error.
func (e *InvariantViolation) GRPCStatus() *status.Status {
	return status.New(codes.Internal, e.Error())
}

// IsInvariantViolation reports whether err is or wraps an InvariantViolation.
func IsInvariantViolation(err error) bool {
	var iv *InvariantViolation
	return errors.As(err, &iv)
}
