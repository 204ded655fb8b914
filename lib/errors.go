package lib

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
)

// ErrCloudFormationAPI wraps any transport/service error surfaced by
// the underlying AWS SDK client. The core performs no local retries
// (the SDK client is assumed to); this error is never lossy — Unwrap
// always returns the original error.
type ErrCloudFormationAPI struct {
	Err error
}

func (e *ErrCloudFormationAPI) Error() string {
	return fmt.Sprintf("cloudformation api error: %v", e.Err)
}

func (e *ErrCloudFormationAPI) Unwrap() error { return e.Err }

// ErrCreateChangeSetFailed reports that a change set reached a
// terminal, non-AVAILABLE state not recognised as an empty diff.
type ErrCreateChangeSetFailed struct {
	Status       string
	StatusReason string
}

func (e *ErrCreateChangeSetFailed) Error() string {
	return fmt.Sprintf("create change set failed: status=%s reason=%s", e.Status, e.StatusReason)
}

// ErrBlocked reports that DescribeStacks revealed a status from which
// apply cannot proceed without remediation (typically deleting the
// stack first).
type ErrBlocked struct {
	Status Status
}

func (e *ErrBlocked) Error() string {
	return fmt.Sprintf("stack is blocked in status %s", e.Status)
}

// isStackNotFoundError reports whether err is the ValidationError
// CloudFormation returns from DescribeStacks when the named stack
// does not exist. CloudFormation has no dedicated error code for this
// case; the message is the only signal.
func isStackNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ValidationError" && containsDoesNotExist(apiErr.ErrorMessage())
	}
	return containsDoesNotExist(err.Error())
}

func containsDoesNotExist(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "does not exist")
}
