// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/lnk/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "missing_operand",
			code:    errors.ErrMissingOperand,
			message: "missing file operand",
			wantStr: "missing file operand",
		},
		{
			name:    "not_a_directory",
			code:    errors.ErrNotADirectory,
			message: "target 'x' is not a directory",
			wantStr: "target 'x' is not a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}
			if err.Details == nil {
				t.Error("New() details should be initialized")
			}
			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := errors.Wrap(cause, errors.ErrRemoveFailed, "cannot remove '/etc/hosts'")

	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should satisfy errors.Is against the cause")
	}
	want := "cannot remove '/etc/hosts': permission denied"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapNil(t *testing.T) {
	if err := errors.Wrap(nil, errors.ErrLinkFailed, "ignored"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
	if err := errors.Wrapf(nil, errors.ErrLinkFailed, "ignored %d", 1); err != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", err)
	}
}

func TestIs_MatchesByCode(t *testing.T) {
	a := errors.New(errors.ErrExtraOperand, "extra operand 'c'")
	b := errors.New(errors.ErrExtraOperand, "different message")

	if !stderrors.Is(a, b) {
		t.Error("errors with the same code should match via errors.Is")
	}

	c := errors.New(errors.ErrMissingOperand, "missing file operand")
	if stderrors.Is(a, c) {
		t.Error("errors with different codes should not match")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Wrapf(stderrors.New("boom"), errors.ErrBackupFailed, "cannot back up %q", "b")

	if !errors.IsErrorCode(err, errors.ErrBackupFailed) {
		t.Error("IsErrorCode() should match the wrapping code")
	}
	if errors.IsErrorCode(err, errors.ErrLinkFailed) {
		t.Error("IsErrorCode() should not match a different code")
	}
	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrLinkFailed) {
		t.Error("IsErrorCode() should be false for plain errors")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrLinkFailed, "x")); got != errors.ErrLinkFailed {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrLinkFailed)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		code errors.ErrorCode
		want errors.Category
	}{
		{errors.ErrMissingOperand, errors.CategoryUsage},
		{errors.ErrMissingDestination, errors.CategoryUsage},
		{errors.ErrExtraOperand, errors.CategoryUsage},
		{errors.ErrInvalidBackupControl, errors.CategoryUsage},
		{errors.ErrConflictingFlags, errors.CategoryUsage},
		{errors.ErrNotADirectory, errors.CategoryResolution},
		{errors.ErrRemoveFailed, errors.CategoryTransaction},
		{errors.ErrBackupFailed, errors.CategoryTransaction},
		{errors.ErrLinkFailed, errors.CategoryTransaction},
		{errors.ErrUnknown, errors.CategoryOther},
		{errors.ErrConfigParse, errors.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := errors.CategoryOf(tt.code); got != tt.want {
				t.Errorf("CategoryOf(%s) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrLinkFailed, "cannot link").
		WithDetail("source", "a").
		WithDetail("destination", "b")

	details := errors.GetErrorDetails(err)
	if details["source"] != "a" || details["destination"] != "b" {
		t.Errorf("details = %v, want source/destination set", details)
	}
}
