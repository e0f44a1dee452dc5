package service_test

import (
	"errors"
	"fmt"
)

// assertIsError is a convey assertion that checks the actual error wraps the
// expected sentinel.
func assertIsError(actual interface{}, expected ...interface{}) string {
	err, ok := actual.(error)
	if !ok {
		return fmt.Sprintf("expected an error, got %v", actual)
	}
	target, ok := expected[0].(error)
	if !ok {
		return fmt.Sprintf("expected sentinel must be an error, got %v", expected[0])
	}
	if !errors.Is(err, target) {
		return fmt.Sprintf("expected error chain to contain %q, got %q", target, err)
	}
	return ""
}
