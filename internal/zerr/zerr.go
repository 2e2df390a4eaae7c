// Package zerr is the shared error taxonomy for the reader: the sentinel
// values and parametrized error types every other internal package
// constructs directly, and that the root package re-exports by alias so
// callers can errors.Is/errors.As against a stable public type regardless of
// which internal package actually detected the condition.
package zerr

import (
	"errors"
	"fmt"
)

// Sentinel errors with no parametrized detail.
var (
	ErrCompressionNotSupported            = errors.New("zipreader: compression method not supported")
	ErrAttributeCompatibilityNotSupported  = errors.New("zipreader: host attribute compatibility not supported")
)

// FeatureNotSupportedError names a recognized-but-unimplemented format
// feature (encryption, data descriptors).
type FeatureNotSupportedError struct{ Detail string }

func (e *FeatureNotSupportedError) Error() string {
	return fmt.Sprintf("zipreader: feature not supported: %s", e.Detail)
}

// InvalidArchiveError reports a structurally inconsistent archive.
type InvalidArchiveError struct{ Detail string }

func (e *InvalidArchiveError) Error() string {
	return fmt.Sprintf("zipreader: invalid archive: %s", e.Detail)
}

// SignatureNotFoundError reports a missing expected record signature.
type SignatureNotFoundError struct{ Detail string }

func (e *SignatureNotFoundError) Error() string {
	return fmt.Sprintf("zipreader: signature not found: %s", e.Detail)
}
