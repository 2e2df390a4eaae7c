package zipreader

import "github.com/asynczip/zipreader/internal/zerr"

// Sentinel errors with no parametrized detail.
var (
	ErrCompressionNotSupported           = zerr.ErrCompressionNotSupported
	ErrAttributeCompatibilityNotSupported = zerr.ErrAttributeCompatibilityNotSupported
)

// FeatureNotSupportedError names a recognized-but-unimplemented format
// feature (encryption, data descriptors).
type FeatureNotSupportedError = zerr.FeatureNotSupportedError

// InvalidArchiveError reports a structurally inconsistent archive.
type InvalidArchiveError = zerr.InvalidArchiveError

// SignatureNotFoundError reports a missing expected record signature.
type SignatureNotFoundError = zerr.SignatureNotFoundError
