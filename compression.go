package zipreader

import "github.com/asynczip/zipreader/internal/wire"

// CompressionMethod is the closed set of payload compression algorithms
// this reader recognizes.
type CompressionMethod = wire.CompressionMethod

const (
	Stored    = wire.Stored
	Deflate   = wire.Deflate
	Deflate64 = wire.Deflate64
	Bzip2     = wire.Bzip2
	Lzma      = wire.Lzma
	Zstd      = wire.Zstd
	Xz        = wire.Xz
)
