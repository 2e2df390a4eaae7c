package wire

// CompressionMethod is the closed set of payload compression algorithms
// this reader recognizes, keyed by the method field in the local and
// central-directory headers.
type CompressionMethod uint16

const (
	Stored   CompressionMethod = 0
	Deflate  CompressionMethod = 8
	Deflate64 CompressionMethod = 9
	Bzip2    CompressionMethod = 12
	Lzma     CompressionMethod = 14
	Zstd     CompressionMethod = 93
	Xz       CompressionMethod = 95
)

// Known reports whether m is one of the seven recognized methods.
func (m CompressionMethod) Known() bool {
	switch m {
	case Stored, Deflate, Deflate64, Bzip2, Lzma, Zstd, Xz:
		return true
	default:
		return false
	}
}

func (m CompressionMethod) String() string {
	switch m {
	case Stored:
		return "stored"
	case Deflate:
		return "deflate"
	case Deflate64:
		return "deflate64"
	case Bzip2:
		return "bzip2"
	case Lzma:
		return "lzma"
	case Zstd:
		return "zstd"
	case Xz:
		return "xz"
	default:
		return "unknown"
	}
}
