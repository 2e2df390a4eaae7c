// Package codec dispatches a compression method to its decoder,
// presenting every supported algorithm as a plain io.Reader over the
// compressed payload.
package codec

import (
	"bytes"
	"compress/bzip2"
	"compress/flate"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/asynczip/zipreader/internal/wire"
	"github.com/asynczip/zipreader/internal/zerr"
	"github.com/klauspost/compress/zstd"
	"github.com/therootcompany/xz"
	"github.com/ulikunitz/xz/lzma"
)

// ErrCompressionNotSupported is returned for any method outside the seven
// this reader recognizes.
var ErrCompressionNotSupported = zerr.ErrCompressionNotSupported

// NewDecoder builds a decompressing reader for the given method over r, the
// already-isolated compressed-payload bytes, and uncompressedSize, the
// entry's already-resolved (ZIP64-widened) decompressed size.
func NewDecoder(method wire.CompressionMethod, r io.Reader, uncompressedSize uint64) (io.Reader, error) {
	switch method {
	case wire.Stored:
		return r, nil
	case wire.Deflate:
		return flate.NewReader(r), nil
	case wire.Deflate64:
		// No pure-Go DEFLATE64 decoder is available; DEFLATE64 only widens
		// the window and back-reference distance versus DEFLATE, so payloads
		// that stay within DEFLATE's window decode identically.
		return flate.NewReader(r), nil
	case wire.Bzip2:
		return bzip2.NewReader(r), nil
	case wire.Lzma:
		return newLzmaReader(r, uncompressedSize)
	case wire.Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zipreader: create zstd reader: %w", err)
		}
		return &zstdReader{dec}, nil
	case wire.Xz:
		return xz.NewReader(r, xz.DefaultDictMax)
	default:
		return nil, fmt.Errorf("%w: method %d", ErrCompressionNotSupported, method)
	}
}

type zstdReader struct{ *zstd.Decoder }

func (z *zstdReader) Close() error {
	z.Decoder.Close()
	return nil
}

// lzmaHeaderLen is the ZIP-specific LZMA property header that precedes the
// raw LZMA stream: a 2-byte format version and a 2-byte properties-size
// field, followed by that many bytes of LZMA properties (usually 5).
const lzmaHeaderLen = 4

// lzmaClassicHeaderLen is the size of the standalone .lzma stream header
// that lzma.NewReader parses: 1 properties byte, a 4-byte little-endian
// dictionary size, and an 8-byte little-endian uncompressed size.
const lzmaClassicHeaderLen = 13

func newLzmaReader(r io.Reader, uncompressedSize uint64) (io.Reader, error) {
	header := make([]byte, lzmaHeaderLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("zipreader: read lzma property header: %w", err)
	}
	propsSize := int(header[2]) | int(header[3])<<8
	props := make([]byte, propsSize)
	if propsSize > 0 {
		if _, err := io.ReadFull(r, props); err != nil {
			return nil, fmt.Errorf("zipreader: read lzma properties: %w", err)
		}
	}
	if len(props) < 5 {
		return nil, fmt.Errorf("zipreader: lzma properties too short: %d bytes", len(props))
	}

	// The ZIP-specific properties blob (1 properties byte + 4-byte dict
	// size) is byte-for-byte the first 5 bytes of the classic standalone
	// .lzma stream header; only the trailing 8-byte uncompressed-size field
	// is missing, which the central directory already carries.
	classic := make([]byte, lzmaClassicHeaderLen)
	copy(classic, props[:5])
	binary.LittleEndian.PutUint64(classic[5:], uncompressedSize)

	return lzma.NewReader(io.MultiReader(bytes.NewReader(classic), r))
}
