// Package localheader decodes a local file header at a known offset and
// reads out its compressed payload, using the owning central-directory
// entry as the authority for ZIP64-widened sizes and the real file name.
package localheader

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/asynczip/zipreader/internal/cdir"
	"github.com/asynczip/zipreader/internal/wire"
	"github.com/asynczip/zipreader/internal/zerr"
	"github.com/asynczip/zipreader/zippath"
)

// LocalFile is a retrieved archive entry: its metadata plus the raw
// compressed payload bytes, independent of the archive's source once
// returned.
type LocalFile struct {
	Method           wire.CompressionMethod
	Flags            wire.GeneralPurposeFlag
	ModTime          wire.DOSTime
	CRC32            uint32
	CompressedSize   uint64
	UncompressedSize uint64
	Path             zippath.Path
	Compressed       []byte
}

// Read seeks to offset, verifies and decodes the local file header, and
// reads exactly cdEntry's compressed-size bytes of payload. The returned
// name and attributes come from cdEntry, not the local header's own
// (possibly truncated or stale) copy.
//
// It rejects, rather than silently truncating, the two payload shapes this
// reader cannot decode correctly: an encrypted entry (general-purpose flag
// bit 0) and a streamed entry whose sizes trail the payload in a data
// descriptor (flag bit 3) instead of living in the central directory.
func Read(src io.ReaderAt, offset int64, cdEntry *cdir.Entry) (*LocalFile, error) {
	if cdEntry.Flags.Encrypted {
		return nil, &zerr.FeatureNotSupportedError{Detail: "encryption"}
	}
	if cdEntry.Flags.DataDescriptorPresent {
		return nil, &zerr.FeatureNotSupportedError{Detail: "data descriptor"}
	}

	head := make([]byte, 4+wire.LocalFileHeaderFixedLen)
	if _, err := src.ReadAt(head, offset); err != nil {
		return nil, err
	}
	if binary.LittleEndian.Uint32(head[:4]) != wire.SigLocalFileHeader {
		return nil, &zerr.SignatureNotFoundError{Detail: fmt.Sprintf("local file header at offset %d", offset)}
	}
	fixed := wire.ParseLocalFileHeaderFixed(head[4:])

	skip := int64(fixed.NameLength) + int64(fixed.ExtraLength)
	payloadOffset := offset + int64(len(head)) + skip

	compressed := make([]byte, cdEntry.CompressedSize)
	if len(compressed) > 0 {
		n, err := src.ReadAt(compressed, payloadOffset)
		if err != nil && err != io.EOF {
			return nil, err
		}
		if n < len(compressed) {
			return nil, &zerr.InvalidArchiveError{Detail: "truncated entry payload"}
		}
	}

	return &LocalFile{
		Method:           wire.CompressionMethod(fixed.Method),
		Flags:            wire.DecodeFlags(fixed.Flags),
		ModTime:          wire.DecodeDOSTime(fixed.ModDate, fixed.ModTime),
		CRC32:            cdEntry.CRC32,
		CompressedSize:   cdEntry.CompressedSize,
		UncompressedSize: cdEntry.UncompressedSize,
		Path:             cdEntry.Path,
		Compressed:       compressed,
	}, nil
}
