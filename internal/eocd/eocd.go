// Package eocd locates and parses the end-of-central-directory record (and,
// when present, its ZIP64 extension), normalizing both into a single
// Record describing where the central directory lives.
package eocd

import (
	"context"
	"encoding/binary"
	"io"

	"github.com/asynczip/zipreader/internal/scan"
	"github.com/asynczip/zipreader/internal/wire"
	"github.com/asynczip/zipreader/internal/zerr"
)

// MaxTailWindow bounds how many trailing bytes are read while hunting for
// the EOCDR32 signature: its fixed 18-byte body, the largest possible
// comment (65,535 bytes), and the 4-byte signature itself.
const MaxTailWindow = wire.EOCD32Len + 0xFFFF + 4

// ErrSignatureNotFound is returned when no EOCDR32 signature occurs
// anywhere in the scanned tail window.
var ErrSignatureNotFound = &zerr.SignatureNotFoundError{Detail: "central directory end record signature not found"}

// Record is the normalized, ZIP64-widened view of the archive's
// end-of-central-directory data, regardless of which on-disk form it came
// from.
type Record struct {
	DiskNumber               uint32
	CentralDirectoryStartDisk uint32
	EntriesOnThisDisk         uint64
	TotalEntries              uint64
	CentralDirectorySize      uint64
	CentralDirectoryOffset    uint64
	Comment                   []byte
}

// Read finds the end-of-central-directory record within src, whose total
// length is size, following the ZIP64 locator when the 32-bit record's
// fields are saturated.
func Read(ctx context.Context, src io.ReaderAt, size int64) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	window := int64(MaxTailWindow)
	if window > size {
		window = size
	}
	position := size - window

	buf := make([]byte, window)
	n, err := src.ReadAt(buf, position)
	buf = buf[:n]
	if err != nil && err != io.EOF {
		return Record{}, err
	}

	sig32 := leBytes(wire.SigEOCD32)
	idx32 := scan.RSearch(buf, sig32)
	if idx32 < 0 {
		return Record{}, ErrSignatureNotFound
	}
	body := buf[idx32+4:]
	if len(body) < wire.EOCD32Len {
		return Record{}, &zerr.InvalidArchiveError{Detail: "truncated eocd32 body"}
	}
	rec32 := wire.ParseEOCD32(body[:wire.EOCD32Len])

	var comment []byte
	if rec32.CommentLength > 0 {
		rest := body[wire.EOCD32Len:]
		n := int(rec32.CommentLength)
		if n > len(rest) {
			n = len(rest)
		}
		comment = rest[:n]
	}

	needsZip64 := rec32.CDSize == 0xFFFFFFFF || rec32.TotalEntries == 0xFFFF || rec32.CDOffset == 0xFFFFFFFF
	if !needsZip64 {
		return Record{
			DiskNumber:                uint32(rec32.DiskNumber),
			CentralDirectoryStartDisk: uint32(rec32.CDStartDisk),
			EntriesOnThisDisk:         uint64(rec32.EntriesOnThisDisk),
			TotalEntries:              uint64(rec32.TotalEntries),
			CentralDirectorySize:      uint64(rec32.CDSize),
			CentralDirectoryOffset:    uint64(rec32.CDOffset),
			Comment:                   comment,
		}, nil
	}

	rec64, err := resolveZip64(ctx, src, buf, idx32, position)
	if err != nil {
		return Record{}, err
	}
	return Record{
		DiskNumber:                rec64.DiskNumber,
		CentralDirectoryStartDisk: rec64.CDStartDisk,
		EntriesOnThisDisk:         rec64.EntriesOnThisDisk,
		TotalEntries:              rec64.TotalEntries,
		CentralDirectorySize:      rec64.CDSize,
		CentralDirectoryOffset:    rec64.CDOffset,
		Comment:                   comment,
	}, nil
}

// resolveZip64 finds the ZIP64 EOCD record by, in order: searching the
// already-buffered tail for its signature directly; searching the buffered
// tail for a ZIP64 locator and following its pointer; and, failing both
// (the locator itself fell outside the buffered window), assuming the
// locator sits in the fixed 20 bytes immediately before the EOCDR32 match.
func resolveZip64(ctx context.Context, src io.ReaderAt, buf []byte, idx32 int, position int64) (wire.EOCD64, error) {
	sig64 := leBytes(wire.SigEOCD64)
	if idx64 := scan.RSearch(buf[:idx32], sig64); idx64 >= 0 {
		body := buf[idx64+4:]
		if len(body) < wire.EOCD64Len {
			return wire.EOCD64{}, &zerr.InvalidArchiveError{Detail: "truncated zip64 eocd body"}
		}
		return wire.ParseEOCD64(body[:wire.EOCD64Len]), nil
	}

	sigLocator := leBytes(wire.SigEOCD64Locator)
	if lidx := scan.RSearch(buf[:idx32], sigLocator); lidx >= 0 {
		body := buf[lidx+4:]
		if len(body) < wire.EOCD64LocatorLen {
			return wire.EOCD64{}, &zerr.InvalidArchiveError{Detail: "truncated zip64 locator body"}
		}
		locator := wire.ParseEOCD64Locator(body[:wire.EOCD64LocatorLen])
		return readZip64At(ctx, src, int64(locator.RelativeOffset))
	}

	// Locator not in the buffered window: assume it occupies the 20 bytes
	// immediately preceding the EOCDR32 signature, per the format's fixed
	// layout when records are contiguous.
	locatorOffset := position + int64(idx32) - 20
	if locatorOffset < 0 {
		return wire.EOCD64{}, ErrSignatureNotFound
	}
	locBuf := make([]byte, 4+wire.EOCD64LocatorLen)
	if _, err := src.ReadAt(locBuf, locatorOffset); err != nil {
		return wire.EOCD64{}, err
	}
	if binary.LittleEndian.Uint32(locBuf[:4]) != wire.SigEOCD64Locator {
		return wire.EOCD64{}, ErrSignatureNotFound
	}
	locator := wire.ParseEOCD64Locator(locBuf[4:])
	return readZip64At(ctx, src, int64(locator.RelativeOffset))
}

func readZip64At(ctx context.Context, src io.ReaderAt, offset int64) (wire.EOCD64, error) {
	if err := ctx.Err(); err != nil {
		return wire.EOCD64{}, err
	}
	buf := make([]byte, 4+wire.EOCD64Len)
	if _, err := src.ReadAt(buf, offset); err != nil {
		return wire.EOCD64{}, err
	}
	if binary.LittleEndian.Uint32(buf[:4]) != wire.SigEOCD64 {
		return wire.EOCD64{}, ErrSignatureNotFound
	}
	return wire.ParseEOCD64(buf[4:]), nil
}

func leBytes(sig uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, sig)
	return b
}
