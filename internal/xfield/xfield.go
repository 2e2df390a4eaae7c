// Package xfield decodes the tagged-union extra-field records that can
// trail a central-directory or local-file header: the ZIP64 size/offset
// overrides, the Info-ZIP Unicode comment and path fields, and anything
// else as an opaque Unknown field.
package xfield

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/asynczip/zipreader/internal/zerr"
)

// Header ids, per the Info-ZIP and PKWARE APPNOTE extra-field registry.
const (
	IDZip64ExtendedInfo  uint16 = 0x0001
	IDUnicodeCommentInfo uint16 = 0x6375
	IDUnicodePathInfo    uint16 = 0x7075

	// Timestamp-carrying fields, decoded only for the supplemental
	// Entry.ModifiedTime() derivation; they surface as Unknown fields from
	// ParseAll and are re-inspected by MTime.
	idNTFSTimes        uint16 = 0x000a
	idInfoZipUnixOld    uint16 = 0x5855
	idInfoZipUnixNew    uint16 = 0x7855
	idExtendedTimestamp uint16 = 0x5455
)

var (
	ErrUnicodeCommentIncomplete = errors.New("zipreader: unicode comment extra field incomplete")
	ErrUnicodePathIncomplete    = errors.New("zipreader: unicode path extra field incomplete")
)

// Field is one decoded extra-field record. Exactly one of the typed
// payloads is non-nil, mirroring a closed tagged union.
type Field struct {
	HeaderID uint16

	Zip64   *Zip64ExtendedInfo
	Comment *UnicodeInfo
	Path    *UnicodeInfo
	Unknown []byte // raw payload, present only when none of the above match
}

// Zip64ExtendedInfo carries whichever 8-byte (or 4-byte, for disk number)
// fields were present, in the fixed order the format mandates: sizes are
// included only when their 32-bit counterpart in the owning header was the
// 0xFFFFFFFF sentinel.
type Zip64ExtendedInfo struct {
	UncompressedSize      *uint64
	CompressedSize        *uint64
	RelativeHeaderOffset  *uint64
	DiskStartNumber       *uint32
}

// UnicodeInfo is an Info-ZIP Unicode comment or path extra field. Version 1
// carries a CRC32 of the non-Unicode counterpart plus the UTF-8 bytes;
// any other version is preserved as opaque data.
type UnicodeInfo struct {
	Version uint8
	CRC32   uint32 // meaningful only when Version == 1
	Data    []byte // UTF-8 text when Version == 1, opaque otherwise
}

// ParseZip64 decodes a ZIP64 extended-info payload. uncompressed32,
// compressed32, localHeaderOffset32, and diskStart32 are the corresponding
// fields from the owning header; per the format, each replacement field is
// present only if its counterpart in the owning header is saturated
// (0xFFFFFFFF for the two 32-bit size/offset fields, 0xFFFF for the 16-bit
// disk-start field) — and only then, in this fixed order, does it consume
// bytes from data.
func ParseZip64(data []byte, uncompressed32, compressed32, localHeaderOffset32 uint32, diskStart32 uint16) Zip64ExtendedInfo {
	var out Zip64ExtendedInfo
	i := 0

	if uncompressed32 == 0xFFFFFFFF && len(data) >= i+8 {
		v := binary.LittleEndian.Uint64(data[i : i+8])
		out.UncompressedSize = &v
		i += 8
	}
	if compressed32 == 0xFFFFFFFF && len(data) >= i+8 {
		v := binary.LittleEndian.Uint64(data[i : i+8])
		out.CompressedSize = &v
		i += 8
	}
	if localHeaderOffset32 == 0xFFFFFFFF && len(data) >= i+8 {
		v := binary.LittleEndian.Uint64(data[i : i+8])
		out.RelativeHeaderOffset = &v
		i += 8
	}
	if diskStart32 == 0xFFFF && len(data) >= i+4 {
		v := binary.LittleEndian.Uint32(data[i : i+4])
		out.DiskStartNumber = &v
	}
	return out
}

// ParseUnicode decodes an Info-ZIP Unicode comment/path field body. incomplete
// is returned when the field is too short for its declared version.
func ParseUnicode(data []byte, incomplete error) (UnicodeInfo, error) {
	if len(data) == 0 {
		return UnicodeInfo{}, incomplete
	}
	version := data[0]
	if version != 1 {
		return UnicodeInfo{Version: version, Data: data[1:]}, nil
	}
	if len(data) < 5 {
		return UnicodeInfo{}, incomplete
	}
	crc := binary.LittleEndian.Uint32(data[1:5])
	return UnicodeInfo{Version: 1, CRC32: crc, Data: data[5:]}, nil
}

// ParseAll walks a header's extra-field block, dispatching each record to
// its typed decoder. uncompressed32, compressed32, localHeaderOffset32, and
// diskStart32 are forwarded to ParseZip64 for any ZIP64 field found.
func ParseAll(extra []byte, uncompressed32, compressed32, localHeaderOffset32 uint32, diskStart32 uint16) ([]Field, error) {
	var fields []Field
	for len(extra) >= 4 {
		id := binary.LittleEndian.Uint16(extra[0:2])
		size := binary.LittleEndian.Uint16(extra[2:4])
		if len(extra) < 4+int(size) {
			return fields, &zerr.InvalidArchiveError{Detail: fmt.Sprintf("truncated extra field %#04x", id)}
		}
		data := extra[4 : 4+int(size)]
		extra = extra[4+int(size):]

		f := Field{HeaderID: id}
		switch id {
		case IDZip64ExtendedInfo:
			z := ParseZip64(data, uncompressed32, compressed32, localHeaderOffset32, diskStart32)
			f.Zip64 = &z
		case IDUnicodeCommentInfo:
			u, err := ParseUnicode(data, ErrUnicodeCommentIncomplete)
			if err != nil {
				return fields, err
			}
			f.Comment = &u
		case IDUnicodePathInfo:
			u, err := ParseUnicode(data, ErrUnicodePathIncomplete)
			if err != nil {
				return fields, err
			}
			f.Path = &u
		default:
			f.Unknown = data
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// MTime derives a modification time from whichever timestamp extra field is
// present, preferring NTFS high-resolution ticks, then Unix 32-bit epoch
// seconds (old or new Info-ZIP layout), then the extended-timestamp field.
// It returns false if none of the fields are present or well-formed.
func MTime(fields []Field) (unixSec int64, nsec int64, ok bool) {
	raw := func(id uint16) []byte {
		for _, f := range fields {
			if f.HeaderID == id {
				return f.Unknown
			}
		}
		return nil
	}

	// The NTFS field's own body is a 4-byte reserved field followed by a run
	// of tag/size/data sub-blocks using the *same* tag space as the NTFS
	// field itself, not the top-level extra-field registry — tag 0x0001
	// here means "timestamps", unrelated to IDZip64ExtendedInfo's identical
	// numeric value one level up. Walking it with ParseAll would send the
	// timestamp bytes into the wrong branch, so it's decoded directly.
	if b := raw(idNTFSTimes); len(b) >= 4 {
		sub := b[4:]
		for len(sub) >= 4 {
			tag := binary.LittleEndian.Uint16(sub[0:2])
			size := binary.LittleEndian.Uint16(sub[2:4])
			if len(sub) < 4+int(size) {
				break
			}
			body := sub[4 : 4+int(size)]
			if tag == 1 && len(body) >= 8 {
				const ticksPerSecond = 1e7
				ts := int64(binary.LittleEndian.Uint64(body))
				secs := ts / ticksPerSecond
				nsecs := (1e9 / ticksPerSecond) * (ts % ticksPerSecond)
				const windowsToUnixEpochSeconds = 11644473600
				return secs - windowsToUnixEpochSeconds, nsecs, true
			}
			sub = sub[4+int(size):]
		}
	}

	for _, id := range []uint16{idInfoZipUnixOld, idInfoZipUnixNew} {
		if b := raw(id); len(b) >= 8 {
			return int64(binary.LittleEndian.Uint32(b[4:8])), 0, true
		}
	}

	if b := raw(idExtendedTimestamp); len(b) >= 5 && b[0]&1 != 0 {
		return int64(binary.LittleEndian.Uint32(b[1:5])), 0, true
	}

	return 0, 0, false
}
