// Package cdir walks a buffered central directory, parsing each
// file-header record into an Entry and assembling the insertion-ordered,
// name-indexed EntryMap that the archive facade looks entries up in.
package cdir

import (
	"io"
	"strings"

	"github.com/asynczip/zipreader/internal/attrs"
	"github.com/asynczip/zipreader/internal/eocd"
	"github.com/asynczip/zipreader/internal/scan"
	"github.com/asynczip/zipreader/internal/wire"
	"github.com/asynczip/zipreader/internal/xfield"
	"github.com/asynczip/zipreader/internal/zerr"
	"github.com/asynczip/zipreader/zippath"
	"github.com/cespare/xxhash/v2"
)

// Entry is one parsed central-directory record.
type Entry struct {
	Host               zippath.HostCompatibility
	VersionNeeded      uint16
	Flags              wire.GeneralPurposeFlag
	Method             wire.CompressionMethod
	ModTime            wire.DOSTime
	CRC32              uint32
	CompressedSize     uint64
	UncompressedSize   uint64
	DiskNumberStart    uint32
	InternalAttrs      uint16
	ExternalAttrs      uint32
	LocalHeaderOffset  uint64
	Comment            string
	ExtraFields        []xfield.Field
	Path               zippath.Path
}

// EntryMap is the insertion-ordered, name-indexed collection of parsed
// entries. A later record for an already-seen path replaces the name
// index's target but the earlier record is left in place in Entries, so
// ordering is preserved while lookups see only the latest value. Lookup is
// bucketed by an xxhash of the path string, with a string comparison
// resolving any hash collision within a bucket.
type EntryMap struct {
	Entries []Entry
	index   map[uint64][]int
}

// Len returns the number of live (non-shadowed) names.
func (m *EntryMap) Len() int {
	n := 0
	for _, bucket := range m.index {
		n += len(bucket)
	}
	return n
}

// ByName returns the latest entry recorded for name, if any.
func (m *EntryMap) ByName(name string) (Entry, bool) {
	for _, i := range m.index[xxhash.Sum64String(name)] {
		if m.Entries[i].Path.String() == name {
			return m.Entries[i], true
		}
	}
	return Entry{}, false
}

// ByIndex returns the entry at insertion position i (may be a shadowed
// record superseded by a later duplicate name).
func (m *EntryMap) ByIndex(i int) (Entry, bool) {
	if i < 0 || i >= len(m.Entries) {
		return Entry{}, false
	}
	return m.Entries[i], true
}

func (m *EntryMap) insert(e Entry) {
	name := e.Path.String()
	m.Entries = append(m.Entries, e)
	if m.index == nil {
		m.index = make(map[uint64][]int)
	}
	pos := len(m.Entries) - 1
	h := xxhash.Sum64String(name)
	bucket := m.index[h]
	for i, existing := range bucket {
		if m.Entries[existing].Path.String() == name {
			bucket[i] = pos
			m.index[h] = bucket
			return
		}
	}
	m.index[h] = append(bucket, pos)
}

var cdSignature = []byte{0x50, 0x4b, 0x01, 0x02}

// Walk reads exactly rec.CentralDirectorySize bytes starting at
// rec.CentralDirectoryOffset from headerSrc, scans for every
// central-directory record signature, and parses each into an Entry.
func Walk(headerSrc io.ReaderAt, rec eocd.Record) (*EntryMap, error) {
	buf := make([]byte, rec.CentralDirectorySize)
	if len(buf) > 0 {
		n, err := headerSrc.ReadAt(buf, int64(rec.CentralDirectoryOffset))
		if err != nil && err != io.EOF {
			return nil, err
		}
		if n < len(buf) {
			return nil, &zerr.InvalidArchiveError{Detail: "truncated central directory"}
		}
	}

	m := &EntryMap{index: make(map[uint64][]int, rec.TotalEntries)}
	for _, idx := range scan.SearchAll(buf, cdSignature) {
		entry, consumed, err := parseOne(buf[idx:])
		if err != nil {
			return nil, err
		}
		m.insert(entry)
		_ = consumed
	}
	return m, nil
}

func parseOne(b []byte) (Entry, int, error) {
	if len(b) < 4+wire.CentralDirectoryFixedLen {
		return Entry{}, 0, &zerr.InvalidArchiveError{Detail: "truncated central directory record"}
	}
	fixed := wire.ParseCentralDirectoryFixed(b[4 : 4+wire.CentralDirectoryFixedLen])

	nameLen := int(fixed.NameLength)
	extraLen := int(fixed.ExtraLength)
	commentLen := int(fixed.CommentLength)
	total := 4 + wire.CentralDirectoryFixedLen + nameLen + extraLen + commentLen
	if len(b) < total {
		return Entry{}, 0, &zerr.InvalidArchiveError{Detail: "central directory record overruns buffer"}
	}

	off := 4 + wire.CentralDirectoryFixedLen
	rawName := string(b[off : off+nameLen])
	off += nameLen
	extraBytes := b[off : off+extraLen]
	off += extraLen
	comment := string(b[off : off+commentLen])

	fields, err := xfield.ParseAll(extraBytes, fixed.UncompressedSize, fixed.CompressedSize, fixed.LocalHeaderOffset, fixed.DiskNumberStart)
	if err != nil {
		return Entry{}, 0, err
	}

	compressedSize := uint64(fixed.CompressedSize)
	uncompressedSize := uint64(fixed.UncompressedSize)
	localHeaderOffset := uint64(fixed.LocalHeaderOffset)
	diskStart := uint32(fixed.DiskNumberStart)
	for _, f := range fields {
		if f.Zip64 == nil {
			continue
		}
		if f.Zip64.UncompressedSize != nil {
			uncompressedSize = *f.Zip64.UncompressedSize
		}
		if f.Zip64.CompressedSize != nil {
			compressedSize = *f.Zip64.CompressedSize
		}
		if f.Zip64.RelativeHeaderOffset != nil {
			localHeaderOffset = *f.Zip64.RelativeHeaderOffset
		}
		if f.Zip64.DiskStartNumber != nil {
			diskStart = *f.Zip64.DiskStartNumber
		}
	}

	host, err := attrs.DecodeHostCompatibility(uint8(fixed.VersionMadeBy >> 8))
	if err != nil {
		return Entry{}, 0, err
	}
	decodedAttrs := attrs.Decode(fixed.ExternalAttrs, host)

	name := zippath.Sanitize(rawName)
	if strings.HasSuffix(name, "/") {
		// A trailing slash marks a directory even when the host never set an
		// external directory-attribute bit for it.
		decodedAttrs.Directory = true
	}
	p := zippath.New(name, decodedAttrs)

	e := Entry{
		Host:              host,
		VersionNeeded:     fixed.VersionNeeded,
		Flags:             wire.DecodeFlags(fixed.Flags),
		Method:            wire.CompressionMethod(fixed.Method),
		ModTime:           wire.DecodeDOSTime(fixed.ModDate, fixed.ModTime),
		CRC32:             fixed.CRC32,
		CompressedSize:    compressedSize,
		UncompressedSize:  uncompressedSize,
		DiskNumberStart:   diskStart,
		InternalAttrs:     fixed.InternalAttrs,
		ExternalAttrs:     fixed.ExternalAttrs,
		LocalHeaderOffset: localHeaderOffset,
		Comment:           comment,
		ExtraFields:       fields,
		Path:              p,
	}
	return e, total, nil
}
