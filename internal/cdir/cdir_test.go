package cdir

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/asynczip/zipreader/internal/eocd"
	"github.com/asynczip/zipreader/internal/wire"
)

func buildEntry(name string, method uint16, externalAttrs uint32, versionMadeByHost uint8) []byte {
	var buf bytes.Buffer
	put16 := func(v uint16) { var b [2]byte; binary.LittleEndian.PutUint16(b[:], v); buf.Write(b[:]) }
	put32 := func(v uint32) { var b [4]byte; binary.LittleEndian.PutUint32(b[:], v); buf.Write(b[:]) }

	put32(wire.SigCentralDirectoryFile)
	put16(uint16(versionMadeByHost) << 8) // version made by (host in high byte)
	put16(20)                              // version needed
	put16(0)                               // flags
	put16(method)                          // method
	put16(0)                               // mod time
	put16(0)                               // mod date
	put32(0xDEADBEEF)                      // crc32
	put32(uint32(len(name)))               // compressed size (fake)
	put32(uint32(len(name)))               // uncompressed size (fake)
	put16(uint16(len(name)))               // name length
	put16(0)                               // extra length
	put16(0)                               // comment length
	put16(0)                               // disk number start
	put16(0)                               // internal attrs
	put32(externalAttrs)                   // external attrs
	put32(0)                               // local header offset
	buf.WriteString(name)
	return buf.Bytes()
}

func TestWalkSingleEntry(t *testing.T) {
	record := buildEntry("hello.txt", 8, 0, 3)
	src := bytes.NewReader(record)
	rec := eocd.Record{CentralDirectoryOffset: 0, CentralDirectorySize: uint64(len(record)), TotalEntries: 1}

	m, err := Walk(src, rec)
	if err != nil {
		t.Fatal(err)
	}
	if m.Len() != 1 {
		t.Fatalf("Len = %d, want 1", m.Len())
	}
	e, ok := m.ByName("hello.txt")
	if !ok {
		t.Fatal("expected to find hello.txt")
	}
	if e.Method != wire.Deflate {
		t.Fatalf("Method = %v", e.Method)
	}
}

func TestWalkDuplicateNameShadowing(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(buildEntry("dup.txt", 0, 0, 3))
	buf.Write(buildEntry("dup.txt", 8, 0, 3))
	src := bytes.NewReader(buf.Bytes())
	rec := eocd.Record{CentralDirectoryOffset: 0, CentralDirectorySize: uint64(buf.Len()), TotalEntries: 2}

	m, err := Walk(src, rec)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Entries) != 2 {
		t.Fatalf("Entries = %d, want 2 (shadowed entry retained)", len(m.Entries))
	}
	e, ok := m.ByName("dup.txt")
	if !ok || e.Method != wire.Deflate {
		t.Fatalf("expected the later duplicate to win, got %+v, ok=%v", e, ok)
	}
}

func TestWalkSlashOnlyDirectory(t *testing.T) {
	// No external directory-attribute bit set (externalAttrs=0): the
	// trailing slash alone must still mark the entry as a directory.
	record := buildEntry("assets/", 0, 0, 3)
	src := bytes.NewReader(record)
	rec := eocd.Record{CentralDirectoryOffset: 0, CentralDirectorySize: uint64(len(record)), TotalEntries: 1}

	m, err := Walk(src, rec)
	if err != nil {
		t.Fatal(err)
	}
	e, ok := m.ByName("assets/")
	if !ok {
		t.Fatal("expected to find assets/")
	}
	if !e.Path.IsDir() || e.Path.IsFile() {
		t.Fatalf("expected slash-only entry to classify as a directory, got %+v", e.Path)
	}
	if !e.Path.Attributes().Directory {
		t.Fatal("expected Attributes().Directory to be set from the trailing slash")
	}
}

func TestWalkMultipleEntriesOrder(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(buildEntry("b.txt", 0, 0, 3))
	buf.Write(buildEntry("a.txt", 0, 0, 3))
	src := bytes.NewReader(buf.Bytes())
	rec := eocd.Record{CentralDirectoryOffset: 0, CentralDirectorySize: uint64(buf.Len()), TotalEntries: 2}

	m, err := Walk(src, rec)
	if err != nil {
		t.Fatal(err)
	}
	if m.Entries[0].Path.String() != "b.txt" || m.Entries[1].Path.String() != "a.txt" {
		t.Fatalf("insertion order not preserved: %v", m.Entries)
	}
}
