package localheader

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/asynczip/zipreader/internal/cdir"
	"github.com/asynczip/zipreader/internal/wire"
	"github.com/asynczip/zipreader/internal/zerr"
	"github.com/asynczip/zipreader/zippath"
)

func TestReadLocalFile(t *testing.T) {
	var buf bytes.Buffer
	put16 := func(v uint16) { var b [2]byte; binary.LittleEndian.PutUint16(b[:], v); buf.Write(b[:]) }
	put32 := func(v uint32) { var b [4]byte; binary.LittleEndian.PutUint32(b[:], v); buf.Write(b[:]) }

	payload := []byte("hello world")
	name := "hi.txt"

	put32(wire.SigLocalFileHeader)
	put16(20) // version needed
	put16(0)  // flags
	put16(0)  // method (stored)
	put16(0)  // mod time
	put16(0)  // mod date
	put32(0)  // crc32
	put32(uint32(len(payload)))
	put32(uint32(len(payload)))
	put16(uint16(len(name)))
	put16(0) // extra length
	buf.WriteString(name)
	buf.Write(payload)

	entry := &cdir.Entry{
		CompressedSize:   uint64(len(payload)),
		UncompressedSize: uint64(len(payload)),
		Path:             zippath.New(name, zippath.Attributes{}),
	}

	got, err := Read(bytes.NewReader(buf.Bytes()), 0, entry)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got.Compressed, payload) {
		t.Fatalf("Compressed = %q, want %q", got.Compressed, payload)
	}
	if got.Path.String() != name {
		t.Fatalf("Path = %q, want %q", got.Path.String(), name)
	}
}

func TestReadBadSignature(t *testing.T) {
	buf := make([]byte, 4+wire.LocalFileHeaderFixedLen)
	_, err := Read(bytes.NewReader(buf), 0, &cdir.Entry{})
	if err == nil {
		t.Fatal("expected signature mismatch error")
	}
}

func TestReadEncryptedRejected(t *testing.T) {
	entry := &cdir.Entry{Flags: wire.DecodeFlags(1 << 0)}
	_, err := Read(bytes.NewReader(nil), 0, entry)
	var fnse *zerr.FeatureNotSupportedError
	if !errors.As(err, &fnse) {
		t.Fatalf("err = %v, want *zerr.FeatureNotSupportedError", err)
	}
}

func TestReadDataDescriptorRejected(t *testing.T) {
	entry := &cdir.Entry{Flags: wire.DecodeFlags(1 << 3)}
	_, err := Read(bytes.NewReader(nil), 0, entry)
	var fnse *zerr.FeatureNotSupportedError
	if !errors.As(err, &fnse) {
		t.Fatalf("err = %v, want *zerr.FeatureNotSupportedError", err)
	}
}
