package xfield

import (
	"encoding/binary"
	"testing"
)

func le64(v uint64) []byte { b := make([]byte, 8); binary.LittleEndian.PutUint64(b, v); return b }

func TestParseZip64BothSizesOverridden(t *testing.T) {
	var data []byte
	data = append(data, le64(123456789)...) // uncompressed
	data = append(data, le64(987654321)...) // compressed
	got := ParseZip64(data, 0xFFFFFFFF, 0xFFFFFFFF, 5, 0)
	if got.UncompressedSize == nil || *got.UncompressedSize != 123456789 {
		t.Fatalf("uncompressed = %v", got.UncompressedSize)
	}
	if got.CompressedSize == nil || *got.CompressedSize != 987654321 {
		t.Fatalf("compressed = %v", got.CompressedSize)
	}
	if got.RelativeHeaderOffset != nil {
		t.Fatal("expected no relative header offset present when the 32-bit offset isn't saturated")
	}
}

func TestParseZip64OnlyOffsetPresent(t *testing.T) {
	data := le64(42)
	got := ParseZip64(data, 100, 200, 0xFFFFFFFF, 0)
	if got.UncompressedSize != nil || got.CompressedSize != nil {
		t.Fatal("sizes should be absent when 32-bit fields are not sentinels")
	}
	if got.RelativeHeaderOffset == nil || *got.RelativeHeaderOffset != 42 {
		t.Fatalf("offset = %v", got.RelativeHeaderOffset)
	}
}

func TestParseZip64OffsetAbsentWithoutSentinel(t *testing.T) {
	// Eight bytes are available, but the owning header's 32-bit local
	// header offset was not the 0xFFFFFFFF sentinel, so they must not be
	// misread as a relative header offset.
	data := le64(42)
	got := ParseZip64(data, 100, 200, 0, 0)
	if got.RelativeHeaderOffset != nil {
		t.Fatal("expected no relative header offset present when the 32-bit offset isn't saturated")
	}
}

func TestParseUnicodeV1(t *testing.T) {
	data := append([]byte{1, 0xAA, 0xBB, 0xCC, 0xDD}, []byte("hello")...)
	got, err := ParseUnicode(data, ErrUnicodePathIncomplete)
	if err != nil {
		t.Fatal(err)
	}
	if got.Version != 1 || string(got.Data) != "hello" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseUnicodeIncomplete(t *testing.T) {
	_, err := ParseUnicode([]byte{1, 2, 3}, ErrUnicodePathIncomplete)
	if err != ErrUnicodePathIncomplete {
		t.Fatalf("err = %v, want ErrUnicodePathIncomplete", err)
	}
}

func TestParseAllDispatch(t *testing.T) {
	var extra []byte
	// unknown field, id 0x9999, 2 bytes data
	extra = append(extra, 0x99, 0x99, 2, 0, 0xAB, 0xCD)
	// zip64 field with just relative header offset
	zip64Data := le64(777)
	extra = append(extra, byte(IDZip64ExtendedInfo), byte(IDZip64ExtendedInfo>>8), byte(len(zip64Data)), byte(len(zip64Data)>>8))
	extra = append(extra, zip64Data...)

	fields, err := ParseAll(extra, 0, 0, 0xFFFFFFFF, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(fields) != 2 {
		t.Fatalf("got %d fields", len(fields))
	}
	if fields[0].Unknown == nil {
		t.Fatal("expected unknown field first")
	}
	if fields[1].Zip64 == nil || *fields[1].Zip64.RelativeHeaderOffset != 777 {
		t.Fatalf("zip64 field = %+v", fields[1].Zip64)
	}
}

func TestMTimeInfoZipUnix(t *testing.T) {
	var data []byte
	data = append(data, 0, 0, 0, 0) // atime, unused
	var mtime [4]byte
	binary.LittleEndian.PutUint32(mtime[:], 1700000000)
	data = append(data, mtime[:]...)

	extra := []byte{byte(idInfoZipUnixOld & 0xff), byte(idInfoZipUnixOld >> 8), byte(len(data)), byte(len(data) >> 8)}
	extra = append(extra, data...)

	fields, err := ParseAll(extra, 0, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	sec, _, ok := MTime(fields)
	if !ok || sec != 1700000000 {
		t.Fatalf("MTime = %d, %v, want 1700000000, true", sec, ok)
	}
}

func TestMTimeNTFS(t *testing.T) {
	const ticksPerSecond = 1e7
	const windowsToUnixEpochSeconds = 11644473600
	wantSec := int64(1700000000)
	ticks := uint64(wantSec+windowsToUnixEpochSeconds) * ticksPerSecond

	var sub []byte
	sub = append(sub, 1, 0, 24, 0) // tag 1 (timestamps), 24-byte body
	var mtime [8]byte
	binary.LittleEndian.PutUint64(mtime[:], ticks)
	sub = append(sub, mtime[:]...)
	sub = append(sub, make([]byte, 16)...) // atime, ctime, unused by MTime

	var ntfsBody []byte
	ntfsBody = append(ntfsBody, make([]byte, 4)...) // reserved
	ntfsBody = append(ntfsBody, sub...)

	extra := []byte{byte(idNTFSTimes), byte(idNTFSTimes >> 8), byte(len(ntfsBody)), byte(len(ntfsBody) >> 8)}
	extra = append(extra, ntfsBody...)

	fields, err := ParseAll(extra, 0, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	sec, _, ok := MTime(fields)
	if !ok || sec != wantSec {
		t.Fatalf("MTime = %d, %v, want %d, true", sec, ok, wantSec)
	}
}

func TestMTimeAbsent(t *testing.T) {
	if _, _, ok := MTime(nil); ok {
		t.Fatal("expected no mtime for empty field list")
	}
}
