package wire

import "testing"

func TestCompressionMethodKnown(t *testing.T) {
	for _, m := range []CompressionMethod{Stored, Deflate, Deflate64, Bzip2, Lzma, Zstd, Xz} {
		if !m.Known() {
			t.Fatalf("%v should be known", m)
		}
	}
	if CompressionMethod(99).Known() {
		t.Fatal("99 should not be known")
	}
}

func TestDecodeFlags(t *testing.T) {
	raw := uint16(1<<0 | 1<<3 | 1<<11 | 1<<13)
	f := DecodeFlags(raw)
	if !f.Encrypted || !f.DataDescriptorPresent || !f.UTF8Names || !f.CentralDirectoryEncrypted {
		t.Fatalf("got %+v", f)
	}
	if f.Raw != raw {
		t.Fatalf("Raw = %#x", f.Raw)
	}
}

func TestDecodeDOSTime(t *testing.T) {
	// 2024-03-15 13:45:30 -> date high7=44(2024-1980) month=3 day=15
	date := uint16(44<<9 | 3<<5 | 15)
	time := uint16(13<<11 | 45<<5 | 15) // second field stores 30/2=15
	got := DecodeDOSTime(date, time)
	want := DOSTime{Year: 2024, Month: 3, Day: 15, Hour: 13, Minute: 45, Second: 30}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
