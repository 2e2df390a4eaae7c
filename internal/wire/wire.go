// Package wire decodes the little-endian fixed-layout records that make up
// the ZIP container format: the four signatures, the ZIP32/ZIP64
// end-of-central-directory records and locator, the central-directory
// file-header fixed fields, and the local-file-header fixed fields.
package wire

import "encoding/binary"

// Signatures, little-endian four-byte magics per the PKWARE APPNOTE.
const (
	SigLocalFileHeader      uint32 = 0x04034b50
	SigCentralDirectoryFile uint32 = 0x02014b50
	SigEOCD32               uint32 = 0x06054b50
	SigEOCD64Locator         uint32 = 0x07064b50
	SigEOCD64                uint32 = 0x06064b50
)

// Fixed-size byte lengths of each record's body, not counting its leading
// 4-byte signature.
const (
	EOCD32Len       = 18
	EOCD64LocatorLen = 16
	EOCD64Len       = 52
	CentralDirectoryFixedLen = 42
	LocalFileHeaderFixedLen  = 26
)

func U16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func U32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }
func U64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

// EOCD32 is the classic 32-bit end-of-central-directory record, its fixed
// 18 bytes following the signature.
type EOCD32 struct {
	DiskNumber           uint16
	CDStartDisk          uint16
	EntriesOnThisDisk     uint16
	TotalEntries          uint16
	CDSize                uint32
	CDOffset              uint32
	CommentLength         uint16
}

// ParseEOCD32 decodes the 18-byte fixed body following the EOCD32 signature.
func ParseEOCD32(b []byte) EOCD32 {
	_ = b[EOCD32Len-1]
	return EOCD32{
		DiskNumber:       U16(b[0:2]),
		CDStartDisk:      U16(b[2:4]),
		EntriesOnThisDisk: U16(b[4:6]),
		TotalEntries:     U16(b[6:8]),
		CDSize:           U32(b[8:12]),
		CDOffset:         U32(b[12:16]),
		CommentLength:    U16(b[16:18]),
	}
}

// EOCD64Locator is the 16-byte body following the ZIP64 EOCD locator signature.
type EOCD64Locator struct {
	DiskWithEOCD64 uint32
	RelativeOffset uint64
	TotalDisks     uint32
}

func ParseEOCD64Locator(b []byte) EOCD64Locator {
	_ = b[EOCD64LocatorLen-1]
	return EOCD64Locator{
		DiskWithEOCD64: U32(b[0:4]),
		RelativeOffset: U64(b[4:12]),
		TotalDisks:     U32(b[12:16]),
	}
}

// EOCD64 is the 52-byte fixed body following the ZIP64 EOCD signature: an
// 8-byte size of the remaining record (not kept) followed by these fields.
// The record may carry extensible data after them; it is ignored.
type EOCD64 struct {
	VersionMadeBy        uint16
	VersionNeeded        uint16
	DiskNumber           uint32
	CDStartDisk          uint32
	EntriesOnThisDisk    uint64
	TotalEntries         uint64
	CDSize               uint64
	CDOffset             uint64
}

func ParseEOCD64(b []byte) EOCD64 {
	_ = b[EOCD64Len-1]
	return EOCD64{
		VersionMadeBy:     U16(b[8:10]),
		VersionNeeded:     U16(b[10:12]),
		DiskNumber:        U32(b[12:16]),
		CDStartDisk:       U32(b[16:20]),
		EntriesOnThisDisk: U64(b[20:28]),
		TotalEntries:      U64(b[28:36]),
		CDSize:            U64(b[36:44]),
		CDOffset:          U64(b[44:52]),
	}
}

// CentralDirectoryFixed is the 42-byte fixed portion of a central-directory
// file-header record, following its 4-byte signature and preceding the
// variable name/extra/comment sections.
type CentralDirectoryFixed struct {
	VersionMadeBy      uint16
	VersionNeeded      uint16
	Flags              uint16
	Method             uint16
	ModTime            uint16
	ModDate            uint16
	CRC32              uint32
	CompressedSize     uint32
	UncompressedSize   uint32
	NameLength         uint16
	ExtraLength        uint16
	CommentLength      uint16
	DiskNumberStart    uint16
	InternalAttrs      uint16
	ExternalAttrs      uint32
	LocalHeaderOffset  uint32
}

// ParseCentralDirectoryFixed decodes the 42 bytes following the
// central-directory signature.
func ParseCentralDirectoryFixed(b []byte) CentralDirectoryFixed {
	_ = b[CentralDirectoryFixedLen-1]
	return CentralDirectoryFixed{
		VersionMadeBy:     U16(b[0:2]),
		VersionNeeded:     U16(b[2:4]),
		Flags:             U16(b[4:6]),
		Method:            U16(b[6:8]),
		ModTime:           U16(b[8:10]),
		ModDate:           U16(b[10:12]),
		CRC32:             U32(b[12:16]),
		CompressedSize:    U32(b[16:20]),
		UncompressedSize:  U32(b[20:24]),
		NameLength:        U16(b[24:26]),
		ExtraLength:       U16(b[26:28]),
		CommentLength:     U16(b[28:30]),
		DiskNumberStart:   U16(b[30:32]),
		InternalAttrs:     U16(b[32:34]),
		ExternalAttrs:     U32(b[34:38]),
		LocalHeaderOffset: U32(b[38:42]),
	}
}

// LocalFileHeaderFixed is the 26-byte fixed portion of a local file header,
// following its 4-byte signature and preceding the variable name/extra
// sections and the compressed payload.
type LocalFileHeaderFixed struct {
	VersionNeeded    uint16
	Flags            uint16
	Method           uint16
	ModTime          uint16
	ModDate          uint16
	CRC32            uint32
	CompressedSize   uint32
	UncompressedSize uint32
	NameLength       uint16
	ExtraLength      uint16
}

func ParseLocalFileHeaderFixed(b []byte) LocalFileHeaderFixed {
	_ = b[LocalFileHeaderFixedLen-1]
	return LocalFileHeaderFixed{
		VersionNeeded:    U16(b[0:2]),
		Flags:            U16(b[2:4]),
		Method:           U16(b[4:6]),
		ModTime:          U16(b[6:8]),
		ModDate:          U16(b[8:10]),
		CRC32:            U32(b[10:14]),
		CompressedSize:   U32(b[14:18]),
		UncompressedSize: U32(b[18:22]),
		NameLength:       U16(b[22:24]),
		ExtraLength:      U16(b[24:26]),
	}
}
