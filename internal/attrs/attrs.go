// Package attrs decodes a central-directory entry's external file
// attributes into host-independent directory/symlink/permission metadata,
// dispatched on the host-compatibility byte from version-made-by.
package attrs

import (
	"fmt"

	"github.com/asynczip/zipreader/internal/zerr"
	"github.com/asynczip/zipreader/zippath"
)

// UnsupportedHostError names the offending host-compatibility byte. It
// unwraps to zerr.ErrAttributeCompatibilityNotSupported, so callers can
// detect the condition without depending on this package directly.
type UnsupportedHostError struct {
	Host uint8
}

func (e *UnsupportedHostError) Error() string {
	return fmt.Sprintf("zipreader: host compatibility %d not supported", e.Host)
}

func (e *UnsupportedHostError) Unwrap() error { return zerr.ErrAttributeCompatibilityNotSupported }

// Unix file-type and permission masks, as agreed on by tooling rather than
// spelled out in the format itself.
const (
	sIFMT  = 0xf000
	sIFLNK = 0xa000
	sIFDIR = 0x4000
	sIFREG = 0x8000

	msdosDir      = 0x10
	msdosReadOnly = 0x01
)

// DecodeHostCompatibility maps the version-made-by upper byte to a
// HostCompatibility, or *UnsupportedHostError if this reader has no decode
// rule for it.
func DecodeHostCompatibility(raw uint8) (zippath.HostCompatibility, error) {
	switch zippath.HostCompatibility(raw) {
	case zippath.HostMsDos, zippath.HostUnix, zippath.HostNTFS:
		return zippath.HostCompatibility(raw), nil
	default:
		return 0, &UnsupportedHostError{Host: raw}
	}
}

// Decode interprets external attributes according to host, returning the
// directory/symlink flags and owner/group/other permission triples.
func Decode(external uint32, host zippath.HostCompatibility) zippath.Attributes {
	switch host {
	case zippath.HostUnix, zippath.HostNTFS:
		return decodeUnix(external >> 16)
	default:
		return decodeMsDos(external)
	}
}

func decodeMsDos(external uint32) zippath.Attributes {
	a := zippath.Attributes{Directory: external&msdosDir != 0}
	write := external&msdosReadOnly == 0
	perm := zippath.Permissions{Read: true, Write: write, Execute: a.Directory}
	a.Owner, a.Group, a.Other = perm, perm, perm
	return a
}

func decodeUnix(mode uint32) zippath.Attributes {
	a := zippath.Attributes{}
	switch mode & sIFMT {
	case sIFDIR:
		a.Directory = true
	case sIFLNK:
		a.Symlink = true
	case sIFREG:
	}
	a.Owner = triple(mode, 6)
	a.Group = triple(mode, 3)
	a.Other = triple(mode, 0)
	return a
}

func triple(mode uint32, shift uint) zippath.Permissions {
	return zippath.Permissions{
		Read:    mode&(0x4<<shift) != 0,
		Write:   mode&(0x2<<shift) != 0,
		Execute: mode&(0x1<<shift) != 0,
	}
}
