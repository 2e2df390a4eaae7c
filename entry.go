package zipreader

import (
	"time"

	"github.com/asynczip/zipreader/internal/cdir"
	"github.com/asynczip/zipreader/internal/xfield"
)

// Entry describes one archive member as recorded in the central directory:
// metadata only, no payload bytes. Retrieve the payload with
// Archive.FileByName or Archive.FileByIndex.
type Entry struct {
	inner cdir.Entry
}

func newEntry(e cdir.Entry) Entry { return Entry{inner: e} }

func (e Entry) Path() Path                     { return e.inner.Path }
func (e Entry) Name() string                   { return e.inner.Path.String() }
func (e Entry) Method() CompressionMethod      { return e.inner.Method }
func (e Entry) Flags() GeneralPurposeFlag      { return e.inner.Flags }
func (e Entry) CRC32() uint32                  { return e.inner.CRC32 }
func (e Entry) CompressedSize() uint64         { return e.inner.CompressedSize }
func (e Entry) UncompressedSize() uint64       { return e.inner.UncompressedSize }
func (e Entry) Comment() string                { return e.inner.Comment }
func (e Entry) Host() HostCompatibility        { return e.inner.Host }
func (e Entry) DOSModTime() DOSTime            { return e.inner.ModTime }

func (e Entry) IsDir() bool     { return e.inner.Path.IsDir() }
func (e Entry) IsFile() bool    { return e.inner.Path.IsFile() }
func (e Entry) IsSymlink() bool { return e.inner.Path.IsSymlink() }

// ModifiedTime returns the entry's best-available modification time: a
// timestamp extra field (NTFS, Info-ZIP Unix, or extended-timestamp) when
// present, falling back to the DOS date/time pair decoded at 2-second
// resolution.
func (e Entry) ModifiedTime() time.Time {
	if sec, nsec, ok := xfield.MTime(e.inner.ExtraFields); ok {
		return time.Unix(sec, nsec).UTC()
	}
	d := e.inner.ModTime
	return time.Date(d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second, 0, time.UTC)
}
