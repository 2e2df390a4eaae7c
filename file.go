package zipreader

import (
	"bytes"
	"fmt"
	"io"

	"github.com/asynczip/zipreader/internal/cdir"
	"github.com/asynczip/zipreader/internal/codec"
	"github.com/asynczip/zipreader/internal/localheader"
)

// File is a retrieved archive entry: its central-directory metadata plus
// the raw compressed payload read from its local header. It is an
// independent value once returned — extracting it never touches the
// archive's source again.
type File struct {
	Entry
	raw *localheader.LocalFile
}

func newFile(cdEntry cdir.Entry, lf *localheader.LocalFile) File {
	return File{
		Entry: newEntry(cdEntry),
		raw:   lf,
	}
}

// Extract decompresses the payload according to the entry's compression
// method, returning exactly UncompressedSize bytes for any method other
// than Stored.
func (f File) Extract() ([]byte, error) {
	r, err := codec.NewDecoder(f.raw.Method, bytes.NewReader(f.raw.Compressed), f.raw.UncompressedSize)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(make([]byte, 0, f.raw.UncompressedSize))
	if _, err := io.Copy(buf, r); err != nil {
		return nil, err
	}
	if f.raw.Method != Stored && uint64(buf.Len()) != f.raw.UncompressedSize {
		return nil, &InvalidArchiveError{Detail: fmt.Sprintf("%s: decompressed %d bytes, want %d", f.Name(), buf.Len(), f.raw.UncompressedSize)}
	}
	return buf.Bytes(), nil
}

// ExtractTo decompresses the payload directly into w, without buffering
// the whole result in memory.
func (f File) ExtractTo(w io.Writer) (int64, error) {
	r, err := codec.NewDecoder(f.raw.Method, bytes.NewReader(f.raw.Compressed), f.raw.UncompressedSize)
	if err != nil {
		return 0, err
	}
	return io.Copy(w, r)
}
