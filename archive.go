package zipreader

import (
	"context"
	"fmt"
	"io"
	"iter"

	"github.com/asynczip/zipreader/internal/cdir"
	"github.com/asynczip/zipreader/internal/eocd"
	"github.com/asynczip/zipreader/internal/localheader"
	"github.com/bmatcuk/doublestar/v4"
)

// Archive is an opened ZIP central directory: the entry map plus whatever
// it takes to seek back for header and payload reads.
type Archive struct {
	headerSrc io.ReaderAt
	dataSrc   io.ReaderAt
	entries   *cdir.EntryMap
	comment   []byte
}

// OpenOption configures Open.
type OpenOption func(*openConfig)

type openConfig struct {
	dataSrc io.ReaderAt
}

// WithDataSource routes compressed-payload reads through a different
// io.ReaderAt than the one used to parse headers — useful when headers are
// cached locally but payloads stream from a remote store.
func WithDataSource(r io.ReaderAt) OpenOption {
	return func(c *openConfig) { c.dataSrc = r }
}

// Open parses the central directory of the archive at src, which spans
// size bytes.
func Open(ctx context.Context, src io.ReaderAt, size int64, opts ...OpenOption) (*Archive, error) {
	cfg := &openConfig{dataSrc: src}
	for _, o := range opts {
		o(cfg)
	}

	rec, err := eocd.Read(ctx, src, size)
	if err != nil {
		return nil, err
	}
	entries, err := cdir.Walk(src, rec)
	if err != nil {
		return nil, err
	}
	return &Archive{headerSrc: src, dataSrc: cfg.dataSrc, entries: entries, comment: rec.Comment}, nil
}

// Len returns the number of live (non-shadowed) entries.
func (a *Archive) Len() int { return a.entries.Len() }

// IsEmpty reports whether the archive has no entries.
func (a *Archive) IsEmpty() bool { return a.Len() == 0 }

// Comment returns the archive-level comment, if any.
func (a *Archive) Comment() string { return string(a.comment) }

// FileByName looks up and reads the entry with the given path, decoding its
// local header and payload from the archive's data source.
func (a *Archive) FileByName(name string) (File, error) {
	e, ok := a.entries.ByName(name)
	if !ok {
		return File{}, fmt.Errorf("zipreader: no such entry: %q", name)
	}
	return a.readFile(e)
}

// FileByIndex reads the entry at central-directory insertion position i.
func (a *Archive) FileByIndex(i int) (File, error) {
	e, ok := a.entries.ByIndex(i)
	if !ok {
		return File{}, fmt.Errorf("zipreader: index out of range: %d", i)
	}
	return a.readFile(e)
}

func (a *Archive) readFile(e cdir.Entry) (File, error) {
	lf, err := localheader.Read(a.dataSrc, int64(e.LocalHeaderOffset), &e)
	if err != nil {
		return File{}, err
	}
	return newFile(e, lf), nil
}

// Names returns every live entry path, in central-directory insertion
// order among the entries that are not shadowed.
func (a *Archive) Names() []string {
	names := make([]string, 0, a.Len())
	for _, e := range a.entries.Entries {
		if live, ok := a.entries.ByName(e.Path.String()); ok && live.LocalHeaderOffset == e.LocalHeaderOffset {
			names = append(names, e.Path.String())
		}
	}
	return names
}

// Entries iterates every central-directory record in insertion order,
// including any shadowed by a later duplicate name.
func (a *Archive) Entries() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range a.entries.Entries {
			if !yield(i, newEntry(e)) {
				return
			}
		}
	}
}

// Glob returns the paths of live entries whose name matches a doublestar
// pattern.
func (a *Archive) Glob(pattern string) ([]string, error) {
	var matches []string
	for _, e := range a.entries.Entries {
		name := e.Path.String()
		live, ok := a.entries.ByName(name)
		if !ok || live.LocalHeaderOffset != e.LocalHeaderOffset {
			continue
		}
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, name)
		}
	}
	return matches, nil
}
