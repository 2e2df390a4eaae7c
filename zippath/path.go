// Package zippath holds the archive-entry path type: a sanitized, slash
// separated name plus the file-mode-ish metadata decoded from a central
// directory record's host-compatibility byte and external attributes.
package zippath

import "strings"

// HostCompatibility identifies which operating system wrote an entry's
// external file attributes, per the version-made-by byte.
type HostCompatibility uint8

const (
	HostMsDos HostCompatibility = 0
	HostUnix  HostCompatibility = 3
	HostNTFS  HostCompatibility = 10
)

// Permissions is one owner/group/other triple of POSIX permission bits.
type Permissions struct {
	Read    bool
	Write   bool
	Execute bool
}

// Attributes is the decoded meaning of a central-directory entry's external
// attributes field, host-compatibility dependent.
type Attributes struct {
	Directory bool
	Symlink   bool
	Owner     Permissions
	Group     Permissions
	Other     Permissions
}

// Path is an archive entry's name plus the Attributes decoded for it. The
// archive's entry lookup keys on String() alone, so Attributes never affect
// which entry a name finds; comparing two Path values with == compares their
// Attributes as well.
type Path struct {
	name  string
	attrs Attributes
}

// New builds a Path from an already-sanitized name and its attributes.
func New(name string, attrs Attributes) Path {
	return Path{name: name, attrs: attrs}
}

func (p Path) String() string     { return p.name }
func (p Path) Attributes() Attributes { return p.attrs }

func (p Path) IsDir() bool     { return p.attrs.Directory || strings.HasSuffix(p.name, "/") }
func (p Path) IsSymlink() bool { return p.attrs.Symlink }
func (p Path) IsFile() bool    { return !p.IsDir() && !p.IsSymlink() }

// FileName returns the final slash-separated component of the path.
func (p Path) FileName() string {
	name := strings.TrimSuffix(p.name, "/")
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Sanitize converts a raw, possibly hostile archive-entry name into a safe
// relative path: backslashes become forward slashes, and any component that
// is empty, ".", "..", or a drive-letter/root prefix is dropped. The result
// never begins with "/" and never contains "..". A trailing "/", the
// format's own directory marker, is preserved on a non-empty result.
func Sanitize(raw string) string {
	raw = strings.ReplaceAll(raw, "\\", "/")
	isDir := strings.HasSuffix(raw, "/")

	var kept []string
	for _, part := range strings.Split(raw, "/") {
		switch part {
		case "", ".", "..":
			continue
		}
		if len(part) == 2 && part[1] == ':' {
			continue // drive letter, e.g. "C:"
		}
		kept = append(kept, part)
	}
	name := strings.Join(kept, "/")
	if isDir && name != "" {
		name += "/"
	}
	return name
}
