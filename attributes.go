package zipreader

import "github.com/asynczip/zipreader/zippath"

// HostCompatibility identifies which operating system wrote an entry's
// external file attributes.
type HostCompatibility = zippath.HostCompatibility

const (
	HostMsDos = zippath.HostMsDos
	HostUnix  = zippath.HostUnix
	HostNTFS  = zippath.HostNTFS
)

// Permissions is one owner/group/other POSIX permission triple.
type Permissions = zippath.Permissions

// PosixAttributes is the decoded directory/symlink/permission metadata for
// an entry.
type PosixAttributes = zippath.Attributes

// Path is an archive-internal path value with attached attributes.
type Path = zippath.Path
