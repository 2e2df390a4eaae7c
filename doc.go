// Package zipreader implements a random-access reader for the ZIP archive
// container format, supporting both the classical 32-bit layout and the
// ZIP64 extension, with pluggable decompression for STORED, DEFLATE,
// DEFLATE64, BZIP2, LZMA, ZSTD, and XZ payloads.
//
// Opening an archive parses its central directory once; entries may then
// be looked up by name or index, enumerated in central-directory insertion
// order, or extracted on demand. Writing archives, decoding encrypted
// entries, verifying digital signatures, and the data-descriptor trailer
// path are all out of scope.
package zipreader
