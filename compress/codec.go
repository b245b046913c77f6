package compress

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/voltlab/voltseries/errs"
)

// Format identifies the compression applied to an input stream.
type Format uint8

const (
	FormatNone Format = iota + 1 // FormatNone represents uncompressed input.
	FormatGzip                   // FormatGzip represents gzip compression.
	FormatZstd                   // FormatZstd represents Zstandard compression.
	FormatS2                     // FormatS2 represents S2 compression.
	FormatLZ4                    // FormatLZ4 represents LZ4 frame compression.
)

func (f Format) String() string {
	switch f {
	case FormatNone:
		return "None"
	case FormatGzip:
		return "Gzip"
	case FormatZstd:
		return "Zstd"
	case FormatS2:
		return "S2"
	case FormatLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Detect returns the compression format implied by the file name extension.
// Unrecognized extensions map to FormatNone, so plain text files need no
// special casing by the caller.
func Detect(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return FormatGzip
	case ".zst", ".zstd":
		return FormatZstd
	case ".s2":
		return FormatS2
	case ".lz4":
		return FormatLZ4
	default:
		return FormatNone
	}
}

// NewReader wraps r with the streaming decompressor for the given format.
//
// The returned ReadCloser must be closed by the caller; closing it does not
// close the underlying reader.
func NewReader(r io.Reader, format Format) (io.ReadCloser, error) {
	switch format {
	case FormatNone:
		return io.NopCloser(r), nil
	case FormatGzip:
		return newGzipReader(r)
	case FormatZstd:
		return newZstdReader(r)
	case FormatS2:
		return newS2Reader(r)
	case FormatLZ4:
		return newLZ4Reader(r)
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownFormat, uint8(format))
	}
}
