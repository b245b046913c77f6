//go:build cgo

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

type zstdReader struct {
	zr *gozstd.Reader
}

func (r *zstdReader) Read(p []byte) (int, error) {
	return r.zr.Read(p)
}

// Close releases the decoder resources. The underlying reader stays open.
func (r *zstdReader) Close() error {
	r.zr.Release()
	return nil
}

func newZstdReader(r io.Reader) (io.ReadCloser, error) {
	return &zstdReader{zr: gozstd.NewReader(r)}, nil
}
