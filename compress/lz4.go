package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

func newLZ4Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}
