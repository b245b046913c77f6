package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

func newS2Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(s2.NewReader(r)), nil
}
