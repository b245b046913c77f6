// Package compress selects and wraps streaming decompressors for measurement
// files, so a series can be loaded from gzip, zstd, s2, or lz4 compressed
// text as transparently as from a plain file.
//
// The format is chosen from the file name extension:
//
//	data.txt      -> FormatNone
//	data.txt.gz   -> FormatGzip
//	data.txt.zst  -> FormatZstd
//	data.txt.s2   -> FormatS2
//	data.txt.lz4  -> FormatLZ4
//
// The zstd codec has two implementations selected at build time: a cgo path
// backed by valyala/gozstd and a pure-Go path backed by
// klauspost/compress/zstd.
package compress
