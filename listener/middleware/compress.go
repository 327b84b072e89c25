package middleware

import (
	"log/slog"
	"net/http"

	"github.com/klauspost/compress/gzhttp"
	"github.com/klauspost/compress/gzip"
)

// minCompressSize is the minimum response size in bytes before compression is applied.
const minCompressSize = 256

// Compress returns a middleware that gzips responses of at least
// minCompressSize bytes for clients that accept gzip. Already compressed
// content types are passed through.
func Compress() func(http.Handler) http.Handler {
	wrap, err := gzhttp.NewWrapper(
		gzhttp.MinSize(minCompressSize),
		gzhttp.CompressionLevel(gzip.DefaultCompression),
	)
	if err != nil {
		slog.Error("middleware: gzip wrapper unavailable, responses are sent uncompressed", "error", err)

		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return func(next http.Handler) http.Handler {
		return wrap(next)
	}
}
