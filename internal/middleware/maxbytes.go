package middleware

import "net/http"

// DefaultMaxBodyBytes caps write payloads. Equipment and maintenance
// records are small JSON documents; 256 KiB leaves generous headroom.
const DefaultMaxBodyBytes = 256 << 10

// MaxBytes wraps request bodies with http.MaxBytesReader so oversized
// payloads fail at decode time instead of being buffered whole. Applied
// to the mutating route group only.
func MaxBytes(limit int64) func(http.Handler) http.Handler {
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
