// Package responsewriter wraps http.ResponseWriter to capture the
// status code and body size for logging and metrics.
package responsewriter

import "net/http"

// ResponseWriter records the status code and bytes written.
type ResponseWriter struct {
	http.ResponseWriter
	status        int
	size          int
	headerWritten bool
}

// Wrap returns a recording wrapper around w. The status defaults to
// 200 until WriteHeader is called, matching net/http's behavior.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the first status code written; later calls are
// ignored, as the underlying writer would warn about them anyway.
func (w *ResponseWriter) WriteHeader(status int) {
	if w.headerWritten {
		return
	}
	w.status = status
	w.headerWritten = true
	w.ResponseWriter.WriteHeader(status)
}

// Write writes the body and accumulates the response size.
func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.headerWritten {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Status returns the recorded HTTP status code.
func (w *ResponseWriter) Status() int { return w.status }

// Size returns the number of body bytes written.
func (w *ResponseWriter) Size() int { return w.size }

// Unwrap exposes the underlying writer for http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
