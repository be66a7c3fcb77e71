// Package site serves the embedded assessment form page.
package site

import (
	"context"
	"net/http"
)

// Register attaches the embedded form page routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	// Serve the embedded page at root /
	files := http.FileServer(FS())
	mux.Handle("/", files)
}
