//go:build !js
// +build !js

package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"net/http"
)

//go:embed index.html
var indexHTML []byte

//go:embed vistas.svg
var vistasSVG []byte

// newHandler serves the embedded page and schematic, and everything else
// (the compiled bundle) from staticDir.
func newHandler(staticDir string) http.Handler {
	mux := http.NewServeMux()
	static := http.FileServer(http.Dir(staticDir))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/", "/index.html":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(indexHTML)
		case "/vistas.svg":
			w.Header().Set("Content-Type", "image/svg+xml")
			w.Write(vistasSVG)
		default:
			static.ServeHTTP(w, r)
		}
	})

	// Health check
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	return mux
}

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	staticDir := flag.String("static", ".", "Directory to serve static files from")
	flag.Parse()

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("crtscope server starting on http://localhost%s", addr)
	log.Printf("Serving static files from: %s", *staticDir)

	if err := http.ListenAndServe(addr, newHandler(*staticDir)); err != nil {
		log.Fatal(err)
	}
}
