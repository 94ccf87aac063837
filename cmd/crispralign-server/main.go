// Command crispralign-server provides a REST API for crispralign
// operations.
//
// Usage:
//
//	crispralign-server [options]
//
// Options:
//
//	-port     Port to listen on (default: 8080)
//	-host     Host to bind to (default: localhost)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/helixforge/crispralign/api/handlers"
	"github.com/helixforge/crispralign/api/middleware"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	host := flag.String("host", "localhost", "Host to bind to")
	flag.Parse()

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/align", handlers.AlignHandler)
		r.Post("/variants", handlers.VariantsHandler)
		r.Post("/homology", handlers.HomologyHandler)
		r.Post("/batch", handlers.BatchHandler)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>crispralign API</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; }
        h1 { color: #2563eb; }
        pre { background: #f3f4f6; padding: 1rem; border-radius: 0.5rem; overflow-x: auto; }
        .endpoint { margin: 1rem 0; padding: 1rem; border: 1px solid #e5e7eb; border-radius: 0.5rem; }
        .method { display: inline-block; padding: 0.25rem 0.5rem; background: #10b981; color: white; border-radius: 0.25rem; font-size: 0.875rem; }
    </style>
</head>
<body>
    <h1>crispralign API</h1>
    <p>A REST API for CRISPR editing-outcome alignment analysis.</p>

    <h2>Endpoints</h2>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/align</code>
        <p>Globally align a read against a reference with affine gap penalties and a gap incentive.</p>
        <pre>{"read": "ATCGAATCG", "reference": "ATCGATCG"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/variants</code>
        <p>Extract insertion/deletion/substitution calls from an aligned pair.</p>
        <pre>{"aligned_ref": "ATCG-ATCG", "aligned_read": "ATCGAATCG"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/homology</code>
        <p>Compute position-wise identity of two equal-length strings.</p>
        <pre>{"a": "ATCGATCG", "b": "ATCGATCG"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/batch</code>
        <p>Align and summarize editing outcomes across many read/reference pairs.</p>
        <pre>{"pairs": [{"read": "ATCGAATCG", "reference": "ATCGATCG"}]}</pre>
    </div>

    <p>For more information, see: https://github.com/helixforge/crispralign</p>
</body>
</html>`))
	})

	addr := fmt.Sprintf("%s:%d", *host, *port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shutdown: %v\n", err)
		}
		close(done)
	}()

	log.Printf("crispralign API server starting on http://%s\n", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", addr, err)
	}

	<-done
	log.Println("Server stopped")
}
