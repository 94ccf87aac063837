// Package middleware holds HTTP middleware shared by the crispralign REST
// API, in the same func(http.Handler) http.Handler idiom as chi's own
// middleware package.
package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Logger logs one line per request: method, path, status, and duration.
// It relies on chimiddleware.RequestID/RealIP having already run so the
// request-scoped values it reads are populated.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		reqID := middleware.GetReqID(r.Context())
		log.Printf("%s %s %d %s %s (req_id=%s)",
			r.Method, r.URL.Path, ww.Status(), r.RemoteAddr, time.Since(start), reqID)
	})
}
