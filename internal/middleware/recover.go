package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Recoverer returns middleware that catches panics from downstream handlers
// and turns them into a 500 response.
//
// WHY NOT chi's Recoverer?
// Chi's built-in recoverer replies with a plain-text body. This API promises
// JSON on every path — including crashes — so we render the standard error
// envelope instead. The panic value and stack go to the log, never to the
// client.
func Recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					// http.ErrAbortHandler is the sanctioned way to abort a
					// response — re-panic so the server suppresses logging.
					if rec == http.ErrAbortHandler {
						panic(rec)
					}

					logger.Error("panic recovered",
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.Any("panic", rec),
						slog.String("stack", string(debug.Stack())),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					// Hand-rolled body: if we panicked mid-encode elsewhere,
					// json.Marshal here could fail too. A literal cannot.
					_, _ = w.Write([]byte(`{"status":"error","description":"internal server error"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
