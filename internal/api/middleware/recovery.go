package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/blaisecz/habit-tracker/pkg/problem"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Recovery recovers from panics and returns a 500 error
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				log.Printf("[http] panic recovered req=%s: %v\n%s", chimw.GetReqID(r.Context()), err, debug.Stack())
				problem.InternalError("An unexpected error occurred").WithInstance(r.URL.Path).Write(w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
