package middlewares

import (
	"fmt"
	"net/http"

	"github.com/saulo-duarte/quizbank-lambda/internal/apperror"
	"github.com/saulo-duarte/quizbank-lambda/internal/config"
)

const allowedHeaders = "Authorization, Content-Type"

// Cors sets permissive cross-origin headers naming the given methods on every
// response, including rejections, and answers preflight requests directly.
func Cors(methods string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Headers", allowedHeaders)
			h.Set("Access-Control-Allow-Methods", methods)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Recover turns a panic into the standard 500 JSON body.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				config.Error(w, r, apperror.Internal("unexpected failure", fmt.Errorf("%v", rec)))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
