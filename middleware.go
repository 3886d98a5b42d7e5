package main

import (
	"fmt"
	"net/http"
)

// recoverJSON is the last-resort failure policy: any panic escaping a handler
// is logged and answered as a 500 with the usual {error} body.
func recoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Errorf("panic on %s %s: %v", r.Method, r.URL.Path, rec)
				errorJSON(w, http.StatusInternalServerError, fmt.Sprint(rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
