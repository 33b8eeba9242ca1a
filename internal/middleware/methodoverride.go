package middleware

import (
	"net/http"
	"strings"
)

// MethodOverride lets HTML forms reach PUT and DELETE routes: a POST carrying
// a _method field is rewritten to that method before routing. Only the two
// form-unreachable methods are honored.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			override := strings.ToUpper(r.PostFormValue("_method"))
			if override == http.MethodPut || override == http.MethodDelete {
				r.Method = override
			}
		}
		next.ServeHTTP(w, r)
	})
}
