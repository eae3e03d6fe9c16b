package middleware

import (
	"net/http"

	"meteopage/internal/platform/locale"
)

// Locale negotiates Accept-Language once per request and stores it on the context
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := locale.Match(r.Header.Get("Accept-Language"))
		w.Header().Add("Vary", "Accept-Language")
		next.ServeHTTP(w, r.WithContext(locale.WithLocale(r.Context(), l)))
	})
}
