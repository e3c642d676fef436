package middleware

import (
	"net/http"

	"github.com/tuanvumaihuynh/coffee-store/pkg/correlationid"
)

// CorrelationID propagates the X-Correlation-ID header into the request
// context, generating one when the client did not send it. The id is echoed
// back on the response.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(correlationid.Header)
			if id == "" {
				id = correlationid.New()
			}

			w.Header().Set(correlationid.Header, id)
			ctx := correlationid.NewContext(r.Context(), id)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
