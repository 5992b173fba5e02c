package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/nextlayer-studio/storefront-backend/pkg/logger"
)

const cartSessionHeader = "X-Cart-Session"

// CartSession resolves the shopper's cart slot key. Clients that have not
// picked a session yet get a fresh uuid minted and echoed back; they are
// expected to send it on every later cart call.
func CartSession(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := strings.TrimSpace(r.Header.Get(cartSessionHeader))
			if session == "" {
				session = uuid.NewString()
			}

			w.Header().Set(cartSessionHeader, session)

			ctx := WithCartSession(r.Context(), session)
			if logg != nil {
				ctx = logg.WithCartSession(ctx, session)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
