package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"sitenav/internal/auth"
	"sitenav/internal/httputil"
)

// OptionalAuth reads a bearer token when one is present. A valid token puts
// the user id and site role into the request context; an invalid one is
// rejected with 401. Requests without a token continue as visitors.
// A nil verifier disables token checks entirely.
func OptionalAuth(verifier auth.JWTVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || verifier == nil {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				httputil.RespondError(w, r, http.StatusUnauthorized, "authorization header must use the Bearer scheme")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				logger.Debug("rejected bearer token",
					"path", r.URL.Path,
					"request_id", httputil.GetRequestID(r.Context()),
				)
				httputil.RespondError(w, r, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, httputil.WithUser(r, claims.GetUserID(), claims.SiteRole()))
		})
	}
}
