package http

import (
	"net/http"
	"strings"

	"github.com/sydqwycs/dajiexiaoxiang/internal/core/domain"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/ports"
)

// RequireAdmin gates the admin mutations behind the shared-credential token.
func RequireAdmin(auth ports.AdminAuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeError(w, domain.ErrUnauthorized)
				return
			}

			if err := auth.Verify(token); err != nil {
				writeError(w, domain.ErrUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
