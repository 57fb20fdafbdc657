package middleware

import (
	"context"
	"net/http"

	"github.com/Yaseeru/glowgroove/internal/entities"
)

const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

type principalKey struct{}

// Principal extracts the authenticated identity injected by the auth
// gateway. It never rejects: routes that require a principal check for
// one themselves, the webhook route does not.
func Principal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(headerUserID)
		if userID == "" {
			next.ServeHTTP(w, r)
			return
		}

		role := entities.Role(r.Header.Get(headerUserRole))
		if role != entities.RoleAdmin {
			role = entities.RoleUser
		}

		ctx := context.WithValue(r.Context(), principalKey{}, entities.Principal{
			ID:   userID,
			Role: role,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func PrincipalFromContext(ctx context.Context) (entities.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(entities.Principal)
	return p, ok
}
