package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"flightwarehouse-service/internal/domain/entity"
)

type contextKey string

// userContextKey carries the authenticated account through the request.
const userContextKey contextKey = "user"

// bearerAuth verifies the Authorization bearer token and loads the account
// before any guarded handler runs.
func (s *Server) bearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		header := req.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, fmt.Errorf("%w: missing bearer token", entity.ErrUnauthorized))
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		user, err := s.auth.UserFromToken(req.Context(), token)
		if err != nil {
			writeError(w, err)
			return
		}

		ctx := context.WithValue(req.Context(), userContextKey, user)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// userFromContext returns the authenticated account, if any.
func userFromContext(ctx context.Context) *entity.User {
	user, _ := ctx.Value(userContextKey).(*entity.User)
	return user
}
