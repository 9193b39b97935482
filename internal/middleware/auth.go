package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/polesense/polesense-be/internal/auth"
	"github.com/polesense/polesense-be/internal/http/respond"
)

type subjectKey struct{}

// Subject is the authenticated identity a bearer token asserted.
type Subject struct {
	UserID int64
	Role   string
}

// RequireAuth rejects requests without a valid bearer token and stores the
// asserted subject in the request context.
func RequireAuth(svc *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				respond.Error(w, http.StatusUnauthorized, "Token missing")
				return
			}
			userID, role, err := svc.ValidateToken(token)
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					respond.Error(w, http.StatusUnauthorized, "Token expired")
					return
				}
				respond.Error(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			ctx := context.WithValue(r.Context(), subjectKey{}, Subject{UserID: userID, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SubjectFromContext returns the authenticated subject, if any.
func SubjectFromContext(ctx context.Context) (Subject, bool) {
	subject, ok := ctx.Value(subjectKey{}).(Subject)
	return subject, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
