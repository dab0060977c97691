package identity

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	resp "blog_service/internal/lib/api/response"
	jwtlib "blog_service/internal/lib/jwt"
	sl "blog_service/internal/lib/logger"
	"blog_service/internal/models"
	"blog_service/internal/storage"

	"github.com/go-chi/render"
)

type contextKey struct{}

// Identity is the resolved caller, attached to the request context once the
// token has been verified and the account looked up.
type Identity struct {
	AccountID int64
	Role      models.Role
}

type TokenVerifier interface {
	Verify(token string) (jwtlib.Claims, error)
}

type AccountProvider interface {
	AccountByID(ctx context.Context, id int64) (models.Account, error)
}

// New builds the identity gate. Per request it extracts the bearer token,
// verifies it, resolves the account, and attaches the identity. It never
// refreshes or rotates the token.
func New(log *slog.Logger, tokens TokenVerifier, accounts AccountProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middleware.identity.New"

			log := log.With(slog.String("op", op))

			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, resp.Error("authorization token is required"))

				return
			}

			claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				log.Info("token rejected", sl.Err(err))

				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, resp.Error("invalid or expired token"))

				return
			}

			account, err := accounts.AccountByID(r.Context(), claims.AccountID)
			if err != nil {
				if errors.Is(err, storage.ErrAccountNotFound) {
					render.Status(r, http.StatusNotFound)
					render.JSON(w, r, resp.Error("user not found"))

					return
				}

				log.Error("failed to resolve account", sl.Err(err))

				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, resp.Error("internal error"))

				return
			}

			ident := Identity{
				AccountID: account.ID,
				Role:      account.Role,
			}

			ctx := context.WithValue(r.Context(), contextKey{}, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin must run after New; it rejects callers without the ADMIN role.
func RequireAdmin(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middleware.identity.RequireAdmin"

			ident, ok := FromContext(r.Context())
			if !ok {
				log.Error("identity missing from context", slog.String("op", op))

				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, resp.Error("internal error"))

				return
			}

			if ident.Role != models.RoleAdmin {
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, resp.Error("access denied. admins only."))

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func FromContext(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(contextKey{}).(Identity)
	return ident, ok
}
