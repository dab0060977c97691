package dashboard

import (
	"log/slog"
	"net/http"

	resp "blog_service/internal/lib/api/response"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

// New answers the admin dashboard probe; RequireAdmin has already gated access.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dashboard.New"

		log.Info("admin dashboard requested",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		render.JSON(w, r, resp.OK("welcome to the admin dashboard!"))
	}
}
