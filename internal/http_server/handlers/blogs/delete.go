package blogs

import (
	"log/slog"
	"net/http"

	"blog_service/internal/blog"
	resp "blog_service/internal/lib/api/response"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

func Delete(log *slog.Logger, svc *blog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blogs.Delete"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ident, ok := callerIdentity(w, r, log)
		if !ok {
			return
		}

		id, ok := blogID(w, r)
		if !ok {
			return
		}

		b, err := svc.Delete(r.Context(), id, ident.AccountID, ident.Role)
		if err != nil {
			renderBlogErr(w, r, log, err)
			return
		}

		render.JSON(w, r, Response{
			Response: resp.OK("blog deleted successfully!"),
			Data:     b,
		})
	}
}
