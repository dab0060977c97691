package blogs

import (
	"log/slog"
	"net/http"

	"blog_service/internal/blog"
	resp "blog_service/internal/lib/api/response"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

func Get(log *slog.Logger, svc *blog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blogs.Get"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, ok := blogID(w, r)
		if !ok {
			return
		}

		b, err := svc.Blog(r.Context(), id)
		if err != nil {
			renderBlogErr(w, r, log, err)
			return
		}

		render.JSON(w, r, Response{
			Response: resp.OK("blog fetched successfully!"),
			Data:     b,
		})
	}
}
