package blogs

import (
	"log/slog"
	"net/http"

	"blog_service/internal/blog"
	resp "blog_service/internal/lib/api/response"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

// My lists the caller's own posts.
func My(log *slog.Logger, svc *blog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blogs.My"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ident, ok := callerIdentity(w, r, log)
		if !ok {
			return
		}

		list, err := svc.ByAuthor(r.Context(), ident.AccountID)
		if err != nil {
			renderBlogErr(w, r, log, err)
			return
		}

		if len(list) == 0 {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, resp.Error("no blogs found"))

			return
		}

		render.JSON(w, r, ListResponse{
			Response: resp.OK("blogs fetched successfully"),
			Data:     list,
		})
	}
}

// All lists every post for the public feed.
func All(log *slog.Logger, svc *blog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blogs.All"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		list, err := svc.All(r.Context())
		if err != nil {
			renderBlogErr(w, r, log, err)
			return
		}

		if len(list) == 0 {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, resp.Error("no blogs found"))

			return
		}

		render.JSON(w, r, ListResponse{
			Response: resp.OK("blogs fetched successfully"),
			Data:     list,
			Length:   len(list),
		})
	}
}
