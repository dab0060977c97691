package blogs

import (
	"log/slog"
	"net/http"

	"blog_service/internal/blog"
	resp "blog_service/internal/lib/api/response"
	sl "blog_service/internal/lib/logger"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

// EditRequest carries a partial update; absent fields keep their old value.
type EditRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

func Edit(log *slog.Logger, svc *blog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blogs.Edit"

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

		var req EditRequest

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("failed to decode request"))

			return
		}

		b, err := svc.Edit(r.Context(), id, ident.AccountID, ident.Role, req.Title, req.Content, req.Category)
		if err != nil {
			renderBlogErr(w, r, log, err)
			return
		}

		render.JSON(w, r, Response{
			Response: resp.OK("blog edited successfully!"),
			Data:     b,
		})
	}
}
