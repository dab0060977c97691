// Package blogs holds the handlers for the blog CRUD endpoints. Every route
// in here sits behind the identity gate, so an Identity is always present on
// the request context.
package blogs

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"blog_service/internal/blog"
	"blog_service/internal/http_server/middleware/identity"
	resp "blog_service/internal/lib/api/response"
	sl "blog_service/internal/lib/logger"
	"blog_service/internal/models"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
)

type Response struct {
	resp.Response
	Data models.Blog `json:"data"`
}

type ListResponse struct {
	resp.Response
	Data   []models.Blog `json:"data"`
	Length int           `json:"length,omitempty"`
}

func callerIdentity(w http.ResponseWriter, r *http.Request, log *slog.Logger) (identity.Identity, bool) {
	ident, ok := identity.FromContext(r.Context())
	if !ok {
		log.Error("identity missing from context")

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, resp.Error("internal error"))
	}

	return ident, ok
}

func blogID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Error("invalid blog id"))

		return 0, false
	}

	return id, true
}

func renderBlogErr(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, blog.ErrNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, resp.Error("no blogs found"))
	case errors.Is(err, blog.ErrNotOwner):
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, resp.Error("access denied. not the blog owner."))
	case errors.Is(err, blog.ErrInvalidCategory):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Error("unknown category"))
	default:
		log.Error("blog operation failed", sl.Err(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, resp.Error("internal error"))
	}
}
