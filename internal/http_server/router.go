package httpserver

import (
	"log/slog"

	"blog_service/internal/auth"
	"blog_service/internal/blog"
	"blog_service/internal/http_server/handlers/blogs"
	"blog_service/internal/http_server/handlers/dashboard"
	"blog_service/internal/http_server/handlers/getuser"
	"blog_service/internal/http_server/handlers/signin"
	"blog_service/internal/http_server/handlers/signup"
	"blog_service/internal/http_server/middleware/identity"
	rateLimit "blog_service/internal/http_server/middleware/ratelimit"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator/v10"
)

// New wires every endpoint. Everything under /api except signUp and signIn
// sits behind the identity gate; the admin dashboard additionally requires
// the ADMIN role.
func New(
	log *slog.Logger,
	authService *auth.Auth,
	blogService *blog.Service,
	accounts identity.AccountProvider,
	tokens identity.TokenVerifier,
	events signup.EventPublisher,
) *chi.Mux {
	validate := validator.New()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.With(rateLimit.SignUp()).Post("/signUp", signup.New(log, validate, authService, events))
		r.With(rateLimit.SignIn()).Post("/signIn", signin.New(log, validate, authService))

		r.Group(func(r chi.Router) {
			r.Use(identity.New(log, tokens, accounts))

			r.Get("/getuser", getuser.New(log, authService))

			r.Group(func(r chi.Router) {
				r.Use(identity.RequireAdmin(log))
				r.Get("/admin/dashboard", dashboard.New(log))
			})

			r.Route("/blogs", func(r chi.Router) {
				r.Post("/create", blogs.Create(log, validate, blogService))
				r.Get("/myBlogs", blogs.My(log, blogService))
				r.Get("/allBlogs", blogs.All(log, blogService))
				r.Get("/{id}", blogs.Get(log, blogService))
				r.Put("/edit/{id}", blogs.Edit(log, blogService))
				r.Delete("/delete/{id}", blogs.Delete(log, blogService))
			})
		})
	})

	return r
}
