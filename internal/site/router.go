package site

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router is the registration surface pages are mounted on.
type Router interface {
	HandleMethod(method, pattern string, handler http.Handler)
}

type chiRouter struct {
	router chi.Router
}

// NewChiRouter adapts r to Router.
func NewChiRouter(r chi.Router) *chiRouter {
	return &chiRouter{router: r}
}

func (r *chiRouter) HandleMethod(method, pattern string, handler http.Handler) {
	r.router.Method(method, pattern, handler)
}
