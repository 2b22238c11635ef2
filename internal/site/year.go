package site

import (
	"context"
	"net/http"
	"time"

	"github.com/jackielii/ctxkey"
)

var yearCtx = ctxkey.New[int]("folio.currentYear", 0)

// withYear stores the clock's calendar year in the request context. It runs
// on every request; the value is never cached.
func withYear(now func() time.Time) MiddlewareFunc {
	return func(next http.Handler, _ *PageNode) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := yearCtx.WithValue(r.Context(), now().Year())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentYear returns the year injected for the request, or 0 outside a page
// handler.
func CurrentYear(ctx context.Context) int {
	return yearCtx.Value(ctx)
}
