package site

import (
	"context"
	"net/http"

	"github.com/jackielii/ctxkey"

	"github.com/jackielii/folio/internal/view"
)

var pagesCtx = ctxkey.New[*PageNode]("folio.pages", nil)

func withPageTree(root *PageNode) MiddlewareFunc {
	return func(next http.Handler, _ *PageNode) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := pagesCtx.WithValue(r.Context(), root)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// navLinks lists the pages mounted under the tree in ctx, marking current.
func navLinks(ctx context.Context, current string) []view.Link {
	root := pagesCtx.Value(ctx)
	if root == nil {
		return nil
	}
	links := make([]view.Link, 0, len(root.Children))
	for _, child := range root.Children {
		links = append(links, view.Link{
			Name:   child.Name,
			Title:  child.Title,
			URL:    child.FullRoute(),
			Active: child.Name == current,
		})
	}
	return links
}
