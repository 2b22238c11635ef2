package site

import (
	"net/http"
	"strings"

	"github.com/angelofallars/htmx-go"

	"github.com/jackielii/folio/internal/view"
)

// contentTarget is the id of the element navigation links swap into.
const contentTarget = "content"

// pageBlock picks the template block for r.
//
//   - plain request -> full page
//   - htmx request targeting #content -> content block only
//   - any other htmx request -> full page, retargeted at body
func pageBlock(r *http.Request) (block view.Block, retarget bool) {
	if !htmx.IsHTMX(r) {
		return view.BlockPage, false
	}
	if strings.TrimPrefix(r.Header.Get("HX-Target"), "#") == contentTarget {
		return view.BlockContent, false
	}
	return view.BlockPage, true
}

func writeRetarget(w http.ResponseWriter) error {
	return htmx.NewResponse().Retarget("body").Write(w)
}

// writeRedirect makes htmx load target as a full page.
func writeRedirect(w http.ResponseWriter, target string) error {
	return htmx.NewResponse().Redirect(target).StatusCode(http.StatusNoContent).Write(w)
}
