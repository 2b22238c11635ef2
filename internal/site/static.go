package site

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jackielii/folio/web"
)

// mountStatic serves fsys under prefix. The bare prefix redirects to prefix/.
func mountStatic(r chi.Router, prefix string, fsys fs.FS) error {
	if strings.ContainsAny(prefix, "{}*") {
		return fmt.Errorf("static prefix %q: must be a plain path", prefix)
	}
	prefix = strings.TrimSuffix(prefix, "/")
	r.Get(prefix, http.RedirectHandler(prefix+"/", http.StatusMovedPermanently).ServeHTTP)
	r.Get(prefix+"/*", http.StripPrefix(prefix, http.FileServerFS(fsys)).ServeHTTP)
	return nil
}

// layeredFS opens a name from the first layer that has it. Only
// fs.ErrNotExist moves on to the next layer.
type layeredFS []fs.FS

func (l layeredFS) Open(name string) (fs.File, error) {
	err := error(&fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist})
	for _, layer := range l {
		var f fs.File
		f, err = layer.Open(name)
		if err == nil || !errors.Is(err, fs.ErrNotExist) {
			return f, err
		}
	}
	return nil, err
}

// staticFS layers the static directory under the root over the embedded
// assets, so files installed on disk never hide the built-in ones.
func (s *Site) staticFS() fs.FS {
	return layeredFS{os.DirFS(s.cfg.StaticDir()), web.Static()}
}
