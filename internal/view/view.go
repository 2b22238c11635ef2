// Package view compiles the page templates once per template set and exposes
// each page as a templ.Component.
//
// A template directory holds shared files prefixed with an underscore
// (layout, nav, footer) and one file per page. Every page file is parsed on
// top of a fresh clone of the shared files, so each page can define its own
// "title" and "content" blocks.
package view

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/a-h/templ"
)

// ErrTemplateNotFound is returned when a page has no compiled template.
var ErrTemplateNotFound = errors.New("template not found")

// Block names the template executed for a render.
type Block string

const (
	// BlockPage renders the full document through the shared layout.
	BlockPage Block = "layout"
	// BlockContent renders only the page body, for partial swaps.
	BlockContent Block = "content"
)

// Link is a navigation entry.
type Link struct {
	Name   string
	Title  string
	URL    string
	Active bool
}

// Data is the per-render template context.
type Data struct {
	Title       string
	Page        string
	CurrentYear int
	Nav         []Link
	Content     any
}

// URL returns the route of the named page, or "#" when it is not in the
// navigation.
func (d Data) URL(name string) string {
	for _, l := range d.Nav {
		if l.Name == name {
			return l.URL
		}
	}
	return "#"
}

// Set maps a page name to its compiled template.
type Set map[string]*template.Template

// Parse compiles every page in fsys.
func Parse(fsys fs.FS) (Set, error) {
	files, err := fs.Glob(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	var shared, pages []string
	for _, f := range files {
		if strings.HasPrefix(path.Base(f), "_") {
			shared = append(shared, f)
		} else {
			pages = append(pages, f)
		}
	}

	base := template.New("")
	if len(shared) > 0 {
		if base, err = base.ParseFS(fsys, shared...); err != nil {
			return nil, fmt.Errorf("parse shared templates: %w", err)
		}
	}

	set := make(Set, len(pages))
	for _, p := range pages {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone shared templates for %s: %w", p, err)
		}
		if t, err = t.ParseFS(fsys, p); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		set[strings.TrimSuffix(p, ".html")] = t
	}
	return set, nil
}

// Templates serves compiled pages. With reload set, the directory is parsed
// again for every render so edits show up without a restart.
type Templates struct {
	fsys   fs.FS
	reload bool
	set    Set
}

// New parses fsys once up front, so a broken template fails at startup in
// both modes.
func New(fsys fs.FS, reload bool) (*Templates, error) {
	set, err := Parse(fsys)
	if err != nil {
		return nil, err
	}
	return &Templates{fsys: fsys, reload: reload, set: set}, nil
}

// Names lists the compiled pages in sorted order.
func (t *Templates) Names() []string {
	names := make([]string, 0, len(t.set))
	for name := range t.set {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (t *Templates) lookup(name string) (*template.Template, error) {
	set := t.set
	if t.reload {
		var err error
		if set, err = Parse(t.fsys); err != nil {
			return nil, err
		}
	}
	tpl, ok := set[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return tpl, nil
}

// Component returns the page as a templ.Component. Lookup happens at render
// time, so a missing page surfaces as a Render error.
func (t *Templates) Component(name string, block Block, data Data) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tpl, err := t.lookup(name)
		if err != nil {
			return err
		}
		if err := tpl.ExecuteTemplate(w, string(block), data); err != nil {
			return fmt.Errorf("render %s (%s): %w", name, block, err)
		}
		return nil
	})
}
