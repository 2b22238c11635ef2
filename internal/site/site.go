package site

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jackielii/folio/internal/config"
	"github.com/jackielii/folio/internal/content"
	"github.com/jackielii/folio/internal/view"
)

// MiddlewareFunc wraps a page handler. It receives the node being mounted.
type MiddlewareFunc = func(http.Handler, *PageNode) http.Handler

// Site is the mounted website. It is immutable once New returns.
type Site struct {
	cfg         config.Site
	views       *view.Templates
	content     any
	log         *slog.Logger
	root        *PageNode
	onError     func(http.ResponseWriter, *http.Request, error)
	middlewares []MiddlewareFunc
	mux         *chi.Mux
}

type Option func(*Site)

// WithErrorHandler replaces the handler that turns render and file errors
// into a response.
func WithErrorHandler(onError func(http.ResponseWriter, *http.Request, error)) Option {
	return func(s *Site) {
		s.onError = onError
	}
}

// WithMiddlewares appends page middlewares. They run in the order given,
// before the built-in ones.
func WithMiddlewares(middlewares ...MiddlewareFunc) Option {
	return func(s *Site) {
		s.middlewares = append(s.middlewares, middlewares...)
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Site) {
		if l != nil {
			s.log = l
		}
	}
}

// WithContent replaces the copy handed to templates as .Content.
func WithContent(c any) Option {
	return func(s *Site) {
		s.content = c
	}
}

// New parses the page table and mounts every page, the static file server
// and the request middleware on a fresh chi router.
func New(cfg config.Site, views *view.Templates, options ...Option) (*Site, error) {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	s := &Site{
		cfg:     cfg,
		views:   views,
		content: content.Default,
		log:     slog.Default(),
	}
	s.onError = s.defaultErrorHandler
	for _, opt := range options {
		opt(s)
	}

	root, err := parsePageTree("/", sitePages(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse pages: %w", err)
	}
	s.root = root
	s.log.Debug("page tree parsed", "tree", root.String())

	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(requestLogger(s.log))
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.GetHead)

	if err := s.MountPages(NewChiRouter(mux)); err != nil {
		return nil, err
	}
	if err := mountStatic(mux, "/static", s.staticFS()); err != nil {
		return nil, err
	}
	s.mux = mux
	return s, nil
}

// MountPages registers every page of the tree on router.
func (s *Site) MountPages(router Router) error {
	// first listed runs first; the built-in ones sit closest to the page
	chain := append(slices.Clone(s.middlewares), withPageTree(s.root), withYear(s.cfg.Now))
	for _, page := range s.root.Children {
		if page.Route == "" {
			return fmt.Errorf("page %s: empty route", page.Name)
		}
		handler := s.buildHandler(page)
		for i := len(chain) - 1; i >= 0; i-- {
			handler = chain[i](handler, page)
		}
		router.HandleMethod(page.Method, page.FullRoute(), handler)
	}
	return nil
}

func (s *Site) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Site) buildHandler(page *PageNode) http.Handler {
	render := s.renderHandler(page)
	if page.Attachment != "" {
		return s.attachmentHandler(page, render)
	}
	return render
}

func (s *Site) renderHandler(page *PageNode) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		block, retarget := pageBlock(r)
		data := view.Data{
			Title:       page.Title,
			Page:        page.Name,
			CurrentYear: CurrentYear(r.Context()),
			Nav:         navLinks(r.Context(), page.Name),
			Content:     s.content,
		}

		buf := getBuffer()
		defer releaseBuffer(buf)
		comp := s.views.Component(page.Name, block, data)
		if err := comp.Render(r.Context(), buf); err != nil {
			s.onError(w, r, fmt.Errorf("render page %s: %w", page.Name, err))
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if retarget {
			if err := writeRetarget(w); err != nil {
				s.onError(w, r, err)
				return
			}
		}
		if _, err := w.Write(buf.Bytes()); err != nil {
			s.log.DebugContext(r.Context(), "write response", "path", r.URL.Path, "error", err)
		}
	})
}

func (s *Site) defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	msg := http.StatusText(http.StatusInternalServerError)
	if s.cfg.Dev {
		msg += "\n\n" + err.Error()
	}
	http.Error(w, msg, http.StatusInternalServerError)
}
