// Package config holds the defaults and the immutable site configuration
// handed to the HTTP layer at startup.
package config

import (
	"path/filepath"
	"time"
)

const (
	// DefaultAddr is the development bind address.
	DefaultAddr = "127.0.0.1:5000"

	// DefaultRoot is the application root that templates, static files and
	// the resume are resolved against. Relative roots follow the process
	// working directory, not the binary's location.
	DefaultRoot = "."

	// ResumeRelPath is the resume location relative to the application root.
	ResumeRelPath = "static/documents/resume.pdf"
)

// Site is built once before serving and never mutated afterwards.
type Site struct {
	Root       string
	Addr       string
	Dev        bool
	ResumePath string

	// Now is the clock used for every per-request value derived from time.
	Now func() time.Time
}

// Option customizes a Site during construction.
type Option func(*Site)

// New returns a Site rooted at root with the given options applied.
// An empty root means DefaultRoot.
func New(root string, opts ...Option) Site {
	if root == "" {
		root = DefaultRoot
	}
	s := Site{
		Root:       root,
		Addr:       DefaultAddr,
		ResumePath: filepath.Join(root, filepath.FromSlash(ResumeRelPath)),
		Now:        time.Now,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func WithAddr(addr string) Option {
	return func(s *Site) {
		if addr != "" {
			s.Addr = addr
		}
	}
}

func WithDev(dev bool) Option {
	return func(s *Site) {
		s.Dev = dev
	}
}

// WithClock replaces the wall clock, mostly for tests that need to cross a
// year boundary.
func WithClock(now func() time.Time) Option {
	return func(s *Site) {
		if now != nil {
			s.Now = now
		}
	}
}

// StaticDir is the on-disk static directory under the root.
func (s Site) StaticDir() string {
	return filepath.Join(s.Root, "static")
}

// TemplateDir is the on-disk template directory used in dev mode.
func (s Site) TemplateDir() string {
	return filepath.Join(s.Root, "web", "templates")
}
