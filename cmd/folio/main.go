package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jackielii/folio/internal/config"
	"github.com/jackielii/folio/internal/logger"
	"github.com/jackielii/folio/internal/site"
	"github.com/jackielii/folio/internal/view"
	"github.com/jackielii/folio/web"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "folio",
		Usage: "Personal website server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "text",
				Usage:   "Log format (text, json)",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Value:   config.DefaultRoot,
				Usage:   "Application root holding static/ and web/templates/; a relative path is resolved against the working directory, so the resume is looked up at <root>/static/documents/resume.pdf from where folio runs",
				EnvVars: []string{"FOLIO_ROOT"},
			},
			&cli.BoolFlag{
				Name:    "dev",
				Value:   true,
				Usage:   "Reload templates on every request and show error details",
				EnvVars: []string{"FOLIO_DEV"},
			},
		},
		Before: func(c *cli.Context) error {
			level := logger.ParseLevel(c.String("log-level"))
			if c.Bool("dev") && !c.IsSet("log-level") {
				level = slog.LevelDebug
			}
			logger.Setup(level, c.String("log-format"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the web server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Aliases: []string{"a"},
						Value:   config.DefaultAddr,
						Usage:   "HTTP listen address",
						EnvVars: []string{"FOLIO_ADDR"},
					},
				},
				Action: runServe,
			},
			{
				Name:   "routes",
				Usage:  "Print the mounted routes",
				Action: runRoutes,
			},
			{
				Name:  "resume",
				Usage: "Manage the resume document",
				Subcommands: []*cli.Command{
					{
						Name:      "install",
						Usage:     "Install a PDF as the served resume",
						ArgsUsage: "<file.pdf>",
						Action:    runResumeInstall,
					},
				},
			},
		},
		Action: runServe,
	}
}

func siteConfig(c *cli.Context) config.Site {
	return config.New(c.String("root"),
		config.WithAddr(c.String("addr")),
		config.WithDev(c.Bool("dev")),
	)
}

// templateFS picks the on-disk templates in dev mode when they exist, the
// embedded ones otherwise.
func templateFS(cfg config.Site) (fsys fs.FS, reload bool) {
	if cfg.Dev {
		if fi, err := os.Stat(cfg.TemplateDir()); err == nil && fi.IsDir() {
			return os.DirFS(cfg.TemplateDir()), true
		}
	}
	return web.Templates(), false
}

func newSite(cfg config.Site) (*site.Site, error) {
	fsys, reload := templateFS(cfg)
	views, err := view.New(fsys, reload)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	slog.Debug("templates loaded", "pages", views.Names(), "reload", reload)
	return site.New(cfg, views, site.WithLogger(slog.Default()))
}

func runServe(c *cli.Context) error {
	ctx := c.Context
	cfg := siteConfig(c)

	s, err := newSite(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           s,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "server_addr", "http://"+cfg.Addr, "dev", cfg.Dev, "root", cfg.Root, "resume", cfg.ResumePath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func runRoutes(c *cli.Context) error {
	s, err := newSite(siteConfig(c))
	if err != nil {
		return err
	}
	return s.PrintRoutes(c.App.Writer)
}

func runResumeInstall(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("resume install takes one PDF path, got %d arguments", c.NArg())
	}
	src := c.Args().First()
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer f.Close()

	cfg := siteConfig(c)
	if err := site.InstallResume(cfg.ResumePath, f); err != nil {
		return fmt.Errorf("install %s: %w", src, err)
	}
	slog.Info("resume installed", "source", src, "path", cfg.ResumePath)
	return nil
}
