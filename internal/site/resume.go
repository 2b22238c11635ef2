package site

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/angelofallars/htmx-go"
	"github.com/natefinch/atomic"
)

type responseKind int

const (
	renderFallback responseKind = iota
	serveFile
)

func (k responseKind) String() string {
	switch k {
	case serveFile:
		return "file"
	default:
		return "fallback"
	}
}

// attachmentResponse maps the existence of a page attachment to what the
// page sends.
func attachmentResponse(exists bool) responseKind {
	if exists {
		return serveFile
	}
	return renderFallback
}

// fileExists reports whether name exists. Only fs.ErrNotExist counts as
// absent; any other stat failure is returned.
func fileExists(name string) (bool, error) {
	_, err := os.Stat(name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// attachmentHandler serves page.Attachment when it exists and fallback
// otherwise. Errors other than absence go to the error handler.
func (s *Site) attachmentHandler(page *PageNode, fallback http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		exists, err := fileExists(page.Attachment)
		if err != nil {
			s.onError(w, r, fmt.Errorf("check %s attachment: %w", page.Name, err))
			return
		}
		kind := attachmentResponse(exists)
		s.log.DebugContext(r.Context(), "attachment lookup", "page", page.Name, "response", kind.String())
		switch kind {
		case serveFile:
			if htmx.IsHTMX(r) {
				// a swap cannot show a file; send the browser to it instead
				if err := writeRedirect(w, r.URL.Path); err != nil {
					s.onError(w, r, err)
				}
				return
			}
			if err := serveAttachment(w, r, page.Attachment); err != nil {
				s.onError(w, r, fmt.Errorf("serve %s attachment: %w", page.Name, err))
			}
		default:
			fallback.ServeHTTP(w, r)
		}
	})
}

// serveAttachment streams name with a content type derived from its file
// name. Nothing is written to w when it returns an error.
func serveAttachment(w http.ResponseWriter, r *http.Request, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return err
	}
	if fi.IsDir() {
		return fmt.Errorf("%s is a directory", name)
	}
	http.ServeContent(w, r, fi.Name(), fi.ModTime(), f)
	return nil
}

// ErrNotPDF is returned by InstallResume for input without the PDF header.
var ErrNotPDF = errors.New("not a PDF document")

const pdfMagic = "%PDF-"

// InstallResume atomically replaces the file at dst with the PDF read from
// src, creating parent directories as needed. A failed install leaves any
// existing file untouched.
func InstallResume(dst string, src io.Reader) error {
	br := bufio.NewReader(src)
	head, err := br.Peek(len(pdfMagic))
	switch {
	case errors.Is(err, io.EOF):
		return ErrNotPDF
	case err != nil:
		return fmt.Errorf("read resume: %w", err)
	case string(head) != pdfMagic:
		return ErrNotPDF
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create resume directory: %w", err)
	}
	if err := atomic.WriteFile(dst, br); err != nil {
		return fmt.Errorf("write resume: %w", err)
	}
	if err := os.Chmod(dst, 0o644); err != nil {
		return fmt.Errorf("chmod resume: %w", err)
	}
	return nil
}
