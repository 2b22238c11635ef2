package site

import (
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
)

// PrintRoutes writes the mounted routes, one per line, sorted by pattern.
// Page routes are followed by the page title.
func (s *Site) PrintRoutes(w io.Writer) error {
	titles := make(map[string]string)
	for node := range s.root.All() {
		if node != s.root {
			titles[node.Method+" "+node.FullRoute()] = node.Title
		}
	}

	var lines []string
	err := chi.Walk(s.mux, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		line := fmt.Sprintf("%-6s %s", method, route)
		if title := titles[method+" "+route]; title != "" {
			line += "  " + title
		}
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk routes: %w", err)
	}
	slices.SortFunc(lines, func(a, b string) int {
		return strings.Compare(strings.Fields(a)[1], strings.Fields(b)[1])
	})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
