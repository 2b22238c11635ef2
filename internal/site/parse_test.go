package site

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jackielii/folio/internal/config"
)

func TestParseTag(t *testing.T) {
	type result struct {
		method string
		path   string
		title  string
	}
	tests := []struct {
		name     string
		route    string
		expected result
	}{
		{
			name:     "Empty route",
			route:    "",
			expected: result{method: http.MethodGet, path: "/"},
		},
		{
			name:     "Only path",
			route:    "/example",
			expected: result{method: http.MethodGet, path: "/example"},
		},
		{
			name:     "Method and path",
			route:    "GET /projects",
			expected: result{method: http.MethodGet, path: "/projects"},
		},
		{
			name:     "Lower case method",
			route:    "get /about About",
			expected: result{method: http.MethodGet, path: "/about", title: "About"},
		},
		{
			name:     "Method, path, and title",
			route:    "GET / Home Page",
			expected: result{method: http.MethodGet, path: "/", title: "Home Page"},
		},
		{
			name:     "Path and title without method",
			route:    "/contact Contact",
			expected: result{method: http.MethodGet, path: "/contact", title: "Contact"},
		},
		{
			name:     "Invalid method",
			route:    "INVALID /example Invalid Method",
			expected: result{method: http.MethodGet, path: "INVALID", title: "/example Invalid Method"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method, path, title := parseTag(tt.route)
			actual := result{method: method, path: path, title: title}
			if diff := cmp.Diff(tt.expected, actual, cmp.AllowUnexported(result{})); diff != "" {
				t.Errorf("parseTag(%q) mismatch (-want +got):\n%s", tt.route, diff)
			}
		})
	}
}

func TestParseSitePages(t *testing.T) {
	cfg := config.New("/srv/site")
	root, err := parsePageTree("/", sitePages(cfg))
	if err != nil {
		t.Fatalf("parsePageTree: %v", err)
	}

	var got []string
	for _, child := range root.Children {
		got = append(got, child.Method+" "+child.FullRoute()+" "+child.Name)
	}
	want := []string{
		"GET / index",
		"GET /projects projects",
		"GET /about about",
		"GET /resume resume",
		"GET /contact contact",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("routes mismatch (-want +got):\n%s", diff)
	}

	resume := root.Children[3]
	if resume.Attachment != cfg.ResumePath {
		t.Errorf("resume attachment = %q, want %q", resume.Attachment, cfg.ResumePath)
	}
	for _, child := range root.Children {
		if child.Name != "resume" && child.Attachment != "" {
			t.Errorf("page %s has unexpected attachment %q", child.Name, child.Attachment)
		}
	}
}

func TestParsePageTreeErrors(t *testing.T) {
	tests := []struct {
		name  string
		pages []pageEntry
		want  string
	}{
		{
			name:  "missing name",
			pages: []pageEntry{{tag: "GET /a"}},
			want:  "has no name",
		},
		{
			name:  "duplicate name",
			pages: []pageEntry{{name: "a", tag: "GET /a"}, {name: "a", tag: "GET /b"}},
			want:  "duplicate page name",
		},
		{
			name:  "duplicate route",
			pages: []pageEntry{{name: "a", tag: "GET /a"}, {name: "b", tag: "GET /a"}},
			want:  "registered twice",
		},
		{
			name:  "relative route",
			pages: []pageEntry{{name: "a", tag: "GET a"}},
			want:  "must start with /",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePageTree("/", tt.pages)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}
