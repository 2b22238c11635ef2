package site

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
)

// parseTag splits a route tag of the form "[METHOD] /path [Title words]".
// Pages without a method answer GET.
func parseTag(route string) (method, path, title string) {
	method = http.MethodGet
	parts := strings.Fields(route)
	if len(parts) == 0 {
		path = "/"
		return
	}
	if len(parts) == 1 {
		path = parts[0]
		return
	}
	method = strings.ToUpper(parts[0])
	if slices.Contains(validMethod, method) {
		path = parts[1]
		title = strings.Join(parts[2:], " ")
	} else {
		method = http.MethodGet
		path = parts[0]
		title = strings.Join(parts[1:], " ")
	}
	return
}

var validMethod = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodOptions,
	http.MethodTrace,
}

// parsePageTree builds the page tree rooted at route from a page table.
func parsePageTree(route string, pages []pageEntry) (*PageNode, error) {
	root := &PageNode{Name: "root"}
	root.Method, root.Route, root.Title = parseTag(route)

	seen := make(map[string]bool, len(pages))
	routes := make(map[string]bool, len(pages))
	for _, p := range pages {
		if p.name == "" {
			return nil, fmt.Errorf("page with tag %q has no name", p.tag)
		}
		if seen[p.name] {
			return nil, fmt.Errorf("duplicate page name %q", p.name)
		}
		seen[p.name] = true

		node := &PageNode{Name: p.name, Attachment: p.attachment, Parent: root}
		node.Method, node.Route, node.Title = parseTag(p.tag)
		if !strings.HasPrefix(node.Route, "/") {
			return nil, fmt.Errorf("page %s: route %q must start with /", p.name, node.Route)
		}
		key := node.Method + " " + node.FullRoute()
		if routes[key] {
			return nil, fmt.Errorf("page %s: route %s registered twice", p.name, key)
		}
		routes[key] = true

		root.Children = append(root.Children, node)
	}
	return root, nil
}
