package site

import (
	"fmt"
	"iter"
	"path"
	"strings"
)

// PageNode is one mounted page. The tree is built at startup and read-only
// afterwards.
type PageNode struct {
	Name   string
	Title  string
	Method string
	Route  string

	// Attachment is a file served in place of the template when it exists.
	Attachment string

	Parent   *PageNode
	Children []*PageNode
}

func (pn *PageNode) FullRoute() string {
	if pn.Parent == nil {
		return pn.Route
	}
	return path.Join(pn.Parent.FullRoute(), pn.Route)
}

// All iterates the tree depth first, starting with pn.
func (pn *PageNode) All() iter.Seq[*PageNode] {
	return func(yield func(*PageNode) bool) {
		walk(pn, yield)
	}
}

func walk(pn *PageNode, yield func(*PageNode) bool) bool {
	if !yield(pn) {
		return false
	}
	for _, child := range pn.Children {
		if !walk(child, yield) {
			return false
		}
	}
	return true
}

// String renders the tree, one indented block per child.
func (p PageNode) String() string {
	var sb strings.Builder
	sb.WriteString("PageNode{")
	sb.WriteString("\n  name: " + p.Name)
	sb.WriteString("\n  title: " + p.Title)
	sb.WriteString("\n  method: " + p.Method)
	sb.WriteString("\n  route: " + p.Route)
	if p.Attachment != "" {
		sb.WriteString("\n  attachment: " + p.Attachment)
	}
	for i, child := range p.Children {
		fmt.Fprintf(&sb, "\n  child %d:", i+1)
		childStr := strings.TrimRight(child.String(), "\n")
		for _, line := range strings.SplitAfter(childStr, "\n") {
			sb.WriteString("  " + line)
		}
	}
	sb.WriteString("\n}")
	return sb.String()
}
