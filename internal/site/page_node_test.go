package site

import (
	"strings"
	"testing"
)

func testTree() *PageNode {
	top := &PageNode{
		Name:  "Top",
		Route: "/",
		Children: []*PageNode{
			{
				Name:  "Child1",
				Route: "/child1",
				Children: []*PageNode{
					{Name: "GrandChild1", Route: "/g1"},
					{Name: "GrandChild2", Route: "/g2"},
				},
			},
			{Name: "Child2", Route: "/child2", Attachment: "doc.pdf"},
		},
	}
	for _, c := range top.Children {
		c.Parent = top
		for _, g := range c.Children {
			g.Parent = c
		}
	}
	return top
}

func Test_walk(t *testing.T) {
	testNode := testTree()
	expected := []string{"Top", "Child1", "GrandChild1", "GrandChild2", "Child2"}
	t.Run("walk test", func(t *testing.T) {
		items := make([]string, 0)
		walk(testNode, func(p *PageNode) bool {
			items = append(items, p.Name)
			return true
		})
		if len(items) != len(expected) {
			t.Fatalf("Expected %d items, got %d", len(expected), len(items))
		}
		for i, name := range expected {
			if items[i] != name {
				t.Errorf("Expected item %d to be %s, got %s", i, name, items[i])
			}
		}
	})
	t.Run("walk iter all", func(t *testing.T) {
		items := make([]string, 0)
		for n := range testNode.All() {
			items = append(items, n.Name)
		}
		for i, name := range expected {
			if items[i] != name {
				t.Errorf("Expected item %d to be %s, got %s", i, name, items[i])
			}
		}
	})
	t.Run("walk stops early", func(t *testing.T) {
		items := make([]string, 0)
		for n := range testNode.All() {
			items = append(items, n.Name)
			if n.Name == "GrandChild1" {
				break
			}
		}
		if len(items) != 3 {
			t.Errorf("Expected 3 items before break, got %v", items)
		}
	})
}

func TestFullRoute(t *testing.T) {
	top := testTree()
	tests := map[string]string{
		"Top":         "/",
		"Child1":      "/child1",
		"GrandChild2": "/child1/g2",
		"Child2":      "/child2",
	}
	for node := range top.All() {
		want, ok := tests[node.Name]
		if !ok {
			continue
		}
		if got := node.FullRoute(); got != want {
			t.Errorf("%s.FullRoute() = %q, want %q", node.Name, got, want)
		}
	}
}

func TestPageNodeString(t *testing.T) {
	s := testTree().String()
	for _, want := range []string{"name: Top", "child 1:", "    name: GrandChild1", "attachment: doc.pdf"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}
