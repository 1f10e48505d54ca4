// Package tree holds an owner's folder hierarchy in memory as an arena:
// nodes indexed by id plus a child index, so walks never chase pointers
// and never recurse.
package tree

import "strings"

// Link is the part of a folder the hierarchy needs: who it is, who its
// parent is and what it is called.
type Link struct {
	ID       string
	ParentID *string
	Name     string
}

type Arena struct {
	nodes    map[string]Link
	children map[string][]string
}

// NewArena indexes links. Children keep the order in which links are given.
func NewArena(links []Link) *Arena {
	a := &Arena{
		nodes:    make(map[string]Link, len(links)),
		children: make(map[string][]string),
	}
	for _, l := range links {
		a.nodes[l.ID] = l
	}
	for _, l := range links {
		if l.ParentID != nil {
			a.children[*l.ParentID] = append(a.children[*l.ParentID], l.ID)
		}
	}
	return a
}

func (a *Arena) Has(id string) bool {
	_, ok := a.nodes[id]
	return ok
}

// Subtree returns rootID followed by every descendant, breadth first, so a
// parent always comes before its children. Each id appears once even if the
// stored links contain a cycle. An unknown root yields nil.
func (a *Arena) Subtree(rootID string) []string {
	if !a.Has(rootID) {
		return nil
	}

	visited := map[string]struct{}{rootID: {}}
	order := []string{rootID}
	for i := 0; i < len(order); i++ {
		for _, child := range a.children[order[i]] {
			if _, seen := visited[child]; seen {
				continue
			}
			visited[child] = struct{}{}
			order = append(order, child)
		}
	}
	return order
}

// Ancestors returns the chain from id up to its root, id first. The walk
// stops at a missing parent or at the first repeated id.
func (a *Arena) Ancestors(id string) []string {
	var chain []string
	visited := make(map[string]struct{})
	for cur, ok := a.nodes[id]; ok; cur, ok = a.parentOf(cur) {
		if _, seen := visited[cur.ID]; seen {
			break
		}
		visited[cur.ID] = struct{}{}
		chain = append(chain, cur.ID)
	}
	return chain
}

func (a *Arena) parentOf(l Link) (Link, bool) {
	if l.ParentID == nil {
		return Link{}, false
	}
	p, ok := a.nodes[*l.ParentID]
	return p, ok
}

// Path joins the names from the root down to id with "/". A root folder's
// path is its own name.
func (a *Arena) Path(id string) string {
	chain := a.Ancestors(id)
	names := make([]string, len(chain))
	for i, nodeID := range chain {
		names[len(chain)-1-i] = a.nodes[nodeID].Name
	}
	return strings.Join(names, "/")
}

// Depth is the number of folders from the root down to id, inclusive.
// A root folder has depth 1; an unknown id has depth 0.
func (a *Arena) Depth(id string) int {
	return len(a.Ancestors(id))
}
