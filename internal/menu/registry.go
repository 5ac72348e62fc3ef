package menu

import "sort"

// Node is a registry entry for one item of a menu tree. Path lists the item
// index at each level, starting from the root table. Parent is the node of
// the submenu holding the item, or the registry root for top-level items.
type Node struct {
	ID       string
	Item     Item
	Path     []int
	Parent   *Node
	Children map[string]*Node
}

// Registry indexes a menu tree by colon-joined label paths such as
// "Setup:Backlight".
type Registry struct {
	root  *Node
	nodes map[string]*Node
}

// BuildRegistry walks root and every nested submenu table. Labels that repeat
// within one table keep the first occurrence.
func BuildRegistry(root *Table) *Registry {
	r := &Registry{
		root:  &Node{ID: "root", Children: make(map[string]*Node)},
		nodes: make(map[string]*Node),
	}
	r.nodes["root"] = r.root
	r.walk(r.root, root, "", nil, make(map[*Table]bool))
	return r
}

func (r *Registry) walk(parent *Node, table *Table, prefix string, path []int, seen map[*Table]bool) {
	if table == nil || seen[table] {
		return
	}
	seen[table] = true
	defer delete(seen, table)
	for i, item := range table.Items {
		id := item.Label()
		if prefix != "" {
			id = prefix + ":" + id
		}
		if _, ok := r.nodes[id]; ok {
			continue
		}
		node := &Node{
			ID:       id,
			Item:     item,
			Path:     append(append([]int(nil), path...), i),
			Parent:   parent,
			Children: make(map[string]*Node),
		}
		r.nodes[id] = node
		parent.Children[item.Label()] = node
		if sub, ok := item.(*SubMenu); ok {
			r.walk(node, sub.Table, id, node.Path, seen)
		}
	}
}

// Root returns the registry root node.
func (r *Registry) Root() *Node {
	return r.root
}

// Find locates a node by ID.
func (r *Registry) Find(id string) (*Node, bool) {
	node, ok := r.nodes[id]
	if !ok || node == r.root {
		return nil, false
	}
	return node, ok
}

// Child resolves a child node under the given parent for the provided key.
func (r *Registry) Child(parentID, key string) (*Node, bool) {
	parent, ok := r.nodes[parentID]
	if !ok {
		return nil, false
	}
	node, ok := parent.Children[key]
	return node, ok
}

// IDs returns every item ID in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.nodes))
	for id, node := range r.nodes {
		if node == r.root {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsRoot reports whether n is the registry root.
func (n *Node) IsRoot() bool {
	return n != nil && n.Item == nil
}
