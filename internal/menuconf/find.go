package menuconf

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/lcdmenu/internal/menu"
)

// Find returns the registry node that best matches query. Candidates are
// items reachable through visible submenus; the query is compared against
// both the full colon path ("Setup:Sleep") and the bare label, exact matches
// first, then prefixes, substrings and finally a fuzzy rank.
func Find(root *menu.Table, query string) (*menu.Node, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, false
	}
	reg := menu.BuildRegistry(root)
	nodes := make([]*menu.Node, 0)
	for _, id := range reg.IDs() {
		node, _ := reg.Find(id)
		if reachable(node) {
			nodes = append(nodes, node)
		}
	}
	if len(nodes) == 0 {
		return nil, false
	}

	lower := strings.ToLower(trimmed)
	matchers := []func(*menu.Node) bool{
		func(n *menu.Node) bool { return strings.EqualFold(n.ID, trimmed) },
		func(n *menu.Node) bool { return strings.EqualFold(n.Item.Label(), trimmed) },
		func(n *menu.Node) bool { return strings.HasPrefix(strings.ToLower(n.Item.Label()), lower) },
		func(n *menu.Node) bool { return strings.HasPrefix(strings.ToLower(n.ID), lower) },
		func(n *menu.Node) bool { return strings.Contains(strings.ToLower(n.ID), lower) },
	}
	for _, match := range matchers {
		for _, node := range nodes {
			if match(node) {
				return node, true
			}
		}
	}

	ids := make([]string, len(nodes))
	for i, node := range nodes {
		ids[i] = node.ID
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, ids)
	if len(ranks) == 0 {
		return nil, false
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return nodes[best.OriginalIndex], true
}

// reachable reports whether node and every submenu above it are visible.
func reachable(node *menu.Node) bool {
	for ; node != nil && !node.IsRoot(); node = node.Parent {
		if node.Item.Hidden() {
			return false
		}
	}
	return node != nil
}
