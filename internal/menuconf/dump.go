package menuconf

import (
	"strconv"
	"strings"

	"github.com/atomicstack/lcdmenu/internal/format/table"
	"github.com/atomicstack/lcdmenu/internal/menu"
)

// Dump renders the tree under root as aligned "path kind value flags" lines
// in display order.
func Dump(root *menu.Table) []string {
	var rows [][]string
	walk(root, "", map[*menu.Table]bool{}, func(path string, item menu.Item) {
		flags := ""
		if item.Hidden() {
			flags = "hidden"
		}
		rows = append(rows, []string{path, item.Kind().String(), describe(item), flags})
	})
	lines := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight, table.AlignLeft})
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

func walk(t *menu.Table, prefix string, seen map[*menu.Table]bool, fn func(string, menu.Item)) {
	if t == nil || seen[t] {
		return
	}
	seen[t] = true
	defer delete(seen, t)
	for _, item := range t.Items {
		path := item.Label()
		if prefix != "" {
			path = prefix + ":" + path
		}
		fn(path, item)
		if sub, ok := item.(*menu.SubMenu); ok {
			walk(sub.Table, path, seen, fn)
		}
	}
}

func describe(item menu.Item) string {
	switch it := item.(type) {
	case *menu.Toggle:
		return it.Text()
	case *menu.Input:
		return strconv.Quote(it.Value())
	case *menu.List:
		return it.Current()
	case *menu.Progress:
		return it.Display()
	case *menu.SubMenu:
		return strconv.Itoa(it.Table.Len()) + " items"
	}
	return ""
}
