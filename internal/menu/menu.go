package menu

// Kind tags the closed set of item variants the engine knows how to drive.
type Kind int

const (
	KindCommand Kind = iota
	KindToggle
	KindInput
	KindList
	KindProgress
	KindSubMenu
)

var kindNames = [...]string{
	KindCommand:  "command",
	KindToggle:   "toggle",
	KindInput:    "input",
	KindList:     "list",
	KindProgress: "progress",
	KindSubMenu:  "submenu",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a lower-case kind name.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Item is the capability set every menu entry exposes. Type-specific
// behaviour is reached by switching on the concrete variant.
type Item interface {
	Kind() Kind
	Label() string
	Hidden() bool
	SetHidden(hidden bool)
}

type base struct {
	label  string
	hidden bool
}

func (b *base) Label() string         { return b.label }
func (b *base) Hidden() bool          { return b.hidden }
func (b *base) SetHidden(hidden bool) { b.hidden = hidden }

// Table is one menu level. Its shape is fixed once built; only hidden flags
// and item payloads change afterwards.
type Table struct {
	Title string
	Items []Item
}

// NewTable builds a table from the provided items in display order.
func NewTable(title string, items ...Item) *Table {
	return &Table{Title: title, Items: items}
}

// Len returns the number of items in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Items)
}

// At returns the item at index i or nil when out of range.
func (t *Table) At(i int) Item {
	if t == nil || i < 0 || i >= len(t.Items) {
		return nil
	}
	return t.Items[i]
}

// Index returns the position of item within the table, or -1.
func (t *Table) Index(item Item) int {
	if t == nil || item == nil {
		return -1
	}
	for i, it := range t.Items {
		if it == item {
			return i
		}
	}
	return -1
}
