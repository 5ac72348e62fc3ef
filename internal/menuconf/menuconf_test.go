package menuconf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/lcdmenu/internal/menu"
	"github.com/atomicstack/lcdmenu/internal/testutil"
)

func TestDefaultMenuDump(t *testing.T) {
	root, err := Default(nil)
	if err != nil {
		t.Fatalf("default menu: %v", err)
	}
	if root.Title != "Main" || root.Len() != 7 {
		t.Fatalf("unexpected root %q with %d items", root.Title, root.Len())
	}
	testutil.AssertGolden(t, "menuconf_default.golden", strings.Join(Dump(root), "\n")+"\n")
}

func TestHandlerReceivesItemEvents(t *testing.T) {
	var got []Event
	root, err := Default(func(ev Event) { got = append(got, ev) })
	if err != nil {
		t.Fatalf("default menu: %v", err)
	}

	root.At(0).(*menu.Command).Run()
	root.At(1).(*menu.Toggle).Flip()
	mode := root.At(3).(*menu.List)
	mode.SetIndex(2)
	mode.Commit()
	temp := root.At(4).(*menu.Progress)
	temp.Increment()
	temp.Commit()

	want := []Event{
		{Kind: menu.KindCommand, Label: "Start", Action: "start"},
		{Kind: menu.KindToggle, Label: "Light", Action: "backlight", Value: "Off", Number: 0},
		{Kind: menu.KindList, Label: "Mode", Action: "mode", Value: "Boost", Number: 2},
		{Kind: menu.KindProgress, Label: "Temp", Action: "temp", Value: "22C", Number: 22},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestParseBuildsNestedTables(t *testing.T) {
	data := []byte(`
title: Box
items:
  - {type: input, label: Code, value: 0042}
  - type: submenu
    label: More
    items:
      - {type: toggle, label: Fan, on: true, on_text: Run, off_text: Stop}
`)
	root, err := Parse(data, nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if in := root.At(0).(*menu.Input); in.Value() != "0042" {
		t.Fatalf("expected input text preserved, got %q", in.Value())
	}
	sub := root.At(1).(*menu.SubMenu)
	if sub.Table.Title != "More" {
		t.Fatalf("expected title to default to the label, got %q", sub.Table.Title)
	}
	if fan := sub.Table.At(0).(*menu.Toggle); fan.Text() != "Run" {
		t.Fatalf("expected custom on text, got %q", fan.Text())
	}
}

func TestParseKeepsProgressValueAboveDefaultMax(t *testing.T) {
	root, err := Parse([]byte("items:\n  - {type: progress, label: Freq, value: 5000, max: 9000, step: 100}\n"), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	p := root.At(0).(*menu.Progress)
	if p.Value() != 5000 {
		t.Fatalf("expected value 5000, got %d", p.Value())
	}
	p.Increment()
	p.Restore()
	if p.Value() != 5000 {
		t.Fatalf("expected saved value 5000, got %d", p.Value())
	}
}

func TestParseRejectsInvalidDefinitions(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"empty", ``, "empty"},
		{"no items", `title: X`, "root: no items"},
		{"unknown key", "items:\n  - {type: command, label: A, colour: red}", "colour"},
		{"unknown type", "items:\n  - {type: slider, label: A}", `A: unknown item type "slider"`},
		{"missing label", "items:\n  - {type: command}", "#1: label is required"},
		{"empty list", "items:\n  - {type: list, label: L}", "L: list needs at least one entry"},
		{"list index", "items:\n  - {type: list, label: L, entries: [a], index: 3}", "L: index 3 outside 0..0"},
		{"progress range", "items:\n  - {type: progress, label: P, value: 50, max: 10}", "P: value 50 outside 0..10"},
		{"progress bounds", "items:\n  - {type: progress, label: P, min: 5, max: 1}", "P: min 5 exceeds max 1"},
		{"progress format", "items:\n  - {type: progress, label: P, format: '%s'}", "needs exactly one %d"},
		{"nested", "items:\n  - type: submenu\n    label: S\n    items:\n      - {type: toggle}", "S:#1: label is required"},
		{"empty submenu", "items:\n  - {type: submenu, label: S}", "S: no items"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml), nil)
			if err == nil {
				t.Fatalf("expected error containing %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	if err := os.WriteFile(path, []byte("items:\n  - {type: command, label: Go}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	root, err := Load(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if root.At(0).Label() != "Go" {
		t.Fatalf("unexpected item %q", root.At(0).Label())
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFindPrefersVisibleExactMatches(t *testing.T) {
	root, err := Default(nil)
	if err != nil {
		t.Fatalf("default menu: %v", err)
	}
	cases := []struct {
		query string
		want  string
	}{
		{"setup:sleep", "Setup:Sleep"},
		{"Service", "Setup:About:Service"},
		{"tem", "Temp"},
		{"about:lcd", "Setup:About:lcdmenu"},
		{"stlg", "Setup:Lang"},
	}
	for _, tc := range cases {
		node, ok := Find(root, tc.query)
		if !ok {
			t.Fatalf("query %q: expected a match", tc.query)
		}
		if node.ID != tc.want {
			t.Fatalf("query %q: expected %s, got %s", tc.query, tc.want, node.ID)
		}
	}
	if _, ok := Find(root, "  "); ok {
		t.Fatal("expected blank query to match nothing")
	}
	if _, ok := Find(root, "xyzzy"); ok {
		t.Fatal("expected unmatched query to fail")
	}
}

func TestFindLabelsContainingColons(t *testing.T) {
	root, err := Parse([]byte(`
items:
  - {type: command, label: "Time: 12h"}
  - type: submenu
    label: "Net:Wifi"
    items:
      - {type: command, label: Scan}
  - type: submenu
    label: "Hidden:Box"
    hidden: true
    items:
      - {type: command, label: Secret}
`), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cases := []struct {
		query string
		want  string
	}{
		{"Time: 12h", "Time: 12h"},
		{"Scan", "Net:Wifi:Scan"},
		{"Net:Wifi:Scan", "Net:Wifi:Scan"},
		{"net:wifi", "Net:Wifi"},
	}
	for _, tc := range cases {
		node, ok := Find(root, tc.query)
		if !ok {
			t.Fatalf("query %q: expected a match", tc.query)
		}
		if node.ID != tc.want {
			t.Fatalf("query %q: expected %s, got %s", tc.query, tc.want, node.ID)
		}
	}
	if _, ok := Find(root, "Secret"); ok {
		t.Fatal("expected items under a hidden submenu to stay unreachable")
	}
}
