package domdbg_test

import (
	"strings"
	"testing"

	"github.com/j4587698/dcsoup/dom"
	"github.com/j4587698/dcsoup/dom/domdbg"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTreePrint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dcsoup.dom")
	defer teardown()
	//
	root, err := dom.FromString(`<html><body><p>Hello</p></body></html>`)
	if err != nil {
		t.Fatalf("cannot parse test input: %v", err)
	}
	out := domdbg.TreePrint(root)
	t.Logf("\n%s", out)
	for _, label := range []string{"html", "body", "p", `"Hello"`} {
		if !strings.Contains(out, label) {
			t.Errorf("expected tree dump to contain %s", label)
		}
	}
	if strings.Index(out, "body") > strings.Index(out, "p") {
		t.Error("expected body to be printed before its paragraph")
	}
}

func TestToGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dcsoup.dom")
	defer teardown()
	//
	root, err := dom.FromString(`<html><body><p>Hello</p></body></html>`)
	if err != nil {
		t.Fatalf("cannot parse test input: %v", err)
	}
	var sb strings.Builder
	domdbg.ToGraphViz(dom.NewW3CNode(root), &sb)
	out := sb.String()
	if !strings.HasPrefix(out, "digraph g {") {
		t.Errorf("expected DOT output to open a digraph, got %q", out[:20])
	}
	if !strings.Contains(out, "->") {
		t.Error("expected DOT output to contain edges")
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "}") {
		t.Error("expected DOT output to close the digraph")
	}
}
