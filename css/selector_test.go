package css_test

import (
	"testing"

	"github.com/j4587698/dcsoup/css"
	"github.com/j4587698/dcsoup/dom"
	"github.com/j4587698/dcsoup/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func parse(t *testing.T, input string) *tree.Node[*dom.DomNode] {
	t.Helper()
	root, err := dom.FromString(input)
	if err != nil {
		t.Fatalf("cannot parse test input: %v", err)
	}
	return root
}

func TestCompileSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dcsoup.css")
	defer teardown()
	//
	sel, err := css.CompileSelector("div > p.lead")
	if err != nil {
		t.Fatalf("expected selector to compile, got %v", err)
	}
	if sel.String() != "div > p.lead" {
		t.Errorf("expected selector to remember its source, got %q", sel.String())
	}
	if _, err := css.CompileSelector("p["); err == nil {
		t.Error("expected broken selector expression to be refused")
	}
}

func TestSelectorMatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dcsoup.css")
	defer teardown()
	//
	root := parse(t, `<html><body><p class="lead">text</p></body></html>`)
	body := dom.Body(root)
	p, _ := body.Child(0)
	txt, _ := p.Child(0)
	sel := css.MustSelector("p.lead")
	if !sel.Matches(root, p) {
		t.Error("expected selector to match the paragraph")
	}
	if sel.Matches(root, txt) {
		t.Error("expected selector to never match a text node")
	}
	if css.MustSelector("p.other").Matches(root, p) {
		t.Error("expected non-matching class to be refused")
	}
}

func TestSelectDocumentOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dcsoup.css")
	defer teardown()
	//
	root := parse(t, `<html><body><div><p id="a">one</p><p id="b">two</p><section><p id="c">three</p></section></div></body></html>`)
	matches, err := css.Select("p", root)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d", len(matches))
	}
	order := ""
	for _, m := range matches {
		order += dom.Node(m).Attr("id")
	}
	if order != "abc" {
		t.Errorf("expected matches in document order, got %q", order)
	}
}

func TestSelectWithClassAndAttribute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dcsoup.css")
	defer teardown()
	//
	root := parse(t, `<html><body><a href="/x">x</a><a name="y">y</a><p class="lead">z</p></body></html>`)
	links, err := css.Select("a[href]", root)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if len(links) != 1 || dom.Node(links.First()).Attr("href") != "/x" {
		t.Errorf("expected exactly the hyperlink with an href, got %d matches", len(links))
	}
	leads, err := css.Select("p.lead", root)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if len(leads) != 1 {
		t.Errorf("expected 1 lead paragraph, got %d", len(leads))
	}
}

func TestSelectFirst(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dcsoup.css")
	defer teardown()
	//
	root := parse(t, `<html><body><p id="a">one</p><p id="b">two</p></body></html>`)
	first, err := css.SelectFirst("p", root)
	if err != nil {
		t.Fatalf("SelectFirst returned error: %v", err)
	}
	if first == nil || dom.Node(first).Attr("id") != "a" {
		t.Errorf("expected first paragraph in document order, got %v", dom.Node(first))
	}
	none, err := css.SelectFirst("table", root)
	if err != nil {
		t.Fatalf("SelectFirst returned error: %v", err)
	}
	if none != nil {
		t.Errorf("expected nil for a match-less query, got %v", dom.Node(none))
	}
}

func TestSelectBadQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dcsoup.css")
	defer teardown()
	//
	root := parse(t, `<html><body></body></html>`)
	if _, err := css.Select("p[", root); err == nil {
		t.Error("expected Select to refuse a broken query")
	}
	if _, err := css.SelectFirst("p[", root); err == nil {
		t.Error("expected SelectFirst to refuse a broken query")
	}
}
