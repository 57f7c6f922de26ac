package dom_test

import (
	"testing"

	"github.com/j4587698/dcsoup/dom"
	"github.com/j4587698/dcsoup/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func parse(t *testing.T, input string) *tree.Node[*dom.DomNode] {
	t.Helper()
	root, err := dom.FromString(input)
	if err != nil {
		t.Fatalf("cannot parse test input: %v", err)
	}
	return root
}

// firstDiv returns the first child of <body>, which our test inputs place
// a <div> at.
func firstDiv(t *testing.T, root *tree.Node[*dom.DomNode]) *tree.Node[*dom.DomNode] {
	t.Helper()
	body := dom.Body(root)
	if body == nil {
		t.Fatal("document has no body")
	}
	div, ok := body.Child(0)
	if !ok || dom.Node(div).NodeName() != "div" {
		t.Fatalf("expected first element of body to be a div, got %v", dom.Node(div))
	}
	return div
}

func TestFromString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dcsoup.dom")
	defer teardown()
	//
	root := parse(t, `<html><head></head><body><p>Hi</p></body></html>`)
	if dom.Node(root).NodeName() != "#document" {
		t.Errorf("expected root to be the document node, got %q", dom.Node(root).NodeName())
	}
	body := dom.Body(root)
	if body == nil {
		t.Fatal("expected DOM to have a body")
	}
	p, ok := body.Child(0)
	if !ok || dom.Node(p).NodeName() != "p" {
		t.Fatalf("expected body to contain a paragraph")
	}
	txt, ok := p.Child(0)
	if !ok || !dom.Node(txt).IsText() {
		t.Fatalf("expected paragraph to contain a text node")
	}
	if dom.Node(txt).NodeName() != "#text" {
		t.Errorf("expected text node name #text, got %q", dom.Node(txt).NodeName())
	}
}

func TestMirrorIsInSync(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dcsoup.dom")
	defer teardown()
	//
	root := parse(t, `<html><body><div id="x">text</div></body></html>`)
	div := firstDiv(t, root)
	h := dom.Node(div).HTMLNode()
	if h.Type != html.ElementNode || h.Data != "div" {
		t.Error("expected DOM node to wrap the corresponding HTML element")
	}
	if dom.Node(div).Attr("id") != "x" {
		t.Errorf("expected attribute id=x, got %q", dom.Node(div).Attr("id"))
	}
}

func TestAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dcsoup.dom")
	defer teardown()
	//
	root := parse(t, `<html><body><div class="a b"></div></body></html>`)
	div := dom.Node(firstDiv(t, root))
	if !div.HasAttr("class") || div.Attr("class") != "a b" {
		t.Errorf("expected class attribute 'a b', got %q", div.Attr("class"))
	}
	div.SetAttr("class", "c")
	if div.Attr("class") != "c" {
		t.Errorf("expected overwritten class attribute 'c', got %q", div.Attr("class"))
	}
	div.SetAttr("id", "new")
	if div.Attr("id") != "new" {
		t.Errorf("expected fresh id attribute, got %q", div.Attr("id"))
	}
	if div.HasAttr("style") {
		t.Error("did not expect a style attribute")
	}
}

func TestTextContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dcsoup.dom")
	defer teardown()
	//
	root := parse(t, `<html><body><div>Hello <b>brave</b> world</div></body></html>`)
	div := firstDiv(t, root)
	text, err := dom.TextContent(div)
	if err != nil {
		t.Fatalf("TextContent returned error: %v", err)
	}
	if text != "Hello brave world" {
		t.Errorf("expected text in document order, got %q", text)
	}
}

func TestOuterAndInnerHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dcsoup.dom")
	defer teardown()
	//
	root := parse(t, `<html><body><div><p>Hi</p></div></body></html>`)
	div := firstDiv(t, root)
	outer, err := dom.OuterHTML(div)
	if err != nil {
		t.Fatalf("OuterHTML returned error: %v", err)
	}
	if outer != `<div><p>Hi</p></div>` {
		t.Errorf("unexpected outer HTML %q", outer)
	}
	inner, err := dom.InnerHTML(div)
	if err != nil {
		t.Fatalf("InnerHTML returned error: %v", err)
	}
	if inner != `<p>Hi</p>` {
		t.Errorf("unexpected inner HTML %q", inner)
	}
}

func TestW3CAdapter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dcsoup.dom")
	defer teardown()
	//
	root := parse(t, `<html><body><div id="d"><p>one</p><!--x--><p>two</p></div></body></html>`)
	div := dom.NewW3CNode(firstDiv(t, root))
	if !div.HasChildNodes() {
		t.Fatal("expected div to have child nodes")
	}
	if div.ChildNodes().Length() != 3 {
		t.Errorf("expected 3 child nodes, got %d", div.ChildNodes().Length())
	}
	if div.Children().Length() != 2 {
		t.Errorf("expected 2 element children, got %d", div.Children().Length())
	}
	if !div.HasAttributes() {
		t.Fatal("expected div to carry attributes")
	}
	attr := div.Attributes().GetNamedItem("id")
	if attr == nil || attr.Value() != "d" {
		t.Errorf("expected attribute id=d, got %v", attr)
	}
	comment := div.ChildNodes().Item(1)
	if comment.NodeName() != "#comment" || comment.NodeValue() != "x" {
		t.Errorf("expected comment node with value x, got %q/%q",
			comment.NodeName(), comment.NodeValue())
	}
	if div.ParentNode().NodeName() != "body" {
		t.Errorf("expected parent to be body, got %q", div.ParentNode().NodeName())
	}
	text, err := div.TextContent()
	if err != nil || text != "onetwo" {
		t.Errorf("expected text content 'onetwo', got %q (%v)", text, err)
	}
}
