package dcsoup_test

import (
	"strings"
	"testing"

	"github.com/j4587698/dcsoup"
	"github.com/j4587698/dcsoup/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const page = `<html><head><title>T</title></head><body>
<p class="lead">First</p>
<p>Second</p>
<a href="/more">more</a>
</body></html>`

func TestParseAndSelect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dcsoup.dom")
	defer teardown()
	//
	doc, err := dcsoup.Parse(strings.NewReader(page))
	if err != nil {
		t.Fatalf("cannot parse page: %v", err)
	}
	ps, err := dcsoup.Select("p", doc)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if len(ps) != 2 {
		t.Errorf("expected 2 paragraphs, got %d", len(ps))
	}
	lead, err := dcsoup.SelectFirst("p.lead", doc)
	if err != nil {
		t.Fatalf("SelectFirst returned error: %v", err)
	}
	text, _ := dom.TextContent(lead)
	if text != "First" {
		t.Errorf("expected lead paragraph text First, got %q", text)
	}
}

func TestParseStringAndManipulate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dcsoup.dom")
	defer teardown()
	//
	doc, err := dcsoup.ParseString(page)
	if err != nil {
		t.Fatalf("cannot parse page: %v", err)
	}
	links, err := dcsoup.Select("a[href]", doc)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	links.Remove()
	again, err := dcsoup.Select("a[href]", doc)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if len(again) != 0 {
		t.Errorf("expected links to be gone after Remove, got %d", len(again))
	}
}
