package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	dcss "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/j4587698/dcsoup/dom"
	"github.com/j4587698/dcsoup/tree"
)

// StyleSheet wraps a CSS stylesheet parsed by douceur. The stylesheet is
// managed by the wrapper; this package only reads it.
type StyleSheet struct {
	css dcss.Stylesheet
}

// ParseStyles parses CSS source text into a StyleSheet.
func ParseStyles(source string) (*StyleSheet, error) {
	sheet, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return &StyleSheet{css: *sheet}, nil
}

// Empty checks if this stylesheet contains any rules.
func (sheet *StyleSheet) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
func (sheet *StyleSheet) AppendRules(other *StyleSheet) {
	for _, r := range other.css.Rules { // append every rule from other
		sheet.css.Rules = append(sheet.css.Rules, r)
	}
}

// Rules returns all the rules of a stylesheet.
func (sheet *StyleSheet) Rules() []Rule {
	rules := make([]Rule, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		rules[i] = Rule(*sheet.css.Rules[i])
	}
	return rules
}

// Rule is a single rule of a stylesheet.
type Rule dcss.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule, e.g. "margin-top".
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for a given key with this rule,
// e.g. "15px", or "" if the rule has no declaration for the key.
func (r Rule) Value(key string) string {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Value
		}
	}
	return ""
}

// IsImportant returns true if a property key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

// MatchingNodes returns, for every rule of the stylesheet, the elements
// below root its selector matches, keyed by the rule's selector text.
// Rules with selectors the selector engine cannot compile are skipped.
func (sheet *StyleSheet) MatchingNodes(root *tree.Node[*dom.DomNode]) (map[string]dom.NodeSet, error) {
	matches := make(map[string]dom.NodeSet)
	for _, rule := range sheet.Rules() {
		sel, err := CompileSelector(rule.Selector())
		if err != nil {
			tracer().Infof("skipping rule with selector %q: %v", rule.Selector(), err)
			continue
		}
		set, err := dom.Collect(sel, root)
		if err != nil {
			return nil, err
		}
		if len(set) > 0 {
			matches[rule.Selector()] = set
		}
	}
	return matches, nil
}

// ExtractStyleElements searches a DOM for <style> elements and parses
// their content. Elements with broken CSS are skipped.
func ExtractStyleElements(root *tree.Node[*dom.DomNode]) ([]*StyleSheet, error) {
	styles, err := Select("style", root)
	if err != nil {
		return nil, err
	}
	var sheets []*StyleSheet
	for _, s := range styles {
		text, err := dom.TextContent(s)
		if err != nil {
			return nil, err
		}
		sheet, err := ParseStyles(text)
		if err != nil {
			tracer().Infof("skipping broken embedded stylesheet: %v", err)
			continue
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}
