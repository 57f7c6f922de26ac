package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/j4587698/dcsoup/dom"
	"github.com/j4587698/dcsoup/tree"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenPercent uint32 = 0x0100
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions, as found in dimension
// attributes (width="50%") and style declarations.
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	flags   uint32
}

// Auto creates a CSS dimension of value "auto".
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates a CSS dimension of value "inherit".
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates a CSS dimension of value "initial".
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

func (d DimenT) String() string {
	switch d.flags & kindMask {
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	case dimenAbsolute:
		return d.d.String()
	}
	if d.flags&dimenPercent > 0 {
		return d.percent.String()
	}
	return "dimen(none)"
}

// ParseDimen interprets the textual value of a dimension attribute or
// property. Plain numbers and the units "px" and "pt" yield fixed
// dimensions (CSS px is mapped to pt), "N%" yields a percentage.
func ParseDimen(v string) (DimenT, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case "":
		return DimenT{}, fmt.Errorf("cannot parse empty dimension")
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	}
	if strings.HasSuffix(v, "%") {
		n, err := strconv.Atoi(strings.TrimSuffix(v, "%"))
		if err != nil {
			return DimenT{}, fmt.Errorf("cannot parse dimension %q: %w", v, err)
		}
		return Percentage(percent.FromInt(n)), nil
	}
	num := strings.TrimSuffix(strings.TrimSuffix(v, "px"), "pt")
	f, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return DimenT{}, fmt.Errorf("cannot parse dimension %q: %w", v, err)
	}
	return JustDimen(dimen.DU(f * float64(dimen.PT))), nil
}

// DimenAttr reads a dimension attribute (e.g. "width") from an element
// node and parses it.
func DimenAttr(n *tree.Node[*dom.DomNode], key string) (DimenT, error) {
	dn := dom.Node(n)
	if dn == nil {
		return DimenT{}, dom.ErrNoNode
	}
	return ParseDimen(dn.Attr(key))
}

// ---------------------------------------------------------------------------

// Match starts a matching expression on a dimension value.
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher matches a dimension value against its kind.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension is of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags & kindMask) == (d.flags & kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags&dimenPercent > 0) != (d.flags&dimenPercent > 0) {
			return nil
		}
		return m
	}
	return nil
}

// Just matches a fixed dimension, binding its value to du.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches a %-relative dimension, binding its value to p.
func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.flags&dimenPercent > 0 {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns is the set of patterns for matching a dimension with
// DimenPattern.
type DimenPatterns[T any] struct {
	Auto    T
	Inherit T
	Initial T
	Just    T
	Default T
}

// DimenPattern starts a pattern-matching expression on a dimension value.
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

// MatchExpr is a pattern-matching expression for dimension values.
type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf selects the pattern corresponding to the dimension's kind.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch m.dimen.flags & kindMask {
	case dimenAuto:
		return patterns.Auto
	case dimenAbsolute:
		return patterns.Just
	case dimenInitial:
		return patterns.Initial
	case dimenInherit:
		return patterns.Inherit
	}
	return patterns.Default
}

// With binds the dimension's fixed value to du.
func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

// Const returns x, for use as a pattern result.
func (m *MatchExpr[T]) Const(x T) T {
	return x
}
