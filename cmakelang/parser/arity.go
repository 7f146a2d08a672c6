// File: arity.go
// Title: Positional Arity
// Description: Defines the closed arity forms accepted by positional
//              parsers: an exact count, one-or-more, and zero-or-more.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-05
// Modified: 2026-08-05
//
// Change History:
// - 2026-08-05 v0.1.0: Initial arity implementation

package parser

import (
	"fmt"
	"strconv"
)

// ArityKind enumerates the closed set of arity forms
type ArityKind int

const (
	// ArityExact requires exactly Count arguments
	ArityExact ArityKind = iota

	// ArityOneOrMore requires at least one argument
	ArityOneOrMore

	// ArityZeroOrMore accepts any number of arguments
	ArityZeroOrMore
)

// Arity bounds how many positional arguments a parser consumes
type Arity struct {
	Kind  ArityKind
	Count int
}

// Exactly returns an arity requiring exactly n arguments
func Exactly(n int) Arity {
	return Arity{Kind: ArityExact, Count: n}
}

// OneOrMore returns an arity requiring at least one argument
func OneOrMore() Arity {
	return Arity{Kind: ArityOneOrMore}
}

// ZeroOrMore returns an arity accepting any number of arguments
func ZeroOrMore() Arity {
	return Arity{Kind: ArityZeroOrMore}
}

// Satisfied reports whether consuming got arguments meets the lower bound
func (a Arity) Satisfied(got int) bool {
	switch a.Kind {
	case ArityExact:
		return got >= a.Count
	case ArityOneOrMore:
		return got >= 1
	default:
		return true
	}
}

// Full reports whether consuming got arguments meets the upper bound; only
// exact arities have one
func (a Arity) Full(got int) bool {
	return a.Kind == ArityExact && got >= a.Count
}

// String returns the configuration spelling of the arity
func (a Arity) String() string {
	switch a.Kind {
	case ArityOneOrMore:
		return "+"
	case ArityZeroOrMore:
		return "*"
	default:
		return strconv.Itoa(a.Count)
	}
}

// ParseArity parses the configuration spelling of an arity: "+", "*", or a
// non-negative integer
func ParseArity(s string) (Arity, error) {
	switch s {
	case "+":
		return OneOrMore(), nil
	case "*":
		return ZeroOrMore(), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return Arity{}, fmt.Errorf("invalid arity %q: expected \"+\", \"*\", or a non-negative integer", s)
	}
	return Exactly(n), nil
}
