// File: registry.go
// Title: Grammar Registry
// Description: Implements the immutable, case-insensitive mapping from
//              command names to grammar functions. Lookup never fails:
//              commands without a registered grammar get the permissive
//              fallback.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-06
// Modified: 2026-08-06
//
// Change History:
// - 2026-08-06 v0.1.0: Initial registry implementation

package registry

import (
	"sort"
	"strings"

	"github.com/kumekay/cmake-format/cmakelang/parser"
	"github.com/kumekay/cmake-format/cmakelang/parser/funs"
)

// Registry maps command names to grammar functions. A registry is immutable
// after construction; With returns extended copies, so a registry can be
// shared between goroutines without locking.
type Registry struct {
	grammars map[string]parser.ParseFunc
}

// New creates a registry holding the built-in command grammars
func New() *Registry {
	r := NewEmpty()
	r.grammars["add_executable"] = funs.ParseAddExecutable
	r.grammars["install"] = funs.ParseInstall
	return r
}

// NewEmpty creates a registry with no registered grammars; every lookup
// yields the permissive fallback
func NewEmpty() *Registry {
	return &Registry{grammars: make(map[string]parser.ParseFunc)}
}

// With returns a new registry that additionally maps name to the given
// grammar. The receiver is not modified; an existing mapping for the same
// name is replaced in the copy.
func (r *Registry) With(name string, grammar parser.ParseFunc) *Registry {
	out := &Registry{grammars: make(map[string]parser.ParseFunc, len(r.grammars)+1)}
	for k, v := range r.grammars {
		out.grammars[k] = v
	}
	out.grammars[strings.ToLower(name)] = grammar
	return out
}

// Lookup returns the grammar for the named command, matched
// case-insensitively. Unknown commands get the permissive fallback, so the
// returned function is never nil.
func (r *Registry) Lookup(name string) parser.ParseFunc {
	if grammar, ok := r.grammars[strings.ToLower(name)]; ok {
		return grammar
	}
	return parser.ParsePermissive
}

// Has reports whether the named command has a registered grammar
func (r *Registry) Has(name string) bool {
	_, ok := r.grammars[strings.ToLower(name)]
	return ok
}

// Names returns the registered command names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.grammars))
	for name := range r.grammars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
