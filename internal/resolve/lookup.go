// Copyright 2026 The Flow Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package resolve

import (
	"sort"

	"github.com/flowlang/flowc/ast"
	"github.com/flowlang/flowc/errors"
	"github.com/flowlang/flowc/resolved"
	"github.com/flowlang/flowc/symbol"
)

// Every lookup* method here records its own error into r.errs (via
// r.errf) and returns a best-effort zero value on failure, the same
// "record and return a sentinel" discipline the teacher's compiler
// uses for c.errf: independent sibling resolutions keep going even
// after one of them fails, so a single run reports every defect.

// lookupRef resolves a value reference from currentNs to either a
// user definition or a host hook (spec.md §4.1, "Reference lookup").
func (r *resolver) lookupRef(currentNs ast.NName, q ast.QName) resolved.Callee {
	targetNS := currentNs
	if q.Qualified() {
		targetNS = q.NS
	}

	defn, hasDefn := r.lookupDefnIn(targetNS, q.Name())
	hookKey := ast.HookKey(targetNS, q.Name())
	_, hasHook := r.prog.Hooks[hookKey]

	switch {
	case hasDefn && hasHook:
		r.errf(errors.AmbiguousRefErr(currentNs, q))
		return resolved.Callee{}
	case hasDefn:
		sym := defn.Sym
		return resolved.Callee{Defn: &sym}
	case hasHook:
		k := hookKey
		return resolved.Callee{Hook: &k}
	}

	if q.Qualified() {
		// Qualified references never fall back to the root namespace.
		r.errf(errors.UndefinedRefErr(currentNs, q))
		return resolved.Callee{}
	}

	if defn, ok := r.lookupDefnIn(ast.Root, q.Name()); ok {
		sym := defn.Sym
		return resolved.Callee{Defn: &sym}
	}
	r.errf(errors.UndefinedRefErr(currentNs, q))
	return resolved.Callee{}
}

func (r *resolver) lookupDefnIn(ns ast.NName, name string) (*ast.Definition, bool) {
	byName := r.prog.Definitions[ns.Key()]
	if byName == nil {
		return nil, false
	}
	d, ok := byName[name]
	return d, ok
}

// lookupTable resolves a table reference from currentNs (spec.md
// §4.1, "Table lookup"). There is no hook shadowing and no root
// fallback for tables.
func (r *resolver) lookupTable(currentNs ast.NName, q ast.QName) symbol.TableSym {
	targetNS := currentNs
	if q.Qualified() {
		targetNS = q.NS
	}
	if byName := r.prog.Tables[targetNS.Key()]; byName != nil {
		if t, ok := byName[q.Name()]; ok {
			return t.Sym
		}
	}
	r.errf(errors.UndefinedTableErr(currentNs, q))
	return symbol.TableSym{}
}

type tagCandidate struct {
	enumName string
	enum     *ast.Enum
}

// lookupTag finds the unique enum declaration owning a case named
// tag.Name, implementing the seven-step global/local/qualifier
// disambiguation of spec.md §4.1, "Tag lookup".
func (r *resolver) lookupTag(currentNs ast.NName, qualifier *ast.QName, tag ast.Ident) symbol.EnumSym {
	// Step 1: a tag unique across the whole program resolves with no
	// further scoping, even from an unrelated namespace.
	global := r.candidatesIn(nil, tag.Name, true)
	if len(global) == 1 {
		return global[0].enum.Sym
	}

	scopeNs := currentNs
	if qualifier != nil && qualifier.Qualified() {
		scopeNs = qualifier.NS
	}

	local := r.candidatesIn(scopeNs, tag.Name, false)
	switch {
	case len(local) == 0:
		r.errf(errors.UndefinedTagErr(currentNs, tag))
		return symbol.EnumSym{}

	case len(local) == 1:
		return local[0].enum.Sym

	case qualifier == nil:
		locs := make([]ast.Pos, len(local))
		for i, c := range local {
			locs[i] = c.enum.At
		}
		sort.Slice(locs, func(i, j int) bool { return locs[i].Before(locs[j]) })
		r.errf(errors.AmbiguousTagErr(currentNs, tag, locs))
		return symbol.EnumSym{}

	default:
		var filtered []tagCandidate
		for _, c := range local {
			if c.enumName == qualifier.Name() {
				filtered = append(filtered, c)
			}
		}
		if len(filtered) == 1 {
			return filtered[0].enum.Sym
		}
		r.errf(errors.UndefinedTagErr(currentNs, tag))
		return symbol.EnumSym{}
	}
}

// candidatesIn collects enums owning a case named tagName. When all
// is true, ns is ignored and every namespace is scanned; otherwise
// only the enums declared directly in ns are considered.
func (r *resolver) candidatesIn(ns ast.NName, tagName string, all bool) []tagCandidate {
	var out []tagCandidate
	scan := func(byName map[string]*ast.Enum) {
		for name, e := range byName {
			if _, ok := e.Cases[tagName]; ok {
				out = append(out, tagCandidate{enumName: name, enum: e})
			}
		}
	}
	if all {
		for _, byName := range r.prog.Enums {
			scan(byName)
		}
		return out
	}
	scan(r.prog.Enums[ns.Key()])
	return out
}

// lookupType recursively resolves a Named Type to the closed
// canonical Type (spec.md §4.1, "Type lookup").
func (r *resolver) lookupType(currentNs ast.NName, t ast.Type) resolved.Type {
	switch x := t.(type) {
	case nil:
		return nil

	case *ast.TVar:
		return resolved.TVar{Name: x.Name}

	case *ast.TUnit:
		return resolved.TUnit{}

	case *ast.TEnum:
		return resolved.TEnum{Sym: x.Sym, Kind: resolved.Star}

	case *ast.TRef:
		return r.lookupTypeRef(currentNs, x.QName)

	case *ast.TTuple:
		elems := make([]resolved.Type, len(x.Elems))
		for i, e := range x.Elems {
			elems[i] = r.lookupType(currentNs, e)
		}
		return resolved.TTuple{Elems: elems}

	case *ast.TArrow:
		params := make([]resolved.Type, len(x.Params))
		for i, p := range x.Params {
			params[i] = r.lookupType(currentNs, p)
		}
		return resolved.TArrow{Params: params, Ret: r.lookupType(currentNs, x.Ret)}

	case *ast.TApply:
		args := make([]resolved.Type, len(x.Args))
		for i, a := range x.Args {
			args[i] = r.lookupType(currentNs, a)
		}
		return resolved.TApply{Base: r.lookupType(currentNs, x.Base), Args: args}

	default:
		return nil
	}
}

func (r *resolver) lookupTypeRef(currentNs ast.NName, q ast.QName) resolved.Type {
	if !q.Qualified() {
		if prim, ok := resolved.Primitive[q.Name()]; ok {
			return prim
		}
		if e, ok := r.lookupEnumIn(currentNs, q.Name()); ok {
			return resolved.TEnum{Sym: e.Sym, Kind: resolved.Star}
		}
		if e, ok := r.lookupEnumIn(ast.Root, q.Name()); ok {
			return resolved.TEnum{Sym: e.Sym, Kind: resolved.Star}
		}
		r.errf(errors.UndefinedTypeErr(currentNs, q))
		return nil
	}

	// Qualified type references never fall back to the root namespace
	// and are never matched against the primitive set (a primitive
	// name is always written bare).
	if e, ok := r.lookupEnumIn(q.NS, q.Name()); ok {
		return resolved.TEnum{Sym: e.Sym, Kind: resolved.Star}
	}
	r.errf(errors.UndefinedTypeErr(currentNs, q))
	return nil
}

func (r *resolver) lookupEnumIn(ns ast.NName, name string) (*ast.Enum, bool) {
	byName := r.prog.Enums[ns.Key()]
	if byName == nil {
		return nil, false
	}
	e, ok := byName[name]
	return e, ok
}
