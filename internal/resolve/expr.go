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
	"github.com/flowlang/flowc/ast"
	"github.com/flowlang/flowc/resolved"
)

// expr walks a Named Expression (spec.md §4.4). Cases not mentioned
// in the table there are pure structural recursion.
func (r *resolver) expr(ns ast.NName, e ast.Expr) resolved.Expr {
	switch x := e.(type) {
	case nil:
		return nil

	case *ast.Ref:
		callee := r.lookupRef(ns, x.QName)
		return calleeToExpr(callee)

	case *ast.Tag:
		sym := r.lookupTag(ns, x.Enum, x.Tag)
		return resolved.Tag{Enum: sym, Tag: x.Tag.Name, Inner: r.expr(ns, x.Inner)}

	case *ast.Match:
		rules := make([]resolved.MatchRule, len(x.Rules))
		for i, rule := range x.Rules {
			rules[i] = resolved.MatchRule{
				Pat:   r.pattern(ns, rule.Pat),
				Guard: r.expr(ns, rule.Guard),
				Body:  r.expr(ns, rule.Body),
			}
		}
		return resolved.Match{Scrutinee: r.expr(ns, x.Scrutinee), Rules: rules}

	case *ast.Switch:
		rules := make([]resolved.SwitchRule, len(x.Rules))
		for i, rule := range x.Rules {
			rules[i] = resolved.SwitchRule{Cond: r.expr(ns, rule.Cond), Body: r.expr(ns, rule.Body)}
		}
		return resolved.Switch{Rules: rules}

	case *ast.Ascribe:
		return resolved.Ascribe{Expr: r.expr(ns, x.Expr), Type: r.lookupType(ns, x.Type)}

	case *ast.Existential:
		return resolved.Existential{Param: r.param(ns, x.Param), Body: r.expr(ns, x.Body)}

	case *ast.Universal:
		return resolved.Universal{Param: r.param(ns, x.Param), Body: r.expr(ns, x.Body)}

	case *ast.NativeConstructor:
		return resolved.NativeConstructor{Member: x.Member, Args: r.exprs(ns, x.Args)}

	case *ast.NativeMethod:
		return resolved.NativeMethod{Member: x.Member, Args: r.exprs(ns, x.Args)}

	case *ast.Literal:
		return resolved.Literal{Kind: x.Kind, Value: x.Value}

	case *ast.Wild:
		return resolved.Wild{}

	case *ast.Var:
		return resolved.Var{Name: x.Name}

	case *ast.UserError:
		return resolved.UserError{Message: x.Message}

	case *ast.Apply:
		return resolved.Apply{Fun: r.expr(ns, x.Fun), Args: r.exprs(ns, x.Args)}

	case *ast.Lambda:
		return resolved.Lambda{Params: r.params(ns, x.Params), Body: r.expr(ns, x.Body)}

	case *ast.Unary:
		return resolved.Unary{Op: x.Op, X: r.expr(ns, x.X)}

	case *ast.Binary:
		return resolved.Binary{Op: x.Op, X: r.expr(ns, x.X), Y: r.expr(ns, x.Y)}

	case *ast.IfThenElse:
		return resolved.IfThenElse{Cond: r.expr(ns, x.Cond), Then: r.expr(ns, x.Then), Else: r.expr(ns, x.Else)}

	case *ast.Let:
		return resolved.Let{Name: x.Name, Value: r.expr(ns, x.Value), Body: r.expr(ns, x.Body)}

	case *ast.Tuple:
		return resolved.Tuple{Elems: r.exprs(ns, x.Elems)}

	default:
		return nil
	}
}

func (r *resolver) exprs(ns ast.NName, es []ast.Expr) []resolved.Expr {
	out := make([]resolved.Expr, len(es))
	for i, e := range es {
		out[i] = r.expr(ns, e)
	}
	return out
}

func calleeToExpr(c resolved.Callee) resolved.Expr {
	if c.Hook != nil {
		return resolved.HookRef{Key: *c.Hook}
	}
	if c.Defn != nil {
		return resolved.Ref{Sym: *c.Defn}
	}
	return nil
}
