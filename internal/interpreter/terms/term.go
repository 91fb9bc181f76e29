/*
Copyright 2025 Stoolap Contributors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
// package terms provides the evaluable term representations produced by the
// expression compiler. Terms are immutable once built and are evaluated
// repeatedly, once per row context.
package terms

import (
	"fmt"

	"github.com/kilrasemifir/ksql/internal/sql/types"
)

// Row holds the column values of a single input row. A nil entry is SQL NULL.
type Row []any

// EvalContext carries the per-row state a term is evaluated against. The
// context must not be mutated while an evaluation is in flight; distinct
// contexts may be evaluated concurrently against the same terms.
type EvalContext struct {
	row Row
}

// NewEvalContext creates an evaluation context for the given row
func NewEvalContext(row Row) *EvalContext {
	return &EvalContext{row: row}
}

// Column returns the value of the column at the given index
func (c *EvalContext) Column(index int) (any, error) {
	if c == nil || index < 0 || index >= len(c.row) {
		return nil, fmt.Errorf("column index %d out of range", index)
	}
	return c.row[index], nil
}

// Term is an evaluable expression node. Value returns the term's value for
// the given context, with nil meaning SQL NULL; Type returns the declared
// type the value conforms to.
type Term interface {
	Value(ctx *EvalContext) (any, error)
	Type() types.Type
}

// BooleanTerm is a term whose value is always a boolean
type BooleanTerm interface {
	Term
	Bool(ctx *EvalContext) (bool, error)
}

type literalTerm struct {
	value any
	typ   types.Type
}

// NewLiteral creates a term that evaluates to a fixed value regardless of
// context. A nil value is SQL NULL of the given type.
func NewLiteral(value any, typ types.Type) Term {
	return &literalTerm{value: value, typ: typ}
}

func (t *literalTerm) Value(_ *EvalContext) (any, error) {
	return t.value, nil
}

func (t *literalTerm) Type() types.Type {
	return t.typ
}

type columnTerm struct {
	index int
	typ   types.Type
}

// NewColumnRef creates a term that reads the column at the given index from
// the evaluation context
func NewColumnRef(index int, typ types.Type) Term {
	return &columnTerm{index: index, typ: typ}
}

func (t *columnTerm) Value(ctx *EvalContext) (any, error) {
	return ctx.Column(t.index)
}

func (t *columnTerm) Type() types.Type {
	return t.typ
}
