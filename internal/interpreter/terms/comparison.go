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
package terms

import (
	"github.com/kilrasemifir/ksql/internal/sql/types"
)

// CompareFunc produces a signed three-way ordering of the two operand terms.
// It is only invoked once both operands are known to be non-null.
type CompareFunc func(ctx *EvalContext, left, right Term) (int, error)

// EqualsFunc reports whether the two operand terms are equal. It is only
// invoked once both operands are known to be non-null.
type EqualsFunc func(ctx *EvalContext, left, right Term) (bool, error)

// NullCheckFunc inspects both operand evaluations for nullness. When
// determined is true the comparison result is already decided to be result
// and the comparator or equality function must not run; otherwise both
// operands are non-null and the comparison proceeds.
type NullCheckFunc func(ctx *EvalContext, left, right Term) (result, determined bool, err error)

// CompareToTerm is a boolean term built from a three-way comparator and a
// truth function shaping the ordering into the operator's boolean result.
// It holds no mutable state.
type CompareToTerm struct {
	left      Term
	right     Term
	nullCheck NullCheckFunc
	compare   CompareFunc
	truth     func(ordering int) bool
}

// NewCompareToTerm creates a comparison term over the given operands
func NewCompareToTerm(
	left, right Term,
	nullCheck NullCheckFunc,
	compare CompareFunc,
	truth func(ordering int) bool,
) *CompareToTerm {
	return &CompareToTerm{
		left:      left,
		right:     right,
		nullCheck: nullCheck,
		compare:   compare,
		truth:     truth,
	}
}

// Bool evaluates the comparison against the given context. The null check
// runs first; when it determines the result the comparator is never invoked,
// which also keeps coercions away from null values.
func (t *CompareToTerm) Bool(ctx *EvalContext) (bool, error) {
	result, determined, err := t.nullCheck(ctx, t.left, t.right)
	if err != nil {
		return false, err
	}
	if determined {
		return result, nil
	}

	ordering, err := t.compare(ctx, t.left, t.right)
	if err != nil {
		return false, err
	}
	return t.truth(ordering), nil
}

// Value implements the Term interface
func (t *CompareToTerm) Value(ctx *EvalContext) (any, error) {
	b, err := t.Bool(ctx)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Type implements the Term interface
func (t *CompareToTerm) Type() types.Type {
	return types.Boolean
}

// EqualsTerm is a boolean term built from an equality function and a truth
// function shaping the equality result into the operator's boolean result.
// It is used for types that have equality but no total order.
type EqualsTerm struct {
	left      Term
	right     Term
	nullCheck NullCheckFunc
	equals    EqualsFunc
	truth     func(equal bool) bool
}

// NewEqualsTerm creates an equality term over the given operands
func NewEqualsTerm(
	left, right Term,
	nullCheck NullCheckFunc,
	equals EqualsFunc,
	truth func(equal bool) bool,
) *EqualsTerm {
	return &EqualsTerm{
		left:      left,
		right:     right,
		nullCheck: nullCheck,
		equals:    equals,
		truth:     truth,
	}
}

// Bool evaluates the equality check against the given context
func (t *EqualsTerm) Bool(ctx *EvalContext) (bool, error) {
	result, determined, err := t.nullCheck(ctx, t.left, t.right)
	if err != nil {
		return false, err
	}
	if determined {
		return result, nil
	}

	equal, err := t.equals(ctx, t.left, t.right)
	if err != nil {
		return false, err
	}
	return t.truth(equal), nil
}

// Value implements the Term interface
func (t *EqualsTerm) Value(ctx *EvalContext) (any, error) {
	b, err := t.Bool(ctx)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Type implements the Term interface
func (t *EqualsTerm) Type() types.Type {
	return types.Boolean
}
