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
// package interpreter resolves how two typed operands are compared or tested
// for equality: it selects the type coercion, the compare or equals strategy
// and the null-handling policy for an operator and a pair of operand types,
// and packages the decision into an evaluable boolean term. Resolution runs
// once per expression at compile time; the resulting terms are immutable and
// evaluated once per row.
package interpreter

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"

	"github.com/kilrasemifir/ksql/internal/interpreter/terms"
	"github.com/kilrasemifir/ksql/internal/sql/types"
)

// CompareOp represents a comparison or equality operator
type CompareOp int

const (
	// EQ represents equality (=)
	EQ CompareOp = iota
	// NE represents inequality (!=)
	NE
	// DISTINCT represents IS DISTINCT FROM, which treats nulls as comparable
	DISTINCT
	// GT represents greater than (>)
	GT
	// GTE represents greater than or equal (>=)
	GTE
	// LT represents less than (<)
	LT
	// LTE represents less than or equal (<=)
	LTE
)

// String returns a string representation of the CompareOp
func (op CompareOp) String() string {
	switch op {
	case EQ:
		return "="
	case NE:
		return "!="
	case DISTINCT:
		return "IS DISTINCT FROM"
	case GT:
		return ">"
	case GTE:
		return ">="
	case LT:
		return "<"
	case LTE:
		return "<="
	default:
		return fmt.Sprintf("CompareOp(%d)", op)
	}
}

// NullCheck returns the null-handling policy for the given operator. For
// IS DISTINCT FROM a single null side determines the result as true and two
// null sides as false; for every other operator any null side collapses the
// result to false. When neither side is null the policy defers to the
// comparator or equality function.
func NullCheck(op CompareOp) terms.NullCheckFunc {
	if op == DISTINCT {
		return func(ctx *terms.EvalContext, left, right terms.Term) (bool, bool, error) {
			leftVal, err := left.Value(ctx)
			if err != nil {
				return false, false, err
			}
			rightVal, err := right.Value(ctx)
			if err != nil {
				return false, false, err
			}
			if leftVal == nil || rightVal == nil {
				return (leftVal == nil) != (rightVal == nil), true, nil
			}
			return false, false, nil
		}
	}
	return func(ctx *terms.EvalContext, left, right terms.Term) (bool, bool, error) {
		leftVal, err := left.Value(ctx)
		if err != nil {
			return false, false, err
		}
		rightVal, err := right.Value(ctx)
		if err != nil {
			return false, false, err
		}
		if leftVal == nil || rightVal == nil {
			return false, true, nil
		}
		return false, false, nil
	}
}

// compareWith builds a three-way comparator that coerces both operand values
// with the given conversion, each side using its own declared type as the
// conversion source, then orders the converted values.
func compareWith[T any](
	convert func(v any, from types.Type) (T, error),
	compare func(a, b T) int,
) terms.CompareFunc {
	return func(ctx *terms.EvalContext, left, right terms.Term) (int, error) {
		leftVal, err := left.Value(ctx)
		if err != nil {
			return 0, err
		}
		rightVal, err := right.Value(ctx)
		if err != nil {
			return 0, err
		}

		leftConv, err := convert(leftVal, left.Type())
		if err != nil {
			return 0, err
		}
		rightConv, err := convert(rightVal, right.Type())
		if err != nil {
			return 0, err
		}
		return compare(leftConv, rightConv), nil
	}
}

func either(leftBase, rightBase, base types.BaseType) bool {
	return leftBase == base || rightBase == base
}

// ResolveCompare selects the comparator for the two operands' declared
// types. The precedence order decides which representation both sides are
// coerced to: decimal, then timestamp, then lexicographic when the left side
// is a string, then double, bigint and integer. The second return is false
// when no comparator exists for the pair.
func ResolveCompare(left, right terms.Term) (terms.CompareFunc, bool) {
	leftBase := left.Type().Base()
	rightBase := right.Type().Base()

	switch {
	case either(leftBase, rightBase, types.DECIMAL):
		return compareWith(ToDecimal, (*apd.Decimal).Cmp), true
	case either(leftBase, rightBase, types.TIMESTAMP):
		return compareWith(ToTimestamp, time.Time.Compare), true
	case leftBase == types.STRING:
		// Only the left operand's type gates this branch; the right side is
		// rendered to text whatever its type.
		return compareStrings, true
	case either(leftBase, rightBase, types.DOUBLE):
		return compareWith(ToFloat64, cmp.Compare[float64]), true
	case either(leftBase, rightBase, types.BIGINT):
		return compareWith(ToInt64, cmp.Compare[int64]), true
	case either(leftBase, rightBase, types.INTEGER):
		return compareWith(ToInt32, cmp.Compare[int32]), true
	default:
		return nil, false
	}
}

func compareStrings(ctx *terms.EvalContext, left, right terms.Term) (int, error) {
	leftVal, err := left.Value(ctx)
	if err != nil {
		return 0, err
	}
	rightVal, err := right.Value(ctx)
	if err != nil {
		return 0, err
	}
	return strings.Compare(stringify(leftVal), stringify(rightVal)), nil
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// ResolveEquals selects the structural-equality function for operand types
// that have equality but no total order. The left operand's base type alone
// decides the routing and no coercion is applied to either side; operands of
// differing declared types simply compare unequal. The second return is
// false for every other type, signaling the caller to resolve a comparator
// instead.
func ResolveEquals(left, _ terms.Term) (terms.EqualsFunc, bool) {
	switch left.Type().Base() {
	case types.ARRAY, types.MAP, types.STRUCT, types.BOOLEAN:
		return structuralEquals, true
	default:
		return nil, false
	}
}

func structuralEquals(ctx *terms.EvalContext, left, right terms.Term) (bool, error) {
	leftVal, err := left.Value(ctx)
	if err != nil {
		return false, err
	}
	rightVal, err := right.Value(ctx)
	if err != nil {
		return false, err
	}
	return reflect.DeepEqual(leftVal, rightVal), nil
}

// ComparisonTerm builds the boolean term for an ordered comparison, mapping
// the comparator's signed ordering to the operator's boolean result
func ComparisonTerm(
	op CompareOp,
	left, right terms.Term,
	nullCheck terms.NullCheckFunc,
	compare terms.CompareFunc,
) (terms.BooleanTerm, error) {
	switch op {
	case EQ:
		return terms.NewCompareToTerm(left, right, nullCheck, compare,
			func(ordering int) bool { return ordering == 0 }), nil
	case NE, DISTINCT:
		return terms.NewCompareToTerm(left, right, nullCheck, compare,
			func(ordering int) bool { return ordering != 0 }), nil
	case GTE:
		return terms.NewCompareToTerm(left, right, nullCheck, compare,
			func(ordering int) bool { return ordering >= 0 }), nil
	case GT:
		return terms.NewCompareToTerm(left, right, nullCheck, compare,
			func(ordering int) bool { return ordering > 0 }), nil
	case LTE:
		return terms.NewCompareToTerm(left, right, nullCheck, compare,
			func(ordering int) bool { return ordering <= 0 }), nil
	case LT:
		return terms.NewCompareToTerm(left, right, nullCheck, compare,
			func(ordering int) bool { return ordering < 0 }), nil
	default:
		return nil, &UnsupportedComparisonError{Left: left.Type(), Right: right.Type(), Op: op}
	}
}

// EqualityTerm builds the boolean term for an equality-only comparison,
// mapping the equality result to the operator's boolean result. Only the
// equality operators are legal here; ordered operators on equality-only
// types fail at compile time.
func EqualityTerm(
	op CompareOp,
	left, right terms.Term,
	nullCheck terms.NullCheckFunc,
	equals terms.EqualsFunc,
) (terms.BooleanTerm, error) {
	switch op {
	case EQ:
		return terms.NewEqualsTerm(left, right, nullCheck, equals,
			func(equal bool) bool { return equal }), nil
	case NE, DISTINCT:
		return terms.NewEqualsTerm(left, right, nullCheck, equals,
			func(equal bool) bool { return !equal }), nil
	default:
		return nil, &UnsupportedComparisonError{Left: left.Type(), Right: right.Type(), Op: op}
	}
}

// NewComparison resolves the comparison of the two operand terms under the
// given operator and returns the evaluable boolean term. A comparator is
// resolved first; types with equality but no total order fall back to the
// structural-equality path. When neither resolves, compilation of the
// expression fails.
func NewComparison(op CompareOp, left, right terms.Term) (terms.BooleanTerm, error) {
	nullCheck := NullCheck(op)

	if compare, ok := ResolveCompare(left, right); ok {
		return ComparisonTerm(op, left, right, nullCheck, compare)
	}
	if equals, ok := ResolveEquals(left, right); ok {
		return EqualityTerm(op, left, right, nullCheck, equals)
	}
	return nil, &UnsupportedComparisonError{Left: left.Type(), Right: right.Type(), Op: op}
}
