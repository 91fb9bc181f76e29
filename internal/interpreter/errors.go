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
package interpreter

import (
	"fmt"

	"github.com/kilrasemifir/ksql/internal/sql/types"
)

// UnsupportedComparisonError reports, at expression-compile time, that no
// comparator or equality function exists for the operand types, or that the
// operator value itself is not a legal comparison operator.
type UnsupportedComparisonError struct {
	Left  types.Type
	Right types.Type
	Op    CompareOp
}

func (e *UnsupportedComparisonError) Error() string {
	return fmt.Sprintf("unsupported comparison between %s and %s: %s", e.Left, e.Right, e.Op)
}

// UnsupportedConversionError reports, at evaluation time, that a non-null
// operand value's runtime representation cannot be coerced to the target
// base type.
type UnsupportedConversionError struct {
	From types.Type
	To   types.BaseType
	Err  error
}

func (e *UnsupportedConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot convert %s to %s: %v", e.From, e.To, e.Err)
	}
	return fmt.Sprintf("cannot convert %s to %s", e.From, e.To)
}

func (e *UnsupportedConversionError) Unwrap() error {
	return e.Err
}
