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
	"strconv"
	"time"

	"github.com/cockroachdb/apd/v3"

	"github.com/kilrasemifir/ksql/internal/sql/types"
)

// The conversion functions below are pure: they inspect only the value's
// runtime representation and the declared source type, which is used solely
// for error reporting. Each function is total on its accepted domain and
// fails with UnsupportedConversionError for every other representation.

// ToDecimal converts a runtime value to its arbitrary-precision decimal
// representation. Accepted: decimal (identity), float64, int32, int64, int,
// and decimal text.
func ToDecimal(v any, from types.Type) (*apd.Decimal, error) {
	switch v := v.(type) {
	case *apd.Decimal:
		return v, nil
	case float64:
		d := new(apd.Decimal)
		if _, err := d.SetFloat64(v); err != nil {
			return nil, &UnsupportedConversionError{From: from, To: types.DECIMAL, Err: err}
		}
		return d, nil
	case int32:
		return apd.New(int64(v), 0), nil
	case int64:
		return apd.New(v, 0), nil
	case int:
		return apd.New(int64(v), 0), nil
	case string:
		d, _, err := apd.NewFromString(v)
		if err != nil {
			return nil, &UnsupportedConversionError{From: from, To: types.DECIMAL, Err: err}
		}
		return d, nil
	default:
		return nil, &UnsupportedConversionError{From: from, To: types.DECIMAL}
	}
}

// ToTimestamp converts a runtime value to its timestamp representation.
// Accepted: timestamp (identity) and canonical timestamp text.
func ToTimestamp(v any, from types.Type) (time.Time, error) {
	switch v := v.(type) {
	case time.Time:
		return v, nil
	case string:
		ts, err := types.ParseTimestamp(v)
		if err != nil {
			return time.Time{}, &UnsupportedConversionError{From: from, To: types.TIMESTAMP, Err: err}
		}
		return ts, nil
	default:
		return time.Time{}, &UnsupportedConversionError{From: from, To: types.TIMESTAMP}
	}
}

// ToFloat64 converts a runtime value to a double. Accepted: float64
// (identity), the integer representations, and numeric text.
func ToFloat64(v any, from types.Type) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, &UnsupportedConversionError{From: from, To: types.DOUBLE, Err: err}
		}
		return f, nil
	default:
		return 0, &UnsupportedConversionError{From: from, To: types.DOUBLE}
	}
}

// ToInt64 converts a runtime value to a 64-bit integer. Floats truncate
// toward zero, matching CAST semantics.
func ToInt64(v any, from types.Type) (int64, error) {
	switch v := v.(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case string:
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, &UnsupportedConversionError{From: from, To: types.BIGINT, Err: err}
		}
		return i, nil
	default:
		return 0, &UnsupportedConversionError{From: from, To: types.BIGINT}
	}
}

// ToInt32 converts a runtime value to a 32-bit integer. Wider numeric
// representations narrow, matching CAST semantics.
func ToInt32(v any, from types.Type) (int32, error) {
	switch v := v.(type) {
	case int32:
		return v, nil
	case int64:
		return int32(v), nil
	case int:
		return int32(v), nil
	case float64:
		return int32(v), nil
	case string:
		i, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return 0, &UnsupportedConversionError{From: from, To: types.INTEGER, Err: err}
		}
		return int32(i), nil
	default:
		return 0, &UnsupportedConversionError{From: from, To: types.INTEGER}
	}
}
