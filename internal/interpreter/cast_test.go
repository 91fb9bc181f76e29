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
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kilrasemifir/ksql/internal/sql/types"
)

func TestToDecimal(t *testing.T) {
	identity := mustDecimal(t, "1.50")
	got, err := ToDecimal(identity, types.NewDecimal(3, 2))
	require.NoError(t, err)
	require.Same(t, identity, got)

	got, err = ToDecimal(int32(7), types.Integer)
	require.NoError(t, err)
	require.Zero(t, got.Cmp(mustDecimal(t, "7")))

	got, err = ToDecimal(int64(-3), types.Bigint)
	require.NoError(t, err)
	require.Zero(t, got.Cmp(mustDecimal(t, "-3")))

	got, err = ToDecimal(2.5, types.Double)
	require.NoError(t, err)
	require.Zero(t, got.Cmp(mustDecimal(t, "2.5")))

	got, err = ToDecimal("10.25", types.String)
	require.NoError(t, err)
	require.Zero(t, got.Cmp(mustDecimal(t, "10.25")))

	_, err = ToDecimal("ten", types.String)
	var convErr *UnsupportedConversionError
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, types.DECIMAL, convErr.To)

	_, err = ToDecimal(true, types.Boolean)
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, types.BOOLEAN, convErr.From.Base())
}

func TestToTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	got, err := ToTimestamp(ts, types.Timestamp)
	require.NoError(t, err)
	require.True(t, got.Equal(ts))

	got, err = ToTimestamp("2024-03-01 12:00:00", types.String)
	require.NoError(t, err)
	require.True(t, got.Equal(ts))

	var convErr *UnsupportedConversionError
	_, err = ToTimestamp(int64(1), types.Bigint)
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, types.TIMESTAMP, convErr.To)
}

func TestToFloat64(t *testing.T) {
	got, err := ToFloat64(2.5, types.Double)
	require.NoError(t, err)
	require.Equal(t, 2.5, got)

	got, err = ToFloat64(int32(2), types.Integer)
	require.NoError(t, err)
	require.Equal(t, 2.0, got)

	got, err = ToFloat64(int64(-4), types.Bigint)
	require.NoError(t, err)
	require.Equal(t, -4.0, got)

	got, err = ToFloat64("3.25", types.String)
	require.NoError(t, err)
	require.Equal(t, 3.25, got)

	var convErr *UnsupportedConversionError
	_, err = ToFloat64("abc", types.String)
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, types.DOUBLE, convErr.To)

	_, err = ToFloat64(true, types.Boolean)
	require.ErrorAs(t, err, &convErr)
}

func TestToInt64(t *testing.T) {
	got, err := ToInt64(int64(9), types.Bigint)
	require.NoError(t, err)
	require.Equal(t, int64(9), got)

	got, err = ToInt64(int32(-2), types.Integer)
	require.NoError(t, err)
	require.Equal(t, int64(-2), got)

	// Floats truncate toward zero, matching CAST
	got, err = ToInt64(2.9, types.Double)
	require.NoError(t, err)
	require.Equal(t, int64(2), got)

	got, err = ToInt64("42", types.String)
	require.NoError(t, err)
	require.Equal(t, int64(42), got)

	var convErr *UnsupportedConversionError
	_, err = ToInt64("4.5", types.String)
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, types.BIGINT, convErr.To)
}

func TestToInt32(t *testing.T) {
	got, err := ToInt32(int32(9), types.Integer)
	require.NoError(t, err)
	require.Equal(t, int32(9), got)

	got, err = ToInt32(int64(-2), types.Bigint)
	require.NoError(t, err)
	require.Equal(t, int32(-2), got)

	got, err = ToInt32(2.9, types.Double)
	require.NoError(t, err)
	require.Equal(t, int32(2), got)

	got, err = ToInt32("17", types.String)
	require.NoError(t, err)
	require.Equal(t, int32(17), got)

	var convErr *UnsupportedConversionError
	_, err = ToInt32(map[string]any{}, types.NewMap(types.String))
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, types.INTEGER, convErr.To)
	require.Equal(t, types.MAP, convErr.From.Base())
}
